// File: models/blog.go
package models

// FAQ is a question/answer pair attached to a post or to the site.
type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// BlogPost is a hard-coded article. Body holds HTML markup.
type BlogPost struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Author   string   `json:"author" yaml:"author"`
	Date     string   `json:"date" yaml:"date"`
	ReadTime string   `json:"readTime" yaml:"readTime"`
	Category Category `json:"category" yaml:"category"`
	// Label is the presentation tag, e.g. "Home Maintenance".
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Image    string   `json:"image,omitempty" yaml:"image,omitempty"`
	Body     string   `json:"body,omitempty" yaml:"body"`
	Featured bool     `json:"featured" yaml:"featured"`
	FAQs     []FAQ    `json:"faqs,omitempty" yaml:"faqs,omitempty"`
}

func (b BlogPost) RecordID() string         { return b.ID }
func (b BlogPost) RecordCategory() Category { return b.Category }
func (b BlogPost) RecordFeatured() bool     { return b.Featured }
func (b BlogPost) SearchFields() []string   { return []string{b.Title, b.Excerpt} }
func (b BlogPost) DisplayTitle() string     { return b.Title }

// Summary strips the body and FAQs for list responses.
func (b BlogPost) Summary() BlogPost {
	b.Body = ""
	b.FAQs = nil
	return b
}
