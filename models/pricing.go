// File: models/pricing.go
package models

// PricingEntry is a single card of the pricing table.
type PricingEntry struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Price      string   `json:"price" yaml:"price"`
	Duration   string   `json:"duration" yaml:"duration"`
	Category   Category `json:"category" yaml:"category"`
	Features   []string `json:"features" yaml:"features"`
	Disclaimer string   `json:"disclaimer,omitempty" yaml:"disclaimer,omitempty"`
}

func (p PricingEntry) RecordID() string         { return p.ID }
func (p PricingEntry) RecordCategory() Category { return p.Category }
func (p PricingEntry) RecordFeatured() bool     { return false }
func (p PricingEntry) DisplayTitle() string     { return p.Title }

// SearchFields exposes the title only; pricing cards carry no excerpt.
func (p PricingEntry) SearchFields() []string { return []string{p.Title} }

// Highlight is one of the three tiers shown for the selected category on the
// home page.
type Highlight struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
}

// HighlightSet groups the tiers of a category.
type HighlightSet struct {
	Category  Category  `json:"category" yaml:"category"`
	Basic     Highlight `json:"basic" yaml:"basic"`
	Premium   Highlight `json:"premium" yaml:"premium"`
	Emergency Highlight `json:"emergency" yaml:"emergency"`
}
