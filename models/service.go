// File: models/service.go
package models

// ServiceRecord is a bookable service category card shown on the home and
// services pages.
type ServiceRecord struct {
	ID            string   `json:"id" yaml:"id"`
	Slug          string   `json:"slug" yaml:"slug"`
	Title         string   `json:"title" yaml:"title"`
	Category      Category `json:"category" yaml:"category"`
	Description   string   `json:"description" yaml:"description"`
	Price         string   `json:"price" yaml:"price"`
	DurationLabel string   `json:"durationLabel,omitempty" yaml:"durationLabel,omitempty"`
	Rating        float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
	Featured      bool     `json:"featured" yaml:"featured"`
	Offerings     []string `json:"offerings,omitempty" yaml:"offerings,omitempty"`
}

func (s ServiceRecord) RecordID() string         { return s.ID }
func (s ServiceRecord) RecordCategory() Category { return s.Category }
func (s ServiceRecord) RecordFeatured() bool     { return s.Featured }
func (s ServiceRecord) SearchFields() []string   { return []string{s.Title, s.Description} }
func (s ServiceRecord) DisplayTitle() string     { return s.Title }
