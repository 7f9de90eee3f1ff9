// Package catalog holds the static, read-only collections the site renders:
// services, pricing entries, blog posts and home-page highlights.
package catalog

import (
	"fmt"
	"time"

	"github.com/jawwad-masteee/handlix/models"
	"github.com/jawwad-masteee/handlix/services/filter"
)

// Kind names a record collection.
type Kind string

const (
	KindServices Kind = "services"
	KindPricing  Kind = "pricing"
	KindPosts    Kind = "posts"
)

// Kinds lists every collection in a stable order.
func Kinds() []Kind {
	return []Kind{KindServices, KindPricing, KindPosts}
}

// Data is the raw shape of a catalog, shared by the compiled-in defaults and
// YAML override files.
type Data struct {
	Services   []models.ServiceRecord `yaml:"services"`
	Pricing    []models.PricingEntry  `yaml:"pricing"`
	Posts      []models.BlogPost      `yaml:"posts"`
	Highlights []models.HighlightSet  `yaml:"highlights,omitempty"`
	FAQs       []models.FAQ           `yaml:"faqs,omitempty"`
}

// DefaultData returns a copy of the compiled-in catalog.
func DefaultData() Data {
	return Data{
		Services:   append([]models.ServiceRecord(nil), serviceRecords...),
		Pricing:    append([]models.PricingEntry(nil), pricing...),
		Posts:      append([]models.BlogPost(nil), posts...),
		Highlights: append([]models.HighlightSet(nil), highlights...),
		FAQs:       append([]models.FAQ(nil), siteFAQs...),
	}
}

// Store is safe for concurrent reads. Returned slices are copies, but the
// records inside share their nested slices with the store and must not be
// modified.
type Store struct {
	data Data

	serviceIdx map[string]int
	pricingIdx map[string]int
	postIdx    map[string]int
	highlights map[models.Category]models.HighlightSet
}

// New validates data and indexes it. Every problem found is reported in a
// single *ConfigError.
func New(data Data) (*Store, error) {
	if len(data.Highlights) == 0 {
		data.Highlights = append([]models.HighlightSet(nil), highlights...)
	}
	if len(data.FAQs) == 0 {
		data.FAQs = append([]models.FAQ(nil), siteFAQs...)
	}

	cerr := &ConfigError{}
	s := &Store{
		data:       data,
		serviceIdx: indexRecords(KindServices, data.Services, cerr),
		pricingIdx: indexRecords(KindPricing, data.Pricing, cerr),
		postIdx:    indexRecords(KindPosts, data.Posts, cerr),
		highlights: make(map[models.Category]models.HighlightSet, len(data.Highlights)),
	}

	slugs := make(map[string]bool)
	for _, svc := range data.Services {
		if svc.Slug == "" {
			cerr.add("services %q: empty slug", svc.ID)
			continue
		}
		key := string(svc.Category) + "/" + svc.Slug
		if slugs[key] {
			cerr.add("services %q: duplicate route %s", svc.ID, key)
		}
		slugs[key] = true
	}

	for _, p := range data.Posts {
		if _, err := time.Parse(time.DateOnly, p.Date); err != nil {
			cerr.add("posts %q: date %q is not YYYY-MM-DD", p.ID, p.Date)
		}
	}

	for _, h := range data.Highlights {
		if !h.Category.Valid() {
			cerr.add("highlights: unknown category %q", h.Category)
			continue
		}
		if _, dup := s.highlights[h.Category]; dup {
			cerr.add("highlights: duplicate category %q", h.Category)
		}
		s.highlights[h.Category] = h
	}
	for _, c := range models.CategoryKeys() {
		if _, ok := s.highlights[c]; !ok {
			cerr.add("highlights: missing category %q", c)
		}
	}

	for i, f := range data.FAQs {
		if f.Question == "" || f.Answer == "" {
			cerr.add("faqs[%d]: question and answer are required", i)
		}
	}

	if len(cerr.Problems) > 0 {
		return nil, cerr
	}
	return s, nil
}

type titled interface {
	filter.Record
	DisplayTitle() string
}

func indexRecords[T titled](kind Kind, records []T, cerr *ConfigError) map[string]int {
	idx := make(map[string]int, len(records))
	for i, r := range records {
		id := r.RecordID()
		switch {
		case id == "":
			cerr.add("%s[%d]: empty id", kind, i)
			continue
		case r.DisplayTitle() == "":
			cerr.add("%s %q: empty title", kind, id)
		}
		if !r.RecordCategory().Valid() {
			cerr.add("%s %q: unknown category %q", kind, id, r.RecordCategory())
		}
		if _, dup := idx[id]; dup {
			cerr.add("%s %q: duplicate id", kind, id)
			continue
		}
		idx[id] = i
	}
	return idx
}

// Default builds a store from the compiled-in catalog.
func Default() (*Store, error) {
	return New(DefaultData())
}

// MustDefault is Default for program start-up; an invalid compiled-in
// catalog is a build defect.
func MustDefault() *Store {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// Services returns every service in catalog order.
func (s *Store) Services() []models.ServiceRecord {
	return append([]models.ServiceRecord(nil), s.data.Services...)
}

// Pricing returns every pricing entry in catalog order.
func (s *Store) Pricing() []models.PricingEntry {
	return append([]models.PricingEntry(nil), s.data.Pricing...)
}

// Posts returns every blog post in catalog order.
func (s *Store) Posts() []models.BlogPost {
	return append([]models.BlogPost(nil), s.data.Posts...)
}

// Service looks a service up by id.
func (s *Store) Service(id string) (models.ServiceRecord, error) {
	i, ok := s.serviceIdx[id]
	if !ok {
		return models.ServiceRecord{}, notFound(KindServices, id)
	}
	return s.data.Services[i], nil
}

// ServiceBySlug resolves the /services/:category/:slug route.
func (s *Store) ServiceBySlug(c models.Category, slug string) (models.ServiceRecord, error) {
	for _, svc := range s.data.Services {
		if svc.Category == c && svc.Slug == slug {
			return svc, nil
		}
	}
	return models.ServiceRecord{}, notFound(KindServices, string(c)+"/"+slug)
}

// PricingEntry looks a pricing card up by id.
func (s *Store) PricingEntry(id string) (models.PricingEntry, error) {
	i, ok := s.pricingIdx[id]
	if !ok {
		return models.PricingEntry{}, notFound(KindPricing, id)
	}
	return s.data.Pricing[i], nil
}

// Post looks a blog post up by id.
func (s *Store) Post(id string) (models.BlogPost, error) {
	i, ok := s.postIdx[id]
	if !ok {
		return models.BlogPost{}, notFound(KindPosts, id)
	}
	return s.data.Posts[i], nil
}

// Highlights returns the home-page tiers for c.
func (s *Store) Highlights(c models.Category) (models.HighlightSet, error) {
	h, ok := s.highlights[c]
	if !ok {
		return models.HighlightSet{}, fmt.Errorf("highlights %q: %w", c, ErrNotFound)
	}
	return h, nil
}

// FAQs returns the site-wide questions shown on the contact page.
func (s *Store) FAQs() []models.FAQ {
	return append([]models.FAQ(nil), s.data.FAQs...)
}

// PostFAQs flattens the questions of every post, in catalog order.
func (s *Store) PostFAQs() []models.FAQ {
	var out []models.FAQ
	for _, p := range s.data.Posts {
		out = append(out, p.FAQs...)
	}
	return out
}

// AllOf returns the records of kind in catalog order.
func (s *Store) AllOf(kind Kind) ([]filter.Record, error) {
	switch kind {
	case KindServices:
		return asRecords(s.data.Services), nil
	case KindPricing:
		return asRecords(s.data.Pricing), nil
	case KindPosts:
		return asRecords(s.data.Posts), nil
	}
	return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

// ByID returns one record of kind.
func (s *Store) ByID(kind Kind, id string) (filter.Record, error) {
	var (
		rec filter.Record
		err error
	)
	switch kind {
	case KindServices:
		rec, err = s.Service(id)
	case KindPricing:
		rec, err = s.PricingEntry(id)
	case KindPosts:
		rec, err = s.Post(id)
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ByCategory returns the records of kind in category c, preserving catalog
// order.
func (s *Store) ByCategory(kind Kind, c models.Category) ([]filter.Record, error) {
	all, err := s.AllOf(kind)
	if err != nil {
		return nil, err
	}
	out := make([]filter.Record, 0, len(all))
	for _, r := range all {
		if r.RecordCategory() == c {
			out = append(out, r)
		}
	}
	return out, nil
}

// Counts reports the number of records per kind.
func (s *Store) Counts() map[Kind]int {
	return map[Kind]int{
		KindServices: len(s.data.Services),
		KindPricing:  len(s.data.Pricing),
		KindPosts:    len(s.data.Posts),
	}
}

func asRecords[T filter.Record](records []T) []filter.Record {
	out := make([]filter.Record, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}
