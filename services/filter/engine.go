// Package filter computes the visible subset of a catalog collection for a
// page's selection state. Every listing (services, pricing, blog) goes
// through the same predicates.
package filter

import (
	"strings"

	"github.com/jawwad-masteee/handlix/models"
)

// Record is anything a listing page can filter.
type Record interface {
	RecordID() string
	RecordCategory() models.Category
	RecordFeatured() bool
	SearchFields() []string
}

// Filter returns the records matching both the category and the search term,
// in their original order. The result is never nil.
func Filter[T Record](records []T, active models.Category, term string) []T {
	out := make([]T, 0, len(records))
	needle := strings.ToLower(term)
	for _, r := range records {
		if !MatchesCategory(r, active) {
			continue
		}
		if !matchesLowered(r, needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// MatchesCategory is an exact, case-sensitive comparison. The All sentinel
// and the zero value match everything.
func MatchesCategory(r Record, active models.Category) bool {
	if active == models.CategoryAll || active == "" {
		return true
	}
	return r.RecordCategory() == active
}

// MatchesSearch is a case-insensitive substring test over the record's
// searchable fields.
func MatchesSearch(r Record, term string) bool {
	return matchesLowered(r, strings.ToLower(term))
}

func matchesLowered(r Record, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Featured partitions out the featured records. It ignores any selection
// state and should be given the full catalog.
func Featured[T Record](records []T) []T {
	out := make([]T, 0)
	for _, r := range records {
		if r.RecordFeatured() {
			out = append(out, r)
		}
	}
	return out
}

// NotFeatured is the complement of Featured.
func NotFeatured[T Record](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !r.RecordFeatured() {
			out = append(out, r)
		}
	}
	return out
}

// Related returns up to n records other than excludeID, in catalog order.
func Related[T Record](records []T, excludeID string, n int) []T {
	out := make([]T, 0, n)
	if n <= 0 {
		return out
	}
	for _, r := range records {
		if r.RecordID() == excludeID {
			continue
		}
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}

// Categories lists the categories present in records, in enumeration order.
func Categories[T Record](records []T) []models.Category {
	present := make(map[models.Category]bool)
	for _, r := range records {
		present[r.RecordCategory()] = true
	}
	out := make([]models.Category, 0, len(present))
	for _, c := range models.CategoryKeys() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}
