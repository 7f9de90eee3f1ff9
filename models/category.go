// File: models/category.go
package models

import "strings"

// Category is a canonical service classification shared by catalog records,
// filters and deep-link tokens.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryCleaning   Category = "cleaning"
	CategoryPlumbing   Category = "plumbing"
	CategoryElectrical Category = "electrical"
	CategoryAppliance  Category = "appliance"
	CategoryGrooming   Category = "grooming"
	CategoryPet        Category = "pet"
)

// CategoryInfo describes how a category is presented and routed.
type CategoryInfo struct {
	Key       Category `json:"key"`
	Label     string   `json:"label"`
	RouteSlug string   `json:"routeSlug"`
	// BookingPhrase is the service name used in outbound inquiry messages.
	BookingPhrase string `json:"bookingPhrase"`
}

// categories is ordered the way filter chips are displayed.
var categories = []CategoryInfo{
	{Key: CategoryCleaning, Label: "Home Cleaning", RouteSlug: "home-cleaning", BookingPhrase: "Home Cleaning Service"},
	{Key: CategoryPlumbing, Label: "Plumbing", RouteSlug: "plumbing", BookingPhrase: "Plumbing Service"},
	{Key: CategoryElectrical, Label: "Electrical", RouteSlug: "electrical", BookingPhrase: "Electrical Service"},
	{Key: CategoryAppliance, Label: "Appliance Repair", RouteSlug: "appliance-repair", BookingPhrase: "Appliance Repair Service"},
	{Key: CategoryGrooming, Label: "Grooming", RouteSlug: "grooming", BookingPhrase: "Personal Grooming Service"},
	{Key: CategoryPet, Label: "Pet Care", RouteSlug: "pet-grooming", BookingPhrase: "Pet Grooming Service"},
}

// categoryAliases maps presentation labels and legacy keys seen across the
// old pages onto canonical keys. Keys are lowercase.
var categoryAliases = map[string]Category{
	"all posts":         CategoryAll,
	"all services":      CategoryAll,
	"all-services":      CategoryAll,
	"home cleaning":     CategoryCleaning,
	"home-cleaning":     CategoryCleaning,
	"appliance repair":  CategoryAppliance,
	"appliance-repair":  CategoryAppliance,
	"pet care":          CategoryPet,
	"pet grooming":      CategoryPet,
	"pet-grooming":      CategoryPet,
	"personal grooming": CategoryGrooming,
	"plumbing services": CategoryPlumbing,
	"electrical work":   CategoryElectrical,
}

var (
	byKey  = make(map[Category]CategoryInfo, len(categories))
	bySlug = make(map[string]CategoryInfo, len(categories))
)

func init() {
	for _, c := range categories {
		byKey[c.Key] = c
		bySlug[c.RouteSlug] = c
	}
}

// Categories returns the canonical enumeration in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// CategoryKeys returns the canonical keys in display order, without All.
func CategoryKeys() []Category {
	keys := make([]Category, 0, len(categories))
	for _, c := range categories {
		keys = append(keys, c.Key)
	}
	return keys
}

// Valid reports whether c is one of the canonical keys. All is not valid as
// a record category.
func (c Category) Valid() bool {
	_, ok := byKey[c]
	return ok
}

// Info returns the presentation data for c.
func (c Category) Info() (CategoryInfo, bool) {
	info, ok := byKey[c]
	return info, ok
}

// Label returns the display label, "All Services" for the sentinel.
func (c Category) Label() string {
	if info, ok := byKey[c]; ok {
		return info.Label
	}
	return "All Services"
}

func (c Category) String() string { return string(c) }

// CategoryForSlug resolves a routing slug.
func CategoryForSlug(slug string) (Category, bool) {
	info, ok := bySlug[slug]
	return info.Key, ok
}

// ResolveCategoryAlias maps a label, legacy key or canonical key onto the
// enumeration. The lookup is case-insensitive.
func ResolveCategoryAlias(s string) (Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" {
		return "", false
	}
	if c := Category(norm); c.Valid() || c == CategoryAll {
		return c, true
	}
	if c, ok := categoryAliases[norm]; ok {
		return c, true
	}
	for _, info := range categories {
		if strings.ToLower(info.Label) == norm {
			return info.Key, true
		}
	}
	return "", false
}
