package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryEnumeration(t *testing.T) {
	keys := CategoryKeys()
	assert.Equal(t, []Category{
		CategoryCleaning, CategoryPlumbing, CategoryElectrical,
		CategoryAppliance, CategoryGrooming, CategoryPet,
	}, keys)

	slugs := make(map[string]bool)
	labels := make(map[string]bool)
	for _, info := range Categories() {
		assert.True(t, info.Key.Valid())
		assert.False(t, slugs[info.RouteSlug], "duplicate slug %s", info.RouteSlug)
		assert.False(t, labels[info.Label], "duplicate label %s", info.Label)
		slugs[info.RouteSlug] = true
		labels[info.Label] = true

		got, ok := CategoryForSlug(info.RouteSlug)
		assert.True(t, ok)
		assert.Equal(t, info.Key, got)
	}

	assert.False(t, CategoryAll.Valid())
	assert.Equal(t, "All Services", CategoryAll.Label())
	assert.Equal(t, "Pet Care", CategoryPet.Label())
}

func TestResolveCategoryAlias(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"cleaning", CategoryCleaning, true},
		{"Home Cleaning", CategoryCleaning, true},
		{"PET CARE", CategoryPet, true},
		{"pet-grooming", CategoryPet, true},
		{"Appliance Repair", CategoryAppliance, true},
		{"Personal Grooming", CategoryGrooming, true},
		{"All Posts", CategoryAll, true},
		{"all", CategoryAll, true},
		{"gardening", "", false},
		{"  ", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ResolveCategoryAlias(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
