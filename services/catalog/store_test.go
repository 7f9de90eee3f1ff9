package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawwad-masteee/handlix/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	counts := s.Counts()
	assert.Equal(t, 6, counts[KindServices])
	assert.Equal(t, 17, counts[KindPricing])
	assert.Equal(t, 7, counts[KindPosts])
	assert.NotPanics(t, func() { MustDefault() })
}

func TestByID(t *testing.T) {
	s := MustDefault()

	rec, err := s.ByID(KindPricing, "leak-fixing")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryPlumbing, rec.RecordCategory())

	post, err := s.Post("electrical-safety-tips")
	require.NoError(t, err)
	assert.Equal(t, "Electrical Safety Tips for Every Indian Household", post.Title)

	_, err = s.ByID(KindPosts, "no-such-post")
	assert.True(t, errors.Is(err, ErrNotFound))

	rec, err = s.ByID(KindServices, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, rec)

	_, err = s.ByID(Kind("faqs"), "x")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestByCategoryPreservesOrder(t *testing.T) {
	s := MustDefault()

	recs, err := s.ByCategory(KindPricing, models.CategoryPlumbing)
	require.NoError(t, err)

	var ids []string
	for _, r := range recs {
		ids = append(ids, r.RecordID())
	}
	assert.Equal(t, []string{"tap-faucet-repair", "leak-fixing", "pipe-installation"}, ids)

	recs, err = s.ByCategory(KindPricing, models.CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestAllOfMatchesTypedAccessors(t *testing.T) {
	s := MustDefault()
	recs, err := s.AllOf(KindPosts)
	require.NoError(t, err)

	posts := s.Posts()
	require.Len(t, recs, len(posts))
	for i := range posts {
		assert.Equal(t, posts[i].ID, recs[i].RecordID())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := MustDefault()
	services := s.Services()
	services[0].Title = "changed"
	assert.NotEqual(t, "changed", s.Services()[0].Title)
}

func TestServiceBySlug(t *testing.T) {
	s := MustDefault()
	svc, err := s.ServiceBySlug(models.CategoryPet, "pet-grooming")
	require.NoError(t, err)
	assert.Equal(t, "Pet Grooming", svc.Title)

	_, err = s.ServiceBySlug(models.CategoryCleaning, "pet-grooming")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHighlights(t *testing.T) {
	s := MustDefault()
	for _, c := range models.CategoryKeys() {
		h, err := s.Highlights(c)
		require.NoError(t, err, "category %s", c)
		assert.NotEmpty(t, h.Basic.Title)
	}
	_, err := s.Highlights(models.CategoryAll)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFAQs(t *testing.T) {
	s := MustDefault()
	faqs := s.FAQs()
	require.Len(t, faqs, 4)
	assert.Equal(t, "How quickly can you respond to service requests?", faqs[0].Question)

	postFAQs := s.PostFAQs()
	require.Len(t, postFAQs, 21)
	assert.Equal(t, "How often should I book professional deep cleaning?", postFAQs[0].Question)
}

func TestNewRejectsInvalidData(t *testing.T) {
	data := DefaultData()
	data.Pricing = append(data.Pricing, data.Pricing[0])
	data.Posts[1].Category = models.Category("Pet Care")
	data.Posts[2].Date = "10 Jan 2025"
	data.Services[1].Slug = data.Services[0].Slug
	data.Services[1].Category = data.Services[0].Category

	_, err := New(data)
	require.Error(t, err)

	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Len(t, cerr.Problems, 4)
	assert.Contains(t, err.Error(), `pricing "kitchen-cleaning": duplicate id`)
	assert.Contains(t, err.Error(), `unknown category "Pet Care"`)
	assert.Contains(t, err.Error(), "is not YYYY-MM-DD")
	assert.Contains(t, err.Error(), "duplicate route")
}

func TestNewRejectsEmptyIDAndTitle(t *testing.T) {
	data := DefaultData()
	data.Services[0].ID = ""
	data.Pricing[0].Title = ""

	_, err := New(data)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, err.Error(), "services[0]: empty id")
	assert.Contains(t, err.Error(), `pricing "kitchen-cleaning": empty title`)
}

func TestNewHighlightChecks(t *testing.T) {
	data := DefaultData()
	data.Highlights = data.Highlights[:5]
	_, err := New(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing category "pet"`)

	data = DefaultData()
	data.Highlights = nil
	_, err = New(data)
	assert.NoError(t, err, "missing highlights fall back to the compiled-in set")
}

func TestNewRejectsIncompleteFAQ(t *testing.T) {
	data := DefaultData()
	data.FAQs = []models.FAQ{{Question: "Why?"}}
	_, err := New(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "faqs[0]: question and answer are required")
}
