package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawwad-masteee/handlix/models"
)

const smallCatalog = `
services:
  - id: a
    slug: a
    title: Drain Unclogging
    category: plumbing
    description: Kitchen and bathroom drains
    price: From ₹199
    featured: true
pricing:
  - id: a
    title: Tap Repair
    price: ₹199
    duration: onwards
    category: plumbing
    features: [Leak detection]
  - id: b
    title: Sofa Cleaning
    price: ₹599
    duration: onwards
    category: cleaning
    features: []
  - id: c
    title: Pipe Installation
    price: ₹399
    duration: onwards
    category: plumbing
    features: []
posts:
  - id: monsoon
    title: Monsoon checklist
    excerpt: Prepare your home
    author: Handlix
    date: "2025-06-01"
    readTime: 3 min read
    category: plumbing
    body: <h2>Drains</h2><p>Clean them.</p>
    featured: false
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(smallCatalog))
	require.NoError(t, err)

	recs, err := s.ByCategory(KindPricing, models.CategoryPlumbing)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].RecordID())
	assert.Equal(t, "c", recs[1].RecordID())

	_, err = s.Highlights(models.CategoryPet)
	assert.NoError(t, err)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("services: []\nprices: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode yaml")
}

func TestParseRejectsUnknownCategory(t *testing.T) {
	doc := strings.Replace(smallCatalog, "category: cleaning", "category: pet-grooming", 1)
	_, err := Parse(strings.NewReader(doc))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Problems[0], `unknown category "pet-grooming"`)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestExportParseRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, DefaultData()))

	s, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, MustDefault().Counts(), s.Counts())

	post, err := s.Post("home-cleaning-guide-2025")
	require.NoError(t, err)
	assert.True(t, post.Featured)
	assert.Len(t, post.FAQs, 3)
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 17, s.Counts()[KindPricing])

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Counts()[KindPricing])

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
