// Package content prepares hard-coded article markup for delivery: it
// sanitizes the HTML and derives a heading outline with stable anchors.
package content

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// policy is safe for concurrent use once built.
var policy = bluemonday.UGCPolicy()

// Heading is one entry of an article outline.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Article is a sanitized body whose h2/h3 elements carry the anchors listed
// in Outline.
type Article struct {
	Body    string    `json:"body"`
	Outline []Heading `json:"outline"`
}

// Sanitize strips scripts, event handlers and anything else outside the
// user-generated-content allow list.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}

// Outline lists the h2 and h3 headings of html in document order.
func Outline(html string) ([]Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse article: %w", err)
	}
	return collect(doc), nil
}

// Prepare sanitizes html, then stamps every h2/h3 with its anchor id.
func Prepare(html string) (Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Sanitize(html)))
	if err != nil {
		return Article{}, fmt.Errorf("parse article: %w", err)
	}
	outline := collect(doc)

	doc.Find("h2,h3").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("id", outline[i].Anchor)
	})

	body, err := doc.Find("body").Html()
	if err != nil {
		return Article{}, fmt.Errorf("render article: %w", err)
	}
	return Article{Body: strings.TrimSpace(body), Outline: outline}, nil
}

func collect(doc *goquery.Document) []Heading {
	outline := []Heading{}
	used := make(map[string]bool)

	doc.Find("h2,h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		level := 2
		if goquery.NodeName(s) == "h3" {
			level = 3
		}

		base := Slugify(text)
		if base == "" {
			base = "section"
		}
		// A heading whose own text ends in "-2" can occupy a suffixed slot.
		anchor := base
		for n := 2; used[anchor]; n++ {
			anchor = base + "-" + strconv.Itoa(n)
		}
		used[anchor] = true
		outline = append(outline, Heading{Level: level, Text: text, Anchor: anchor})
	})
	return outline
}

// Slugify lowercases s, drops apostrophes and joins the remaining runs of
// letters and digits with single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r == '\'' || r == '’':
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
