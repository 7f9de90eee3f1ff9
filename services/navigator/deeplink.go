// Package navigator maps categories to and from the tokens carried in URL
// paths and fragments, and tracks a page's selection state.
package navigator

import (
	"strings"

	"github.com/jawwad-masteee/handlix/models"
)

// DefaultCategory is what any unrecognized token resolves to.
const DefaultCategory = models.CategoryAll

// Encode returns the token for c. Tokens are the canonical keys, so they are
// valid both as fragments and as query values. Anything outside the
// enumeration encodes as the default.
func Encode(c models.Category) string {
	if c.Valid() {
		return string(c)
	}
	return string(DefaultCategory)
}

// Decode resolves a fragment or query token. It never fails: malformed or
// unknown tokens yield DefaultCategory.
func Decode(token string) models.Category {
	t := normalizeToken(token)
	if c := models.Category(t); c.Valid() {
		return c
	}
	return DefaultCategory
}

// RouteSlug is the path segment used under /services for c.
func RouteSlug(c models.Category) (string, bool) {
	info, ok := c.Info()
	if !ok {
		return "", false
	}
	return info.RouteSlug, true
}

// DecodeRouteSlug resolves a /services/:category path segment. Routing
// slugs are tried first, then canonical keys and known labels.
func DecodeRouteSlug(slug string) models.Category {
	s := normalizeToken(slug)
	if c, ok := models.CategoryForSlug(s); ok {
		return c
	}
	if c, ok := models.ResolveCategoryAlias(s); ok {
		return c
	}
	return DefaultCategory
}

// DecodeLabel resolves a presentation label such as "Pet Care" or
// "All Posts", falling back to DecodeRouteSlug rules.
func DecodeLabel(label string) models.Category {
	if c, ok := models.ResolveCategoryAlias(label); ok {
		return c
	}
	return DecodeRouteSlug(label)
}

// PricingLink is the cross-page link from a services card to the filtered
// pricing table.
func PricingLink(c models.Category) string {
	if !c.Valid() {
		return "/pricing"
	}
	return "/pricing#" + Encode(c)
}

// ServicesLink points at the anchor of c on the services page.
func ServicesLink(c models.Category) string {
	slug, ok := RouteSlug(c)
	if !ok {
		return "/services"
	}
	return "/services/" + slug
}

// ServiceAnchor is the element id the services page scrolls to.
func ServiceAnchor(c models.Category) string {
	slug, ok := RouteSlug(c)
	if !ok {
		return ""
	}
	return "category-" + slug
}

// BlogLink is the route of a single post.
func BlogLink(id string) string {
	return "/blog/" + id
}

func normalizeToken(token string) string {
	t := strings.TrimSpace(token)
	t = strings.TrimPrefix(t, "#")
	t = strings.Trim(t, "/")
	return strings.ToLower(t)
}
