package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/models"
	"github.com/jawwad-masteee/handlix/services/catalog"
	"github.com/jawwad-masteee/handlix/services/inquiry"
	"github.com/jawwad-masteee/handlix/services/lifecycle"
	"github.com/jawwad-masteee/handlix/services/navigator"
)

// Business details shown in the header, footer and contact page.
const (
	businessName    = "Handlix"
	businessTagline = "Handling life's essentials, effortlessly."
	businessAddress = "Aligarh, Uttar Pradesh, India"
	businessEmail   = "support@handlix.in"
	businessPhone   = "+91 95285 22358"
)

// urgentBookingTopic is what the home page's emergency call-to-action books.
const urgentBookingTopic = "Urgent Service Request"

// NavLink is one entry of the site navigation.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

var navLinks = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Services", Href: "/services"},
	{Label: "Pricing", Href: "/pricing"},
	{Label: "Blog", Href: "/blog"},
	{Label: "Contact", Href: "/contact"},
}

// SiteHandler serves site-wide data: business details, the category
// enumeration, home-page highlights, FAQs and cross-page links.
type SiteHandler struct {
	Store          *catalog.Store
	Links          *inquiry.Builder
	SplashDuration time.Duration
}

// NewSiteHandler creates a new SiteHandler. A non-positive splash duration
// uses the loading overlay default.
func NewSiteHandler(store *catalog.Store, links *inquiry.Builder, splash time.Duration) *SiteHandler {
	if splash <= 0 {
		splash = lifecycle.DefaultSplashDuration
	}
	return &SiteHandler{Store: store, Links: links, SplashDuration: splash}
}

type categoryView struct {
	models.CategoryInfo
	Token        string `json:"token"`
	PricingLink  string `json:"pricingLink"`
	ServicesLink string `json:"servicesLink"`
	Anchor       string `json:"anchor"`
}

func categoryViews() []categoryView {
	infos := models.Categories()
	out := make([]categoryView, 0, len(infos))
	for _, info := range infos {
		out = append(out, categoryView{
			CategoryInfo: info,
			Token:        navigator.Encode(info.Key),
			PricingLink:  navigator.PricingLink(info.Key),
			ServicesLink: navigator.ServicesLink(info.Key),
			Anchor:       navigator.ServiceAnchor(info.Key),
		})
	}
	return out
}

// GetSiteInfo handles GET /api/site.
func (h *SiteHandler) GetSiteInfo(c *gin.Context) {
	serviceLinks := make([]NavLink, 0, len(models.CategoryKeys()))
	for _, info := range models.Categories() {
		serviceLinks = append(serviceLinks, NavLink{Label: info.Label, Href: navigator.ServicesLink(info.Key)})
	}

	c.JSON(http.StatusOK, gin.H{
		"name":             businessName,
		"tagline":          businessTagline,
		"address":          businessAddress,
		"email":            businessEmail,
		"phone":            businessPhone,
		"whatsappUrl":      h.Links.InquiryLink(inquiry.DefaultInquiryTopic),
		"urgentUrl":        h.Links.UrgentLink(),
		"nav":              navLinks,
		"serviceLinks":     serviceLinks,
		"contactServices":  models.ContactServiceOptions,
		"splashDurationMs": h.SplashDuration.Milliseconds(),
	})
}

// ListCategories handles GET /api/categories.
func (h *SiteHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":    navigator.Encode(navigator.DefaultCategory),
		"categories": categoryViews(),
	})
}

type highlightView struct {
	models.Highlight
	BookingURL string `json:"bookingUrl"`
}

type highlightSetView struct {
	Category  models.Category `json:"category"`
	Basic     highlightView   `json:"basic"`
	Premium   highlightView   `json:"premium"`
	Emergency highlightView   `json:"emergency"`
}

func (h *SiteHandler) highlightViews(set models.HighlightSet) highlightSetView {
	tier := func(t models.Highlight) highlightView {
		return highlightView{Highlight: t, BookingURL: h.Links.InquiryLink(t.Title)}
	}
	return highlightSetView{
		Category:  set.Category,
		Basic:     tier(set.Basic),
		Premium:   tier(set.Premium),
		Emergency: tier(set.Emergency),
	}
}

// GetHighlights handles GET /api/highlights. Without a recognized category
// the home page opens on cleaning.
func (h *SiteHandler) GetHighlights(c *gin.Context) {
	category := navigator.Decode(c.Query("category"))
	if !category.Valid() {
		category = models.CategoryCleaning
	}
	set, err := h.Store.Highlights(category)
	if err != nil {
		writeLookupError(c, "Highlights not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"highlights":  h.highlightViews(set),
		"label":       category.Label(),
		"pricingLink": navigator.PricingLink(category),
		"urgentUrl":   h.Links.InquiryLink(urgentBookingTopic),
	})
}

// ListFAQs handles GET /api/faqs.
func (h *SiteHandler) ListFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faqs": h.Store.FAQs()})
}

// Navigate handles GET /api/navigate?to=pricing|services|blog&category=&id=.
// Unknown targets fall back to the pricing page.
func (h *SiteHandler) Navigate(c *gin.Context) {
	category := navigator.Decode(c.Query("category"))
	to := c.DefaultQuery("to", "pricing")

	var url, anchor string
	switch to {
	case "services":
		url = navigator.ServicesLink(category)
		anchor = navigator.ServiceAnchor(category)
	case "blog":
		if id := c.Query("id"); id != "" {
			url = navigator.BlogLink(id)
		} else {
			url = "/blog"
		}
	default:
		to = "pricing"
		url = navigator.PricingLink(category)
	}

	c.JSON(http.StatusOK, gin.H{
		"to":       to,
		"category": category,
		"token":    navigator.Encode(category),
		"url":      url,
		"anchor":   anchor,
	})
}
