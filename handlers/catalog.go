package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/models"
	"github.com/jawwad-masteee/handlix/services/catalog"
	"github.com/jawwad-masteee/handlix/services/filter"
	"github.com/jawwad-masteee/handlix/services/inquiry"
	"github.com/jawwad-masteee/handlix/services/navigator"
	"github.com/jawwad-masteee/handlix/utils"
	"go.uber.org/zap"
)

// CatalogHandler serves the services and pricing pages.
type CatalogHandler struct {
	Store *catalog.Store
	Links *inquiry.Builder
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store *catalog.Store, links *inquiry.Builder) *CatalogHandler {
	return &CatalogHandler{Store: store, Links: links}
}

type serviceView struct {
	models.ServiceRecord
	Link        string `json:"link"`
	PricingLink string `json:"pricingLink"`
	BookingURL  string `json:"bookingUrl"`
}

func (h *CatalogHandler) serviceViews(services []models.ServiceRecord) []serviceView {
	out := make([]serviceView, 0, len(services))
	for _, s := range services {
		slug, _ := navigator.RouteSlug(s.Category)
		out = append(out, serviceView{
			ServiceRecord: s,
			Link:          "/services/" + slug + "/" + s.Slug,
			PricingLink:   navigator.PricingLink(s.Category),
			BookingURL:    h.Links.InquiryLink(inquiry.ServiceName(slug)),
		})
	}
	return out
}

type pricingView struct {
	models.PricingEntry
	Open       bool   `json:"open"`
	BookingURL string `json:"bookingUrl"`
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	sel := selectionFromQuery(c)
	all := h.Store.Services()

	c.JSON(http.StatusOK, gin.H{
		"selection":  sel,
		"fragment":   sel.Fragment(),
		"categories": filter.Categories(all),
		"featured":   h.serviceViews(filter.Featured(all)),
		"services":   h.serviceViews(navigator.Visible(sel, all)),
	})
}

// ServicesByCategory handles GET /api/services/:category, where :category is
// a routing slug, a canonical key or a legacy label.
func (h *CatalogHandler) ServicesByCategory(c *gin.Context) {
	category := navigator.DecodeRouteSlug(c.Param("category"))
	sel := navigator.NewSelection()
	sel.Select(category)
	sel.Search(c.Query("q"))

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"label":     category.Label(),
		"anchor":    navigator.ServiceAnchor(category),
		"services":  h.serviceViews(navigator.Visible(sel, h.Store.Services())),
	})
}

// GetService handles GET /api/services/:category/:slug.
func (h *CatalogHandler) GetService(c *gin.Context) {
	logger := getLogger(c)
	category := navigator.DecodeRouteSlug(c.Param("category"))
	slug := c.Param("slug")

	svc, err := h.Store.ServiceBySlug(category, slug)
	if err != nil {
		logger.Debug("GetService: lookup failed", zap.String("category", string(category)), zap.String("slug", slug), zap.Error(err))
		writeLookupError(c, "Service not found", err)
		return
	}
	c.JSON(http.StatusOK, h.serviceViews([]models.ServiceRecord{svc})[0])
}

// ListPricing handles GET /api/pricing. ?open= marks the flipped card.
func (h *CatalogHandler) ListPricing(c *gin.Context) {
	sel := selectionFromQuery(c)
	visible := navigator.Visible(sel, h.Store.Pricing())

	entries := make([]pricingView, 0, len(visible))
	for _, p := range visible {
		entries = append(entries, pricingView{
			PricingEntry: p,
			Open:         sel.IsOpen(p.ID),
			BookingURL:   h.Links.InquiryLink(p.Title),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"selection": sel,
		"fragment":  sel.Fragment(),
		"entries":   entries,
	})
}

// GetPricingEntry handles GET /api/pricing/:id.
func (h *CatalogHandler) GetPricingEntry(c *gin.Context) {
	id := c.Param("id")
	entry, err := h.Store.PricingEntry(id)
	if err != nil {
		getLogger(c).Debug("GetPricingEntry: lookup failed", zap.String("id", id), zap.Error(err))
		writeLookupError(c, "Pricing entry not found", err)
		return
	}
	c.JSON(http.StatusOK, pricingView{
		PricingEntry: entry,
		Open:         true,
		BookingURL:   h.Links.InquiryLink(entry.Title),
	})
}

// writeLookupError maps catalog errors onto HTTP statuses.
func writeLookupError(c *gin.Context, message string, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, message, err.Error())
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
}
