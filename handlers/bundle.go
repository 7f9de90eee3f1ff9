// File: handlers/bundle.go
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/services/catalog"
	"github.com/jawwad-masteee/handlix/services/inquiry"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Site endpoints
	SiteInfoHandler   gin.HandlerFunc
	CategoriesHandler gin.HandlerFunc
	NavigateHandler   gin.HandlerFunc
	HighlightsHandler gin.HandlerFunc
	FAQsHandler       gin.HandlerFunc

	// Services endpoints
	ListServicesHandler       gin.HandlerFunc
	ServicesByCategoryHandler gin.HandlerFunc
	GetServiceHandler         gin.HandlerFunc

	// Pricing endpoints
	ListPricingHandler gin.HandlerFunc
	GetPricingHandler  gin.HandlerFunc

	// Blog endpoints
	ListPostsHandler gin.HandlerFunc
	GetPostHandler   gin.HandlerFunc

	// Inquiry endpoints
	InquiryHandler gin.HandlerFunc
	ContactHandler gin.HandlerFunc
	BookHandler    gin.HandlerFunc

	// CacheMiddleware, when set, wraps the read-only /api routes.
	CacheMiddleware gin.HandlerFunc
}

// NewHandlerBundle wires every handler to the catalog and link builder.
func NewHandlerBundle(store *catalog.Store, links *inquiry.Builder, splash time.Duration) *HandlerBundle {
	site := NewSiteHandler(store, links, splash)
	catalogHandler := NewCatalogHandler(store, links)
	blog := NewBlogHandler(store, links)
	inq := NewInquiryHandler(links)

	return &HandlerBundle{
		SiteInfoHandler:   site.GetSiteInfo,
		CategoriesHandler: site.ListCategories,
		NavigateHandler:   site.Navigate,
		HighlightsHandler: site.GetHighlights,
		FAQsHandler:       site.ListFAQs,

		ListServicesHandler:       catalogHandler.ListServices,
		ServicesByCategoryHandler: catalogHandler.ServicesByCategory,
		GetServiceHandler:         catalogHandler.GetService,

		ListPricingHandler: catalogHandler.ListPricing,
		GetPricingHandler:  catalogHandler.GetPricingEntry,

		ListPostsHandler: blog.ListPosts,
		GetPostHandler:   blog.GetPost,

		InquiryHandler: inq.GetInquiryLink,
		ContactHandler: inq.SubmitContact,
		BookHandler:    inq.Book,
	}
}
