package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/handlers"
	"github.com/jawwad-masteee/handlix/utils"
)

// RegisterSiteRoutes registers site-wide endpoints.
func RegisterSiteRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/site", hb.SiteInfoHandler)
	api.GET("/categories", hb.CategoriesHandler)
	api.GET("/highlights", hb.HighlightsHandler)
	api.GET("/faqs", hb.FAQsHandler)
	api.GET("/navigate", hb.NavigateHandler)
}

// RegisterCatalogRoutes registers services, pricing and blog endpoints.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	services := api.Group("/services")
	{
		services.GET("", hb.ListServicesHandler)
		services.GET("/:category", hb.ServicesByCategoryHandler)
		services.GET("/:category/:slug", hb.GetServiceHandler)
	}

	pricing := api.Group("/pricing")
	{
		pricing.GET("", hb.ListPricingHandler)
		pricing.GET("/:id", hb.GetPricingHandler)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", hb.ListPostsHandler)
		blog.GET("/:id", hb.GetPostHandler)
	}
}

// RegisterInquiryRoutes registers the WhatsApp link endpoints.
func RegisterInquiryRoutes(r *gin.Engine, api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/inquiry", hb.InquiryHandler)
	api.POST("/contact", hb.ContactHandler)
	r.GET("/book", hb.BookHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Handlix",
			"cache":   utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", utils.RequestIDHeader, "X-Cache"},
		MaxAge:        12 * time.Hour,
	}))

	api := r.Group("/api")
	if hb.CacheMiddleware != nil {
		api.Use(hb.CacheMiddleware)
	}

	RegisterSiteRoutes(api, hb)
	RegisterCatalogRoutes(api, hb)
	RegisterInquiryRoutes(r, api, hb)
	RegisterHealthRoute(r)
}
