package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/models"
	"github.com/jawwad-masteee/handlix/services/catalog"
	"github.com/jawwad-masteee/handlix/services/content"
	"github.com/jawwad-masteee/handlix/services/filter"
	"github.com/jawwad-masteee/handlix/services/inquiry"
	"github.com/jawwad-masteee/handlix/services/navigator"
	"github.com/jawwad-masteee/handlix/utils"
	"go.uber.org/zap"
)

// relatedPosts is how many other articles a post page suggests.
const relatedPosts = 3

// BlogHandler serves the blog index and article pages.
type BlogHandler struct {
	Store *catalog.Store
	Links *inquiry.Builder
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(store *catalog.Store, links *inquiry.Builder) *BlogHandler {
	return &BlogHandler{Store: store, Links: links}
}

// bookingTopic is the tag shown on the article, falling back to the
// category label.
func bookingTopic(p models.BlogPost) string {
	if p.Label != "" {
		return p.Label
	}
	return p.Category.Label()
}

type postSummary struct {
	models.BlogPost
	Link string `json:"link"`
}

func summaries(posts []models.BlogPost) []postSummary {
	out := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, postSummary{BlogPost: p.Summary(), Link: navigator.BlogLink(p.ID)})
	}
	return out
}

// ListPosts handles GET /api/blog. The featured post is taken from the whole
// catalog; the grid holds the remaining posts that match the selection.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	sel := selectionFromQuery(c)
	all := h.Store.Posts()

	c.JSON(http.StatusOK, gin.H{
		"selection":  sel,
		"categories": filter.Categories(all),
		"featured":   summaries(filter.Featured(all)),
		"posts":      summaries(filter.NotFeatured(navigator.Visible(sel, all))),
	})
}

// GetPost handles GET /api/blog/:id.
func (h *BlogHandler) GetPost(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	post, err := h.Store.Post(id)
	if err != nil {
		logger.Debug("GetPost: lookup failed", zap.String("id", id), zap.Error(err))
		writeLookupError(c, "Blog post not found", err)
		return
	}

	article, err := content.Prepare(post.Body)
	if err != nil {
		logger.Error("GetPost: failed to prepare article", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render blog post", err.Error())
		return
	}
	post.Body = article.Body

	c.JSON(http.StatusOK, gin.H{
		"post":       post,
		"outline":    article.Outline,
		"bookingUrl": h.Links.InquiryLink(bookingTopic(post)),
		"related":    summaries(filter.Related(h.Store.Posts(), id, relatedPosts)),
	})
}
