package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jawwad-masteee/handlix/models"
	"github.com/jawwad-masteee/handlix/services/inquiry"
	"github.com/jawwad-masteee/handlix/utils"
	"go.uber.org/zap"
)

// InquiryHandler turns booking buttons and the contact form into WhatsApp
// links.
type InquiryHandler struct {
	Links *inquiry.Builder
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(links *inquiry.Builder) *InquiryHandler {
	return &InquiryHandler{Links: links}
}

// topicFromQuery prefers ?topic= and falls back to the booking phrase of a
// ?service= routing slug. An empty result lets the builder apply its default.
func topicFromQuery(c *gin.Context) string {
	if topic := strings.TrimSpace(c.Query("topic")); topic != "" {
		return topic
	}
	if slug := strings.TrimSpace(c.Query("service")); slug != "" {
		return inquiry.ServiceName(slug)
	}
	return ""
}

// GetInquiryLink handles GET /api/inquiry.
func (h *InquiryHandler) GetInquiryLink(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"url": h.Links.InquiryLink(topicFromQuery(c))})
}

// Book handles GET /book by redirecting straight to WhatsApp.
func (h *InquiryHandler) Book(c *gin.Context) {
	c.Redirect(http.StatusFound, h.Links.InquiryLink(topicFromQuery(c)))
}

// SubmitContact handles POST /api/contact. The form is accepted as JSON or
// as form fields.
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	logger := getLogger(c)

	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("SubmitContact: invalid request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := inquiry.ValidateContactForm(form); err != nil {
		var verr *inquiry.ValidationError
		if errors.As(err, &verr) {
			utils.JSONFieldError(c, "Please fill in all required fields", verr.Fields)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact form", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":     h.Links.ContactLink(form),
		"message": inquiry.ContactMessage(form),
	})
}
