// Package inquiry builds outbound WhatsApp links with prefilled messages.
// Nothing here performs I/O: opening the link is left to the caller.
package inquiry

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jawwad-masteee/handlix/models"
)

const (
	DefaultBaseURL   = "https://wa.me"
	DefaultRecipient = "919528522358"

	// DefaultBookingTopic is used when a booking button carries no topic.
	DefaultBookingTopic = "General Booking"
	// DefaultInquiryTopic is what the floating and header buttons send.
	DefaultInquiryTopic = "General Inquiry"
	// DefaultServiceName is returned for unknown route slugs.
	DefaultServiceName = "General Service"
)

const bookingTemplate = "Hi Handlix, I'd like to book %s. Please share the details."

// UrgentMessage is sent as-is by the contact page's immediate-help button.
const UrgentMessage = "Hi Handlix! I need immediate assistance with a home service. Please help me."

// Builder holds the messaging endpoint configuration.
type Builder struct {
	baseURL   string
	recipient string
}

// NewBuilder returns a Builder for the given endpoint and recipient. Blank
// values fall back to the defaults; the recipient is reduced to its digits.
func NewBuilder(baseURL, recipient string) *Builder {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	recipient = digitsOnly(recipient)
	if recipient == "" {
		recipient = DefaultRecipient
	}
	return &Builder{baseURL: baseURL, recipient: recipient}
}

// Recipient returns the normalized phone identifier.
func (b *Builder) Recipient() string { return b.recipient }

// InquiryLink renders the booking template for topic.
func (b *Builder) InquiryLink(topic string) string {
	if strings.TrimSpace(topic) == "" {
		topic = DefaultBookingTopic
	}
	return b.link(fmt.Sprintf(bookingTemplate, topic))
}

// UrgentLink opens a chat with UrgentMessage, outside the booking template.
func (b *Builder) UrgentLink() string {
	return b.link(UrgentMessage)
}

// ContactLink renders every contact form field on its own line. Empty
// fields keep their label; an empty service uses the inquiry placeholder.
func (b *Builder) ContactLink(form models.ContactForm) string {
	return b.link(ContactMessage(form))
}

// ContactMessage is the plain text sent by ContactLink.
func ContactMessage(form models.ContactForm) string {
	service := form.Service
	if strings.TrimSpace(service) == "" {
		service = DefaultInquiryTopic
	}
	var sb strings.Builder
	sb.WriteString("Hi Handlix! I'd like to get in touch.\n\n")
	sb.WriteString("Name: " + form.Name + "\n")
	sb.WriteString("Email: " + form.Email + "\n")
	sb.WriteString("Phone: " + form.Phone + "\n")
	sb.WriteString("Service: " + service + "\n")
	sb.WriteString("Message: " + form.Message)
	return sb.String()
}

func (b *Builder) link(message string) string {
	return b.baseURL + "/" + b.recipient + "?text=" + EncodeComponent(message)
}

// BuildInquiryLink is InquiryLink against the default endpoint.
func BuildInquiryLink(topic, recipient string) string {
	return NewBuilder(DefaultBaseURL, recipient).InquiryLink(topic)
}

// EncodeComponent percent-encodes s for a query value. Spaces become %20
// and newlines %0A so the text survives any client that treats '+' literally.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ServiceName maps a services route slug to the phrase used in booking
// messages.
func ServiceName(routeSlug string) string {
	c, ok := models.CategoryForSlug(routeSlug)
	if !ok {
		return DefaultServiceName
	}
	info, _ := c.Info()
	return info.BookingPhrase
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
