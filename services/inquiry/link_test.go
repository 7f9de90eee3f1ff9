package inquiry

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawwad-masteee/handlix/models"
)

func decodedText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestInquiryLink(t *testing.T) {
	b := NewBuilder("", "")

	t.Run("default endpoint and recipient", func(t *testing.T) {
		link := b.InquiryLink("Leak Fixing")
		assert.True(t, strings.HasPrefix(link, "https://wa.me/919528522358?text="))
		assert.Equal(t, "Hi Handlix, I'd like to book Leak Fixing. Please share the details.", decodedText(t, link))
	})

	t.Run("empty topic falls back", func(t *testing.T) {
		for _, topic := range []string{"", "   "} {
			link := b.InquiryLink(topic)
			assert.Contains(t, decodedText(t, link), DefaultBookingTopic)
		}
	})

	t.Run("reserved characters are escaped", func(t *testing.T) {
		link := BuildInquiryLink("A/B & C", DefaultRecipient)
		query := link[strings.Index(link, "?")+1:]
		value := strings.TrimPrefix(query, "text=")
		assert.NotContains(t, value, "&")
		assert.NotContains(t, value, "/")
		assert.NotContains(t, value, " ")
		assert.Contains(t, decodedText(t, link), "A/B & C")
	})

	t.Run("newlines and emoji survive", func(t *testing.T) {
		link := b.InquiryLink("AC repair\nurgent 🔧")
		assert.Contains(t, link, "%0A")
		assert.Contains(t, decodedText(t, link), "AC repair\nurgent 🔧")
	})

	t.Run("plus is not read as a space", func(t *testing.T) {
		link := b.InquiryLink("C++ tutoring")
		assert.Contains(t, decodedText(t, link), "C++ tutoring")
	})
}

func TestNewBuilderNormalizes(t *testing.T) {
	b := NewBuilder("https://wa.me/", "+91 95285-22358")
	assert.Equal(t, "919528522358", b.Recipient())
	assert.True(t, strings.HasPrefix(b.InquiryLink("x"), "https://wa.me/919528522358?text="))

	custom := NewBuilder("https://api.whatsapp.com/send", "12345")
	assert.True(t, strings.HasPrefix(custom.InquiryLink("x"), "https://api.whatsapp.com/send/12345?text="))
}

func TestUrgentLink(t *testing.T) {
	link := NewBuilder("https://api.whatsapp.com/", "+91 98765 43210").UrgentLink()
	assert.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/919876543210?text="))
	assert.Equal(t, UrgentMessage, decodedText(t, link))
	assert.NotContains(t, decodedText(t, link), "I'd like to book")
	assert.NotContains(t, link, "+")
}

func TestContactLink(t *testing.T) {
	b := NewBuilder(DefaultBaseURL, DefaultRecipient)
	form := models.ContactForm{Name: "Asha", Email: "", Phone: "999", Service: "", Message: "Need help"}

	text := decodedText(t, b.ContactLink(form))
	lines := strings.Split(text, "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "Hi Handlix! I'd like to get in touch.", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Name: Asha", lines[2])
	assert.Equal(t, "Email: ", lines[3])
	assert.Equal(t, "Phone: 999", lines[4])
	assert.Equal(t, "Service: General Inquiry", lines[5])
	assert.Equal(t, "Message: Need help", lines[6])
}

func TestContactLinkKeepsService(t *testing.T) {
	text := ContactMessage(models.ContactForm{Name: "R", Email: "r@x.in", Phone: "1", Service: "Pet Grooming", Message: "hi"})
	assert.Contains(t, text, "Service: Pet Grooming\n")
}

func TestServiceName(t *testing.T) {
	assert.Equal(t, "Home Cleaning Service", ServiceName("home-cleaning"))
	assert.Equal(t, "Pet Grooming Service", ServiceName("pet-grooming"))
	assert.Equal(t, "Appliance Repair Service", ServiceName("appliance-repair"))
	assert.Equal(t, DefaultServiceName, ServiceName("gardening"))
}
