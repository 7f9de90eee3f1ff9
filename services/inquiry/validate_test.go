package inquiry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawwad-masteee/handlix/models"
)

func TestValidateContactForm(t *testing.T) {
	t.Run("complete form passes", func(t *testing.T) {
		err := ValidateContactForm(models.ContactForm{Name: "Asha", Email: "a@b.in", Phone: "999", Message: "Need help"})
		assert.NoError(t, err)
	})

	t.Run("reports every missing field in order", func(t *testing.T) {
		err := ValidateContactForm(models.ContactForm{Name: "Asha", Phone: "999", Message: "  "})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"email", "message"}, verr.Fields)
		assert.Equal(t, "missing required fields: email, message", err.Error())
	})

	t.Run("service is optional", func(t *testing.T) {
		err := ValidateContactForm(models.ContactForm{Name: "a", Email: "b", Phone: "c", Message: "d"})
		assert.NoError(t, err)
	})
}
