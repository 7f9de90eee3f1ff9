package inquiry

import (
	"fmt"
	"strings"

	"github.com/jawwad-masteee/handlix/models"
)

// ValidationError lists the required contact form fields that were blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// ValidateContactForm checks the required fields before a link is built.
// Service is optional.
func ValidateContactForm(form models.ContactForm) error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", form.Name},
		{"email", form.Email},
		{"phone", form.Phone},
		{"message", form.Message},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
