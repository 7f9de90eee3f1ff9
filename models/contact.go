// File: models/contact.go
package models

// ContactForm is the structured inquiry submitted from the contact page.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

// ContactServiceOptions lists the choices of the service dropdown.
var ContactServiceOptions = []string{
	"Home Cleaning",
	"Plumbing Services",
	"Electrical Work",
	"Appliance Repair",
	"Personal Grooming",
	"Pet Grooming",
	"General Inquiry",
}
