// File: services/catalog/services.go
package catalog

import "github.com/jawwad-masteee/handlix/models"

var serviceRecords = []models.ServiceRecord{
	{
		ID:            "deep-home-cleaning",
		Slug:          "deep-home-cleaning",
		Title:         "Home Cleaning",
		Category:      models.CategoryCleaning,
		Description:   "Deep Cleaning – Complete home cleaning (₹1499 onwards), Kitchen Cleaning – Hygienic cleaning (₹499 onwards), Bathroom Cleaning – Scrubbing & sanitization (₹399 onwards)",
		Price:         "From ₹399",
		DurationLabel: "2-4 hours",
		Rating:        4.8,
		Featured:      true,
		Offerings:     []string{"Deep Cleaning", "Kitchen Cleaning", "Bathroom Cleaning"},
	},
	{
		ID:            "plumbing-repair",
		Slug:          "plumbing-repair",
		Title:         "Plumbing Services",
		Category:      models.CategoryPlumbing,
		Description:   "Tap/Faucet Repair – Fixing leaks (₹199 onwards), Leak Fixing – Pipe leakage repair (₹249 onwards), Pipe Installation – New installations (₹399 onwards)",
		Price:         "From ₹299",
		DurationLabel: "1-2 hours",
		Rating:        4.9,
		Offerings:     []string{"Tap/Faucet Repair", "Leak Fixing", "Pipe Installation"},
	},
	{
		ID:            "electrical-repairs",
		Slug:          "electrical-repairs",
		Title:         "Electrical Repairs",
		Category:      models.CategoryElectrical,
		Description:   "Fan/Light Repair – Installations & fixes (₹199 onwards), Wiring Solutions – Safe wiring (₹299 onwards), Switch & Socket Replacement (₹149 onwards)",
		Price:         "From ₹149",
		DurationLabel: "30min-2hrs",
		Rating:        4.7,
		Offerings:     []string{"Fan/Light Repair", "Wiring Solutions", "Switch & Socket Replacement"},
	},
	{
		ID:          "appliance-repair",
		Slug:        "appliance-repair",
		Title:       "Appliance Repair",
		Category:    models.CategoryAppliance,
		Description: "AC Service/Repair (₹499 onwards), Washing Machine Repair (₹399 onwards), Refrigerator Repair (₹499 onwards)",
		Price:       "From ₹399",
		Offerings:   []string{"AC Service/Repair", "Washing Machine Repair", "Refrigerator Repair"},
	},
	{
		ID:            "personal-grooming",
		Slug:          "personal-grooming",
		Title:         "Grooming",
		Category:      models.CategoryGrooming,
		Description:   "Men's Haircut & Styling (₹199 onwards), Women's Makeup & Styling (₹799 onwards), Mehndi Artist (₹499 onwards)",
		Price:         "From ₹399",
		DurationLabel: "45min-1hr",
		Rating:        4.9,
		Offerings:     []string{"Men's Haircut & Styling", "Women's Makeup & Styling", "Mehndi Artist"},
	},
	{
		ID:            "pet-grooming",
		Slug:          "pet-grooming",
		Title:         "Pet Grooming",
		Category:      models.CategoryPet,
		Description:   "Dog Grooming – Bathing, trimming (₹499 onwards), Cat Grooming – Nail clipping, coat cleaning (₹449 onwards)",
		Price:         "From ₹449",
		DurationLabel: "1-2 hours",
		Rating:        4.8,
		Offerings:     []string{"Dog Grooming", "Cat Grooming"},
	},
}

// highlights are the basic/premium/emergency cards of the home page.
var highlights = []models.HighlightSet{
	{
		Category:  models.CategoryCleaning,
		Basic:     models.Highlight{Title: "Kitchen Cleaning", Description: "Complete kitchen sanitization with stove & chimney cleaning", Price: "₹499 onwards"},
		Premium:   models.Highlight{Title: "Full Home Deep Cleaning", Description: "Complete home sanitization including all rooms", Price: "₹1499 onwards"},
		Emergency: models.Highlight{Title: "Urgent Bathroom Cleaning", Description: "Deep scrubbing & sanitization for immediate needs", Price: "₹399 onwards"},
	},
	{
		Category:  models.CategoryPlumbing,
		Basic:     models.Highlight{Title: "Tap/Faucet Repair", Description: "Leak detection & fixing for taps and faucets", Price: "₹199 onwards"},
		Premium:   models.Highlight{Title: "Pipe Installation", Description: "New pipe installation and water line setup", Price: "₹399 onwards"},
		Emergency: models.Highlight{Title: "Leak Fixing", Description: "Urgent pipe leakage repair with emergency support", Price: "₹249 onwards"},
	},
	{
		Category:  models.CategoryElectrical,
		Basic:     models.Highlight{Title: "Switch/Socket Replacement", Description: "Switch replacement and socket installation", Price: "₹149 onwards"},
		Premium:   models.Highlight{Title: "Fan/Light Repair", Description: "Ceiling fan repair and light fixture installation", Price: "₹199 onwards"},
		Emergency: models.Highlight{Title: "Urgent Wiring Fix", Description: "Emergency electrical wiring repair, 24/7 available", Price: "₹299 onwards"},
	},
	{
		Category:  models.CategoryAppliance,
		Basic:     models.Highlight{Title: "Washing Machine Repair", Description: "Motor, pump and drum repair for washing machines", Price: "₹399 onwards"},
		Premium:   models.Highlight{Title: "AC Service/Repair", Description: "Complete AC cleaning, gas refilling and repair", Price: "₹499 onwards"},
		Emergency: models.Highlight{Title: "Refrigerator Breakdown", Description: "Urgent refrigerator repair and cooling system fix", Price: "₹499 onwards"},
	},
	{
		Category:  models.CategoryGrooming,
		Basic:     models.Highlight{Title: "Men's Haircut", Description: "Professional haircut & styling at your home", Price: "₹199 onwards"},
		Premium:   models.Highlight{Title: "Women's Makeup & Styling", Description: "Professional makeup and hair styling for events", Price: "₹799 onwards"},
		Emergency: models.Highlight{Title: "Mehndi Artist", Description: "Traditional mehndi designs on urgent booking", Price: "₹499 onwards"},
	},
	{
		Category:  models.CategoryPet,
		Basic:     models.Highlight{Title: "Cat Grooming", Description: "Gentle bathing, coat brushing and nail trimming", Price: "₹449 onwards"},
		Premium:   models.Highlight{Title: "Dog Grooming", Description: "Complete bathing, trimming and styling for dogs", Price: "₹499 onwards"},
		Emergency: models.Highlight{Title: "Urgent Pet Care", Description: "Custom on-call pet grooming service", Price: "Custom pricing"},
	},
}

// siteFAQs are the general questions answered on the contact page.
var siteFAQs = []models.FAQ{
	{
		Question: "How quickly can you respond to service requests?",
		Answer:   "We typically respond within 30 minutes during business hours. For emergency services, we aim to reach you within 1-2 hours.",
	},
	{
		Question: "Do you provide services outside Aligarh?",
		Answer:   "Currently, we focus on providing quality services within Aligarh city. Contact us to check if we can serve your specific location.",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept cash, UPI, bank transfers, and all major digital payment methods for your convenience.",
	},
	{
		Question: "Are your service providers background verified?",
		Answer:   "Yes, all our professionals are thoroughly background-verified, trained, and insured for your safety and peace of mind.",
	},
}
