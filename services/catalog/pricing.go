// File: services/catalog/pricing.go
package catalog

import "github.com/jawwad-masteee/handlix/models"

const startingPrice = "onwards"

var pricing = []models.PricingEntry{
	{
		ID:       "kitchen-cleaning",
		Title:    "Kitchen Cleaning",
		Price:    "₹499",
		Duration: startingPrice,
		Category: models.CategoryCleaning,
		Features: []string{
			"Complete kitchen sanitization",
			"Stove & chimney cleaning",
			"Cabinet & countertop cleaning",
			"Floor mopping & degreasing",
			"Eco-friendly products",
			"100% satisfaction guarantee",
		},
		Disclaimer: "Price may vary based on kitchen size",
	},
	{
		ID:       "bathroom-cleaning",
		Title:    "Bathroom Cleaning",
		Price:    "₹399",
		Duration: startingPrice,
		Category: models.CategoryCleaning,
		Features: []string{
			"Deep scrubbing & sanitization",
			"Toilet & basin cleaning",
			"Tile & grout cleaning",
			"Mirror & fixture polishing",
			"Anti-bacterial treatment",
			"Drain cleaning",
		},
	},
	{
		ID:       "full-home-deep-clean",
		Title:    "Full Home Deep Clean",
		Price:    "₹1499",
		Duration: startingPrice,
		Category: models.CategoryCleaning,
		Features: []string{
			"Complete home sanitization",
			"All rooms deep cleaning",
			"Kitchen & bathroom included",
			"Floor mopping & vacuuming",
			"Dusting & organizing",
			"Window & balcony cleaning",
		},
	},
	{
		ID:       "tap-faucet-repair",
		Title:    "Tap/Faucet Repair",
		Price:    "₹199",
		Duration: startingPrice,
		Category: models.CategoryPlumbing,
		Features: []string{
			"Leak detection & fixing",
			"Tap installation",
			"Faucet replacement",
			"Water pressure adjustment",
			"Quick diagnosis",
		},
	},
	{
		ID:       "leak-fixing",
		Title:    "Leak Fixing",
		Price:    "₹249",
		Duration: startingPrice,
		Category: models.CategoryPlumbing,
		Features: []string{
			"Pipe leak detection",
			"Joint & connection repair",
			"Wall & ceiling leak fixing",
			"Water damage prevention",
			"Emergency response available",
		},
	},
	{
		ID:       "pipe-installation",
		Title:    "Pipe Installation",
		Price:    "₹399",
		Duration: startingPrice,
		Category: models.CategoryPlumbing,
		Features: []string{
			"New pipe installation",
			"Water line setup",
			"Bathroom pipe work",
			"Kitchen plumbing",
			"Quality materials used",
			"Professional installation",
		},
	},
	{
		ID:       "fan-light-repair",
		Title:    "Fan/Light Repair",
		Price:    "₹199",
		Duration: startingPrice,
		Category: models.CategoryElectrical,
		Features: []string{
			"Ceiling fan repair",
			"Light fixture installation",
			"Bulb & tube replacement",
			"Fan speed control fix",
			"Safety inspection",
		},
	},
	{
		ID:       "switch-socket-replace",
		Title:    "Switch/Socket Replace",
		Price:    "₹149",
		Duration: startingPrice,
		Category: models.CategoryElectrical,
		Features: []string{
			"Switch replacement",
			"Socket installation",
			"Modular switch upgrade",
			"USB socket installation",
			"Safety testing",
		},
	},
	{
		ID:       "wiring-fix",
		Title:    "Wiring Fix",
		Price:    "₹299",
		Duration: startingPrice,
		Category: models.CategoryElectrical,
		Features: []string{
			"Electrical wiring repair",
			"Short circuit fixing",
			"Wire replacement",
			"Connection troubleshooting",
			"Safety compliance check",
			"Certified electrician service",
		},
	},
	{
		ID:       "ac-service-repair",
		Title:    "AC Service & Repair",
		Price:    "₹499",
		Duration: startingPrice,
		Category: models.CategoryAppliance,
		Features: []string{
			"Complete AC cleaning",
			"Gas refilling",
			"Filter replacement",
			"Cooling performance check",
			"6 month service warranty",
		},
	},
	{
		ID:       "washing-machine-repair",
		Title:    "Washing Machine Repair",
		Price:    "₹399",
		Duration: startingPrice,
		Category: models.CategoryAppliance,
		Features: []string{
			"Motor & pump repair",
			"Drum & agitator fixing",
			"Control panel repair",
			"Water inlet/outlet fix",
			"Performance optimization",
		},
	},
	{
		ID:       "refrigerator-repair",
		Title:    "Refrigerator Repair",
		Price:    "₹499",
		Duration: startingPrice,
		Category: models.CategoryAppliance,
		Features: []string{
			"Cooling system repair",
			"Compressor fixing",
			"Thermostat adjustment",
			"Door seal replacement",
			"Energy efficiency check",
		},
	},
	{
		ID:       "mens-haircut",
		Title:    "Men's Haircut",
		Price:    "₹199",
		Duration: startingPrice,
		Category: models.CategoryGrooming,
		Features: []string{
			"Haircut & styling",
			"Beard trimming",
			"Hair washing",
			"Professional tools",
			"Styling consultation",
		},
	},
	{
		ID:       "womens-makeup",
		Title:    "Women's Makeup",
		Price:    "₹799",
		Duration: startingPrice,
		Category: models.CategoryGrooming,
		Features: []string{
			"Professional makeup",
			"Bridal makeup available",
			"Hair styling included",
			"Event makeup",
			"Premium products",
			"Touch-up kit provided",
		},
	},
	{
		ID:       "mehndi-artist",
		Title:    "Mehndi Artist",
		Price:    "₹499",
		Duration: startingPrice,
		Category: models.CategoryGrooming,
		Features: []string{
			"Traditional mehndi designs",
			"Bridal mehndi available",
			"Arabic & Indian patterns",
			"Natural henna used",
			"Custom design consultation",
		},
	},
	{
		ID:       "dog-grooming",
		Title:    "Dog Grooming",
		Price:    "₹499",
		Duration: startingPrice,
		Category: models.CategoryPet,
		Features: []string{
			"Bathing & shampooing",
			"Hair trimming & styling",
			"Nail clipping",
			"Ear cleaning",
			"Gentle handling",
			"All dog breeds welcome",
		},
	},
	{
		ID:       "cat-grooming",
		Title:    "Cat Grooming",
		Price:    "₹449",
		Duration: startingPrice,
		Category: models.CategoryPet,
		Features: []string{
			"Gentle bathing",
			"Coat brushing & detangling",
			"Nail trimming",
			"Eye & ear cleaning",
			"Stress-free handling",
			"Cat-friendly approach",
		},
	},
}
