// File: services/catalog/posts.go
package catalog

import "github.com/jawwad-masteee/handlix/models"

const blogAuthor = "Maaz Bin Jabal"

var posts = []models.BlogPost{
	{
		ID:       "home-cleaning-guide-2025",
		Title:    "Ultimate Guide to Home Cleaning Services in India (2025 Edition)",
		Excerpt:  "Comprehensive guide covering deep cleaning vs regular cleaning, eco-friendly practices, and when to hire professionals. Learn cost-effective cleaning strategies.",
		Author:   blogAuthor,
		Date:     "2025-01-15",
		ReadTime: "12 min read",
		Category: models.CategoryCleaning,
		Label:    "Cleaning",
		Image:    "https://images.unsplash.com/photo-1581578731548-c64695cc6952?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Featured: true,
		Body: `<h2>Deep Cleaning vs Regular Cleaning: What's the Difference?</h2>
<p>When it comes to maintaining a clean and healthy home, understanding the difference between deep cleaning and regular cleaning is crucial. Regular cleaning involves daily or weekly tasks like dusting, vacuuming, and basic sanitization. Deep cleaning, on the other hand, is a comprehensive process that reaches every corner of your home.</p>

<h3>What Does Deep Cleaning Include?</h3>
<ul>
  <li>Complete kitchen sanitization including appliances, cabinets, and hidden areas</li>
  <li>Bathroom deep scrubbing with anti-bacterial treatment</li>
  <li>Floor mopping with specialized cleaning agents</li>
  <li>Window and balcony cleaning</li>
  <li>Dusting and organizing all rooms</li>
</ul>

<h2>Cost Analysis: Professional vs DIY Cleaning</h2>
<p>Professional home cleaning services in Aligarh typically range from ₹499 for kitchen cleaning to ₹1499 for full home deep cleaning. While DIY cleaning might seem cost-effective, professional services offer:</p>

<h3>Benefits of Professional Cleaning</h3>
<ul>
  <li>Time-saving: 3-4 hours of professional work vs 8-10 hours DIY</li>
  <li>Professional-grade equipment and eco-friendly products</li>
  <li>Trained staff with expertise in different cleaning techniques</li>
  <li>100% satisfaction guarantee</li>
</ul>

<h2>Eco-Friendly Cleaning Practices</h2>
<p>Modern cleaning services prioritize environmental safety. At Handlix, we use biodegradable cleaning products that are safe for children and pets while being effective against germs and bacteria.</p>

<h3>Green Cleaning Benefits</h3>
<ul>
  <li>Reduced chemical exposure for family members</li>
  <li>Better indoor air quality</li>
  <li>Environmentally sustainable practices</li>
  <li>Safe for pets and children</li>
</ul>

<h2>When to Choose Professional Cleaning Services</h2>
<p>Consider professional cleaning services when:</p>
<ul>
  <li>Moving into a new home</li>
  <li>Preparing for festivals or special occasions</li>
  <li>Dealing with stubborn stains or odors</li>
  <li>Lack of time for thorough cleaning</li>
  <li>Need for specialized equipment</li>
</ul>`,
		FAQs: []models.FAQ{
			{
				Question: "How often should I book professional deep cleaning?",
				Answer:   "We recommend deep cleaning every 3-6 months, depending on your household size and lifestyle. Regular cleaning can be done weekly or bi-weekly.",
			},
			{
				Question: "Are your cleaning products safe for children and pets?",
				Answer:   "Yes, we use only eco-friendly, non-toxic cleaning products that are completely safe for children and pets.",
			},
			{
				Question: "How long does a full home deep cleaning take?",
				Answer:   "A full home deep cleaning typically takes 3-4 hours for a 2-3 BHK apartment, depending on the condition and size of the home.",
			},
		},
	},
	{
		ID:       "plumbing-problems-solutions",
		Title:    "Top 7 Plumbing Problems Every Homeowner Faces (And How to Fix Them)",
		Excerpt:  "Learn to identify common plumbing issues, emergency solutions, and when to call professionals. Includes cost breakdown for repairs in Aligarh.",
		Author:   blogAuthor,
		Date:     "2025-01-12",
		ReadTime: "10 min read",
		Category: models.CategoryPlumbing,
		Label:    "Plumbing",
		Image:    "https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Body: `<h2>1. Leaky Faucets and Taps</h2>
<p>Leaky faucets are among the most common plumbing issues in Indian households. A single dripping tap can waste over 3,000 liters of water annually, significantly increasing your water bill.</p>

<h3>DIY Solutions</h3>
<ul>
  <li>Check and replace worn-out washers</li>
  <li>Tighten loose connections</li>
  <li>Clean mineral deposits from aerators</li>
</ul>

<h3>When to Call Professionals</h3>
<p>If the leak persists after basic fixes, or if you notice water damage around the fixture, it's time to call Handlix professionals. Our tap repair service starts from ₹199.</p>

<h2>2. Clogged Drains</h2>
<p>Kitchen and bathroom drains often get clogged due to food particles, hair, soap residue, and other debris. This is especially common during monsoon season in Aligarh.</p>

<h2>3. Running Toilets</h2>
<p>A running toilet can waste up to 200 gallons of water per day. Common causes include faulty flapper valves, chain issues, or problems with the fill valve.</p>

<h2>4. Low Water Pressure</h2>
<p>Low water pressure can be caused by mineral buildup in pipes, partially closed valves, or issues with the municipal water supply.</p>

<h2>5. Pipe Leakage</h2>
<p>Pipe leaks can cause significant water damage if not addressed promptly. Signs include water stains on walls, increased water bills, and musty odors.</p>

<h2>Emergency Plumbing Services</h2>
<p>Handlix offers 24/7 emergency plumbing services in Aligarh. Our emergency response team can reach you within 1-2 hours for urgent repairs.</p>`,
		FAQs: []models.FAQ{
			{
				Question: "How quickly can you respond to plumbing emergencies?",
				Answer:   "We provide 24/7 emergency plumbing services and typically reach you within 1-2 hours for urgent repairs in Aligarh.",
			},
			{
				Question: "What's included in your pipe installation service?",
				Answer:   "Our pipe installation service includes new pipe installation, water line setup, bathroom and kitchen plumbing work using quality materials.",
			},
			{
				Question: "Do you provide warranty on plumbing repairs?",
				Answer:   "Yes, we provide a 6-month warranty on all major plumbing repairs and installations for your peace of mind.",
			},
		},
	},
	{
		ID:       "electrical-safety-tips",
		Title:    "Electrical Safety Tips for Every Indian Household",
		Excerpt:  "Essential electrical safety practices, common issues like fan/light repair, and monsoon electrical safety checklist for Indian homes.",
		Author:   blogAuthor,
		Date:     "2025-01-10",
		ReadTime: "8 min read",
		Category: models.CategoryElectrical,
		Label:    "Electrical",
		Image:    "https://images.unsplash.com/photo-1621905252507-b35492cc74b4?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Body: `<h2>Common Electrical Issues in Indian Homes</h2>
<p>Indian households face unique electrical challenges due to voltage fluctuations, monsoon seasons, and aging infrastructure. Understanding these issues can help prevent accidents and costly repairs.</p>

<h3>Fan and Light Repair</h3>
<p>Ceiling fans and light fixtures are essential in Indian homes. Common issues include:</p>
<ul>
  <li>Fan speed control problems</li>
  <li>Flickering lights</li>
  <li>Loose connections</li>
  <li>Burnt-out bulbs and tubes</li>
</ul>

<h2>Switch and Socket Safety</h2>
<p>Outdated switches and sockets pose safety risks. Modern modular switches offer better safety features and USB charging options.</p>

<h2>Monsoon Electrical Safety Checklist</h2>
<p>During monsoon season, electrical safety becomes critical:</p>
<ul>
  <li>Check for water seepage near electrical outlets</li>
  <li>Ensure proper earthing of all appliances</li>
  <li>Install surge protectors</li>
  <li>Regular inspection of outdoor wiring</li>
</ul>

<h2>When to Call Professional Electricians</h2>
<p>While minor issues can be handled with basic knowledge, complex electrical work requires certified professionals. Handlix electricians are trained and certified for safe electrical work.</p>`,
		FAQs: []models.FAQ{
			{
				Question: "How do I know if my electrical wiring needs replacement?",
				Answer:   "Signs include frequent circuit breaker trips, flickering lights, burning smells, or outlets that feel warm. Our certified electricians can perform a safety inspection.",
			},
			{
				Question: "Is it safe to do electrical work during monsoon?",
				Answer:   "Electrical work during monsoon requires extra precautions. We recommend professional services during heavy rains for safety.",
			},
			{
				Question: "What's the cost of switch and socket replacement?",
				Answer:   "Switch and socket replacement starts from ₹149 onwards, including quality modular switches and professional installation.",
			},
		},
	},
	{
		ID:       "appliance-maintenance-guide",
		Title:    "Why Regular Appliance Maintenance Saves You Big Money",
		Excerpt:  "Learn about AC servicing, washing machine repair, refrigerator maintenance, and early signs of appliance failure to save on costly replacements.",
		Author:   blogAuthor,
		Date:     "2025-01-08",
		ReadTime: "9 min read",
		Category: models.CategoryAppliance,
		Label:    "Appliance Repair",
		Image:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Body: `<h2>The Cost of Neglecting Appliance Maintenance</h2>
<p>Regular appliance maintenance can extend the life of your appliances by 5-10 years and reduce energy consumption by up to 30%. In Aligarh's climate, proper maintenance is especially important.</p>

<h3>AC Servicing and Repair</h3>
<p>Air conditioners work overtime in Indian summers. Regular servicing includes:</p>
<ul>
  <li>Filter cleaning and replacement</li>
  <li>Coil cleaning for better efficiency</li>
  <li>Gas refilling when needed</li>
  <li>Electrical connection checks</li>
</ul>

<h2>Washing Machine Maintenance</h2>
<p>Washing machines face challenges from hard water and heavy usage. Common issues include:</p>
<ul>
  <li>Motor and pump problems</li>
  <li>Drum and agitator issues</li>
  <li>Control panel malfunctions</li>
  <li>Water inlet/outlet blockages</li>
</ul>

<h2>Refrigerator Care Tips</h2>
<p>Refrigerators are essential year-round appliances. Proper maintenance ensures food safety and energy efficiency.</p>

<h2>Early Warning Signs</h2>
<p>Watch for these signs that indicate your appliances need professional attention:</p>
<ul>
  <li>Unusual noises or vibrations</li>
  <li>Increased energy bills</li>
  <li>Poor performance or efficiency</li>
  <li>Frequent breakdowns</li>
</ul>`,
		FAQs: []models.FAQ{
			{
				Question: "How often should I service my AC?",
				Answer:   "We recommend AC servicing twice a year - before summer and after monsoon season for optimal performance and longevity.",
			},
			{
				Question: "What's included in your appliance repair warranty?",
				Answer:   "We provide a 6-month warranty on all major appliance repairs, covering parts and labor for your peace of mind.",
			},
			{
				Question: "Can you repair all appliance brands?",
				Answer:   "Yes, our technicians are trained to work with all major appliance brands including LG, Samsung, Whirlpool, Godrej, and more.",
			},
		},
	},
	{
		ID:       "at-home-grooming-services-2025",
		Title:    "The Rise of At-Home Grooming & Beauty Services in 2025",
		Excerpt:  "Explore the growing trend of professional grooming services at home. Men's haircuts, women's makeup, mehndi services, and the convenience revolution.",
		Author:   blogAuthor,
		Date:     "2025-01-05",
		ReadTime: "7 min read",
		Category: models.CategoryGrooming,
		Label:    "Grooming",
		Image:    "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Body: `<h2>The Convenience Revolution in Grooming</h2>
<p>The at-home grooming industry has exploded in 2025, with more people preferring professional services in the comfort of their homes. This trend has been particularly strong in tier-2 cities like Aligarh.</p>

<h3>Men's Grooming Services</h3>
<p>Professional men's grooming at home includes:</p>
<ul>
  <li>Haircut and styling (₹199 onwards)</li>
  <li>Beard trimming and shaping</li>
  <li>Hair washing with premium products</li>
  <li>Styling consultation</li>
</ul>

<h2>Women's Beauty and Makeup Services</h2>
<p>From everyday makeup to bridal preparation, at-home beauty services offer convenience and privacy:</p>
<ul>
  <li>Professional makeup application</li>
  <li>Hair styling for events</li>
  <li>Bridal makeup packages</li>
  <li>Touch-up kit provision</li>
</ul>

<h2>Traditional Mehndi Services</h2>
<p>Mehndi remains an integral part of Indian celebrations. Professional mehndi artists bring:</p>
<ul>
  <li>Traditional and Arabic designs</li>
  <li>Natural henna products</li>
  <li>Custom design consultation</li>
  <li>Bridal mehndi specialization</li>
</ul>

<h2>Why Choose At-Home Services?</h2>
<p>The benefits of at-home grooming services include comfort, privacy, time-saving, and personalized attention in familiar surroundings.</p>`,
		FAQs: []models.FAQ{
			{
				Question: "How do I book grooming services at home?",
				Answer:   "Simply message us on WhatsApp with your preferred service and timing. We'll confirm availability and send a professional to your location.",
			},
			{
				Question: "Do you provide grooming tools and products?",
				Answer:   "Yes, our professionals come equipped with all necessary tools and premium products for the service.",
			},
			{
				Question: "Can I book grooming services for events?",
				Answer:   "Absolutely! We offer special event packages for weddings, parties, and celebrations with advance booking.",
			},
		},
	},
	{
		ID:       "pet-grooming-professional-care",
		Title:    "Pet Grooming Services: Why Your Pet Deserves Professional Care",
		Excerpt:  "Complete guide to professional pet grooming including dog grooming, cat grooming, hygiene benefits, and specialized care for different breeds.",
		Author:   blogAuthor,
		Date:     "2025-01-03",
		ReadTime: "11 min read",
		Category: models.CategoryPet,
		Label:    "Pet Care",
		Image:    "https://images.unsplash.com/photo-1548199973-03cce0bbc87b?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Body: `<h2>The Importance of Professional Pet Grooming</h2>
<p>Professional pet grooming goes beyond aesthetics. It's essential for your pet's health, comfort, and overall well-being. Regular grooming helps prevent skin issues, matting, and other health problems.</p>

<h3>Dog Grooming Services</h3>
<p>Our comprehensive dog grooming service (₹499 onwards) includes:</p>
<ul>
  <li>Bathing with pet-safe shampoos</li>
  <li>Hair trimming and styling</li>
  <li>Nail clipping and filing</li>
  <li>Ear cleaning and inspection</li>
  <li>Teeth cleaning (basic)</li>
</ul>

<h3>Cat Grooming Services</h3>
<p>Cats need a calmer approach. Our cat grooming service (₹449 onwards) covers gentle bathing, coat brushing and detangling, nail trimming, and eye and ear cleaning.</p>

<h2>Hygiene Benefits of Regular Grooming</h2>
<p>Regular grooming keeps parasites in check, prevents matting, and lets a trained groomer spot skin problems early.</p>`,
		FAQs: []models.FAQ{
			{
				Question: "How often should I groom my pet?",
				Answer:   "Dogs typically need grooming every 4-6 weeks, while cats may need grooming every 6-8 weeks, depending on their coat type and lifestyle.",
			},
			{
				Question: "Is home grooming safe for aggressive pets?",
				Answer:   "Our professionals are trained to handle pets with different temperaments. We use gentle techniques and take breaks as needed to ensure safety.",
			},
			{
				Question: "Do you groom all dog and cat breeds?",
				Answer:   "Yes, we provide grooming services for all dog and cat breeds, with specialized techniques for each breed's specific needs.",
			},
		},
	},
	{
		ID:       "seasonal-home-maintenance-monsoon",
		Title:    "Seasonal Home Maintenance: Preparing Your Home for Monsoons in Aligarh",
		Excerpt:  "Complete monsoon preparation guide for homes in Aligarh. Waterproofing, electrical safety, plumbing checks, and emergency preparedness tips.",
		Author:   blogAuthor,
		Date:     "2025-01-01",
		ReadTime: "13 min read",
		Category: models.CategoryPlumbing,
		Label:    "Home Maintenance",
		Image:    "https://images.unsplash.com/photo-1519692933481-e162a57d6721?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
		Body: `<h2>Why Monsoon Preparation is Critical in Aligarh</h2>
<p>Aligarh experiences heavy monsoon rains that can cause significant damage to homes if proper preparation isn't done. From waterlogging to electrical hazards, monsoon season brings unique challenges that require proactive home maintenance.</p>

<h3>Pre-Monsoon Home Inspection Checklist</h3>
<p>Before the monsoon season begins, conduct a thorough inspection of your home:</p>
<ul>
  <li>Roof and terrace waterproofing check</li>
  <li>Drainage system cleaning and maintenance</li>
  <li>Electrical wiring and outlet inspection</li>
  <li>Window and door sealing verification</li>
  <li>Plumbing system pressure testing</li>
</ul>

<h2>Waterproofing Solutions for Aligarh Homes</h2>
<p>Effective waterproofing is essential for protecting your home during heavy rains. Key areas that need attention include:</p>
<ul>
  <li>Terrace and balcony waterproofing with quality sealants</li>
  <li>External wall treatment to prevent seepage</li>
  <li>Bathroom and kitchen waterproofing maintenance</li>
  <li>Foundation waterproofing for ground floor homes</li>
</ul>

<h2>Electrical Safety During Monsoons</h2>
<p>Electrical safety becomes paramount during monsoon season. Essential precautions include:</p>
<ul>
  <li>Installing ELCB (Earth Leakage Circuit Breaker) for safety</li>
  <li>Checking all electrical connections for water exposure</li>
  <li>Ensuring proper earthing of all appliances</li>
  <li>Using surge protectors for valuable electronics</li>
  <li>Regular inspection of outdoor electrical installations</li>
</ul>

<h2>Plumbing Maintenance for Monsoon Season</h2>
<p>Proper plumbing maintenance prevents water damage and ensures smooth drainage during heavy rains:</p>
<ul>
  <li>Cleaning and unclogging all drains and gutters</li>
  <li>Checking for pipe leaks and joint failures</li>
  <li>Installing additional drainage points if needed</li>
  <li>Testing water pressure and flow rates</li>
  <li>Inspecting septic tanks and sewage connections</li>
</ul>

<h2>Emergency Preparedness and Quick Response</h2>
<p>Having an emergency plan and quick access to professional services can save your home from extensive damage. Handlix provides 24/7 emergency services during monsoon season for urgent repairs and maintenance.</p>

<h2>Post-Monsoon Home Recovery</h2>
<p>After the monsoon season, conduct a thorough inspection to identify any damage and plan necessary repairs. This includes checking for water damage, electrical issues, and structural problems that may have developed during the rains.</p>`,
		FAQs: []models.FAQ{
			{
				Question: "When should I start monsoon preparation for my home?",
				Answer:   "Start monsoon preparation at least 2-3 months before the rainy season begins. This gives you enough time to complete waterproofing, electrical work, and plumbing maintenance.",
			},
			{
				Question: "What's the cost of waterproofing a terrace in Aligarh?",
				Answer:   "Terrace waterproofing costs vary based on area and materials used. Contact Handlix for a detailed quote based on your specific requirements.",
			},
			{
				Question: "Do you provide emergency services during heavy rains?",
				Answer:   "Yes, Handlix provides 24/7 emergency services during monsoon season for urgent repairs, waterproofing, and electrical safety issues.",
			},
		},
	},
}
