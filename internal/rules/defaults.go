package rules

import "github.com/rappen-dev/rappen/internal/model"

// DefaultRules returns the built-in rule table. High-priority rules carry
// narrow patterns that must preempt broader catch-alls further down: "UBER
// *EATS" is food delivery while a bare "UBER" would be ambiguous, and the
// trailing low-priority GOOGLE rule only fires when nothing more specific
// matched.
func DefaultRules() []model.CategoryRule {
	return []model.CategoryRule{
		// Specific patterns that must win over broader ones.
		{
			Category: "Rideshare",
			Patterns: []string{"UBER *TRIP", "UBER  *TRIP", "UBER   *TRIP", "Bolt", "Taxi", "LYFT"},
			Priority: 100,
		},
		{
			Category: "Dining Out",
			Patterns: []string{"UBER *EATS", "UBER  *EATS"},
			Priority: 100,
		},
		{
			Category: "Rent",
			Patterns: []string{"Standing order", "Miete", "ALBEK AMBRA"},
			Priority: 90,
		},

		// Essential/fixed costs.
		{
			Category: "Health Insurance",
			Patterns: []string{"Sanitas", "Helsana", "CSS", "Visana", "Krankenkasse", "Grundversicherung"},
			Priority: 50,
		},
		{
			Category: "Mobile & Internet",
			Patterns: []string{"Swisscom", "SWISSCOM BILLING", "Sunrise", "Salt", "UPC", "Quickline"},
			Priority: 50,
		},
		{
			Category: "Bank Fees",
			Patterns: []string{"Payment transaction prices", "Interest on amount overdrawn", "Interest on credit", "Kontoführung", "Bankgebühr"},
			Priority: 50,
		},

		// Daily living.
		{
			Category: "Groceries",
			Patterns: []string{
				"Migros", "Coop", "Denner", "migrolino", "Avec", "Aldi", "Lidl",
				"COOP VITALITY", "CARREFOUR", "MONOPRIX", "k kiosk",
				"Filiale", "SUPERETTE", "Spar", "Volg",
			},
			Priority: 50,
		},
		{
			Category: "Dining Out",
			Patterns: []string{
				"Lakomka", "SUBWAY", "WANGKHAR", "STARBUCKS", "Seven Stars",
				"Suan Long", "MCDONALDS", "Aroy Food", "VICAFE", "Caffe Spettacolo",
				"Kuni & Gunde", "Miro Bahnhof", "Scent of Bamboo", "K2 Express",
				"Restaurant", "Cafe", "Coffee", "MINIME", "PHIE HALWANI",
				"HIPPY MARKET", "LE COLVERT", "LE LUTECE", "SAPPORO", "GEORGIEN",
				"Oranta", "Walkthrough Level", "Burger King", "KFC", "Pizza",
				"Tamarind Hill", "Rice Up!",
			},
			Priority: 50,
		},
		{
			Category: "Cash Withdrawal",
			Patterns: []string{"Withdrawal", "ATM", "Bargeld", "Bargeldbezug"},
			Priority: 50,
		},

		// Transportation.
		{
			Category: "Public Transport",
			Patterns: []string{"SBB CFF FFS", "ZVV", "DB FERNVERKEHR", "Bahn", "VERKEHRSVERBUND", "BLS", "Tram", "Bus AG"},
			Priority: 50,
		},
		{
			Category: "Travel",
			Patterns: []string{
				"HOTEL", "SNCF", "RATP", "MUSEE", "LOUVRE", "Booking", "Airbnb",
				"Flug", "flight", "SWISS INTERNATIONAL AIR", "SERVICE NAVIGO",
				"TICKET", "LOUVRETICKET", "MUSEE ORSAY", "TICKET WEEZEVENT",
				"ORSAY", "TGV", "Eurostar", "Ryanair", "Easyjet",
			},
			Priority: 50,
		},

		// Shopping.
		{
			Category: "Electronics",
			Patterns: []string{
				"Interdiscount", "MediaMarkt", "MEDIA MARKT", "mobilezone", "Digitec", "Galaxus",
				"Apple Store", "Apple Zurich", "APPLE.COM/BILL", "Google Play",
			},
			Priority: 50,
		},
		{
			Category: "Home & Furnishing",
			Patterns: []string{"IKEA", "JUMBO", "Möbel", "Pfister", "Micasa", "Lumimart", "Personenmeldeamt"},
			Priority: 50,
		},
		{
			Category: "Clothing",
			Patterns: []string{
				"H & M", "H&M", "Metro Boutique", "Zara", "C&A", "PKZ",
				"Decathlon", "Dr Martens", "LARRY H", "FJ DIFFUSION", "MON ETOILE",
				"Uniqlo", "Mango", "Reserved", "Snipes", "Foot Locker",
			},
			Priority: 50,
		},
		{
			Category: "Online Shopping",
			Patterns: []string{"aliexpress", "Alibaba", "Amazon", "AMZN", "eBay", "Wish", "Temu"},
			Priority: 50,
		},

		// Entertainment and subscriptions.
		{
			Category: "Streaming",
			Patterns: []string{"Spotify", "YouTube", "Netflix", "Disney", "HBO", "Twitch", "Crunchyroll"},
			Priority: 50,
		},
		{
			Category: "Gaming",
			Patterns: []string{"Steam", "STEAM PURCHASE", "STEAMGAMES", "HoYoverse", "HOYOVERSE", "PlayStation", "Xbox", "Nintendo", "Epic Games"},
			Priority: 50,
		},
		{
			Category: "AI Tools",
			Patterns: []string{"CLAUDE.AI", "ChatGPT", "OpenAI", "Cursor", "Copilot", "Anthropic"},
			Priority: 50,
		},

		// Health and wellness.
		{
			Category: "Medical & Pharmacy",
			Patterns: []string{
				"ODONTO", "APOTHEKE", "PHARMACIE", "zahnarztzentrum", "STERNEN-APOTHEKE",
				"Dentist", "Zahnarzt", "Arzt", "Praxis", "Klinik", "Spital", "DOUAT",
			},
			Priority: 50,
		},
		{
			Category: "Fitness",
			Patterns: []string{"NonStop Gym", "Gym", "Fitnesscenter", "ACTIV FITNESS", "Migros Fitness", "Holmes Place", "Kieser", "Crossfit"},
			Priority: 50,
		},
		{
			Category: "Personal Care",
			Patterns: []string{
				"LUSH", "L.Occitane", "LOccitane", "FADECUT", "Coiffeur", "Haircut",
				"Friseur", "Barber", "Salon", "WAL*LUSH", "WEST FADECUT", "Sephora", "Douglas",
			},
			Priority: 50,
		},

		// Other.
		{
			Category: "Education",
			Patterns: []string{"Preply", "Udemy", "Coursera", "Orell Fussli", "Buchhandlung", "Books", "PAPYRIN", "Ex Libris", "Thalia"},
			Priority: 50,
		},
		{
			Category: "Insurance",
			Patterns: []string{"AXA", "Mobiliar", "VERSICHERUNG", "Zurich Insurance", "Allianz", "Generali", "Baloise"},
			Priority: 50,
		},

		// Catch-alls that must lose to everything above.
		{
			Category: "Streaming",
			Patterns: []string{"GOOGLE"},
			Priority: 20,
		},
	}
}
