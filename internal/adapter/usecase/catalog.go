package usecase

import "strings"

// towns is the fixed set of towns a campaign may target.
var towns = []string{
	"Warszawa",
	"Kraków",
	"Łódź",
	"Wrocław",
	"Poznań",
	"Gdańsk",
	"Szczecin",
	"Bydgoszcz",
	"Lublin",
	"Katowice",
}

// keywords is the typeahead catalog, grouped by theme.
var keywords = []string{
	// Global
	"promotion", "sale", "new arrival", "bargain", "discount",
	"laptops", "smartphones", "gaming", "computers", "monitors",
	"home appliances", "electronics", "televisions", "washing machines", "refrigerators",
	"services", "maintenance", "repair", "installation",
	"local", "fast", "cheap", "best offer", "hot price",

	// Consumer electronics
	"tablets", "cameras", "headphones", "speakers", "wearables",
	"smart watch", "e-reader", "projector", "drone", "VR headset",
	"audio system", "home theater", "gaming console", "PC components", "graphics card",
	"motherboard", "RAM", "SSD", "HDD", "power supply",

	// Software and services
	"software", "antivirus", "operating system", "cloud storage", "web hosting",
	"VPN", "graphic design", "video editing", "office suite", "programming tools",
	"online course", "subscription", "streaming service", "app development", "IT support",

	// Home and kitchen
	"kitchen appliances", "small appliances", "coffee maker", "blender", "microwave",
	"vacuum cleaner", "air conditioner", "heater", "furniture", "home decor",
	"lighting", "tools", "garden supplies", "DIY", "smart home",

	// Fashion and lifestyle
	"clothing", "shoes", "accessories", "jewelry", "watches",
	"handbags", "mens fashion", "womens fashion", "kids fashion", "sportswear",
	"outdoor gear", "travel", "luggage", "beauty products", "skincare",

	// Business and office
	"office supplies", "printers", "scanners", "stationery", "ergonomic chair",
	"desk", "business software", "b2b services", "marketing", "accounting",

	// Deals and offers
	"limited time offer", "clearance", "flash sale", "special deal", "exclusive",
	"bundle deal", "free shipping", "top rated", "customer favorite", "newly listed",
	"save big", "daily deal", "weekly special", "seasonal offer", "best value",
}

// minSuggestionQuery matches the frontend's lookup threshold.
const minSuggestionQuery = 2

func suggest(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < minSuggestionQuery {
		return []string{}
	}
	out := []string{}
	for _, kw := range keywords {
		if strings.HasPrefix(strings.ToLower(kw), q) {
			out = append(out, kw)
		}
	}
	return out
}

func knownTown(town string) bool {
	for _, t := range towns {
		if t == town {
			return true
		}
	}
	return false
}
