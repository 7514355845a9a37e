package usecase

import "github.com/trip-planner-service/internal/domain"

// poiNameTemplates - фиксированные списки названий по категориям,
// 5 вариантов на категорию, выбираются циклически по индексу кандидата
var poiNameTemplates = map[domain.Category][5]string{
	domain.CategoryHistorical: {
		"Old Town Fortress", "Ancient City Walls", "Heritage Square",
		"Royal Palace Ruins", "Medieval Clock Tower",
	},
	domain.CategoryMuseum: {
		"City History Museum", "Museum of Fine Arts", "Natural Science Museum",
		"Maritime Museum", "Archaeology Museum",
	},
	domain.CategoryGallery: {
		"Modern Art Gallery", "Riverside Gallery", "Contemporary Art Space",
		"Photography Gallery", "Sculpture Hall",
	},
	domain.CategoryPark: {
		"Central City Park", "Botanical Gardens", "Riverside Park",
		"Memorial Park", "Hilltop Gardens",
	},
	domain.CategoryBeach: {
		"Golden Sands Beach", "Harbor Beach", "Sunset Cove",
		"Pebble Bay", "Lighthouse Beach",
	},
	domain.CategoryViewpoint: {
		"Panorama Terrace", "Skyline Overlook", "Castle Hill Viewpoint",
		"Harbor Lookout", "Sunset Point",
	},
	domain.CategoryRestaurant: {
		"The Old Cellar", "Harborside Bistro", "Garden Terrace Restaurant",
		"Market Street Kitchen", "The Copper Pot",
	},
	domain.CategoryCafe: {
		"Corner Coffee House", "The Reading Room Cafe", "Riverside Espresso Bar",
		"Old Square Cafe", "Morning Light Bakery Cafe",
	},
	domain.CategoryEntertainment: {
		"Grand City Theater", "Opera House", "Jazz Cellar Club",
		"Riverside Cinema", "Concert Hall",
	},
	domain.CategoryChurch: {
		"St. Mary's Cathedral", "Old Town Basilica", "Chapel on the Hill",
		"Holy Trinity Church", "Monastery of the Cross",
	},
	domain.CategoryMarket: {
		"Central Market Hall", "Farmers Market", "Old Town Bazaar",
		"Fish Market", "Flea Market Square",
	},
	domain.CategoryShopping: {
		"Grand Arcade", "Old Town Boutiques", "Designer Quarter",
		"Craft Makers Lane", "City Center Mall",
	},
	domain.CategoryAccommodation: {
		"Grand Plaza Hotel", "Old Town Guesthouse", "Riverside Inn",
		"Boutique Hotel Aurora", "Traveler's Lodge",
	},
	domain.CategoryTransport: {
		"Central Station", "Harbor Ferry Terminal", "Old Town Tram Stop",
		"Airport Express Stop", "Funicular Lower Station",
	},
}

// poiDescriptionTemplates - описания кандидатов по категориям
var poiDescriptionTemplates = map[domain.Category]string{
	domain.CategoryHistorical:    "A landmark that has shaped the city's history for centuries.",
	domain.CategoryMuseum:        "A museum with a rich permanent collection and rotating exhibitions.",
	domain.CategoryGallery:       "A gallery showcasing local and international artists.",
	domain.CategoryPark:          "A green escape in the middle of the city, popular with locals.",
	domain.CategoryBeach:         "A stretch of coastline loved for swimming and sunbathing.",
	domain.CategoryViewpoint:     "A spot with sweeping views over the city and beyond.",
	domain.CategoryRestaurant:    "A well-reviewed spot serving regional specialties.",
	domain.CategoryCafe:          "A cozy cafe known for its coffee and pastries.",
	domain.CategoryEntertainment: "A lively venue with performances throughout the week.",
	domain.CategoryChurch:        "A place of worship notable for its architecture.",
	domain.CategoryMarket:        "A bustling market where locals shop for fresh produce.",
	domain.CategoryShopping:      "A shopping destination with stores for every budget.",
	domain.CategoryAccommodation: "A comfortable place to stay close to the main sights.",
	domain.CategoryTransport:     "A transit hub connecting the city's main districts.",
}

// historicalFacts - фиксированный набор фактов для исторических POI
var historicalFacts = []string{
	"The original structure on this site dates back several centuries.",
	"It survived two major fires that destroyed much of the surrounding district.",
	"Local legend says a hidden passage connects it to the old city walls.",
	"It was carefully restored in the last century using period techniques.",
}
