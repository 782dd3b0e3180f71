package places

import (
	"math"
	"strings"
)

const earthRadiusKm = 6371

// iconicKeywords boost names that read like landmarks. Matched
// case-insensitively as substrings of the place name.
var iconicKeywords = []string{
	"Palace", "Museum", "Park", "Fort", "Temple", "Plaza", "Square", "Tower",
	"National", "Lake", "Aquarium", "Zoo", "Beach", "Gate", "Bridge",
	"Cathedral", "Basilica", "Market", "Garden", "Hills",
}

// metadataKeys are the OSM tags tracked for the feature-richness signal.
var metadataKeys = []string{
	"opening_hours", "wheelchair", "website", "wikipedia", "ticket_price",
	"tourism", "phone", "email", "addr:street", "image",
}

var majorHistoricValues = map[string]struct{}{
	"monument": {},
	"castle":   {},
	"ruins":    {},
	"memorial": {},
}

var midTierTourismValues = map[string]struct{}{
	"theme_park": {},
	"zoo":        {},
	"aquarium":   {},
	"viewpoint":  {},
}

var midTierLeisureValues = map[string]struct{}{
	"park":   {},
	"garden": {},
}

var commercialAmenityValues = map[string]struct{}{
	"restaurant":  {},
	"cafe":        {},
	"marketplace": {},
}

// popularityScore estimates how notable a POI is on a roughly 0-12 scale.
// Signals are additive and independent except the category-weight group,
// which is an if/elif chain where the highest-value match wins. The weights
// and thresholds are tuned empirically.
func popularityScore(tags map[string]string, name string, lat, lon, searchLat, searchLon float64, category string, categoryCounts map[string]int) float64 {
	score := 0.0

	// 1. Category weight: heritage and major historic sites outrank
	// entertainment and nature, which outrank commercial spots
	tourism := tags["tourism"]
	historic := tags["historic"]
	amenity := tags["amenity"]
	leisure := tags["leisure"]
	shop := tags["shop"]
	natural := tags["natural"]

	_, majorHistoric := majorHistoricValues[historic]
	_, midTierTourism := midTierTourismValues[tourism]
	_, midTierLeisure := midTierLeisureValues[leisure]
	_, commercialAmenity := commercialAmenityValues[amenity]

	switch {
	case tags["heritage"] != "" || tags["unesco"] != "" || tourism == "museum" || majorHistoric:
		score += 3
	case midTierTourism || midTierLeisure || natural != "":
		score += 2
	case shop != "" || commercialAmenity:
		score += 1
	}

	// 2. Name shape: short names are often iconic, landmark keywords more so
	if len(strings.Fields(name)) <= 3 {
		score += 1
	}
	lowerName := strings.ToLower(name)
	for _, kw := range iconicKeywords {
		if strings.Contains(lowerName, strings.ToLower(kw)) {
			score += 2
			break
		}
	}

	// 3. Wikipedia presence
	if tags["wikipedia"] != "" || tags["wikidata"] != "" {
		score += 2
	}

	// 4. Proximity to the search center
	dist := haversineKm(lat, lon, searchLat, searchLon)
	if dist < 5 {
		score += 2
	} else if dist <= 20 {
		score += 1
	}

	// 5. Feature richness of the tag bag
	metadataCount := 0
	for _, k := range metadataKeys {
		if _, ok := tags[k]; ok {
			metadataCount++
		}
	}
	if metadataCount >= 5 {
		score += 2
	} else if metadataCount >= 2 {
		score += 1
	}

	// 6. Category rarity: the only castle in town matters more than the
	// twentieth restaurant
	switch count := categoryCounts[category]; {
	case count == 1:
		score += 3
	case count <= 5:
		score += 2
	case count <= 15:
		score += 1
	}

	return score
}

// haversineKm computes the great-circle distance between two points in
// kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
