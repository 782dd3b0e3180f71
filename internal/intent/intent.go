package intent

import "strings"

// Intent is the coarse classification of what a travel query is asking for.
type Intent int

const (
	Unknown Intent = iota
	Weather
	Places
	Both
)

var intentNames = map[Intent]string{
	Unknown: "unknown",
	Weather: "weather",
	Places:  "places",
	Both:    "both",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// Keyword sets for intent classification. Matched as substrings of the
// lower-cased query text.
var (
	weatherKeywords = []string{"weather", "temperature", "rain", "forecast", "hot", "cold"}
	placesKeywords  = []string{"places", "visit", "sightseeing", "tourist", "attractions", "plan my trip", "go to"}
)

// Classify determines the intent of the given query text.
func Classify(text string) Intent {
	lower := strings.ToLower(text)

	hasWeather := containsAny(lower, weatherKeywords)
	hasPlaces := containsAny(lower, placesKeywords)

	switch {
	case hasWeather && hasPlaces:
		return Both
	case hasWeather:
		return Weather
	case hasPlaces:
		return Places
	default:
		return Unknown
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
