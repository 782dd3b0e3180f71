package places

import (
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/itznotaditya/voyant/internal/categories"
	"github.com/itznotaditya/voyant/internal/config"
	"github.com/itznotaditya/voyant/internal/providers/overpass"
	"github.com/itznotaditya/voyant/internal/providers/wikipedia"
	"github.com/itznotaditya/voyant/internal/types"
)

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// POIProvider executes an Overpass QL query.
type POIProvider interface {
	Query(query string) (*overpass.InterpreterResponse, error)
}

// DescriptionProvider fetches a page summary for a lookup key.
type DescriptionProvider interface {
	Summary(key string) (*wikipedia.SummaryResponse, error)
}

// Service ranks points of interest around a coordinate and looks up place
// descriptions. Provider failure is a soft result: Nearby degrades to an
// empty list and the chat reply omits the places section.
type Service interface {
	Nearby(coords types.Coords, radiusMeters int, category categories.Key, locationName string) []Place
	Describe(name, location string) (string, bool)
	FormatReply(results []Place, placeName string, category categories.Key) string
}

type placesService struct {
	poiProvider  POIProvider
	descriptions DescriptionProvider
	maxResults   int
	logger       *slog.Logger
}

// NewPlacesService creates a places service backed by Overpass and the
// Wikipedia summary endpoint.
func NewPlacesService(cfg *config.Config, logger *slog.Logger) Service {
	return NewPlacesServiceWithProviders(overpass.NewClient(logger), wikipedia.NewClient(logger), cfg, logger)
}

// NewPlacesServiceWithProviders creates a places service with custom
// providers. This is useful for testing with mock providers.
func NewPlacesServiceWithProviders(
	poiProvider POIProvider,
	descriptions DescriptionProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &placesService{
		poiProvider:  poiProvider,
		descriptions: descriptions,
		maxResults:   cfg.App.MaxResults,
		logger:       logger.With("component", "places-service"),
	}
}

// Nearby fetches POIs around the coordinate, scores them, and returns the
// top results ordered by descending popularity.
func (s *placesService) Nearby(coords types.Coords, radiusMeters int, category categories.Key, locationName string) []Place {
	query := overpass.BuildAroundQuery(coords.Latitude, coords.Longitude, radiusMeters, tagQueriesFor(category))

	resp, err := s.poiProvider.Query(query)
	if err != nil {
		s.logger.Error("failed to fetch places",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"category", string(category),
			"error", err,
		)
		return nil
	}

	// First pass: validate records and count raw categories across the
	// batch for the rarity signal
	candidates, categoryCounts := collectCandidates(resp.Elements)

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, scoredCandidate{
			candidate: c,
			score:     popularityScore(c.tags, c.name, c.lat, c.lon, coords.Latitude, coords.Longitude, c.category, categoryCounts),
		})
	}

	// Stable sort keeps input order on ties
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := s.maxResults
	if len(scored) < limit {
		limit = len(scored)
	}

	results := make([]Place, 0, limit)
	for _, sc := range scored[:limit] {
		results = append(results, Place{
			Name:        sc.name,
			Lat:         sc.lat,
			Lon:         sc.lon,
			Category:    sc.categoryLabel,
			Description: nil,
			MapsLink:    mapsSearchLink(sc.name, locationName),
		})
	}

	s.logger.Debug("ranked places",
		"fetched", len(resp.Elements),
		"valid", len(candidates),
		"returned", len(results),
	)

	return results
}

// tagQueriesFor maps a category key to Overpass tag queries. Unrecognized
// keys and "all" fall back to the broad default filter.
func tagQueriesFor(category categories.Key) []overpass.TagQuery {
	filters, ok := categories.Lookup(category)
	if !ok || filters == nil {
		return overpass.DefaultTagQueries()
	}
	queries := make([]overpass.TagQuery, 0, len(filters))
	for _, f := range filters {
		queries = append(queries, overpass.TagQuery{
			Key:        f.Key,
			Value:      f.Value,
			Geometries: overpass.AllGeometries,
		})
	}
	return queries
}

// collectCandidates drops records without a display name or coordinate and
// tallies raw category values across the batch.
func collectCandidates(elements []overpass.Element) ([]candidate, map[string]int) {
	categoryCounts := make(map[string]int)
	candidates := make([]candidate, 0, len(elements))

	for _, el := range elements {
		name := el.Name()
		if name == "" {
			continue
		}
		lat, lon, ok := el.Position()
		if !ok {
			continue
		}

		category := rawCategory(el.Tags)
		categoryCounts[category]++

		candidates = append(candidates, candidate{
			name:          name,
			lat:           lat,
			lon:           lon,
			category:      category,
			categoryLabel: formatCategory(category),
			tags:          el.Tags,
		})
	}

	return candidates, categoryCounts
}

// rawCategory picks the first non-empty classifying tag, defaulting to
// "attraction".
func rawCategory(tags map[string]string) string {
	for _, key := range []string{"tourism", "historic", "amenity", "shop", "leisure", "natural"} {
		if v := tags[key]; v != "" {
			return v
		}
	}
	return "attraction"
}

func formatCategory(raw string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(raw, "_", " "))
}

// mapsSearchLink builds a map-search URL for the place. The location name
// is appended so the search resolves to the right city.
func mapsSearchLink(name, locationName string) string {
	query := name
	if locationName != "" {
		query += ", " + locationName
	}
	return mapsSearchURL + url.QueryEscape(query)
}

// Describe looks up a short description for a place, trying several
// normalized page keys in turn.
func (s *placesService) Describe(name, location string) (string, bool) {
	for _, key := range descriptionLookupKeys(name, location) {
		resp, err := s.descriptions.Summary(key)
		if err != nil {
			s.logger.Debug("description lookup miss", "key", key, "error", err)
			continue
		}
		if len(resp.Extract) <= 30 {
			continue
		}
		description := trimExtract(resp.Extract)
		if len(description) <= 30 {
			return "", false
		}
		return description, true
	}
	return "", false
}

func descriptionLookupKeys(name, location string) []string {
	underscored := strings.ReplaceAll(name, " ", "_")
	keys := []string{underscored}
	if location != "" {
		keys = append(keys, underscored+",_"+strings.ReplaceAll(location, " ", "_"))
	}
	keys = append(keys, strings.ReplaceAll(underscored, ",", ""))
	return keys
}

// trimExtract keeps the first few complete sentences of an extract, ending
// on a period.
func trimExtract(extract string) string {
	sentences := strings.Split(extract, ". ")
	n := len(sentences)
	if n > 4 {
		n = 4
	}
	description := strings.Join(sentences[:n], ". ")
	if !strings.HasSuffix(description, ".") {
		description += "."
	}
	return description
}

// FallbackDescription is used when no summary could be found for a place.
func FallbackDescription(category string) string {
	return fmt.Sprintf("A notable %s in the area worth visiting.", strings.ToLower(category))
}

// FormatReply renders the places section of a chat reply.
func (s *placesService) FormatReply(results []Place, placeName string, category categories.Key) string {
	if len(results) == 0 {
		if category != categories.All {
			return fmt.Sprintf(
				"I couldn't find any %s in %s within a 15km radius. Try selecting a different category or turning off the filter to see all places!",
				strings.ToLower(categories.DisplayName(category)), placeName)
		}
		return fmt.Sprintf("I couldn't find any specific tourist attractions in %s, but it's a great place to explore!", placeName)
	}

	categoryText := ""
	if category != categories.All {
		categoryText = fmt.Sprintf(" (%s)", categories.DisplayName(category))
	}

	lines := make([]string, 0, len(results))
	for _, p := range results {
		lines = append(lines, fmt.Sprintf("- %s (%s)", p.Name, p.Category))
	}

	return fmt.Sprintf("In %s these are the places you can go%s:\n\n%s", placeName, categoryText, strings.Join(lines, "\n"))
}
