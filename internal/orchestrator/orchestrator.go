package orchestrator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/itznotaditya/voyant/internal/categories"
	"github.com/itznotaditya/voyant/internal/config"
	"github.com/itznotaditya/voyant/internal/geocode"
	"github.com/itznotaditya/voyant/internal/intent"
	"github.com/itznotaditya/voyant/internal/places"
	"github.com/itznotaditya/voyant/internal/timezone"
	"github.com/itznotaditya/voyant/internal/weather"
)

const noLocationMessage = "I'm sorry, I couldn't identify the location you're asking about. Please specify a city or place."

// Response is the assembled chat reply: a natural-language summary plus a
// structured data bag.
type Response struct {
	Text string         `json:"text"`
	Data map[string]any `json:"data"`
}

// Orchestrator drives a single query through the pipeline: extract intent
// and location, geocode, dispatch to weather and/or places, compose the
// reply. No state is carried across queries.
type Orchestrator struct {
	geocoder  geocode.Service
	weather   weather.Service
	places    places.Service
	timezones timezone.Service
	cfg       *config.Config
	logger    *slog.Logger
}

// New creates an orchestrator over the given collaborator services.
func New(
	cfg *config.Config,
	logger *slog.Logger,
	geocoder geocode.Service,
	weatherService weather.Service,
	placesService places.Service,
	timezones timezone.Service,
) *Orchestrator {
	return &Orchestrator{
		geocoder:  geocoder,
		weather:   weatherService,
		places:    placesService,
		timezones: timezones,
		cfg:       cfg,
		logger:    logger.With("component", "orchestrator"),
	}
}

// ProcessQuery analyzes the user's message, calls the collaborators the
// intent asks for, and assembles the combined response. Upstream failures
// degrade each section to absent rather than failing the query.
func (o *Orchestrator) ProcessQuery(message string, preferences map[string]any) *Response {
	categoryFilter := categoryFromPreferences(preferences)
	queryIntent, location := intent.Extract(message)

	o.logger.Debug("analyzed query",
		"intent", queryIntent.String(),
		"location", location,
		"category_filter", string(categoryFilter),
	)

	if location == "" {
		return &Response{Text: noLocationMessage, Data: map[string]any{}}
	}

	coords, ok := o.geocoder.Resolve(location)
	if !ok {
		return &Response{
			Text: fmt.Sprintf("I'm sorry, I don't know where '%s' is. Please check the spelling or try a major city.", location),
			Data: map[string]any{},
		}
	}

	var parts []string
	data := map[string]any{
		"location": location,
		"lat":      coords.Latitude,
		"lon":      coords.Longitude,
	}

	if tz, err := o.timezones.GetTimezone(coords.Latitude, coords.Longitude); err == nil {
		data["timezone"] = tz
	} else {
		o.logger.Warn("timezone lookup failed", "location", location, "error", err)
	}

	if queryIntent == intent.Weather || queryIntent == intent.Both {
		if report, ok := o.weather.Lookup(coords); ok {
			data["weather"] = report
			parts = append(parts, o.weather.FormatReply(report, location))
		}
	}

	// Unknown intent defaults to showing places: a bare "Bangalore" most
	// likely wants trip ideas, not a clarifying question
	if queryIntent == intent.Places || queryIntent == intent.Both || queryIntent == intent.Unknown {
		results := o.places.Nearby(coords, o.cfg.App.SearchRadiusMeters, categoryFilter, location)
		if len(results) > 0 {
			data["places"] = results
			parts = append(parts, o.places.FormatReply(results, location, categoryFilter))
		}
	}

	return &Response{
		Text: strings.Join(parts, " "),
		Data: data,
	}
}

func categoryFromPreferences(preferences map[string]any) categories.Key {
	if preferences == nil {
		return categories.All
	}
	if v, ok := preferences["category_filter"].(string); ok && v != "" {
		return categories.Key(v)
	}
	return categories.All
}
