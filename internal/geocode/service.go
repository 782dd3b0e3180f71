package geocode

import (
	"log/slog"
	"strconv"

	"github.com/itznotaditya/voyant/internal/providers/nominatim"
	"github.com/itznotaditya/voyant/internal/types"
)

// SearchProvider geocodes a free-text place name.
type SearchProvider interface {
	Search(query string) ([]nominatim.SearchResult, error)
}

// Service resolves place names to coordinates. Resolution failure is a soft
// result, not an error: callers branch on ok and the failure detail stays at
// this boundary.
type Service interface {
	Resolve(placeName string) (types.Coords, bool)
}

type geocodeService struct {
	provider SearchProvider
	logger   *slog.Logger
}

// NewGeocodeService creates a geocode service backed by Nominatim.
func NewGeocodeService(logger *slog.Logger) Service {
	return NewGeocodeServiceWithProvider(nominatim.NewClient(logger), logger)
}

// NewGeocodeServiceWithProvider creates a geocode service with a custom
// provider. This is useful for testing with mock providers.
func NewGeocodeServiceWithProvider(provider SearchProvider, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

// Resolve returns the coordinate of the first match for the place name.
func (s *geocodeService) Resolve(placeName string) (types.Coords, bool) {
	results, err := s.provider.Search(placeName)
	if err != nil {
		s.logger.Error("geocoding request failed", "place", placeName, "error", err)
		return types.Coords{}, false
	}

	if len(results) == 0 {
		s.logger.Warn("no geocoding match", "place", placeName)
		return types.Coords{}, false
	}

	first := results[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		s.logger.Error("invalid latitude in geocoding result", "place", placeName, "lat", first.Lat, "error", err)
		return types.Coords{}, false
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		s.logger.Error("invalid longitude in geocoding result", "place", placeName, "lon", first.Lon, "error", err)
		return types.Coords{}, false
	}

	s.logger.Debug("resolved place name",
		"place", placeName,
		"latitude", lat,
		"longitude", lon,
		"display_name", first.DisplayName,
	)

	return types.NewCoords(lat, lon), true
}
