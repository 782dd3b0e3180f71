package weather

import (
	"fmt"
	"log/slog"

	"github.com/itznotaditya/voyant/internal/providers/openmeteo"
	"github.com/itznotaditya/voyant/internal/types"
)

// ForecastProvider fetches current conditions and the daily outlook for a
// coordinate.
type ForecastProvider interface {
	GetForecast(latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

// Service looks up weather for a coordinate and formats the reply fragment.
// Provider failure is a soft result: Lookup returns ok=false and the chat
// reply simply omits the weather section.
type Service interface {
	Lookup(coords types.Coords) (*Report, bool)
	FormatReply(report *Report, placeName string) string
}

type weatherService struct {
	provider ForecastProvider
	logger   *slog.Logger
}

// NewWeatherService creates a weather service backed by Open-Meteo.
func NewWeatherService(logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(openmeteo.NewClient(logger), logger)
}

// NewWeatherServiceWithProvider creates a weather service with a custom
// provider. This is useful for testing with mock providers.
func NewWeatherServiceWithProvider(provider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		logger:   logger.With("component", "weather-service"),
	}
}

// Lookup fetches and maps the forecast for the given coordinate.
func (s *weatherService) Lookup(coords types.Coords) (*Report, bool) {
	apiResp, err := s.provider.GetForecast(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get forecast",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, false
	}

	return mapForecastAPIResponse(apiResp), true
}

func mapForecastAPIResponse(apiResp *openmeteo.ForecastAPIResponse) *Report {
	return &Report{
		Timezone: apiResp.Timezone,
		Current: CurrentWeather{
			Temperature:   apiResp.Current.Temperature2M,
			Precipitation: apiResp.Current.Precipitation,
			WeatherCode:   apiResp.Current.WeatherCode,
			Conditions:    types.GetWeatherDescription(apiResp.Current.WeatherCode),
		},
		Daily: DailyOutlook{
			TemperatureMax:              apiResp.Daily.Temperature2MMax,
			TemperatureMin:              apiResp.Daily.Temperature2MMin,
			PrecipitationProbabilityMax: apiResp.Daily.PrecipitationProbabilityMax,
		},
	}
}

// FormatReply renders the weather sentence of a chat reply.
func (s *weatherService) FormatReply(report *Report, placeName string) string {
	if report == nil {
		return fmt.Sprintf("I couldn't fetch the weather for %s.", placeName)
	}
	return fmt.Sprintf("In %s it's currently %.1f°C with a chance of %d%% to rain.",
		placeName, report.Current.Temperature, report.RainChance())
}
