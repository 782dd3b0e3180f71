package weather

// Report is the provider-agnostic weather payload returned under the
// "weather" key of a chat response.
type Report struct {
	Timezone string         `json:"timezone"`
	Current  CurrentWeather `json:"current"`
	Daily    DailyOutlook   `json:"daily"`
}

// CurrentWeather describes conditions at query time.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weather_code"`
	Conditions    string  `json:"conditions"`
}

// DailyOutlook holds day-indexed forecast arrays starting at today.
type DailyOutlook struct {
	TemperatureMax              []float64 `json:"temperature_max"`
	TemperatureMin              []float64 `json:"temperature_min"`
	PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
}

// RainChance returns today's maximum precipitation probability, or 0 when
// the outlook is empty.
func (r *Report) RainChance() int {
	if len(r.Daily.PrecipitationProbabilityMax) == 0 {
		return 0
	}
	return r.Daily.PrecipitationProbabilityMax[0]
}
