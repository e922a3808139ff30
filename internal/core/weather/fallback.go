package weather

const (
	unavailableDescription = "Weather data unavailable"
	adviceCheckLocal       = "Weather data is currently unavailable. Please check your local weather service for accurate forecasts."
	adviceMonitorFields    = "In the absence of weather data, monitor your fields regularly and follow standard seasonal practices."
)

// FallbackAdvisory is the fixed shape returned when weather data cannot be
// fetched for any reason.
func FallbackAdvisory(location string) Advisory {
	return Advisory{
		Location: location,
		Country:  unknownCountry,
		Current: CurrentConditions{
			Temperature: Unavailable(),
			Humidity:    Unavailable(),
			WindSpeed:   Unavailable(),
			Description: unavailableDescription,
			IconURL:     "",
		},
		Forecast:        []DailyForecast{},
		Recommendations: []string{adviceCheckLocal, adviceMonitorFields},
		Error:           unavailableError,
	}
}
