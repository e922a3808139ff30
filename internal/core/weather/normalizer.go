package weather

import (
	"strings"
	"time"

	"kisankalyan.app/internal/ports"
)

// Normalize turns provider snapshots into an Advisory. The forecast keeps the
// first entry of each calendar date, in provider order, up to five dates.
func Normalize(current *ports.CurrentWeather, forecast []ports.WeatherSnapshot, now time.Time) Advisory {
	return Advisory{
		Location: current.Location,
		Country:  current.Country,
		Current: CurrentConditions{
			Temperature: Measured(current.Temperature),
			Humidity:    Measured(current.Humidity),
			WindSpeed:   Measured(current.WindSpeed),
			Description: current.Description,
			IconURL:     iconURL(current.IconCode),
		},
		Forecast:        dailyForecast(forecast),
		Recommendations: Recommend(current.WeatherSnapshot, forecast, now),
	}
}

func dailyForecast(entries []ports.WeatherSnapshot) []DailyForecast {
	days := make([]DailyForecast, 0, maxForecastDays)
	seen := make(map[string]struct{}, maxForecastDays)

	for _, entry := range entries {
		if len(days) == maxForecastDays {
			break
		}
		date := forecastDate(entry)
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		days = append(days, DailyForecast{
			Date:        date,
			Temperature: entry.Temperature,
			Humidity:    entry.Humidity,
			Description: entry.Description,
			IconURL:     iconURL(entry.IconCode),
		})
	}
	return days
}

// forecastDate prefers the provider's date label and falls back to the UTC
// date of the timestamp.
func forecastDate(entry ports.WeatherSnapshot) string {
	if entry.DateText != "" {
		date, _, _ := strings.Cut(entry.DateText, " ")
		return date
	}
	return entry.Timestamp.UTC().Format(dateLayout)
}
