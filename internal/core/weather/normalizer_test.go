package weather

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kisankalyan.app/internal/ports"
)

func forecastEntry(dateText string, temp float64) ports.WeatherSnapshot {
	return ports.WeatherSnapshot{
		Temperature: temp,
		Humidity:    60,
		Description: "clear sky",
		IconCode:    "01d",
		DateText:    dateText,
	}
}

func TestNormalize_CurrentConditions(t *testing.T) {
	current := &ports.CurrentWeather{
		Location: "Delhi",
		Country:  "IN",
		WeatherSnapshot: ports.WeatherSnapshot{
			Temperature: 36,
			Humidity:    50,
			WindSpeed:   2,
			Description: "haze",
			IconCode:    "50d",
		},
	}
	now := time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)

	advisory := Normalize(current, nil, now)

	assert.Equal(t, "Delhi", advisory.Location)
	assert.Equal(t, "IN", advisory.Country)
	assert.Equal(t, Measured(36), advisory.Current.Temperature)
	assert.Equal(t, Measured(50), advisory.Current.Humidity)
	assert.Equal(t, Measured(2), advisory.Current.WindSpeed)
	assert.Equal(t, "haze", advisory.Current.Description)
	assert.Equal(t, "http://openweathermap.org/img/wn/50d@2x.png", advisory.Current.IconURL)
	assert.Empty(t, advisory.Forecast)
	assert.NotNil(t, advisory.Forecast)
	assert.Equal(t, []string{adviceHeat, adviceNoRain, adviceSummer}, advisory.Recommendations)
	assert.False(t, advisory.IsFallback())
}

func TestNormalize_ForecastKeepsFirstEntryPerDate(t *testing.T) {
	var entries []ports.WeatherSnapshot
	for day := 1; day <= 7; day++ {
		for _, hour := range []string{"00:00:00", "12:00:00", "21:00:00"} {
			entries = append(entries, forecastEntry(fmt.Sprintf("2024-07-%02d %s", day, hour), float64(day*10)+float64(len(hour))))
		}
	}

	days := dailyForecast(entries)

	require.Len(t, days, 5)
	for i, day := range days {
		assert.Equal(t, fmt.Sprintf("2024-07-%02d", i+1), day.Date)
		assert.Equal(t, entries[i*3].Temperature, day.Temperature)
		assert.Equal(t, "http://openweathermap.org/img/wn/01d@2x.png", day.IconURL)
	}
}

func TestNormalize_ForecastSkipsRepeatedDatesOutOfOrder(t *testing.T) {
	entries := []ports.WeatherSnapshot{
		forecastEntry("2024-07-02 09:00:00", 1),
		forecastEntry("2024-07-01 09:00:00", 2),
		forecastEntry("2024-07-02 12:00:00", 3),
		forecastEntry("2024-07-03 09:00:00", 4),
	}

	days := dailyForecast(entries)

	require.Len(t, days, 3)
	assert.Equal(t, "2024-07-02", days[0].Date)
	assert.Equal(t, 1.0, days[0].Temperature)
	assert.Equal(t, "2024-07-01", days[1].Date)
	assert.Equal(t, "2024-07-03", days[2].Date)
}

func TestForecastDate_FallsBackToUTCTimestamp(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	entry := ports.WeatherSnapshot{Timestamp: time.Date(2024, time.July, 2, 2, 0, 0, 0, ist)}

	assert.Equal(t, "2024-07-01", forecastDate(entry))
	assert.Equal(t, "2024-07-02", forecastDate(ports.WeatherSnapshot{DateText: "2024-07-02 00:00:00"}))
}
