package weather

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kisankalyan.app/internal/ports"
)

const (
	iconURLTemplate  = "http://openweathermap.org/img/wn/%s@2x.png"
	notAvailable     = "N/A"
	maxForecastDays  = 5
	absoluteZeroC    = -273.15
	dateLayout       = "2006-01-02"
	unknownCountry   = "Unknown"
	unavailableError = "Unable to fetch weather data. Please try again later."
)

// Measurement is a numeric reading that may be unavailable. It encodes as a
// JSON number, or as "N/A" when unavailable.
type Measurement struct {
	value     float64
	available bool
}

// Measured wraps an available reading.
func Measured(v float64) Measurement {
	return Measurement{value: v, available: true}
}

// Unavailable is the "not available" sentinel.
func Unavailable() Measurement {
	return Measurement{}
}

// Value returns the reading and whether it is available.
func (m Measurement) Value() (float64, bool) {
	return m.value, m.available
}

// Ptr returns nil for an unavailable reading.
func (m Measurement) Ptr() *float64 {
	if !m.available {
		return nil
	}
	v := m.value
	return &v
}

func (m Measurement) String() string {
	if !m.available {
		return notAvailable
	}
	return fmt.Sprintf("%g", m.value)
}

func (m Measurement) MarshalJSON() ([]byte, error) {
	if !m.available {
		return json.Marshal(notAvailable)
	}
	return json.Marshal(m.value)
}

func (m *Measurement) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*m = Measured(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("measurement must be a number or %q: %w", notAvailable, err)
	}
	if s != notAvailable {
		return fmt.Errorf("measurement must be a number or %q, got %q", notAvailable, s)
	}
	*m = Unavailable()
	return nil
}

// CurrentConditions are the farmer-facing current readings.
type CurrentConditions struct {
	Temperature Measurement
	Humidity    Measurement
	WindSpeed   Measurement
	Description string
	IconURL     string
}

// DailyForecast is the first forecast step seen for a calendar date.
type DailyForecast struct {
	Date        string
	Temperature float64
	Humidity    float64
	Description string
	IconURL     string
}

// Advisory is the farmer-facing weather report for a location.
type Advisory struct {
	Location        string
	Country         string
	Current         CurrentConditions
	Forecast        []DailyForecast
	Recommendations []string
	// Error is set only on the unavailable shape.
	Error string
}

// IsFallback reports whether the advisory is the unavailable shape.
func (a *Advisory) IsFallback() bool {
	return a.Error != ""
}

// AdvisoryRequest asks for the advisory of one location.
type AdvisoryRequest struct {
	SessionID string
	Location  string
}

// IsValid validates the advisory request
func (r *AdvisoryRequest) IsValid() error {
	if strings.TrimSpace(r.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	return nil
}

// NormalizeLocation trims the location for consistent processing
func (r *AdvisoryRequest) NormalizeLocation() {
	r.Location = strings.TrimSpace(r.Location)
}

// HistoryEntry is a past weather lookup as shown to the session that made it.
type HistoryEntry struct {
	Location    string
	Temperature *float64
	Humidity    *float64
	Description string
	Timestamp   time.Time
}

func iconURL(code string) string {
	return fmt.Sprintf(iconURLTemplate, code)
}

// validateSnapshot rejects physically impossible provider readings.
func validateSnapshot(s ports.WeatherSnapshot) error {
	if s.Temperature < absoluteZeroC {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if s.Humidity < 0 || s.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if s.WindSpeed < 0 {
		return fmt.Errorf("wind speed cannot be negative")
	}
	return nil
}
