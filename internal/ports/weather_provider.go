package ports

import (
	"context"
	"time"
)

// WeatherSnapshot is one observation or forecast step in metric units.
type WeatherSnapshot struct {
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Description string    `json:"description"`
	IconCode    string    `json:"icon_code"`
	Timestamp   time.Time `json:"timestamp"`
	// DateText is the provider's "YYYY-MM-DD HH:MM:SS" label, empty for current conditions.
	DateText string `json:"date_text,omitempty"`
	HasRain  bool   `json:"has_rain"`
}

// CurrentWeather is the current-conditions snapshot for a resolved location.
type CurrentWeather struct {
	Location string `json:"location"`
	Country  string `json:"country"`
	WeatherSnapshot
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, location string) (*CurrentWeather, error)
	GetForecast(ctx context.Context, location string, count int) ([]WeatherSnapshot, error)
	IsConfigured() bool
	GetProviderName() string
}

// WeatherCache defines the contract for caching raw provider responses
type WeatherCache interface {
	GetCurrent(ctx context.Context, key string) (*CurrentWeather, error)
	SetCurrent(ctx context.Context, key string, weather *CurrentWeather, ttl time.Duration) error
	GetForecast(ctx context.Context, key string) ([]WeatherSnapshot, error)
	SetForecast(ctx context.Context, key string, forecast []WeatherSnapshot, ttl time.Duration) error
}
