package external

import (
	"context"
	"encoding/json"
	"time"

	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

// WeatherCacheAdapter bridges generic CacheProvider to weather-specific WeatherCache
type WeatherCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewWeatherCacheAdapter creates a weather cache adapter using generic cache provider
func NewWeatherCacheAdapter(cacheProvider ports.CacheProvider) ports.WeatherCache {
	return &WeatherCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

func (w *WeatherCacheAdapter) GetCurrent(ctx context.Context, key string) (*ports.CurrentWeather, error) {
	var current ports.CurrentWeather
	if err := w.get(ctx, key, &current); err != nil {
		return nil, err
	}
	return &current, nil
}

func (w *WeatherCacheAdapter) SetCurrent(ctx context.Context, key string, weather *ports.CurrentWeather, ttl time.Duration) error {
	if weather == nil {
		return errors.NewValidationError("weather data cannot be nil")
	}
	return w.set(ctx, key, weather, ttl)
}

func (w *WeatherCacheAdapter) GetForecast(ctx context.Context, key string) ([]ports.WeatherSnapshot, error) {
	var forecast []ports.WeatherSnapshot
	if err := w.get(ctx, key, &forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}

func (w *WeatherCacheAdapter) SetForecast(ctx context.Context, key string, forecast []ports.WeatherSnapshot, ttl time.Duration) error {
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}
	return w.set(ctx, key, forecast, ttl)
}

func (w *WeatherCacheAdapter) get(ctx context.Context, key string, out interface{}) error {
	data, err := w.cacheProvider.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewExternalAPIError("failed to deserialize weather data", err)
	}
	return nil
}

func (w *WeatherCacheAdapter) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewExternalAPIError("failed to serialize weather data", err)
	}
	return w.cacheProvider.Set(ctx, key, data, ttl)
}
