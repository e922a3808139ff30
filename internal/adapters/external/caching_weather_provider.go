package external

import (
	"context"
	"strings"
	"time"

	"kisankalyan.app/internal/ports"
)

const (
	currentCacheLabel  = "weather_current"
	forecastCacheLabel = "weather_forecast"
)

// CachingWeatherProvider serves raw provider payloads from a cache when it
// can. Cache failures are logged and the call falls through to the provider.
type CachingWeatherProvider struct {
	provider ports.WeatherProvider
	cache    ports.WeatherCache
	ttl      time.Duration
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

type CachingWeatherProviderParams struct {
	Provider ports.WeatherProvider
	Cache    ports.WeatherCache
	TTL      time.Duration
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

func NewCachingWeatherProvider(params CachingWeatherProviderParams) *CachingWeatherProvider {
	return &CachingWeatherProvider{
		provider: params.Provider,
		cache:    params.Cache,
		ttl:      params.TTL,
		logger:   params.Logger,
		metrics:  params.Metrics,
	}
}

func currentCacheKey(location string) string {
	return "weather:current:" + normalizeCacheLocation(location)
}

// forecastCacheKey ignores the count, which is fixed per process.
func forecastCacheKey(location string) string {
	return "weather:forecast:" + normalizeCacheLocation(location)
}

func normalizeCacheLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

func (c *CachingWeatherProvider) GetCurrentWeather(ctx context.Context, location string) (*ports.CurrentWeather, error) {
	key := currentCacheKey(location)
	if cached, err := c.cache.GetCurrent(ctx, key); err == nil && cached != nil {
		c.metrics.RecordCacheHit(ctx, currentCacheLabel)
		c.logger.Debug("Current weather found in cache", ports.F("location", location))
		return cached, nil
	}
	c.metrics.RecordCacheMiss(ctx, currentCacheLabel)

	current, err := c.provider.GetCurrentWeather(ctx, location)
	if err != nil {
		return nil, err
	}

	if cacheErr := c.cache.SetCurrent(ctx, key, current, c.ttl); cacheErr != nil {
		c.logger.Warn("Failed to cache current weather",
			ports.F("location", location),
			ports.F("error", cacheErr))
	}
	return current, nil
}

func (c *CachingWeatherProvider) GetForecast(ctx context.Context, location string, count int) ([]ports.WeatherSnapshot, error) {
	key := forecastCacheKey(location)
	if cached, err := c.cache.GetForecast(ctx, key); err == nil && cached != nil {
		c.metrics.RecordCacheHit(ctx, forecastCacheLabel)
		c.logger.Debug("Forecast found in cache", ports.F("location", location))
		return cached, nil
	}
	c.metrics.RecordCacheMiss(ctx, forecastCacheLabel)

	forecast, err := c.provider.GetForecast(ctx, location, count)
	if err != nil {
		return nil, err
	}

	if cacheErr := c.cache.SetForecast(ctx, key, forecast, c.ttl); cacheErr != nil {
		c.logger.Warn("Failed to cache forecast",
			ports.F("location", location),
			ports.F("error", cacheErr))
	}
	return forecast, nil
}

func (c *CachingWeatherProvider) IsConfigured() bool {
	return c.provider.IsConfigured()
}

func (c *CachingWeatherProvider) GetProviderName() string {
	return "cached(" + c.provider.GetProviderName() + ")"
}
