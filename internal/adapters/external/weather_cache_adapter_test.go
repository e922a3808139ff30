package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"kisankalyan.app/internal/mocks"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

func TestWeatherCacheAdapter_RoundTrip(t *testing.T) {
	cache := NewWeatherCacheAdapter(NewMemoryCacheProvider())
	ctx := context.Background()
	ts := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

	current := &ports.CurrentWeather{
		Location: "Delhi",
		Country:  "IN",
		WeatherSnapshot: ports.WeatherSnapshot{
			Temperature: 36.2,
			Humidity:    48,
			WindSpeed:   3.1,
			Description: "haze",
			IconCode:    "50d",
			Timestamp:   ts,
		},
	}
	forecast := []ports.WeatherSnapshot{
		{Temperature: 35, DateText: "2024-07-15 12:00:00", Timestamp: ts},
		{Temperature: 33, DateText: "2024-07-15 15:00:00", Timestamp: ts.Add(3 * time.Hour), HasRain: true},
	}

	require.NoError(t, cache.SetCurrent(ctx, "weather:current:delhi", current, time.Minute))
	require.NoError(t, cache.SetForecast(ctx, "weather:forecast:delhi", forecast, time.Minute))

	gotCurrent, err := cache.GetCurrent(ctx, "weather:current:delhi")
	require.NoError(t, err)
	assert.Equal(t, current, gotCurrent)

	gotForecast, err := cache.GetForecast(ctx, "weather:forecast:delhi")
	require.NoError(t, err)
	assert.Equal(t, forecast, gotForecast)
}

func TestWeatherCacheAdapter_ErrorHandling(t *testing.T) {
	cache := NewWeatherCacheAdapter(NewMemoryCacheProvider())
	ctx := context.Background()

	_, err := cache.GetCurrent(ctx, "weather:current:nowhere")
	assert.True(t, errors.IsNotFoundError(err))

	assert.True(t, errors.IsValidationError(cache.SetCurrent(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(cache.SetForecast(ctx, "k", nil, time.Minute)))
}

func TestWeatherCacheAdapter_CorruptPayload(t *testing.T) {
	provider := mocks.NewCacheProvider(t)
	provider.EXPECT().Get(mock.Anything, "weather:current:delhi").Return([]byte("not json"), nil)

	cache := NewWeatherCacheAdapter(provider)
	_, err := cache.GetCurrent(context.Background(), "weather:current:delhi")

	assert.True(t, errors.IsExternalAPIError(err))
}
