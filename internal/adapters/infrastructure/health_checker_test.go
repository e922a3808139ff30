package infrastructure

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"kisankalyan.app/internal/adapters/database"
	"kisankalyan.app/internal/adapters/external"
	"kisankalyan.app/internal/config"
	"kisankalyan.app/internal/mocks"
	"kisankalyan.app/internal/ports"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestDatabaseHealthChecker(t *testing.T) {
	t.Run("Connected", func(t *testing.T) {
		status := NewDatabaseHealthChecker(openTestDB(t)).Check(context.Background())

		assert.Equal(t, "database", status.Component)
		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.Equal(t, "sqlite", status.Details["dialect"])
		assert.Equal(t, true, status.Details["connected"])
		assert.Empty(t, status.Error)
	})

	t.Run("Closed", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, database.Close(db))

		status := NewDatabaseHealthChecker(db).Check(context.Background())

		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.NotEmpty(t, status.Error)
	})

	t.Run("Nil", func(t *testing.T) {
		status := NewDatabaseHealthChecker(nil).Check(context.Background())

		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.Equal(t, "database instance is nil", status.Error)
	})
}

func TestProviderHealthChecker(t *testing.T) {
	t.Run("ConfiguredCompletion", func(t *testing.T) {
		provider := mocks.NewCompletionProvider(t)
		provider.EXPECT().IsConfigured().Return(true)
		provider.EXPECT().GetProviderName().Return("openai")

		status := NewCompletionHealthChecker(provider).Check(context.Background())

		assert.Equal(t, "completion", status.Component)
		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.Equal(t, "openai", status.Details["provider"])
		assert.Equal(t, true, status.Details["configured"])
		assert.Equal(t, "live", status.Details["mode"])
	})

	t.Run("UnconfiguredWeatherStaysHealthy", func(t *testing.T) {
		provider := mocks.NewWeatherProvider(t)
		provider.EXPECT().IsConfigured().Return(false)
		provider.EXPECT().GetProviderName().Return("openweathermap")

		status := NewWeatherAPIHealthChecker(provider).Check(context.Background())

		assert.Equal(t, "weatherAPI", status.Component)
		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.Equal(t, false, status.Details["configured"])
		assert.Equal(t, "fallback", status.Details["mode"])
	})

	t.Run("Missing", func(t *testing.T) {
		status := NewCompletionHealthChecker(nil).Check(context.Background())

		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.Equal(t, "completion provider is not available", status.Error)
	})
}

func TestCacheHealthChecker(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		status := NewCacheHealthChecker("memory", nil).Check(context.Background())

		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.Equal(t, "memory", status.Details["type"])
		assert.Equal(t, false, status.Details["enabled"])
	})

	t.Run("Memory", func(t *testing.T) {
		status := NewCacheHealthChecker("memory", external.NewMemoryCacheProvider()).Check(context.Background())

		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.Equal(t, true, status.Details["enabled"])
	})

	t.Run("RedisUpThenDown", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cache, err := external.NewRedisCacheProviderAdapter(&config.RedisConfig{
			Addr: mr.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1,
		})
		require.NoError(t, err)
		defer cache.Close()

		checker := NewCacheHealthChecker("redis", cache)
		assert.Equal(t, ports.StatusHealthy, checker.Check(context.Background()).Status)

		mr.Close()
		status := checker.Check(context.Background())
		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.NotEmpty(t, status.Error)
	})
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	healthy := mocks.NewHealthChecker(t)
	healthy.EXPECT().Check(context.Background()).Return(ports.HealthStatus{Component: "database", Status: ports.StatusHealthy})
	cache := mocks.NewHealthChecker(t)
	cache.EXPECT().Check(context.Background()).Return(ports.HealthStatus{Component: "cache", Status: ports.StatusUnhealthy, Error: "down"})

	system := NewSystemHealthChecker(SystemHealthCheckerConfig{
		DatabaseChecker: healthy,
		CacheChecker:    cache,
	})

	results := system.CheckAll(context.Background())

	require.Len(t, results, 2)
	assert.Equal(t, ports.StatusHealthy, results["database"].Status)
	assert.Equal(t, "down", results["cache"].Error)
	assert.NotContains(t, results, "completion")
	assert.False(t, AllHealthy(results))

	delete(results, "cache")
	assert.True(t, AllHealthy(results))
	assert.True(t, AllHealthy(nil))
}
