package external

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kisankalyan.app/internal/config"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()
	mockRedis := miniredis.RunT(t)

	tests := []struct {
		name        string
		config      *config.CacheConfig
		expectError errors.ErrorType
		assertType  func(t *testing.T, provider ports.CacheProvider)
	}{
		{
			name:        "NilConfig",
			expectError: errors.ErrorTypeConfiguration,
		},
		{
			name:   "MemoryCache",
			config: &config.CacheConfig{Type: config.CacheTypeMemory},
			assertType: func(t *testing.T, provider ports.CacheProvider) {
				assert.IsType(t, &MemoryCacheProvider{}, provider)
			},
		},
		{
			name: "RedisCache",
			config: &config.CacheConfig{
				Type:  config.CacheTypeRedis,
				Redis: config.RedisConfig{Addr: mockRedis.Addr(), DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1},
			},
			assertType: func(t *testing.T, provider ports.CacheProvider) {
				assert.IsType(t, &RedisCacheProviderAdapter{}, provider)
			},
		},
		{
			name: "RedisUnreachable",
			config: &config.CacheConfig{
				Type:  config.CacheTypeRedis,
				Redis: config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1},
			},
			expectError: errors.ErrorTypeExternalAPI,
		},
		{
			name:        "UnknownCacheType",
			config:      &config.CacheConfig{Type: config.CacheTypeUnknown},
			expectError: errors.ErrorTypeConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateCacheProvider(tt.config)

			if tt.expectError != errors.ErrorTypeUnknown {
				require.Error(t, err)
				assert.True(t, provider == nil)
				assert.Equal(t, tt.expectError, errors.TypeOf(err))
				return
			}
			require.NoError(t, err)
			tt.assertType(t, provider)
		})
	}
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "test-key", []byte("test-value"), time.Minute))

		retrieved, err := provider.Get(ctx, "test-key")
		require.NoError(t, err)
		assert.Equal(t, []byte("test-value"), retrieved)
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := provider.Get(ctx, "non-existent-key")
		assert.Nil(t, retrieved)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "delete-key", []byte("v"), time.Minute))

		exists, err := provider.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, provider.Delete(ctx, "delete-key"))
		exists, err = provider.Exists(ctx, "delete-key")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, provider.Clear(ctx))
		assert.Equal(t, 0, provider.Len())
	})
}

func TestMemoryCacheProvider_Expiry(t *testing.T) {
	provider := NewMemoryCacheProvider()
	now := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "weather:current:delhi", []byte("{}"), 10*time.Minute))

	now = now.Add(9 * time.Minute)
	_, err := provider.Get(ctx, "weather:current:delhi")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	exists, err := provider.Exists(ctx, "weather:current:delhi")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = provider.Get(ctx, "weather:current:delhi")
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, provider.Len())
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	_, err := provider.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(provider.Set(ctx, "k", []byte("v"), 0)))
	assert.True(t, errors.IsValidationError(provider.Delete(ctx, "")))
	_, err = provider.Exists(ctx, "")
	assert.True(t, errors.IsValidationError(err))
}

func TestMemoryCacheProvider_Metrics(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	require.NoError(t, provider.Set(ctx, "k", []byte("v"), time.Minute))
	_, _ = provider.Get(ctx, "k")
	_, _ = provider.Get(ctx, "k")
	_, _ = provider.Get(ctx, "missing")

	stats := CacheStatsOf(provider)
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(3), stats.TotalOps)
	assert.InDelta(t, 2.0/3.0, stats.HitRatio, 0.0001)
	assert.Equal(t, int64(3), stats.Operations["get"])
	assert.Equal(t, int64(1), stats.Operations["set"])
	assert.False(t, stats.LastUpdated.IsZero())
}

func TestMemoryCacheProvider_ConcurrentAccess(t *testing.T) {
	provider := NewMemoryCacheProvider()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = provider.Set(ctx, "shared", []byte("v"), time.Minute)
			_, _ = provider.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(20), provider.GetStats().TotalOps)
}

func TestCacheStatsOf_ProviderWithoutStats(t *testing.T) {
	stats := CacheStatsOf(plainCache{})
	assert.Zero(t, stats.TotalOps)
	assert.False(t, stats.LastUpdated.IsZero())
}

// plainCache is a CacheProvider that tracks no statistics.
type plainCache struct{}

func (plainCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.NewNotFoundError("cache miss")
}

func (plainCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (plainCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (plainCache) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

func (plainCache) Clear(ctx context.Context) error {
	return nil
}
