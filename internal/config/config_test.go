package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kisankalyan.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, DriverPostgres, config.Database.Driver)
		assert.Equal(t, "kisankalyan", config.Database.Name)
		assert.Equal(t, "", config.Completion.APIKey)
		assert.Equal(t, "gpt-4o", config.Completion.Model)
		assert.Equal(t, 30*time.Second, config.Completion.Timeout())
		assert.Equal(t, 60, config.Completion.RequestsPerMinute)
		assert.Equal(t, "", config.Weather.APIKey)
		assert.Equal(t, "https://api.openweathermap.org/data/2.5", config.Weather.BaseURL)
		assert.Equal(t, 40, config.Weather.ForecastCount)
		assert.False(t, config.Weather.EnableCache)
		assert.Equal(t, 10*time.Minute, config.Weather.CacheTTL())
		assert.Equal(t, "Delhi", config.Weather.DefaultLocation)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.True(t, config.Provider.EnableLogging)
		assert.Equal(t, "session_id", config.Session.CookieName)
		assert.Equal(t, "info", config.LogLevel)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("DB_DRIVER", "sqlite"))
		require.NoError(t, os.Setenv("DB_SQLITE_PATH", "/tmp/kisan.db"))
		require.NoError(t, os.Setenv("OPENAI_API_KEY", "sk-test"))
		require.NoError(t, os.Setenv("OPENAI_MODEL", "gpt-4o-mini"))
		require.NoError(t, os.Setenv("WEATHER_API_KEY", "owm-test"))
		require.NoError(t, os.Setenv("WEATHER_ENABLE_CACHE", "true"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6379"))
		require.NoError(t, os.Setenv("DEFAULT_WEATHER_LOCATION", "Pune"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, DriverSQLite, config.Database.Driver)
		assert.Equal(t, "/tmp/kisan.db", config.Database.GetDSN())
		assert.Equal(t, "sk-test", config.Completion.APIKey)
		assert.Equal(t, "gpt-4o-mini", config.Completion.Model)
		assert.Equal(t, "owm-test", config.Weather.APIKey)
		assert.True(t, config.Weather.EnableCache)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, "Pune", config.Weather.DefaultLocation)
		assert.Equal(t, "debug", config.LogLevel)
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("CACHE_TYPE", "memcached"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "CACHE_TYPE")
	})
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     5432,
		User:     "farmer",
		Password: "secret",
		Name:     "kisan",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=farmer password=secret dbname=kisan sslmode=disable", cfg.GetDSN())

	cfg.URL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.GetDSN())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server: ServerConfig{Port: 8080},
			Database: DatabaseConfig{
				Driver: DriverPostgres, Host: "localhost", Port: 5432,
				User: "postgres", Name: "kisankalyan", SSLMode: "disable",
			},
			Completion: CompletionConfig{
				BaseURL: "https://api.openai.com/v1", Model: "gpt-4o",
				TimeoutSeconds: 30, RequestsPerMinute: 60,
			},
			Weather: WeatherConfig{
				BaseURL: "https://api.openweathermap.org/data/2.5", ForecastCount: 40,
				TimeoutSeconds: 10, CacheTTLMinutes: 10, DefaultLocation: "Delhi",
			},
			Cache:    CacheConfig{Type: CacheTypeMemory},
			Provider: ProviderConfig{EnableLogging: false},
			Session:  SessionConfig{CookieName: "session_id"},
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		errContains string
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "BadPort", mutate: func(c *Config) { c.Server.Port = 0 }, errContains: "SERVER_PORT"},
		{name: "BadDriver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, errContains: "DB_DRIVER"},
		{name: "BadSSLMode", mutate: func(c *Config) { c.Database.SSLMode = "maybe" }, errContains: "DB_SSL_MODE"},
		{name: "SQLiteSkipsPostgresChecks", mutate: func(c *Config) {
			c.Database.Driver = DriverSQLite
			c.Database.Host = ""
			c.Database.SQLitePath = ":memory:"
		}},
		{name: "CompletionURLScheme", mutate: func(c *Config) { c.Completion.BaseURL = "api.openai.com" }, errContains: "OPENAI_API_BASE_URL"},
		{name: "CompletionRate", mutate: func(c *Config) { c.Completion.RequestsPerMinute = 0 }, errContains: "OPENAI_REQUESTS_PER_MINUTE"},
		{name: "ForecastCountTooHigh", mutate: func(c *Config) { c.Weather.ForecastCount = 41 }, errContains: "WEATHER_FORECAST_COUNT"},
		{name: "CacheTTLTooHigh", mutate: func(c *Config) { c.Weather.CacheTTLMinutes = 2000 }, errContains: "WEATHER_CACHE_TTL_MINUTES"},
		{name: "EmptyDefaultLocation", mutate: func(c *Config) { c.Weather.DefaultLocation = "  " }, errContains: "DEFAULT_WEATHER_LOCATION"},
		{name: "RedisWithoutAddr", mutate: func(c *Config) {
			c.Cache.Type = CacheTypeRedis
			c.Cache.Redis = RedisConfig{DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
		}, errContains: "REDIS_ADDR"},
		{name: "LoggingWithoutPath", mutate: func(c *Config) { c.Provider.EnableLogging = true }, errContains: "PROVIDER_LOG_FILE_PATH"},
		{name: "EmptyCookieName", mutate: func(c *Config) { c.Session.CookieName = "" }, errContains: "SESSION_COOKIE_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestCacheTypeFromString(t *testing.T) {
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("disk"))
	assert.Equal(t, "unknown", CacheTypeUnknown.String())
}
