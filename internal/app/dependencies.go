package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
	"kisankalyan.app/internal/adapters/database"
	"kisankalyan.app/internal/adapters/external"
	"kisankalyan.app/internal/adapters/infrastructure"
	"kisankalyan.app/internal/adapters/reference"
	"kisankalyan.app/internal/config"
	"kisankalyan.app/internal/ports"
)

type DependencyContainer struct {
	config     *config.Config
	db         *gorm.DB
	registry   *prometheus.Registry
	cache      ports.CacheProvider
	fileLogger *infrastructure.FileLoggerAdapter
	ports      *ports.ApplicationPorts
}

// DependencyOptions overrides process-wide defaults, mainly for tests.
type DependencyOptions struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Registry defaults to a fresh registry with Go and process collectors.
	Registry *prometheus.Registry
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	container := &DependencyContainer{
		config:   cfg,
		registry: registry,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(opts.Logger); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", string(c.config.Database.Driver))

	db, err := database.Open(c.config.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(base *slog.Logger) error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(base)
	metrics := infrastructure.NewPrometheusMetricsCollector(c.registry)

	// Provider calls go to their own file when enabled.
	var providerLogger ports.Logger = logger
	if c.config.Provider.EnableLogging && c.config.Provider.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Provider.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create provider file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			providerLogger = fileLogger
			slog.Info("Provider file logging enabled", "path", c.config.Provider.LogFilePath)
		}
	}

	completion := c.buildCompletionProvider(metrics, providerLogger)

	weatherProvider, err := c.buildWeatherProvider(logger, metrics, providerLogger)
	if err != nil {
		return err
	}

	dataset, err := reference.NewEmbeddedDataset()
	if err != nil {
		return fmt.Errorf("load reference dataset: %w", err)
	}

	var cacheMetrics ports.CacheMetrics
	if cm, ok := c.cache.(ports.CacheMetrics); ok {
		cacheMetrics = cm
	}

	c.ports = &ports.ApplicationPorts{
		CompletionProvider: completion,
		ChatHistory:        database.NewChatHistoryRepositoryAdapter(c.db),

		WeatherProvider: weatherProvider,
		WeatherHistory:  database.NewWeatherHistoryRepositoryAdapter(c.db),

		ReferenceDataset: dataset,

		CacheMetrics: cacheMetrics,

		Logger:   logger,
		Metrics:  metrics,
		Database: c.db,
	}

	slog.Info("Ports initialized successfully",
		"completion_configured", completion.IsConfigured(),
		"weather_configured", weatherProvider.IsConfigured())
	return nil
}

// buildCompletionProvider wraps the OpenAI gateway in metrics and, when
// enabled, call logging.
func (c *DependencyContainer) buildCompletionProvider(metrics ports.MetricsCollector, providerLogger ports.Logger) ports.CompletionProvider {
	cfg := c.config.Completion

	var provider ports.CompletionProvider = external.NewOpenAICompletionProvider(external.OpenAICompletionProviderParams{
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Model:             cfg.Model,
		Timeout:           cfg.Timeout(),
		RequestsPerMinute: cfg.RequestsPerMinute,
	})
	provider = external.NewInstrumentedCompletionProvider(provider, metrics)

	if c.config.Provider.EnableLogging {
		provider = external.NewCompletionProviderLoggingDecorator(provider, providerLogger)
		slog.Info("Completion provider logging enabled")
	}
	return provider
}

// buildWeatherProvider stacks metrics, logging and, outermost, the cache so
// cache hits are neither logged nor counted as provider calls.
func (c *DependencyContainer) buildWeatherProvider(logger ports.Logger, metrics ports.MetricsCollector, providerLogger ports.Logger) (ports.WeatherProvider, error) {
	cfg := c.config.Weather

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout(),
		Logger:  logger,
	})
	provider = external.NewInstrumentedWeatherProvider(provider, metrics)

	if c.config.Provider.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	if !cfg.EnableCache {
		return provider, nil
	}

	cacheProvider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return nil, fmt.Errorf("create cache provider: %w", err)
	}
	c.cache = cacheProvider

	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"ttl", cfg.CacheTTL())

	return external.NewCachingWeatherProvider(external.CachingWeatherProviderParams{
		Provider: provider,
		Cache:    external.NewWeatherCacheAdapter(cacheProvider),
		TTL:      cfg.CacheTTL(),
		Logger:   logger,
		Metrics:  metrics,
	}), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Registry is the Prometheus registry the collectors were registered on.
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cache is the raw cache provider, nil when weather caching is disabled.
func (c *DependencyContainer) Cache() ports.CacheProvider {
	return c.cache
}

// Cleanup releases the cache, provider log and database. It keeps going after
// a failure and returns the first error.
func (c *DependencyContainer) Cleanup() error {
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	if closer, ok := c.cache.(io.Closer); ok {
		keep(closer.Close())
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
	}
	if c.db != nil {
		keep(database.Close(c.db))
	}
	return first
}
