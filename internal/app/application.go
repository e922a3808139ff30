package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"kisankalyan.app/internal/adapters/api"
	"kisankalyan.app/internal/adapters/infrastructure"
	"kisankalyan.app/internal/config"
	"kisankalyan.app/internal/core/chat"
	"kisankalyan.app/internal/core/reference"
	"kisankalyan.app/internal/core/weather"
	"kisankalyan.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	chatUseCase      *chat.UseCase
	weatherUseCase   *weather.UseCase
	referenceUseCase *reference.UseCase

	// Adapters
	httpServer *api.HTTPServerAdapter

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies builds the application on an existing
// container. The application takes ownership of the container's resources.
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	chatUseCase, err := chat.NewUseCase(chat.UseCaseDependencies{
		Completion: a.ports.CompletionProvider,
		History:    a.ports.ChatHistory,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create chat use case: %w", err)
	}
	a.chatUseCase = chatUseCase

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider:      a.ports.WeatherProvider,
		History:       a.ports.WeatherHistory,
		Logger:        a.ports.Logger,
		Metrics:       a.ports.Metrics,
		ForecastCount: a.config.Weather.ForecastCount,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	referenceUseCase, err := reference.NewUseCase(reference.UseCaseDependencies{
		Dataset: a.ports.ReferenceDataset,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create reference use case: %w", err)
	}
	a.referenceUseCase = referenceUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsReporter := infrastructure.NewMetricsSummaryAdapter(infrastructure.MetricsSummaryConfig{
		Completion:   a.ports.CompletionProvider,
		Weather:      a.ports.WeatherProvider,
		CacheMetrics: a.ports.CacheMetrics,
		CacheEnabled: a.config.Weather.EnableCache,
	})

	var cacheChecker ports.HealthChecker
	if a.config.Weather.EnableCache {
		cacheChecker = infrastructure.NewCacheHealthChecker(a.config.Cache.Type.String(), a.deps.Cache())
	}

	db, _ := a.ports.Database.(*gorm.DB)
	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:   infrastructure.NewDatabaseHealthChecker(db),
		CompletionChecker: infrastructure.NewCompletionHealthChecker(a.ports.CompletionProvider),
		WeatherAPIChecker: infrastructure.NewWeatherAPIHealthChecker(a.ports.WeatherProvider),
		CacheChecker:      cacheChecker,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:              a.config.Server.Port,
			SessionCookieName: a.config.Session.CookieName,
			DefaultLocation:   a.config.Weather.DefaultLocation,
		},
		ChatUseCase:      a.chatUseCase,
		WeatherUseCase:   a.weatherUseCase,
		ReferenceUseCase: a.referenceUseCase,
		HealthChecker:    systemHealthChecker,
		MetricsReporter:  metricsReporter,
		MetricsHandler:   promhttp.HandlerFor(a.deps.Registry(), promhttp.HandlerOpts{}),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpServer = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...",
		"completion_configured", a.ports.CompletionProvider.IsConfigured(),
		"weather_configured", a.ports.WeatherProvider.IsConfigured())

	return a.httpServer.Start(ctx)
}

// Shutdown drains the HTTP server and then releases the container.
func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// Handler returns the fully wrapped HTTP handler for testing
func (a *Application) Handler() http.Handler {
	return a.httpServer.Handler()
}
