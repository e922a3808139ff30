// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"kisankalyan.app/internal/core/chat"
	"kisankalyan.app/internal/core/reference"
	"kisankalyan.app/internal/core/weather"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
)

const (
	defaultSessionCookieName = "session_id"
	defaultWeatherLocation   = "Delhi"
	readHeaderTimeout        = 10 * time.Second
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port              int
	SessionCookieName string
	DefaultLocation   string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	server           *http.Server
	config           ServerConfig
	chatUseCase      ChatUseCase
	weatherUseCase   WeatherUseCase
	referenceUseCase ReferenceUseCase
	healthChecker    ports.SystemHealthChecker
	metricsReporter  MetricsReporter
	metricsHandler   http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type ChatUseCase interface {
	Chat(ctx context.Context, request chat.ChatRequest) (*chat.ChatResult, error)
	GetFarmingInformation(ctx context.Context, request chat.InformationRequest) (*chat.FarmingInformation, error)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]chat.HistoryEntry, error)
}

type WeatherUseCase interface {
	GetAdvisory(ctx context.Context, request weather.AdvisoryRequest) (*weather.Advisory, error)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]weather.HistoryEntry, error)
}

type ReferenceUseCase interface {
	GetTechniques(ctx context.Context, category string) (reference.TechniqueCatalog, error)
	GetSchemes(ctx context.Context) ([]ports.ReferenceItem, error)
	GetLaws(ctx context.Context) ([]ports.ReferenceItem, error)
	Search(ctx context.Context, query string) (*reference.SearchResults, error)
}

// MetricsReporter produces the JSON metrics summary.
type MetricsReporter interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	ChatUseCase      ChatUseCase
	WeatherUseCase   WeatherUseCase
	ReferenceUseCase ReferenceUseCase
	HealthChecker    ports.SystemHealthChecker
	MetricsReporter  MetricsReporter
	// MetricsHandler serves /metrics; defaults to the global Prometheus registry.
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := registerValidators(); err != nil {
		return nil, errors.NewConfigurationError("failed to register request validators", err)
	}

	cfg := opts.Config
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = defaultSessionCookieName
	}
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = defaultWeatherLocation
	}
	metricsHandler := opts.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	server := &HTTPServerAdapter{
		router:           gin.Default(),
		config:           cfg,
		chatUseCase:      opts.ChatUseCase,
		weatherUseCase:   opts.WeatherUseCase,
		referenceUseCase: opts.ReferenceUseCase,
		healthChecker:    opts.HealthChecker,
		metricsReporter:  opts.MetricsReporter,
		metricsHandler:   metricsHandler,
	}

	server.setupRoutes()
	server.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ChatUseCase == nil {
		return errors.NewValidationError("chat use case is required")
	}
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.ReferenceUseCase == nil {
		return errors.NewValidationError("reference use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsReporter == nil {
		return errors.NewValidationError("metrics reporter is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	api.Use(sessionMiddleware(s.config.SessionCookieName))
	{
		api.POST("/chat", s.postChat)
		api.GET("/weather", s.getWeather)
		api.GET("/history", s.getHistory)

		farming := api.Group("/farming")
		farming.GET("/techniques", s.getTechniques)
		farming.GET("/schemes", s.getSchemes)
		farming.GET("/laws", s.getLaws)
		farming.GET("/search", s.searchReference)
		farming.POST("/information", s.postInformation)

		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Handler returns the router wrapped in request tracing.
func (s *HTTPServerAdapter) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "kisankalyan")
}

// Start serves until Shutdown is called. It returns nil after a clean shutdown.
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
