package weather

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"kisankalyan.app/internal/ports"
	"kisankalyan.app/pkg/errors"
	"kisankalyan.app/pkg/validation"
)

const (
	defaultForecastCount = 40
	tracerName           = "kisankalyan/internal/core/weather"
)

type UseCase struct {
	provider      ports.WeatherProvider
	history       ports.WeatherHistoryRepository
	logger        ports.Logger
	metrics       ports.MetricsCollector
	forecastCount int
	now           func() time.Time
}

type UseCaseDependencies struct {
	Provider ports.WeatherProvider
	History  ports.WeatherHistoryRepository
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	// ForecastCount defaults to 40 three-hour steps.
	ForecastCount int
	Clock         func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.History == nil {
		return nil, errors.NewValidationError("weather history repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	count := deps.ForecastCount
	if count <= 0 {
		count = defaultForecastCount
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		provider:      deps.Provider,
		history:       deps.History,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		forecastCount: count,
		now:           clock,
	}, nil
}

// GetAdvisory returns the advisory for a location. Provider problems never
// surface: they are logged and the unavailable shape is returned instead.
func (uc *UseCase) GetAdvisory(ctx context.Context, request AdvisoryRequest) (*Advisory, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	request.NormalizeLocation()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "weather.advisory")
	defer span.End()
	span.SetAttributes(attribute.String("weather.location", request.Location))

	advisory, err := uc.fetchAdvisory(ctx, request.Location)
	outcome := ports.OutcomeCompleted
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		uc.logProviderFailure(request.Location, err)
		fallback := FallbackAdvisory(request.Location)
		advisory = &fallback
		outcome = ports.OutcomeFallback
	}
	span.SetAttributes(attribute.String("weather.outcome", outcome))
	uc.metrics.RecordWeatherAdvisory(ctx, outcome)

	uc.saveRecord(ctx, request.SessionID, request.Location, advisory)
	return advisory, nil
}

func (uc *UseCase) fetchAdvisory(ctx context.Context, location string) (*Advisory, error) {
	if !uc.provider.IsConfigured() {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("weather provider %s is not configured", uc.provider.GetProviderName()), nil)
	}

	uc.logger.Debug("Getting weather for location", ports.F("location", location))

	current, err := uc.provider.GetCurrentWeather(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("get current weather: %w", err)
	}
	if current == nil {
		return nil, errors.NewExternalAPIError("weather provider returned no current conditions", nil)
	}
	if err := validateSnapshot(current.WeatherSnapshot); err != nil {
		return nil, errors.NewExternalAPIError("invalid current weather from provider", err)
	}

	forecast, err := uc.provider.GetForecast(ctx, location, uc.forecastCount)
	if err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}
	for _, entry := range forecast {
		if err := validateSnapshot(entry); err != nil {
			return nil, errors.NewExternalAPIError("invalid forecast entry from provider", err)
		}
	}

	advisory := Normalize(current, forecast, uc.now())
	uc.logger.Debug("Weather advisory built",
		ports.F("location", location),
		ports.F("forecast_days", len(advisory.Forecast)),
		ports.F("recommendations", len(advisory.Recommendations)))
	return &advisory, nil
}

func (uc *UseCase) logProviderFailure(location string, err error) {
	switch errors.TypeOf(err) {
	case errors.ConfigurationError:
		uc.logger.Warn("Weather provider is not configured, using fallback advisory",
			ports.F("location", location),
			ports.F("error", err))
	case errors.NotFoundError:
		uc.logger.Info("Location not known to weather provider, using fallback advisory",
			ports.F("location", location),
			ports.F("error", err))
	case errors.ExternalAPIError:
		uc.logger.Error("Weather provider failed, using fallback advisory",
			ports.F("location", location),
			ports.F("error", err))
	default:
		uc.logger.Error("Unexpected weather failure, using fallback advisory",
			ports.F("location", location),
			ports.F("error", err))
	}
}

func (uc *UseCase) saveRecord(ctx context.Context, sessionID, location string, advisory *Advisory) {
	record := &ports.WeatherRecord{
		SessionID:   sessionID,
		Location:    location,
		Temperature: advisory.Current.Temperature.Ptr(),
		Humidity:    advisory.Current.Humidity.Ptr(),
		Description: advisory.Current.Description,
		Timestamp:   uc.now(),
	}
	if err := uc.history.Save(ctx, record); err != nil {
		uc.logger.Warn("Failed to save weather request",
			ports.F("session_id", sessionID),
			ports.F("location", location),
			ports.F("error", err))
	}
}

// GetHistory returns the session's most recent weather lookups, newest first.
func (uc *UseCase) GetHistory(ctx context.Context, sessionID string, limit int) ([]HistoryEntry, error) {
	if !validation.IsNotEmpty(sessionID) {
		return nil, errors.NewValidationError("session id is required")
	}

	records, err := uc.history.FindBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("find weather history: %w", err)
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntry{
			Location:    record.Location,
			Temperature: record.Temperature,
			Humidity:    record.Humidity,
			Description: record.Description,
			Timestamp:   record.Timestamp,
		})
	}
	return entries, nil
}
