package external

import (
	"context"
	"time"

	"kisankalyan.app/internal/ports"
)

// InstrumentedWeatherProvider records latency and success of every call to
// the wrapped provider.
type InstrumentedWeatherProvider struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

func NewInstrumentedWeatherProvider(provider ports.WeatherProvider, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &InstrumentedWeatherProvider{provider: provider, metrics: metrics}
}

func (p *InstrumentedWeatherProvider) GetCurrentWeather(ctx context.Context, location string) (*ports.CurrentWeather, error) {
	start := time.Now()
	current, err := p.provider.GetCurrentWeather(ctx, location)
	p.metrics.RecordProviderCall(ctx, p.provider.GetProviderName(), err == nil, time.Since(start))
	return current, err
}

func (p *InstrumentedWeatherProvider) GetForecast(ctx context.Context, location string, count int) ([]ports.WeatherSnapshot, error) {
	start := time.Now()
	forecast, err := p.provider.GetForecast(ctx, location, count)
	p.metrics.RecordProviderCall(ctx, p.provider.GetProviderName(), err == nil, time.Since(start))
	return forecast, err
}

func (p *InstrumentedWeatherProvider) IsConfigured() bool {
	return p.provider.IsConfigured()
}

func (p *InstrumentedWeatherProvider) GetProviderName() string {
	return p.provider.GetProviderName()
}

// InstrumentedCompletionProvider records latency and success of every
// completion call.
type InstrumentedCompletionProvider struct {
	provider ports.CompletionProvider
	metrics  ports.MetricsCollector
}

func NewInstrumentedCompletionProvider(provider ports.CompletionProvider, metrics ports.MetricsCollector) ports.CompletionProvider {
	return &InstrumentedCompletionProvider{provider: provider, metrics: metrics}
}

func (p *InstrumentedCompletionProvider) Complete(ctx context.Context, request ports.CompletionRequest) (string, error) {
	start := time.Now()
	text, err := p.provider.Complete(ctx, request)
	p.metrics.RecordProviderCall(ctx, p.provider.GetProviderName(), err == nil, time.Since(start))
	return text, err
}

func (p *InstrumentedCompletionProvider) IsConfigured() bool {
	return p.provider.IsConfigured()
}

func (p *InstrumentedCompletionProvider) GetProviderName() string {
	return p.provider.GetProviderName()
}
