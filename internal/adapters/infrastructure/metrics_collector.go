package infrastructure

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"kisankalyan.app/internal/ports"
)

const metricsNamespace = "kisankalyan"

// PrometheusMetricsCollector implements the MetricsCollector port with
// Prometheus counters and histograms registered on a caller-supplied registry.
type PrometheusMetricsCollector struct {
	chatResponses     *prometheus.CounterVec
	weatherAdvisories *prometheus.CounterVec
	providerCalls     *prometheus.CounterVec
	providerLatency   *prometheus.HistogramVec
	cacheHits         *prometheus.CounterVec
	cacheMisses       *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the collectors on reg. Passing the
// same registry twice panics, as promauto does.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		chatResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "chat_responses_total",
			Help:      "Chat responses by detected topic and outcome",
		}, []string{"topic", "outcome"}),
		weatherAdvisories: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "weather_advisories_total",
			Help:      "Weather advisories by outcome",
		}, []string{"outcome"}),
		providerCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "provider_calls_total",
			Help:      "Outbound provider calls by provider and success",
		}, []string{"provider", "success"}),
		providerLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "provider_call_duration_seconds",
			Help:      "Outbound provider call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_hits_total",
			Help:      "The total number of cache hits",
		}, []string{"cache"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_misses_total",
			Help:      "The total number of cache misses",
		}, []string{"cache"}),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(_ context.Context, cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(_ context.Context, cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

func (m *PrometheusMetricsCollector) RecordProviderCall(_ context.Context, provider string, success bool, duration time.Duration) {
	m.providerCalls.WithLabelValues(provider, strconv.FormatBool(success)).Inc()
	m.providerLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordChatResponse(_ context.Context, topic, outcome string) {
	m.chatResponses.WithLabelValues(topic, outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordWeatherAdvisory(_ context.Context, outcome string) {
	m.weatherAdvisories.WithLabelValues(outcome).Inc()
}

// MetricsSummaryAdapter builds the JSON metrics summary served next to the
// Prometheus exposition.
type MetricsSummaryAdapter struct {
	completion   ports.CompletionProvider
	weather      ports.WeatherProvider
	cacheMetrics ports.CacheMetrics
	cacheEnabled bool
}

// MetricsSummaryConfig holds the configuration for creating the metrics summary
type MetricsSummaryConfig struct {
	Completion   ports.CompletionProvider
	Weather      ports.WeatherProvider
	CacheMetrics ports.CacheMetrics
	CacheEnabled bool
}

func NewMetricsSummaryAdapter(config MetricsSummaryConfig) *MetricsSummaryAdapter {
	return &MetricsSummaryAdapter{
		completion:   config.Completion,
		weather:      config.Weather,
		cacheMetrics: config.CacheMetrics,
		cacheEnabled: config.CacheEnabled,
	}
}

// GetMetrics returns provider configuration and, when a cache is wired, its stats.
func (m *MetricsSummaryAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{
		"completion": providerInfo(m.completion),
		"weather":    providerInfo(m.weather),
	}
	metrics["weather"].(map[string]interface{})["cache_enabled"] = m.cacheEnabled

	if m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"hits":       stats.Hits,
			"misses":     stats.Misses,
			"total_ops":  stats.TotalOps,
			"hit_ratio":  stats.HitRatio,
			"operations": stats.Operations,
			"updated":    stats.LastUpdated,
		}
	}

	return metrics, nil
}

type namedProvider interface {
	IsConfigured() bool
	GetProviderName() string
}

func providerInfo(provider namedProvider) map[string]interface{} {
	if provider == nil {
		return map[string]interface{}{"configured": false}
	}
	return map[string]interface{}{
		"provider":   provider.GetProviderName(),
		"configured": provider.IsConfigured(),
	}
}
