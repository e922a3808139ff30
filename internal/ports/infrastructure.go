package ports

import (
	"context"
	"time"
)

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Outcome labels for responses that may have degraded.
const (
	OutcomeCompleted = "completed"
	OutcomeFallback  = "fallback"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cache string)
	RecordCacheMiss(ctx context.Context, cache string)
	RecordProviderCall(ctx context.Context, provider string, success bool, duration time.Duration)
	RecordChatResponse(ctx context.Context, topic, outcome string)
	RecordWeatherAdvisory(ctx context.Context, outcome string)
}
