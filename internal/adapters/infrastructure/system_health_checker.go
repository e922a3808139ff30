package infrastructure

import (
	"context"

	"kisankalyan.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker   ports.HealthChecker
	CompletionChecker ports.HealthChecker
	WeatherAPIChecker ports.HealthChecker
	CacheChecker      ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker. Nil checkers are skipped.
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	for name, checker := range map[string]ports.HealthChecker{
		"database":   config.DatabaseChecker,
		"completion": config.CompletionChecker,
		"weatherAPI": config.WeatherAPIChecker,
		"cache":      config.CacheChecker,
	} {
		if checker != nil {
			checkers[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}
	return results
}

// AllHealthy reports whether every status in results is healthy.
func AllHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != ports.StatusHealthy {
			return false
		}
	}
	return true
}
