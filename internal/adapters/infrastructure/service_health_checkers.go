package infrastructure

import (
	"context"

	"kisankalyan.app/internal/ports"
)

// ProviderHealthChecker reports whether an outbound provider has credentials.
// A provider without credentials is still healthy: its callers degrade to
// canned responses, so the detail only records the mode.
type ProviderHealthChecker struct {
	component string
	provider  namedProvider
}

func NewCompletionHealthChecker(provider ports.CompletionProvider) *ProviderHealthChecker {
	return &ProviderHealthChecker{component: "completion", provider: provider}
}

func NewWeatherAPIHealthChecker(provider ports.WeatherProvider) *ProviderHealthChecker {
	return &ProviderHealthChecker{component: "weatherAPI", provider: provider}
}

// Check inspects provider configuration without calling it.
func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: p.component,
		Status:    ports.StatusHealthy,
		Details:   map[string]interface{}{},
	}

	if p.provider == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = p.component + " provider is not available"
		status.Details["configured"] = false
		return status
	}

	configured := p.provider.IsConfigured()
	status.Details["provider"] = p.provider.GetProviderName()
	status.Details["configured"] = configured
	if configured {
		status.Details["mode"] = "live"
	} else {
		status.Details["mode"] = "fallback"
	}
	return status
}

type pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker reports the configured cache backend, pinging it when the
// backend supports that.
type CacheHealthChecker struct {
	cacheType string
	cache     ports.CacheProvider
}

func NewCacheHealthChecker(cacheType string, cache ports.CacheProvider) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, cache: cache}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"type":    c.cacheType,
			"enabled": c.cache != nil,
		},
	}

	if p, ok := c.cache.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			status.Status = ports.StatusUnhealthy
			status.Error = err.Error()
		}
	}
	return status
}
