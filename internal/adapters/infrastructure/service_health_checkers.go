package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// WeatherProviderHealthChecker reports the configured provider chain
type WeatherProviderHealthChecker struct {
	weatherProvider ports.WeatherProviderManager
}

// NewWeatherProviderHealthChecker creates a new provider chain health checker
func NewWeatherProviderHealthChecker(weatherProvider ports.WeatherProviderManager) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{weatherProvider: weatherProvider}
}

// Check is unhealthy when no upstream is configured. It does not call the upstreams.
func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.NewHealthStatus("weather_providers")
	if w.weatherProvider == nil {
		status.Fail("weather provider is not available")
		return status
	}

	info := w.weatherProvider.GetProviderInfo()
	for k, v := range info {
		status.Details[k] = v
	}
	if total, ok := info["total_providers"].(int); ok && total == 0 {
		status.Fail("no weather provider API key configured")
	}

	return status
}
