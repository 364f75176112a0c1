package infrastructure

import (
	"context"

	"weatherdash.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker.
// Nil checkers are skipped.
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker, len(config.Checkers))
	for name, checker := range config.Checkers {
		if checker != nil {
			checkers[name] = checker
		}
	}
	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		cfg := ports.NewHealthStatus("config")
		cfg.Details["cacheType"] = s.configProvider.GetCacheConfig().Type
		cfg.Details["cacheEnabled"] = s.configProvider.GetWeatherConfig().EnableCache
		cfg.Details["preferencesStore"] = s.configProvider.GetPreferencesConfig().StoreType
		cfg.Details["databaseDriver"] = s.configProvider.GetDatabaseConfig().Driver
		results["config"] = cfg
	}

	return results
}

// Healthy reports whether every result is healthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, r := range results {
		if r.Status != ports.StatusHealthy {
			return false
		}
	}
	return true
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
