package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// WeatherCacheAdapter stores weather reports as JSON in a byte cache
type WeatherCacheAdapter struct {
	store ports.CacheProvider
}

func NewWeatherCacheAdapter(store ports.CacheProvider) *WeatherCacheAdapter {
	return &WeatherCacheAdapter{store: store}
}

// Get decodes the report under key. A payload that no longer decodes is a StorageError.
func (w *WeatherCacheAdapter) Get(ctx context.Context, key string) (*ports.WeatherReport, error) {
	payload, err := w.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	report := new(ports.WeatherReport)
	if err := json.Unmarshal(payload, report); err != nil {
		return nil, errors.NewStorageError("decode cached report "+key, err)
	}
	return report, nil
}

func (w *WeatherCacheAdapter) Set(ctx context.Context, key string, report *ports.WeatherReport, ttl time.Duration) error {
	if report == nil {
		return errors.NewValidationError("weather report cannot be nil")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return errors.NewStorageError("encode report "+key, err)
	}
	return w.store.Set(ctx, key, payload, ttl)
}

// GetStats returns the backing cache's counters, or zeros when it keeps none
func (w *WeatherCacheAdapter) GetStats() ports.CacheStats {
	return statsOf(w.store)
}

func statsOf(v any) ports.CacheStats {
	if s, ok := v.(ports.CacheStatsProvider); ok {
		return s.GetStats()
	}
	return ports.CacheStats{LastUpdated: time.Now()}
}

// WeatherMetricsAdapter reports the provider chain and cache counters to /api/metrics
type WeatherMetricsAdapter struct {
	cache        ports.WeatherCache
	chain        ports.WeatherProviderManager
	cacheEnabled bool
}

func NewWeatherMetricsAdapter(cache ports.WeatherCache, chain ports.WeatherProviderManager, cacheEnabled bool) ports.WeatherMetrics {
	return &WeatherMetricsAdapter{cache: cache, chain: chain, cacheEnabled: cacheEnabled}
}

func (m *WeatherMetricsAdapter) GetProviderInfo() map[string]interface{} {
	info := m.chain.GetProviderInfo()
	info["cache_enabled"] = m.cacheEnabled
	return info
}

func (m *WeatherMetricsAdapter) GetCacheMetrics() (ports.CacheStats, error) {
	return statsOf(m.cache), nil
}
