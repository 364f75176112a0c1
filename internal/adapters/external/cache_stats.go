package external

import (
	"sync/atomic"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// hitCounter counts report cache lookups
type hitCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (h *hitCounter) hit()  { h.hits.Add(1) }
func (h *hitCounter) miss() { h.misses.Add(1) }

func (h *hitCounter) snapshot() ports.CacheStats {
	hits, misses := h.hits.Load(), h.misses.Load()
	stats := ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    hits + misses,
		LastUpdated: time.Now(),
	}
	if stats.TotalOps > 0 {
		stats.HitRatio = float64(hits) / float64(stats.TotalOps)
	}
	return stats
}

func validateCacheKey(key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	return nil
}

func validateCacheWrite(key string, value []byte, ttl time.Duration) error {
	if err := validateCacheKey(key); err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	return nil
}
