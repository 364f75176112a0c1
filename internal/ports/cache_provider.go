package ports

import (
	"context"
	"time"
)

// CacheProvider stores opaque payloads with a TTL. Misses are NotFound errors.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// CacheStatsProvider is implemented by caches that count hits and misses
type CacheStatsProvider interface {
	GetStats() CacheStats
}
