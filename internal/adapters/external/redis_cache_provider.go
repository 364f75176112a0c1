package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// DefaultCachePrefix namespaces weather cache keys in a shared Redis database
const DefaultCachePrefix = "weatherdash:cache:"

const clearScanBatch = 100

// RedisCacheProviderAdapter stores serialized reports in Redis with native TTLs.
// Keys live under prefix so Clear leaves the preference hash and other data alone.
type RedisCacheProviderAdapter struct {
	client  redis.UniversalClient
	prefix  string
	counter hitCounter
}

// NewRedisCacheProviderAdapter creates a Redis cache provider on an existing client
func NewRedisCacheProviderAdapter(client redis.UniversalClient, prefix string) (*RedisCacheProviderAdapter, error) {
	if client == nil {
		return nil, errors.NewConfigurationError("redis client cannot be nil", nil)
	}
	if prefix == "" {
		prefix = DefaultCachePrefix
	}
	return &RedisCacheProviderAdapter{client: client, prefix: prefix}, nil
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateCacheKey(key); err != nil {
		return nil, err
	}

	payload, err := r.client.Get(ctx, r.prefix+key).Bytes()
	switch {
	case stderrors.Is(err, redis.Nil):
		r.counter.miss()
		return nil, errors.NewNotFoundError("cache miss")
	case err != nil:
		return nil, errors.NewStorageError("read cached report", err)
	}

	r.counter.hit()
	return payload, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateCacheWrite(key, value, ttl); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return errors.NewStorageError("write cached report", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if err := validateCacheKey(key); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.NewStorageError("delete cached report", err)
	}
	return nil
}

// Clear removes every key under the cache prefix, one SCAN batch at a time
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", clearScanBatch).Result()
		if err != nil {
			return errors.NewStorageError("scan cached reports", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return errors.NewStorageError("clear cached reports", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	return r.counter.snapshot()
}

// Ping checks the Redis connection
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("redis ping failed", err)
	}
	return nil
}
