package external

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Cache types accepted in ports.CacheConfig.Type
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)

type CacheProviderFactory struct {
	redisClient redis.UniversalClient
}

// NewCacheProviderFactory creates a factory. A nil redisClient makes the
// factory dial Redis itself from the cache config.
func NewCacheProviderFactory(redisClient redis.UniversalClient) *CacheProviderFactory {
	return &CacheProviderFactory{redisClient: redisClient}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg ports.CacheConfig) (ports.CacheProvider, error) {
	switch cfg.Type {
	case CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case CacheTypeRedis:
		client := f.redisClient
		if client == nil {
			c, err := infrastructure.NewRedisClient(cfg.Redis)
			if err != nil {
				return nil, err
			}
			client = c
		}
		return NewRedisCacheProviderAdapter(client, DefaultCachePrefix)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %q", cfg.Type), nil)
	}
}
