package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// DefaultPreferencesHash is the Redis hash holding every preference field
const DefaultPreferencesHash = "weatherdash:preferences"

// RedisPreferenceStoreAdapter implements KeyValueStore as fields of one Redis hash
type RedisPreferenceStoreAdapter struct {
	client redis.UniversalClient
	hash   string
}

// NewRedisPreferenceStoreAdapter creates a Redis backed preference store
func NewRedisPreferenceStoreAdapter(client redis.UniversalClient, hash string) (*RedisPreferenceStoreAdapter, error) {
	if client == nil {
		return nil, errors.NewConfigurationError("redis client cannot be nil", nil)
	}
	if hash == "" {
		hash = DefaultPreferencesHash
	}
	return &RedisPreferenceStoreAdapter{client: client, hash: hash}, nil
}

// Get retrieves the value stored under key
func (r *RedisPreferenceStoreAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.NewValidationError("preference key cannot be empty")
	}

	val, err := r.client.HGet(ctx, r.hash, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, errors.NewStorageError("redis hget operation failed", err)
	}
	return val, true, nil
}

// Set stores value under key
func (r *RedisPreferenceStoreAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	if err := r.client.HSet(ctx, r.hash, key, value).Err(); err != nil {
		return errors.NewStorageError("redis hset operation failed", err)
	}
	return nil
}

var _ ports.KeyValueStore = (*RedisPreferenceStoreAdapter)(nil)
