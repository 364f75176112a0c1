package database

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Preference store types accepted in ports.PreferencesConfig.StoreType
const (
	StoreTypeMemory = "memory"
	StoreTypeRedis  = "redis"
	StoreTypeSQL    = "sql"
)

// StoreBackends carries the connections a store may be built on
type StoreBackends struct {
	DB    *gorm.DB
	Redis redis.UniversalClient
}

// NewPreferenceStore builds the KeyValueStore selected by cfg.StoreType
func NewPreferenceStore(cfg ports.PreferencesConfig, backends StoreBackends) (ports.KeyValueStore, error) {
	switch cfg.StoreType {
	case StoreTypeMemory:
		return NewMemoryPreferenceStoreAdapter(), nil
	case StoreTypeRedis:
		if backends.Redis == nil {
			return nil, errors.NewConfigurationError("redis preference store requires a redis connection", nil)
		}
		return NewRedisPreferenceStoreAdapter(backends.Redis, DefaultPreferencesHash)
	case StoreTypeSQL:
		if backends.DB == nil {
			return nil, errors.NewConfigurationError("sql preference store requires a database connection", nil)
		}
		return NewPreferenceRepositoryAdapter(backends.DB), nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported preference store type: %q", cfg.StoreType), nil)
	}
}
