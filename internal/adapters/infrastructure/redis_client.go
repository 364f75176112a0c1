package infrastructure

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const redisConnectTimeout = 5 * time.Second

// NewRedisClient connects to Redis and verifies the connection with a ping.
// Timeouts in cfg are seconds.
func NewRedisClient(cfg ports.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.NewConfigurationError("redis address cannot be empty", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return client, nil
}

// RedisHealthChecker pings Redis
type RedisHealthChecker struct {
	client    redis.UniversalClient
	component string
}

// NewRedisHealthChecker creates a health checker reporting as component
func NewRedisHealthChecker(client redis.UniversalClient, component string) *RedisHealthChecker {
	return &RedisHealthChecker{client: client, component: component}
}

// Check verifies Redis connectivity
func (r *RedisHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.NewHealthStatus(r.component)
	err := r.client.Ping(ctx).Err()
	status.Details["connected"] = err == nil
	if err != nil {
		status.Fail(err.Error())
	}
	return status
}
