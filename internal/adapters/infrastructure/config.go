package infrastructure

import (
	"time"

	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetDatabaseConfig returns database configuration
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver:     c.config.Database.Driver,
		Host:       c.config.Database.Host,
		Port:       c.config.Database.Port,
		User:       c.config.Database.User,
		Password:   c.config.Database.Password,
		Name:       c.config.Database.Name,
		SSLMode:    c.config.Database.SSLMode,
		SQLitePath: c.config.Database.SQLitePath,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:      c.config.Server.Port,
		StaticDir: c.config.Server.StaticDir,
	}
}

// GetWeatherConfig returns weather configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache: c.config.Weather.EnableCache,
		CacheTTL:    time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:  c.config.Cache.Type,
		Redis: c.GetRedisConfig(),
	}
}

// GetRedisConfig returns the Redis connection shared by the cache and the preference store
func (c *ConfigProviderAdapter) GetRedisConfig() ports.RedisConfig {
	return ports.RedisConfig{
		Addr:         c.config.Redis.Addr,
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	}
}

// GetPreferencesConfig returns preference storage configuration
func (c *ConfigProviderAdapter) GetPreferencesConfig() ports.PreferencesConfig {
	return ports.PreferencesConfig{
		StoreType: c.config.Preferences.StoreType,
		Namespace: c.config.Preferences.Namespace,
	}
}

// GetDashboardConfig returns the dashboard view defaults.
// An unresolvable timezone falls back to the process local zone.
func (c *ConfigProviderAdapter) GetDashboardConfig() ports.DashboardConfig {
	d := c.config.Dashboard
	loc, err := d.Location()
	if err != nil {
		loc = time.Local
	}

	return ports.DashboardConfig{
		Location:      loc,
		DefaultCenter: ports.Coordinates{Lat: d.DefaultLat, Lon: d.DefaultLon},
		DefaultZoom:   d.DefaultZoom,
		SearchZoom:    d.SearchZoom,
		HourlyCount:   d.HourlyCount,
		ClockInterval: time.Duration(d.ClockIntervalSeconds) * time.Second,
	}
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)
