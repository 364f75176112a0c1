package ports

import (
	"context"
	"time"
)

// WeatherConfig controls report caching
type WeatherConfig struct {
	EnableCache bool
	CacheTTL    time.Duration
}

// ServerConfig is the HTTP listener and the static dashboard directory
type ServerConfig struct {
	Port      int
	StaticDir string
}

// DatabaseConfig locates the SQL preference store. SQLitePath is used by the sqlite driver.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// CacheConfig selects the report cache backend
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig is a Redis connection; timeouts are seconds
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// PreferencesConfig selects the preference backend and the key namespace
type PreferencesConfig struct {
	StoreType string
	Namespace string
}

// DashboardConfig holds the view defaults: time zone, map framing, hourly strip length and clock period
type DashboardConfig struct {
	Location      *time.Location
	DefaultCenter Coordinates
	DefaultZoom   int
	SearchZoom    int
	HourlyCount   int
	ClockInterval time.Duration
}

// ConfigProvider exposes configuration sections to the core and adapters
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
	GetPreferencesConfig() PreferencesConfig
	GetDashboardConfig() DashboardConfig
}

// Logger is the structured logger used by the core
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is one key/value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector receives counters from the core
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordWeatherAPICall(ctx context.Context, provider string, success bool)
	RecordPreferenceWrite(ctx context.Context, key string)
	RecordNotification(ctx context.Context)
}
