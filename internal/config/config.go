package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

// Config is read from the environment by envconfig and checked with validate tags.
// Redis is only checked when a component uses it.
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Log         LogConfig         `split_words:"true"`
	Database    DatabaseConfig    `split_words:"true"`
	Weather     WeatherConfig     `split_words:"true"`
	Geocoder    GeocoderConfig    `split_words:"true"`
	Cache       CacheConfig       `split_words:"true"`
	Redis       RedisConfig       `split_words:"true" validate:"-"`
	Preferences PreferencesConfig `split_words:"true"`
	Dashboard   DashboardConfig   `split_words:"true"`
}

type ServerConfig struct {
	Port      int    `envconfig:"SERVER_PORT" default:"8080" validate:"min=1,max=65535"`
	StaticDir string `envconfig:"DASHBOARD_STATIC_DIR" default:""`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite" validate:"oneof=postgres sqlite"`
	Host       string `envconfig:"DB_HOST" default:"localhost" validate:"required_if=Driver postgres"`
	Port       int    `envconfig:"DB_PORT" default:"5432" validate:"required_if=Driver postgres,omitempty,max=65535"`
	User       string `envconfig:"DB_USER" default:"postgres" validate:"required_if=Driver postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherdash" validate:"required_if=Driver postgres"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable" validate:"required_if=Driver postgres,omitempty,oneof=disable require verify-ca verify-full"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"weatherdash.db"`
}

type WeatherConfig struct {
	APIKey                string   `envconfig:"WEATHER_API_KEY"`
	BaseURL               string   `envconfig:"WEATHER_API_BASE_URL" default:"https://api.weatherapi.com/v1" validate:"required_with=APIKey,omitempty,httpurl"`
	OpenWeatherMapKey     string   `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string   `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5" validate:"required_with=OpenWeatherMapKey,omitempty,httpurl"`
	ProviderOrder         []string `envconfig:"WEATHER_PROVIDER_ORDER" default:"openweathermap,weatherapi" validate:"dive,oneof=openweathermap weatherapi"`
	EnableCache           bool     `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	EnableLogging         bool     `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	CacheTTLMinutes       int      `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"10" validate:"min=1,max=1440"`
	LogFilePath           string   `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
	RequestsPerSecond     float64  `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"5" validate:"gt=0"`
	RateLimitBurst        int      `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"10" validate:"min=1"`
	BreakerFailures       uint32   `envconfig:"WEATHER_BREAKER_FAILURES" default:"5" validate:"min=1"`
	BreakerTimeoutSeconds int      `envconfig:"WEATHER_BREAKER_TIMEOUT_SECONDS" default:"30" validate:"min=1"`
}

type GeocoderConfig struct {
	BaseURL   string `envconfig:"NOMINATIM_BASE_URL" default:"https://nominatim.openstreetmap.org" validate:"httpurl"`
	UserAgent string `envconfig:"NOMINATIM_USER_AGENT" default:"weatherdash/1.0" validate:"required"`
}

type CacheConfig struct {
	Type string `envconfig:"CACHE_TYPE" default:"memory" validate:"oneof=memory redis"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0" validate:"min=0,max=15"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5" validate:"min=1"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3" validate:"min=1"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3" validate:"min=1"`
}

type PreferencesConfig struct {
	StoreType string `envconfig:"PREFERENCES_STORE" default:"sql" validate:"oneof=memory redis sql"`
	Namespace string `envconfig:"PREFERENCES_NAMESPACE" default:"dashboard" validate:"excludes=:"`
}

type DashboardConfig struct {
	Timezone             string  `envconfig:"DASHBOARD_TIMEZONE" default:"" validate:"omitempty,timezone"`
	DefaultLat           float64 `envconfig:"DASHBOARD_DEFAULT_LAT" default:"20.5937" validate:"min=-90,max=90"`
	DefaultLon           float64 `envconfig:"DASHBOARD_DEFAULT_LON" default:"78.9629" validate:"min=-180,max=180"`
	DefaultZoom          int     `envconfig:"DASHBOARD_DEFAULT_ZOOM" default:"5" validate:"min=1,max=19"`
	SearchZoom           int     `envconfig:"DASHBOARD_SEARCH_ZOOM" default:"8" validate:"min=1,max=19"`
	HourlyCount          int     `envconfig:"DASHBOARD_HOURLY_COUNT" default:"24" validate:"min=1"`
	ClockIntervalSeconds int     `envconfig:"DASHBOARD_CLOCK_INTERVAL_SECONDS" default:"1" validate:"min=1"`
}

// Location resolves Timezone; empty means the process local zone
func (d DashboardConfig) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("DASHBOARD_TIMEZONE %q is not a known zone", d.Timezone), err)
	}
	return loc, nil
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every section. Errors name the environment variable at fault.
func (c *Config) Validate() error {
	if c.Weather.APIKey == "" && c.Weather.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("at least one weather provider API key must be configured", nil)
	}
	if err := checkStruct(c); err != nil {
		return err
	}
	if c.UsesRedis() {
		return checkStruct(&c.Redis)
	}
	return nil
}

// UsesRedis reports whether any component is configured to use Redis
func (c *Config) UsesRedis() bool {
	return c.Cache.Type == "redis" || c.Preferences.StoreType == "redis"
}
