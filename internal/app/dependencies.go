package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
)

// DependencyContainer builds and owns the adapters behind the application ports
type DependencyContainer struct {
	config     *config.Config
	db         *gorm.DB
	redis      *redis.Client
	fileLogger *infrastructure.FileLoggerAdapter
	collector  *infrastructure.PrometheusMetricsCollector
	surface    *display.SnapshotSurface
	ports      *ports.ApplicationPorts
}

// ContainerOptions overrides adapters that would otherwise be built from config
type ContainerOptions struct {
	// HTTPClient is used for the weather providers and the geocoder
	HTTPClient external.HTTPClient
	// Redis replaces the client dialed from config; the container closes it
	Redis *redis.Client
	// Surface replaces the default snapshot surface
	Surface *display.SnapshotSurface
}

func NewDependencyContainer(cfg *config.Config, opts ContainerOptions) (*DependencyContainer, error) {
	c := &DependencyContainer{
		config:  cfg,
		redis:   opts.Redis,
		surface: opts.Surface,
	}
	if c.surface == nil {
		c.surface = display.NewSnapshotSurface()
	}

	if err := c.initializeStorage(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	if err := c.initializePorts(opts); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return c, nil
}

func (c *DependencyContainer) initializeStorage() error {
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	if c.redis == nil && c.config.UsesRedis() {
		slog.Info("Connecting to Redis...", "addr", c.config.Redis.Addr)
		client, err := infrastructure.NewRedisClient(configProvider.GetRedisConfig())
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		c.redis = client
	}

	if c.config.Preferences.StoreType == database.StoreTypeSQL {
		slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)
		db, err := database.Open(configProvider.GetDatabaseConfig())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		c.db = db
		slog.Info("Database connection established successfully")
	}

	return nil
}

func (c *DependencyContainer) initializePorts(opts ContainerOptions) error {
	slog.Info("Initializing ports...")

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	appLogger := c.buildLogger()

	c.collector = infrastructure.NewPrometheusMetricsCollector()

	weatherCfg := c.config.Weather
	breaker := external.DefaultBreakerSettings()
	breaker.ConsecutiveFailures = weatherCfg.BreakerFailures
	breaker.Timeout = time.Duration(weatherCfg.BreakerTimeoutSeconds) * time.Second

	providerManager := external.NewWeatherProviderManagerAdapter(external.ProviderManagerConfig{
		WeatherAPIKey:     weatherCfg.APIKey,
		WeatherAPIBaseURL: weatherCfg.BaseURL,
		OpenWeatherKey:    weatherCfg.OpenWeatherMapKey,
		OpenWeatherURL:    weatherCfg.OpenWeatherMapBaseURL,
		ProviderOrder:     weatherCfg.ProviderOrder,
		RequestsPerSecond: weatherCfg.RequestsPerSecond,
		Burst:             weatherCfg.RateLimitBurst,
		Breaker:           &breaker,
		Client:            opts.HTTPClient,
		Logger:            appLogger,
	})

	if weatherCfg.EnableLogging {
		providerManager = external.NewWeatherProviderManagerLoggingDecorator(providerManager, appLogger)
		slog.Info("Weather provider logging enabled")
	}

	var redisClient redis.UniversalClient
	if c.redis != nil {
		redisClient = c.redis
	}

	cacheProvider, err := external.NewCacheProviderFactory(redisClient).CreateCacheProvider(configProvider.GetCacheConfig())
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	weatherCache := external.NewWeatherCacheAdapter(cacheProvider)
	slog.Info("Cache provider initialized", "type", c.config.Cache.Type)

	kv, err := database.NewPreferenceStore(configProvider.GetPreferencesConfig(), database.StoreBackends{
		DB:    c.db,
		Redis: redisClient,
	})
	if err != nil {
		return fmt.Errorf("create preference store: %w", err)
	}
	slog.Info("Preference store initialized", "type", c.config.Preferences.StoreType)

	geocoder := external.NewNominatimGeocoderAdapter(external.NominatimGeocoderParams{
		BaseURL:   c.config.Geocoder.BaseURL,
		UserAgent: c.config.Geocoder.UserAgent,
		Client:    opts.HTTPClient,
		Logger:    appLogger,
	})

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: providerManager,
		WeatherCache:    weatherCache,
		WeatherMetrics:  external.NewWeatherMetricsAdapter(weatherCache, providerManager, weatherCfg.EnableCache),
		Geocoder:        geocoder,

		PreferenceStore: kv,
		Display:         c.surface,
		Map:             c.surface,

		ConfigProvider: configProvider,
		Logger:         appLogger,
		Metrics:        c.collector,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// buildLogger returns the slog adapter, teed to the provider log file when file logging is on
func (c *DependencyContainer) buildLogger() ports.Logger {
	base := infrastructure.NewSlogLoggerAdapter(nil)

	w := c.config.Weather
	if !w.EnableLogging || w.LogFilePath == "" {
		return base
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(w.LogFilePath, logger.ParseLevel(c.config.Log.Level))
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		return base
	}
	c.fileLogger = fileLogger
	slog.Info("File logging enabled", "path", fileLogger.Path())
	return infrastructure.NewMultiLogger(base, fileLogger)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

func (c *DependencyContainer) Redis() *redis.Client {
	return c.redis
}

// MetricsCollector returns the Prometheus collector shared by the HTTP layer and the core
func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.collector
}

// Surface returns the in-memory display and map
func (c *DependencyContainer) Surface() *display.SnapshotSurface {
	return c.surface
}

// Cleanup releases the database, Redis and log file handles
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.db != nil {
		keep(database.Close(c.db))
		c.db = nil
	}
	if c.redis != nil {
		keep(c.redis.Close())
		c.redis = nil
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
		c.fileLogger = nil
	}
	return firstErr
}
