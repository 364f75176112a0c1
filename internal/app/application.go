package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase *weather.UseCase
	preferences    *preferences.Store
	controller     *dashboard.Controller

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports     *ports.ApplicationPorts
	scheduler *gocron.Scheduler
}

// NewApplication loads the configuration from the environment and wires the application
func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg, ContainerOptions{})
}

// NewApplicationWithConfig wires the application from cfg; opts override adapters (for testing)
func NewApplicationWithConfig(cfg *config.Config, opts ContainerOptions) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	if err := app.initializeScheduler(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize scheduler: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Cache:           a.ports.WeatherCache,
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	store, err := preferences.NewStore(preferences.StoreDependencies{
		KV:        a.ports.PreferenceStore,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.Metrics,
		Namespace: a.ports.ConfigProvider.GetPreferencesConfig().Namespace,
	})
	if err != nil {
		return fmt.Errorf("create preference store: %w", err)
	}
	a.preferences = store

	view := a.ports.ConfigProvider.GetDashboardConfig()
	center := view.DefaultCenter
	controller, err := dashboard.NewController(dashboard.ControllerDependencies{
		Fetcher:     a.weatherUseCase,
		Geocoder:    a.ports.Geocoder,
		Preferences: a.preferences,
		Display:     a.ports.Display,
		Map:         a.ports.Map,
		Logger:      a.ports.Logger,
		Metrics:     a.ports.Metrics,
		Options: dashboard.Options{
			Location:      view.Location,
			DefaultCenter: &center,
			DefaultZoom:   view.DefaultZoom,
			SearchZoom:    view.SearchZoom,
			HourlyCount:   view.HourlyCount,
		},
	})
	if err != nil {
		return fmt.Errorf("create dashboard controller: %w", err)
	}
	a.controller = controller

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	checkers := map[string]ports.HealthChecker{
		"weather_providers": infrastructure.NewWeatherProviderHealthChecker(a.ports.WeatherProvider),
	}
	if db := a.deps.Database(); db != nil {
		checkers["database"] = infrastructure.NewDatabaseHealthChecker(db)
	}
	if client := a.deps.Redis(); client != nil {
		checkers["redis"] = infrastructure.NewRedisHealthChecker(client, "redis")
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       checkers,
		ConfigProvider: a.ports.ConfigProvider,
	})

	collector := a.deps.MetricsCollector()
	serverCfg := a.ports.ConfigProvider.GetServerConfig()

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:      serverCfg.Port,
			StaticDir: serverCfg.StaticDir,
		},
		Controller:          a.controller,
		Snapshots:           a.deps.Surface(),
		MetricsReporter:     infrastructure.NewMetricsReporterAdapter(a.ports.WeatherMetrics),
		RequestObserver:     collector,
		SystemHealthChecker: systemHealthChecker,
		MetricsHandler:      collector.Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", serverCfg.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// initializeScheduler registers the clock refresh; it starts with Start
func (a *Application) initializeScheduler() error {
	view := a.ports.ConfigProvider.GetDashboardConfig()
	interval := view.ClockInterval
	if interval <= 0 {
		interval = time.Second
	}

	a.scheduler = gocron.NewScheduler(view.Location)
	a.scheduler.SingletonModeAll()
	if _, err := a.scheduler.Every(interval).Do(a.tick); err != nil {
		return fmt.Errorf("schedule clock refresh: %w", err)
	}
	return nil
}

func (a *Application) tick() {
	a.controller.Tick(time.Now())
}

// Start renders the initial dashboard, starts the clock and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.controller.Start(ctx)
	a.scheduler.StartAsync()

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.scheduler.Stop()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Close releases resources without an HTTP server having been started
func (a *Application) Close() error {
	a.scheduler.Stop()
	return a.deps.Cleanup()
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Controller returns the dashboard controller
func (a *Application) Controller() *dashboard.Controller {
	return a.controller
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}
