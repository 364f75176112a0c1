// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to dashboard actions
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port      int
	StaticDir string
}

// DashboardController is the set of user actions the HTTP adapter exposes
type DashboardController interface {
	Search(ctx context.Context, city string) error
	QuickSelect(ctx context.Context, city string) error
	Geolocate(ctx context.Context, at ports.Coordinates) error
	GeolocationFailed(ctx context.Context, reason dashboard.GeolocationFailure) error
	SetTheme(ctx context.Context, theme preferences.Theme) error
	SetUnit(ctx context.Context, kind preferences.UnitKind, value string) error
	AddFavorite(ctx context.Context) error
	RemoveFavorite(ctx context.Context, city string) error
	Viewport() dashboard.MapViewportState
	Preferences() preferences.Preferences
}

// SnapshotSource returns what is currently rendered
type SnapshotSource interface {
	Snapshot() display.Snapshot
}

type MetricsReporter interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// RequestObserver records served requests
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	controller    DashboardController
	snapshots     SnapshotSource
	metrics       MetricsReporter
	health        ports.SystemHealthChecker
	metricsHandle http.Handler
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	Controller          DashboardController
	Snapshots           SnapshotSource
	MetricsReporter     MetricsReporter
	RequestObserver     RequestObserver
	SystemHealthChecker ports.SystemHealthChecker
	// MetricsHandler serves /metrics; nil means the default Prometheus registry
	MetricsHandler http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, errors.NewConfigurationError("register request validators", err)
	}

	metricsHandle := opts.MetricsHandler
	if metricsHandle == nil {
		metricsHandle = promhttp.Handler()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID())
	if opts.RequestObserver != nil {
		router.Use(observeRequests(opts.RequestObserver))
	}
	router.Use(requestLogger())

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		controller:    opts.Controller,
		snapshots:     opts.Snapshots,
		metrics:       opts.MetricsReporter,
		health:        opts.SystemHealthChecker,
		metricsHandle: metricsHandle,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Controller == nil {
		return errors.NewValidationError("dashboard controller is required")
	}
	if opts.Snapshots == nil {
		return errors.NewValidationError("snapshot source is required")
	}
	if opts.MetricsReporter == nil {
		return errors.NewValidationError("metrics reporter is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/dashboard", s.getDashboard)
		api.POST("/search", s.search)
		api.POST("/geolocate", s.geolocate)

		api.GET("/preferences", s.getPreferences)
		api.PUT("/preferences/theme", s.setTheme)
		api.PUT("/preferences/units", s.setUnit)

		api.POST("/favorites", s.addFavorite)
		api.POST("/favorites/:city/select", s.selectFavorite)
		api.DELETE("/favorites/:city", s.removeFavorite)

		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandle))
	s.setupStaticFiles()
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// setupStaticFiles serves the dashboard page when a static directory is configured
func (s *HTTPServerAdapter) setupStaticFiles() {
	if s.config.StaticDir == "" {
		return
	}
	s.router.Static("/static", filepath.Join(s.config.StaticDir, "static"))
	s.router.StaticFile("/", filepath.Join(s.config.StaticDir, "index.html"))
	s.router.StaticFile("/favicon.ico", filepath.Join(s.config.StaticDir, "favicon.ico"))
}
