package infrastructure

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/ports"
)

// PrometheusMetricsCollector implements ports.MetricsCollector on its own registry
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	providerCalls    *prometheus.CounterVec
	preferenceWrites *prometheus.CounterVec
	notifications    prometheus.Counter
	httpRequests     *prometheus.HistogramVec
}

// NewPrometheusMetricsCollector registers the dashboard metrics plus the Go
// runtime and process collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		registry: reg,
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "weatherdash_cache_hits_total",
			Help: "The total number of weather cache hits",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "weatherdash_cache_misses_total",
			Help: "The total number of weather cache misses",
		}),
		providerCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weatherdash_provider_requests_total",
			Help: "Weather provider requests by provider and outcome",
		}, []string{"provider", "outcome"}),
		preferenceWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "weatherdash_preference_writes_total",
			Help: "Preference writes by key",
		}, []string{"key"}),
		notifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "weatherdash_notifications_total",
			Help: "User notifications shown by the dashboard",
		}),
		httpRequests: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "weatherdash_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	m.cacheHits.Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	m.cacheMisses.Inc()
}

func (m *PrometheusMetricsCollector) RecordWeatherAPICall(ctx context.Context, provider string, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.providerCalls.WithLabelValues(provider, outcome).Inc()
}

func (m *PrometheusMetricsCollector) RecordPreferenceWrite(ctx context.Context, key string) {
	m.preferenceWrites.WithLabelValues(key).Inc()
}

func (m *PrometheusMetricsCollector) RecordNotification(ctx context.Context) {
	m.notifications.Inc()
}

// ObserveHTTPRequest records one served request
func (m *PrometheusMetricsCollector) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

var _ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)

// MetricsReporterAdapter aggregates provider and cache information for the JSON metrics endpoint
type MetricsReporterAdapter struct {
	weatherMetrics ports.WeatherMetrics
}

// NewMetricsReporterAdapter creates a new metrics reporter
func NewMetricsReporterAdapter(weatherMetrics ports.WeatherMetrics) *MetricsReporterAdapter {
	return &MetricsReporterAdapter{weatherMetrics: weatherMetrics}
}

// GetMetrics returns aggregated metrics from the weather stack
func (m *MetricsReporterAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{
		"weather": m.weatherMetrics.GetProviderInfo(),
	}

	if cacheStats, err := m.weatherMetrics.GetCacheMetrics(); err == nil {
		metrics["cache"] = map[string]interface{}{
			"hits":      cacheStats.Hits,
			"misses":    cacheStats.Misses,
			"total_ops": cacheStats.TotalOps,
			"hit_ratio": cacheStats.HitRatio,
			"updated":   cacheStats.LastUpdated,
		}
	}

	return metrics, nil
}
