package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/adapters/display"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/logger"
)

type stubMetricsReporter struct {
	metrics map[string]interface{}
	err     error
}

func (s *stubMetricsReporter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return s.metrics, s.err
}

type stubHealth struct {
	results map[string]ports.HealthStatus
}

func (s *stubHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.results
}

type testServer struct {
	server    *HTTPServerAdapter
	fetcher   *mocks.WeatherFetcher
	geocoder  *mocks.ReverseGeocoder
	surface   *display.SnapshotSurface
	collector *infrastructure.PrometheusMetricsCollector
	health    *stubHealth
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := infrastructure.NewSlogLoggerAdapter(logger.NewWithWriter(io.Discard, slog.LevelDebug))
	store, err := preferences.NewStore(preferences.StoreDependencies{
		KV:     database.NewMemoryPreferenceStoreAdapter(),
		Logger: log,
	})
	require.NoError(t, err)

	ts := &testServer{
		fetcher:   mocks.NewWeatherFetcher(t),
		geocoder:  mocks.NewReverseGeocoder(t),
		surface:   display.NewSnapshotSurface(),
		collector: infrastructure.NewPrometheusMetricsCollector(),
		health: &stubHealth{results: map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "healthy"},
		}},
	}

	ctrl, err := dashboard.NewController(dashboard.ControllerDependencies{
		Fetcher:     ts.fetcher,
		Geocoder:    ts.geocoder,
		Preferences: store,
		Display:     ts.surface,
		Map:         ts.surface,
		Logger:      log,
		Metrics:     ts.collector,
		Options: dashboard.Options{
			Location: time.UTC,
			Now:      func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) },
		},
	})
	require.NoError(t, err)
	ctrl.Start(context.Background())

	ts.server, err = NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 8080},
		Controller:          ctrl,
		Snapshots:           ts.surface,
		MetricsReporter:     &stubMetricsReporter{metrics: map[string]interface{}{"cache": "ok"}},
		RequestObserver:     ts.collector,
		SystemHealthChecker: ts.health,
		MetricsHandler:      ts.collector.Handler(),
	})
	require.NoError(t, err)
	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func report(city string, lat, lon float64) *ports.WeatherReport {
	samples := make([]ports.ForecastSample, 16)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	for i := range samples {
		samples[i] = ports.ForecastSample{
			Timestamp:            start + int64(i)*3*3600,
			Temperature:          12,
			Humidity:             60,
			ConditionMain:        "Clouds",
			ConditionIcon:        "03d",
			ConditionDescription: "scattered clouds",
		}
	}
	return &ports.WeatherReport{
		Current: &ports.CurrentConditions{
			City:                 city,
			Coord:                ports.Coordinates{Lat: lat, Lon: lon},
			Temperature:          15,
			FeelsLike:            14,
			Humidity:             60,
			Pressure:             1010,
			WindSpeed:            5,
			ConditionMain:        "Clouds",
			ConditionIcon:        "03d",
			ConditionDescription: "scattered clouds",
		},
		Forecast: &ports.ForecastData{Samples: samples},
	}
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetDashboard_InitialState(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusOK, w.Code)
	snap := decode[display.Snapshot](t, w)
	assert.Empty(t, snap.CityName)
	assert.Equal(t, "light", snap.Theme)
	assert.Equal(t, dashboard.DefaultZoom, snap.Map.Zoom)
	assert.Nil(t, snap.Map.Marker)
}

func TestSearch(t *testing.T) {
	t.Run("renders the city", func(t *testing.T) {
		ts := newTestServer(t)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "London").Return(report("London", 51.51, -0.13), nil)

		w := ts.do(http.MethodPost, "/api/search", `{"city":"London"}`)

		require.Equal(t, http.StatusOK, w.Code)
		snap := decode[display.Snapshot](t, w)
		assert.Equal(t, "London", snap.CityName)
		assert.Equal(t, "15°C", snap.Temperature)
		assert.Equal(t, "scattered clouds", snap.Description)
		require.NotNil(t, snap.Map.Marker)
		assert.Equal(t, 51.51, snap.Map.Marker.Lat)
		assert.Equal(t, "London", snap.Map.MarkerLabel)
	})

	t.Run("form body", func(t *testing.T) {
		ts := newTestServer(t)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "Paris").Return(report("Paris", 48.85, 2.35), nil)

		req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("city=Paris"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		ts.server.GetRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Paris", decode[display.Snapshot](t, w).CityName)
	})

	t.Run("missing city", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodPost, "/api/search", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "city is required", decode[ErrorResponse](t, w).Error)
	})

	t.Run("fetch failure keeps previous display", func(t *testing.T) {
		ts := newTestServer(t)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "London").Return(report("London", 51.51, -0.13), nil)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "Atlantis").Return(nil, errors.NewFetchError("upstream error", nil))

		require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/search", `{"city":"London"}`).Code)
		w := ts.do(http.MethodPost, "/api/search", `{"city":"Atlantis"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, dashboard.MsgFetchFailed, decode[ErrorResponse](t, w).Error)

		snap := ts.surface.Snapshot()
		assert.Equal(t, "London", snap.CityName)
		require.NotEmpty(t, snap.Notifications)
		assert.Equal(t, dashboard.MsgFetchFailed, snap.Notifications[len(snap.Notifications)-1].Message)
	})

	t.Run("unknown city", func(t *testing.T) {
		ts := newTestServer(t)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "Nowhere").Return(nil, errors.NewNotFoundError("city not found"))

		w := ts.do(http.MethodPost, "/api/search", `{"city":"Nowhere"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGeolocate(t *testing.T) {
	t.Run("position fix", func(t *testing.T) {
		ts := newTestServer(t)
		at := ports.Coordinates{Lat: 48.85, Lon: 2.35}
		ts.geocoder.EXPECT().ReverseGeocode(mock.Anything, at).Return("Paris", nil)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "Paris").Return(report("Paris", 48.85, 2.35), nil)

		w := ts.do(http.MethodPost, "/api/geolocate", `{"lat":48.85,"lon":2.35}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Paris", decode[display.Snapshot](t, w).CityName)
	})

	t.Run("reverse geocoding fails", func(t *testing.T) {
		ts := newTestServer(t)
		ts.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything).Return("", errors.NewFetchError("nominatim down", nil))

		w := ts.do(http.MethodPost, "/api/geolocate", `{"lat":10,"lon":10}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dashboard.MsgGeocodeFailed, decode[ErrorResponse](t, w).Error)
	})

	t.Run("denied", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodPost, "/api/geolocate", `{"error":"denied"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
		snap := ts.surface.Snapshot()
		require.Len(t, snap.Notifications, 1)
		assert.Equal(t, dashboard.MsgGeolocationDenied, snap.Notifications[0].Message)
		assert.Nil(t, snap.Map.Marker)
	})

	t.Run("unavailable", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodPost, "/api/geolocate", `{"error":"unavailable"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		snap := ts.surface.Snapshot()
		require.Len(t, snap.Notifications, 1)
		assert.Equal(t, dashboard.MsgGeolocationUnsupported, snap.Notifications[0].Message)
	})

	invalid := []struct {
		name string
		body string
	}{
		{"missing coordinates", `{}`},
		{"latitude out of range", `{"lat":91,"lon":0}`},
		{"unknown failure", `{"error":"timeout"}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			w := ts.do(http.MethodPost, "/api/geolocate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPreferencesEndpoints(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodGet, "/api/preferences", "")

		require.Equal(t, http.StatusOK, w.Code)
		prefs := decode[PreferencesResponse](t, w)
		assert.Equal(t, "light", prefs.Theme)
		assert.Equal(t, UnitsResponse{Temperature: "C", Wind: "kmh", Pressure: "hPa"}, prefs.Units)
		assert.Empty(t, prefs.Favorites)
	})

	t.Run("theme", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodPut, "/api/preferences/theme", `{"theme":"dark"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "dark", decode[PreferencesResponse](t, w).Theme)
		assert.Equal(t, "dark", ts.surface.Snapshot().Theme)

		w = ts.do(http.MethodPut, "/api/preferences/theme", `{"theme":"blue"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("units re-render the last report", func(t *testing.T) {
		ts := newTestServer(t)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "London").Return(report("London", 51.51, -0.13), nil)
		require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/search", `{"city":"London"}`).Code)

		w := ts.do(http.MethodPut, "/api/preferences/units", `{"kind":"temp","value":"F"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "F", decode[PreferencesResponse](t, w).Units.Temperature)
		assert.Equal(t, "59°F", ts.surface.Snapshot().Temperature)
	})

	badUnits := []struct {
		name string
		body string
	}{
		{"unknown value", `{"kind":"temp","value":"K"}`},
		{"unknown kind", `{"kind":"rain","value":"mm"}`},
		{"value of another kind", `{"kind":"wind","value":"F"}`},
	}
	for _, tt := range badUnits {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			w := ts.do(http.MethodPut, "/api/preferences/units", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestFavoritesEndpoints(t *testing.T) {
	t.Run("add before search", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodPost, "/api/favorites", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		snap := ts.surface.Snapshot()
		require.Len(t, snap.Notifications, 1)
		assert.Equal(t, dashboard.MsgSearchFirst, snap.Notifications[0].Message)
	})

	t.Run("add, duplicate, select and remove", func(t *testing.T) {
		ts := newTestServer(t)
		ts.fetcher.EXPECT().FetchReport(mock.Anything, "London").Return(report("London", 51.51, -0.13), nil).Times(2)
		require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/search", `{"city":"London"}`).Code)

		w := ts.do(http.MethodPost, "/api/favorites", "")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, []string{"London"}, decode[PreferencesResponse](t, w).Favorites)

		w = ts.do(http.MethodPost, "/api/favorites", "")
		assert.Equal(t, http.StatusConflict, w.Code)

		w = ts.do(http.MethodPost, "/api/favorites/London/select", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "London", decode[display.Snapshot](t, w).CityName)

		w = ts.do(http.MethodDelete, "/api/favorites/London", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[PreferencesResponse](t, w).Favorites)
		assert.Empty(t, ts.surface.Snapshot().Favorites)
	})

	t.Run("removing an absent city is a no-op", func(t *testing.T) {
		ts := newTestServer(t)

		w := ts.do(http.MethodDelete, "/api/favorites/Tokyo", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/dashboard", "")
	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set(requestIDHeader, id)
	w = httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(requestIDHeader))
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[map[string]interface{}](t, w)["status"])

	ts.health.results["redis"] = ports.HealthStatus{Component: "redis", Status: "unhealthy", Error: "connection refused"}
	w = ts.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", decode[map[string]interface{}](t, w)["status"])
}

func TestMetricsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]interface{}](t, w)["cache"])

	w = ts.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `weatherdash_http_request_duration_seconds_count{method="GET",route="/api/metrics",status="200"} 1`)
}

func TestMetricsEndpoint_Error(t *testing.T) {
	ts := newTestServer(t)
	ts.server.metrics = &stubMetricsReporter{err: errors.NewStorageError("cache stats", nil)}

	w := ts.do(http.MethodGet, "/api/metrics", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
