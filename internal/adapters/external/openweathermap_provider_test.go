package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

const owmCurrentJSON = `{
	"name": "London",
	"coord": {"lat": 51.5085, "lon": -0.1257},
	"main": {"temp": 15.5, "feels_like": 14.9, "temp_min": 13.2, "temp_max": 17.0, "pressure": 1012, "humidity": 78},
	"visibility": 10000,
	"wind": {"speed": 4.1},
	"weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}],
	"sys": {"country": "GB", "sunrise": 1704096000, "sunset": 1704124800}
}`

const owmForecastJSON = `{
	"list": [
		{"dt": 1704110400, "main": {"temp": 14.0, "humidity": 80}, "weather": [{"main": "Clouds", "description": "overcast clouds", "icon": "04d"}], "pop": 0.2},
		{"dt": 1704121200, "main": {"temp": 12.5, "humidity": 85}, "weather": [{"main": "Rain", "description": "light rain", "icon": "10n"}]}
	],
	"city": {"name": "London", "moon_phase": "Waxing Crescent"}
}`

func owmServer(t *testing.T, current, forecast int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "London", q.Get("q"))
		assert.Equal(t, "test-api-key", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/weather":
			w.WriteHeader(current)
			if current == http.StatusOK {
				_, _ = w.Write([]byte(owmCurrentJSON))
			} else {
				_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			}
		case "/forecast":
			w.WriteHeader(forecast)
			if forecast == http.StatusOK {
				_, _ = w.Write([]byte(owmForecastJSON))
			}
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestOWM(baseURL string) *OpenWeatherMapProviderAdapter {
	return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: baseURL,
		Logger:  &testLogger{},
	}).(*OpenWeatherMapProviderAdapter)
}

func TestOpenWeatherMapProvider_GetWeatherReport_Success(t *testing.T) {
	server := owmServer(t, http.StatusOK, http.StatusOK)
	provider := newTestOWM(server.URL)

	report, err := provider.GetWeatherReport(context.Background(), "London")

	require.NoError(t, err)
	require.NotNil(t, report.Current)
	cur := report.Current
	assert.Equal(t, "London", cur.City)
	assert.Equal(t, "GB", cur.Country)
	assert.Equal(t, 51.5085, cur.Coord.Lat)
	assert.Equal(t, 15.5, cur.Temperature)
	assert.Equal(t, 14.9, cur.FeelsLike)
	require.NotNil(t, cur.TempMax)
	assert.Equal(t, 17.0, *cur.TempMax)
	assert.Equal(t, 78, cur.Humidity)
	assert.Equal(t, 1012.0, cur.Pressure)
	assert.Equal(t, 4.1, cur.WindSpeed)
	require.NotNil(t, cur.Visibility)
	assert.Equal(t, 10000.0, *cur.Visibility)
	assert.Nil(t, cur.DewPoint)
	assert.Nil(t, cur.UVIndex)
	assert.Equal(t, "Rain", cur.ConditionMain)
	assert.Equal(t, "10d", cur.ConditionIcon)
	assert.Equal(t, "light rain", cur.ConditionDescription)
	assert.Equal(t, int64(1704096000), cur.Sunrise)

	require.NotNil(t, report.Forecast)
	assert.Len(t, report.Forecast.Samples, 2)
	assert.Equal(t, "Waxing Crescent", report.Forecast.MoonPhase)
	first := report.Forecast.Samples[0]
	assert.Equal(t, int64(1704110400), first.Timestamp)
	assert.Equal(t, "Clouds", first.ConditionMain)
	require.NotNil(t, first.PrecipitationProbability)
	assert.Equal(t, 0.2, *first.PrecipitationProbability)
	assert.Nil(t, report.Forecast.Samples[1].PrecipitationProbability)

	assert.Equal(t, "openweathermap", report.Provider)
	assert.False(t, report.FetchedAt.IsZero())
}

func TestOpenWeatherMapProvider_GetWeatherReport_CityNotFound(t *testing.T) {
	server := owmServer(t, http.StatusNotFound, http.StatusNotFound)
	provider := newTestOWM(server.URL)

	report, err := provider.GetWeatherReport(context.Background(), "London")

	assert.Nil(t, report)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "City not found")
}

func TestOpenWeatherMapProvider_GetWeatherReport_ServerError(t *testing.T) {
	server := owmServer(t, http.StatusInternalServerError, http.StatusOK)
	provider := newTestOWM(server.URL)

	_, err := provider.GetWeatherReport(context.Background(), "London")

	assert.True(t, errors.IsFetchError(err))
	assert.Contains(t, err.Error(), "status 500")
}

func TestOpenWeatherMapProvider_ForecastFailureKeepsCurrent(t *testing.T) {
	server := owmServer(t, http.StatusOK, http.StatusBadGateway)
	provider := newTestOWM(server.URL)

	report, err := provider.GetWeatherReport(context.Background(), "London")

	require.NoError(t, err)
	assert.Equal(t, "London", report.Current.City)
	assert.Nil(t, report.Forecast)
}

func TestOpenWeatherMapProvider_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"main": `))
	}))
	defer server.Close()
	provider := newTestOWM(server.URL)

	_, err := provider.GetWeatherReport(context.Background(), "London")

	assert.True(t, errors.IsFetchError(err))
}

func TestOpenWeatherMapProvider_EmptyCity(t *testing.T) {
	provider := newTestOWM("http://unused")

	_, err := provider.GetWeatherReport(context.Background(), "  ")

	assert.True(t, errors.IsValidationError(err))
}

func TestOpenWeatherMapProvider_NetworkError(t *testing.T) {
	provider := newTestOWM("http://127.0.0.1:1")

	_, err := provider.GetWeatherReport(context.Background(), "London")

	assert.True(t, errors.IsFetchError(err))
}

func TestOpenWeatherMapProvider_DefaultBaseURLAndName(t *testing.T) {
	provider := newTestOWM("")

	assert.Equal(t, "https://api.openweathermap.org/data/2.5", provider.baseURL)
	assert.Equal(t, "openweathermap", provider.GetProviderName())
}

func TestOpenWeatherMapProvider_EscapesCity(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()
	provider := newTestOWM(server.URL)

	_, _ = provider.GetWeatherReport(context.Background(), "São Paulo & Co")

	assert.Equal(t, "São Paulo & Co", gotQuery)
}
