package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

const weatherAPIForecastJSON = `{
	"location": {"name": "Reykjavik", "country": "Iceland", "lat": 64.15, "lon": -21.95, "tz_id": "UTC"},
	"current": {
		"temp_c": -2.0, "feelslike_c": -7.5, "humidity": 64, "pressure_mb": 998,
		"wind_kph": 36, "vis_km": 10, "dewpoint_c": -6.1, "uv": 1, "is_day": 1,
		"condition": {"text": "Light snow", "code": 1213}
	},
	"forecast": {"forecastday": [{
		"date": "2024-01-01",
		"day": {"maxtemp_c": 0.4, "mintemp_c": -4.2},
		"astro": {"sunrise": "08:06 AM", "sunset": "04:01 PM", "moon_phase": "Waning Gibbous"},
		"hour": [
			{"time_epoch": 1704067200, "temp_c": -3.0, "humidity": 70, "chance_of_rain": 40, "is_day": 0, "condition": {"text": "Patchy rain possible", "code": 1063}},
			{"time_epoch": 1704070800, "temp_c": -3.2, "humidity": 71, "chance_of_rain": 0, "is_day": 0, "condition": {"text": "Clear", "code": 1000}},
			{"time_epoch": 1704078000, "temp_c": -3.5, "humidity": 72, "chance_of_rain": 0, "is_day": 0, "condition": {"text": "Clear", "code": 1000}}
		]
	}]}
}`

func newTestWeatherAPI(baseURL string) *WeatherAPIProviderAdapter {
	return NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
		APIKey:  "wapi-key",
		BaseURL: baseURL,
		Logger:  &testLogger{},
	}).(*WeatherAPIProviderAdapter)
}

func TestWeatherAPIProvider_GetWeatherReport_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "wapi-key", q.Get("key"))
		assert.Equal(t, "Reykjavik", q.Get("q"))
		assert.Equal(t, "7", q.Get("days"))
		assert.Equal(t, "no", q.Get("aqi"))
		assert.Equal(t, "no", q.Get("alerts"))
		_, _ = w.Write([]byte(weatherAPIForecastJSON))
	}))
	defer server.Close()

	report, err := newTestWeatherAPI(server.URL).GetWeatherReport(context.Background(), "Reykjavik")

	require.NoError(t, err)
	cur := report.Current
	assert.Equal(t, "Reykjavik", cur.City)
	assert.Equal(t, "Iceland", cur.Country)
	assert.Equal(t, -2.0, cur.Temperature)
	assert.Equal(t, -7.5, cur.FeelsLike)
	assert.InDelta(t, 10.0, cur.WindSpeed, 1e-9)
	require.NotNil(t, cur.Visibility)
	assert.Equal(t, 10000.0, *cur.Visibility)
	require.NotNil(t, cur.DewPoint)
	assert.Equal(t, -6.1, *cur.DewPoint)
	require.NotNil(t, cur.TempMax)
	assert.Equal(t, 0.4, *cur.TempMax)
	assert.Equal(t, "Snow", cur.ConditionMain)
	assert.Equal(t, "13d", cur.ConditionIcon)
	assert.Equal(t, "light snow", cur.ConditionDescription)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 6, 0, 0, time.UTC).Unix(), cur.Sunrise)
	assert.Equal(t, time.Date(2024, 1, 1, 16, 1, 0, 0, time.UTC).Unix(), cur.Sunset)

	require.NotNil(t, report.Forecast)
	assert.Equal(t, "Waning Gibbous", report.Forecast.MoonPhase)
	require.Len(t, report.Forecast.Samples, 2, "only hours on the 3-hour grid are kept")
	first := report.Forecast.Samples[0]
	assert.Equal(t, "Rain", first.ConditionMain)
	assert.Equal(t, "10n", first.ConditionIcon)
	require.NotNil(t, first.PrecipitationProbability)
	assert.InDelta(t, 0.4, *first.PrecipitationProbability, 1e-9)
	assert.Equal(t, int64(1704078000), report.Forecast.Samples[1].Timestamp)

	assert.Equal(t, "weatherapi", report.Provider)
}

func TestWeatherAPIProvider_UnknownLocation(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
		}))

		_, err := newTestWeatherAPI(server.URL).GetWeatherReport(context.Background(), "Atlantis")
		server.Close()

		assert.True(t, errors.IsNotFoundError(err), "status %d", status)
	}
}

func TestWeatherAPIProvider_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestWeatherAPI(server.URL).GetWeatherReport(context.Background(), "Reykjavik")

	assert.True(t, errors.IsFetchError(err))
}

func TestWeatherAPIProvider_NoForecastDays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"location": {"name": "Lima"}, "current": {"temp_c": 19, "condition": {"text": "Sunny", "code": 1000}, "is_day": 1}}`))
	}))
	defer server.Close()

	report, err := newTestWeatherAPI(server.URL).GetWeatherReport(context.Background(), "Lima")

	require.NoError(t, err)
	assert.Nil(t, report.Forecast)
	assert.Nil(t, report.Current.TempMax)
	assert.Zero(t, report.Current.Sunrise)
	assert.Equal(t, "Clear", report.Current.ConditionMain)
	assert.Equal(t, "01d", report.Current.ConditionIcon)
}

func TestConditionFromWeatherAPI(t *testing.T) {
	tests := []struct {
		code int
		day  bool
		main string
		icon string
	}{
		{1000, true, "Clear", "01d"},
		{1000, false, "Clear", "01n"},
		{1003, true, "Clouds", "02d"},
		{1009, true, "Clouds", "04d"},
		{1030, true, "Mist", "50d"},
		{1135, true, "Fog", "50d"},
		{1087, true, "Thunderstorm", "11d"},
		{1276, false, "Thunderstorm", "11n"},
		{1153, true, "Drizzle", "09d"},
		{1195, true, "Rain", "10d"},
		{1243, true, "Rain", "10d"},
		{1225, true, "Snow", "13d"},
		{9999, true, "Clouds", "03d"},
	}

	for _, tt := range tests {
		main, icon := conditionFromWeatherAPI(tt.code, tt.day)
		assert.Equal(t, tt.main, main, "code %d", tt.code)
		assert.Equal(t, tt.icon, icon, "code %d", tt.code)
	}
}

func TestAstroTime_Unparseable(t *testing.T) {
	assert.Zero(t, astroTime("2024-01-01", "No sunrise", time.UTC))
	assert.Zero(t, astroTime("", "06:00 AM", time.UTC))
}
