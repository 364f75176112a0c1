package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap.
// Current conditions come from /weather and the 5 day / 3 hour forecast from /forecast.
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

type owmCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OpenWeatherMapCurrentResponse represents the /weather response
type OpenWeatherMapCurrentResponse struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main struct {
		Temp      float64  `json:"temp"`
		FeelsLike float64  `json:"feels_like"`
		TempMin   *float64 `json:"temp_min"`
		TempMax   *float64 `json:"temp_max"`
		Pressure  float64  `json:"pressure"`
		Humidity  int      `json:"humidity"`
		DewPoint  *float64 `json:"dew_point"`
	} `json:"main"`
	Visibility *float64 `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	UVI     *float64       `json:"uvi"`
	Weather []owmCondition `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

// OpenWeatherMapForecastResponse represents the /forecast response
type OpenWeatherMapForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
		Pop     *float64       `json:"pop"`
	} `json:"list"`
	City struct {
		MoonPhase string `json:"moon_phase"`
	} `json:"city"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient()
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// GetWeatherReport retrieves current conditions and the forecast for city.
// A failed forecast call still yields a report without a forecast.
func (p *OpenWeatherMapProviderAdapter) GetWeatherReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	var current OpenWeatherMapCurrentResponse
	if err := getJSON(ctx, p.client, p.logger, "OpenWeatherMap", p.endpoint("weather", city), nil, &current); err != nil {
		switch code := statusCode(err); {
		case code == http.StatusNotFound:
			return nil, errors.NewNotFoundError("City not found")
		case code != 0:
			return nil, errors.NewFetchError(err.Error(), nil)
		}
		return nil, err
	}

	report := &ports.WeatherReport{
		Current:   p.mapCurrent(current, city),
		Provider:  p.GetProviderName(),
		FetchedAt: time.Now(),
	}

	var forecast OpenWeatherMapForecastResponse
	if err := getJSON(ctx, p.client, p.logger, "OpenWeatherMap", p.endpoint("forecast", city), nil, &forecast); err != nil {
		p.logger.Warn("OpenWeatherMap forecast unavailable",
			ports.F("city", city),
			ports.F("error", err))
		return report, nil
	}
	report.Forecast = p.mapForecast(forecast)

	return report, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) endpoint(path, city string) string {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", p.apiKey)
	q.Set("units", "metric")
	return fmt.Sprintf("%s/%s?%s", p.baseURL, path, q.Encode())
}

func (p *OpenWeatherMapProviderAdapter) mapCurrent(r OpenWeatherMapCurrentResponse, requested string) *ports.CurrentConditions {
	name := r.Name
	if name == "" {
		name = requested
	}

	current := &ports.CurrentConditions{
		City:        name,
		Country:     r.Sys.Country,
		Coord:       ports.Coordinates{Lat: r.Coord.Lat, Lon: r.Coord.Lon},
		Temperature: r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		TempMin:     r.Main.TempMin,
		TempMax:     r.Main.TempMax,
		Humidity:    r.Main.Humidity,
		Pressure:    r.Main.Pressure,
		WindSpeed:   r.Wind.Speed,
		Visibility:  r.Visibility,
		DewPoint:    r.Main.DewPoint,
		UVIndex:     r.UVI,
		Sunrise:     r.Sys.Sunrise,
		Sunset:      r.Sys.Sunset,
	}
	if len(r.Weather) > 0 {
		current.ConditionMain = r.Weather[0].Main
		current.ConditionIcon = r.Weather[0].Icon
		current.ConditionDescription = r.Weather[0].Description
	}
	return current
}

func (p *OpenWeatherMapProviderAdapter) mapForecast(r OpenWeatherMapForecastResponse) *ports.ForecastData {
	samples := make([]ports.ForecastSample, 0, len(r.List))
	for _, item := range r.List {
		sample := ports.ForecastSample{
			Timestamp:                item.Dt,
			Temperature:              item.Main.Temp,
			Humidity:                 item.Main.Humidity,
			PrecipitationProbability: item.Pop,
		}
		if len(item.Weather) > 0 {
			sample.ConditionMain = item.Weather[0].Main
			sample.ConditionIcon = item.Weather[0].Icon
			sample.ConditionDescription = item.Weather[0].Description
		}
		samples = append(samples, sample)
	}

	return &ports.ForecastData{
		Samples:   samples,
		MoonPhase: r.City.MoonPhase,
	}
}
