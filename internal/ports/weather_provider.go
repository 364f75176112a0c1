package ports

import (
	"context"
	"time"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CurrentConditions is the current-weather part of a report.
// Temperatures are Celsius, wind speed m/s, pressure hPa, visibility meters.
// Pointer fields are optional; nil means not reported.
type CurrentConditions struct {
	City                 string      `json:"city"`
	Country              string      `json:"country,omitempty"`
	Coord                Coordinates `json:"coord"`
	Temperature          float64     `json:"temperature"`
	FeelsLike            float64     `json:"feels_like"`
	TempMin              *float64    `json:"temp_min,omitempty"`
	TempMax              *float64    `json:"temp_max,omitempty"`
	Humidity             int         `json:"humidity"`
	Pressure             float64     `json:"pressure"`
	WindSpeed            float64     `json:"wind_speed"`
	Visibility           *float64    `json:"visibility,omitempty"`
	DewPoint             *float64    `json:"dew_point,omitempty"`
	UVIndex              *float64    `json:"uv_index,omitempty"`
	ConditionMain        string      `json:"condition_main"`
	ConditionIcon        string      `json:"condition_icon"`
	ConditionDescription string      `json:"condition_description"`
	Sunrise              int64       `json:"sunrise,omitempty"`
	Sunset               int64       `json:"sunset,omitempty"`
}

// ForecastSample is one 3-hourly forecast point
type ForecastSample struct {
	Timestamp                int64    `json:"dt"`
	Temperature              float64  `json:"temperature"`
	Humidity                 int      `json:"humidity"`
	ConditionMain            string   `json:"condition_main"`
	ConditionIcon            string   `json:"condition_icon"`
	ConditionDescription     string   `json:"condition_description"`
	PrecipitationProbability *float64 `json:"pop,omitempty"`
}

// ForecastData is the optional forecast part of a report
type ForecastData struct {
	Samples   []ForecastSample `json:"list"`
	MoonPhase string           `json:"moon_phase,omitempty"`
}

// WeatherReport is the combined current + forecast payload for a city
type WeatherReport struct {
	Current   *CurrentConditions `json:"current"`
	Forecast  *ForecastData      `json:"forecast,omitempty"`
	Provider  string             `json:"provider,omitempty"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// WeatherProvider defines the contract for a single upstream weather API
type WeatherProvider interface {
	GetWeatherReport(ctx context.Context, city string) (*WeatherReport, error)
	GetProviderName() string
}

// WeatherProviderManager defines the contract for managing multiple weather providers
type WeatherProviderManager interface {
	GetWeatherReport(ctx context.Context, city string) (*WeatherReport, error)
	GetProviderInfo() map[string]interface{}
}

// WeatherCache defines the contract for caching weather reports
type WeatherCache interface {
	Get(ctx context.Context, key string) (*WeatherReport, error)
	Set(ctx context.Context, key string, report *WeatherReport, ttl time.Duration) error
}

// WeatherFetcher is the weather collaborator used by the dashboard
type WeatherFetcher interface {
	FetchReport(ctx context.Context, city string) (*WeatherReport, error)
}

// WeatherMetrics defines the contract for weather provider metrics
type WeatherMetrics interface {
	GetProviderInfo() map[string]interface{}
	GetCacheMetrics() (CacheStats, error)
}
