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

// forecastStepHours thins the hourly WeatherAPI forecast to the 3-hour cadence
// the rest of the dashboard expects
const forecastStepHours = 3

// WeatherAPIProviderAdapter implements WeatherProvider port for WeatherAPI.com
type WeatherAPIProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

type weatherAPICondition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

// WeatherAPIResponse represents the /forecast.json response from WeatherAPI.com
type WeatherAPIResponse struct {
	Location struct {
		Name    string  `json:"name"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		TzID    string  `json:"tz_id"`
	} `json:"location"`
	Current struct {
		TempC      float64             `json:"temp_c"`
		FeelsLikeC float64             `json:"feelslike_c"`
		Humidity   int                 `json:"humidity"`
		PressureMb float64             `json:"pressure_mb"`
		WindKph    float64             `json:"wind_kph"`
		VisKm      *float64            `json:"vis_km"`
		DewPointC  *float64            `json:"dewpoint_c"`
		UV         *float64            `json:"uv"`
		IsDay      int                 `json:"is_day"`
		Condition  weatherAPICondition `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC float64 `json:"maxtemp_c"`
				MinTempC float64 `json:"mintemp_c"`
			} `json:"day"`
			Astro struct {
				Sunrise   string `json:"sunrise"`
				Sunset    string `json:"sunset"`
				MoonPhase string `json:"moon_phase"`
			} `json:"astro"`
			Hour []struct {
				TimeEpoch    int64               `json:"time_epoch"`
				TempC        float64             `json:"temp_c"`
				Humidity     int                 `json:"humidity"`
				ChanceOfRain *float64            `json:"chance_of_rain"`
				IsDay        int                 `json:"is_day"`
				Condition    weatherAPICondition `json:"condition"`
			} `json:"hour"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://api.weatherapi.com/v1"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient()
	}

	return &WeatherAPIProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}
}

// GetWeatherReport retrieves the 7 day forecast from WeatherAPI.com and normalizes it
// to metric units and OpenWeatherMap condition groups.
func (p *WeatherAPIProviderAdapter) GetWeatherReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	q := url.Values{}
	q.Set("key", p.apiKey)
	q.Set("q", city)
	q.Set("days", "7")
	q.Set("aqi", "no")
	q.Set("alerts", "no")
	endpoint := fmt.Sprintf("%s/forecast.json?%s", p.baseURL, q.Encode())

	var apiResp WeatherAPIResponse
	if err := getJSON(ctx, p.client, p.logger, "WeatherAPI", endpoint, nil, &apiResp); err != nil {
		switch code := statusCode(err); {
		case code == http.StatusNotFound, code == http.StatusBadRequest:
			// WeatherAPI answers 400 (error code 1006) for unknown locations
			return nil, errors.NewNotFoundError("City not found")
		case code != 0:
			return nil, errors.NewFetchError(err.Error(), nil)
		}
		return nil, err
	}

	loc := p.location(apiResp.Location.TzID)
	return &ports.WeatherReport{
		Current:   p.mapCurrent(apiResp, city, loc),
		Forecast:  p.mapForecast(apiResp, loc),
		Provider:  p.GetProviderName(),
		FetchedAt: time.Now(),
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return "weatherapi"
}

func (p *WeatherAPIProviderAdapter) location(tzID string) *time.Location {
	if tzID == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		p.logger.Debug("Unknown WeatherAPI time zone, using UTC", ports.F("tz_id", tzID))
		return time.UTC
	}
	return loc
}

func (p *WeatherAPIProviderAdapter) mapCurrent(r WeatherAPIResponse, requested string, loc *time.Location) *ports.CurrentConditions {
	name := r.Location.Name
	if name == "" {
		name = requested
	}
	main, icon := conditionFromWeatherAPI(r.Current.Condition.Code, r.Current.IsDay == 1)

	current := &ports.CurrentConditions{
		City:                 name,
		Country:              r.Location.Country,
		Coord:                ports.Coordinates{Lat: r.Location.Lat, Lon: r.Location.Lon},
		Temperature:          r.Current.TempC,
		FeelsLike:            r.Current.FeelsLikeC,
		Humidity:             r.Current.Humidity,
		Pressure:             r.Current.PressureMb,
		WindSpeed:            r.Current.WindKph / 3.6,
		DewPoint:             r.Current.DewPointC,
		UVIndex:              r.Current.UV,
		ConditionMain:        main,
		ConditionIcon:        icon,
		ConditionDescription: strings.ToLower(strings.TrimSpace(r.Current.Condition.Text)),
	}
	if r.Current.VisKm != nil {
		current.Visibility = float64Ptr(*r.Current.VisKm * 1000)
	}

	if days := r.Forecast.ForecastDay; len(days) > 0 {
		today := days[0]
		current.TempMax = float64Ptr(today.Day.MaxTempC)
		current.TempMin = float64Ptr(today.Day.MinTempC)
		current.Sunrise = astroTime(today.Date, today.Astro.Sunrise, loc)
		current.Sunset = astroTime(today.Date, today.Astro.Sunset, loc)
	}
	return current
}

func (p *WeatherAPIProviderAdapter) mapForecast(r WeatherAPIResponse, loc *time.Location) *ports.ForecastData {
	days := r.Forecast.ForecastDay
	if len(days) == 0 {
		return nil
	}

	var samples []ports.ForecastSample
	for _, day := range days {
		for _, hour := range day.Hour {
			if time.Unix(hour.TimeEpoch, 0).In(loc).Hour()%forecastStepHours != 0 {
				continue
			}
			main, icon := conditionFromWeatherAPI(hour.Condition.Code, hour.IsDay == 1)
			sample := ports.ForecastSample{
				Timestamp:            hour.TimeEpoch,
				Temperature:          hour.TempC,
				Humidity:             hour.Humidity,
				ConditionMain:        main,
				ConditionIcon:        icon,
				ConditionDescription: strings.ToLower(strings.TrimSpace(hour.Condition.Text)),
			}
			if hour.ChanceOfRain != nil {
				sample.PrecipitationProbability = float64Ptr(*hour.ChanceOfRain / 100)
			}
			samples = append(samples, sample)
		}
	}

	return &ports.ForecastData{
		Samples:   samples,
		MoonPhase: days[0].Astro.MoonPhase,
	}
}

// astroTime combines a "2006-01-02" date with a "06:12 AM" clock time in loc.
// Unparseable input yields 0, which renders as unknown.
func astroTime(date, clock string, loc *time.Location) int64 {
	t, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+clock, loc)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// conditionFromWeatherAPI maps a WeatherAPI.com condition code to an
// OpenWeatherMap condition group and icon code.
func conditionFromWeatherAPI(code int, isDay bool) (string, string) {
	suffix := "n"
	if isDay {
		suffix = "d"
	}

	switch {
	case code == 1000:
		return "Clear", "01" + suffix
	case code == 1003:
		return "Clouds", "02" + suffix
	case code == 1006:
		return "Clouds", "03" + suffix
	case code == 1009:
		return "Clouds", "04" + suffix
	case code == 1030:
		return "Mist", "50" + suffix
	case code == 1135 || code == 1147:
		return "Fog", "50" + suffix
	case code == 1087 || (code >= 1273 && code <= 1282):
		return "Thunderstorm", "11" + suffix
	case code >= 1150 && code <= 1171:
		return "Drizzle", "09" + suffix
	case code == 1066 || code == 1114 || code == 1117 ||
		(code >= 1210 && code <= 1225) || code == 1255 || code == 1258:
		return "Snow", "13" + suffix
	case code == 1063 || code == 1069 || code == 1072 ||
		(code >= 1180 && code <= 1207) || (code >= 1237 && code <= 1264):
		return "Rain", "10" + suffix
	default:
		return "Clouds", "03" + suffix
	}
}
