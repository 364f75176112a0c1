package dashboard

import (
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/ports"
)

// User-visible notifications
const (
	MsgFetchFailed            = "Failed to fetch weather data. Please try again."
	MsgSearchFirst            = "⚠️ Please search for a city first!"
	MsgDuplicateFavorite      = "⭐ %s is already in favorites!"
	MsgGeocodeFailed          = "Failed to get location. Please try searching manually."
	MsgGeolocationDenied      = "Failed to get your location. Please enable location access."
	MsgGeolocationUnsupported = "Geolocation not supported"
)

// Map defaults
const (
	DefaultZoom       = 5
	DefaultSearchZoom = 8
)

// DefaultCenter is the initial map center
var DefaultCenter = ports.Coordinates{Lat: 20.5937, Lon: 78.9629}

// GeolocationFailure is the reason a position fix could not be obtained
type GeolocationFailure string

const (
	GeolocationDenied      GeolocationFailure = "denied"
	GeolocationUnsupported GeolocationFailure = "unavailable"
)

// IsValid reports whether f is a known failure reason
func (f GeolocationFailure) IsValid() bool {
	return f == GeolocationDenied || f == GeolocationUnsupported
}

// MapViewportState is the single map viewport and its optional marker
type MapViewportState struct {
	Center ports.Coordinates  `json:"center"`
	Zoom   int                `json:"zoom"`
	Marker *ports.Coordinates `json:"marker,omitempty"`
}

// Options configures the controller; zero values select the defaults
type Options struct {
	Location      *time.Location
	DefaultCenter *ports.Coordinates
	DefaultZoom   int
	SearchZoom    int
	HourlyCount   int
	Now           func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.DefaultCenter == nil {
		center := DefaultCenter
		o.DefaultCenter = &center
	}
	if o.DefaultZoom <= 0 {
		o.DefaultZoom = DefaultZoom
	}
	if o.SearchZoom <= 0 {
		o.SearchZoom = DefaultSearchZoom
	}
	if o.HourlyCount <= 0 {
		o.HourlyCount = forecast.DefaultHourlyCount
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func toSamples(data *ports.ForecastData) []forecast.Sample {
	if data == nil {
		return nil
	}
	samples := make([]forecast.Sample, len(data.Samples))
	for i, s := range data.Samples {
		samples[i] = forecast.Sample{
			Timestamp:                s.Timestamp,
			Temperature:              s.Temperature,
			Humidity:                 s.Humidity,
			ConditionMain:            s.ConditionMain,
			ConditionIcon:            s.ConditionIcon,
			ConditionDescription:     s.ConditionDescription,
			PrecipitationProbability: s.PrecipitationProbability,
		}
	}
	return samples
}
