package weather

import (
	"fmt"
	"strings"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/validation"
)

const absoluteZeroCelsius = -273.15

// WeatherRequest represents a request for a city's weather report
type WeatherRequest struct {
	City string
}

// IsValid validates weather request
func (wr *WeatherRequest) IsValid() error {
	if strings.TrimSpace(wr.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if !validation.IsValidCityName(wr.City) {
		return fmt.Errorf("city name is not valid")
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (wr *WeatherRequest) NormalizeCity() {
	wr.City = strings.TrimSpace(wr.City)
}

// CacheKey returns the cache key shared by all spellings that differ only in case
func (wr *WeatherRequest) CacheKey() string {
	return "weather:" + strings.ToLower(wr.City)
}

// ValidateReport checks that an upstream report is usable.
// A report without current conditions counts as a failed response.
func ValidateReport(report *ports.WeatherReport) error {
	if report == nil || report.Current == nil {
		return fmt.Errorf("response has no current conditions")
	}
	current := report.Current
	if strings.TrimSpace(current.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if current.Temperature < absoluteZeroCelsius {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if current.Humidity < 0 || current.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if !validation.IsValidLatitude(current.Coord.Lat) || !validation.IsValidLongitude(current.Coord.Lon) {
		return fmt.Errorf("coordinates out of range")
	}
	return nil
}
