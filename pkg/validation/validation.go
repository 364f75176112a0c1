package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxCityNameLength bounds city names accepted from searches and favorites
const MaxCityNameLength = 100

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidCityName reports whether s is a usable city name: non-empty after
// trimming, bounded in length and free of control characters.
func IsValidCityName(s string) bool {
	trimmed, ok := TrimAndValidate(s)
	if !ok || utf8.RuneCountInString(trimmed) > MaxCityNameLength {
		return false
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidLatitude validates a WGS84 latitude
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude validates a WGS84 longitude
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
