package ports

import "context"

// UnknownCity is returned by reverse geocoding when the address has no usable name
const UnknownCity = "Unknown"

// ReverseGeocoder resolves a coordinate to a city name
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, at Coordinates) (string, error)
}
