package external

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoderAdapter implements ReverseGeocoder using OpenStreetMap Nominatim
type NominatimGeocoderAdapter struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	logger    ports.Logger
}

// NominatimGeocoderParams holds parameters for creating the geocoder
type NominatimGeocoderParams struct {
	BaseURL string
	// UserAgent is required by the Nominatim usage policy
	UserAgent string
	Client    HTTPClient
	Logger    ports.Logger
}

type nominatimResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

// NewNominatimGeocoderAdapter creates a Nominatim reverse geocoder
func NewNominatimGeocoderAdapter(params NominatimGeocoderParams) *NominatimGeocoderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	userAgent := params.UserAgent
	if userAgent == "" {
		userAgent = "weatherdash/1.0"
	}
	client := params.Client
	if client == nil {
		client = newHTTPClient()
	}

	return &NominatimGeocoderAdapter{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
		logger:    params.Logger,
	}
}

// ReverseGeocode returns the most specific place name for the coordinates:
// city, then town, village and county. A resolved position without any of
// them yields ports.UnknownCity.
func (g *NominatimGeocoderAdapter) ReverseGeocode(ctx context.Context, at ports.Coordinates) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	endpoint := fmt.Sprintf("%s/reverse?%s", g.baseURL, q.Encode())

	var resp nominatimResponse
	headers := map[string]string{"User-Agent": g.userAgent}
	if err := getJSON(ctx, g.client, g.logger, "Nominatim", endpoint, headers, &resp); err != nil {
		if code := statusCode(err); code != 0 {
			return "", errors.NewGeolocationUnavailableError(err.Error(), nil)
		}
		return "", errors.NewGeolocationUnavailableError("reverse geocoding failed", err)
	}

	for _, name := range []string{resp.Address.City, resp.Address.Town, resp.Address.Village, resp.Address.County} {
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}

	g.logger.Debug("No place name for position",
		ports.F("lat", at.Lat),
		ports.F("lon", at.Lon))
	return ports.UnknownCity, nil
}
