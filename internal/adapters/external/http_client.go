// Package external provides adapters for external services:
// weather providers, reverse geocoding and the report cache.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient() HTTPClient {
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// statusError carries a non-200 upstream status
type statusError struct {
	service string
	code    int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.service, e.code)
}

// getJSON performs a GET and decodes a 200 response body into target.
// Non-200 responses are returned as *statusError.
func getJSON(ctx context.Context, client HTTPClient, logger ports.Logger, service, url string, headers map[string]string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.NewFetchError(fmt.Sprintf("failed to build %s request", service), err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.NewFetchError(fmt.Sprintf("failed to call %s", service), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Warn("Failed to close response body",
				ports.F("service", service),
				ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return &statusError{service: service, code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.NewFetchError(fmt.Sprintf("failed to decode %s response", service), err)
	}
	return nil
}

func statusCode(err error) int {
	if se, ok := err.(*statusError); ok {
		return se.code
	}
	return 0
}

func float64Ptr(v float64) *float64 {
	return &v
}
