package external

import (
	"context"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Provider names accepted in ProviderManagerConfig.ProviderOrder
const (
	ProviderOpenWeatherMap = "openweathermap"
	ProviderWeatherAPI     = "weatherapi"
)

// DefaultProviderOrder prefers OpenWeatherMap and falls back to WeatherAPI
var DefaultProviderOrder = []string{ProviderOpenWeatherMap, ProviderWeatherAPI}

// WeatherProviderManagerAdapter asks each upstream in order until one returns a report
type WeatherProviderManagerAdapter struct {
	providers []ports.WeatherProvider
	logger    ports.Logger
}

// ProviderManagerConfig selects the upstreams and the middleware wrapped around each
type ProviderManagerConfig struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	OpenWeatherKey    string
	OpenWeatherURL    string
	ProviderOrder     []string

	// RequestsPerSecond limits each upstream; 0 disables limiting
	RequestsPerSecond float64
	Burst             int
	// Breaker wraps each upstream in a circuit breaker when set
	Breaker *BreakerSettings

	Client HTTPClient
	Logger ports.Logger
}

// NewWeatherProviderManagerAdapter builds the chain from config. Providers without
// an API key and unknown or repeated names in ProviderOrder are skipped.
func NewWeatherProviderManagerAdapter(config ProviderManagerConfig) ports.WeatherProviderManager {
	order := config.ProviderOrder
	if len(order) == 0 {
		order = DefaultProviderOrder
	}

	available := upstreamsFromConfig(config)
	chain := make([]ports.WeatherProvider, 0, len(available))
	for _, name := range order {
		build, ok := available[name]
		if !ok {
			continue
		}
		delete(available, name)
		chain = append(chain, wrapUpstream(build(), config))
		config.Logger.Debug("Weather provider added to chain", ports.F("provider", name), ports.F("position", len(chain)))
	}

	return &WeatherProviderManagerAdapter{providers: chain, logger: config.Logger}
}

// NewWeatherProviderChain builds a manager over already constructed providers
func NewWeatherProviderChain(logger ports.Logger, providers ...ports.WeatherProvider) ports.WeatherProviderManager {
	return &WeatherProviderManagerAdapter{providers: providers, logger: logger}
}

// upstreamsFromConfig returns constructors for every upstream that has a key
func upstreamsFromConfig(config ProviderManagerConfig) map[string]func() ports.WeatherProvider {
	upstreams := make(map[string]func() ports.WeatherProvider, 2)
	if config.OpenWeatherKey != "" {
		upstreams[ProviderOpenWeatherMap] = func() ports.WeatherProvider {
			return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
				APIKey: config.OpenWeatherKey, BaseURL: config.OpenWeatherURL,
				Client: config.Client, Logger: config.Logger,
			})
		}
	}
	if config.WeatherAPIKey != "" {
		upstreams[ProviderWeatherAPI] = func() ports.WeatherProvider {
			return NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
				APIKey: config.WeatherAPIKey, BaseURL: config.WeatherAPIBaseURL,
				Client: config.Client, Logger: config.Logger,
			})
		}
	}
	return upstreams
}

// wrapUpstream applies rate limiting, then the circuit breaker, then logging
func wrapUpstream(provider ports.WeatherProvider, config ProviderManagerConfig) ports.WeatherProvider {
	if config.RequestsPerSecond > 0 {
		provider = NewRateLimitedWeatherProvider(provider, config.RequestsPerSecond, config.Burst)
	}
	if config.Breaker != nil {
		provider = NewCircuitBreakerWeatherProvider(provider, *config.Breaker, config.Logger)
	}
	return NewWeatherProviderLoggingDecorator(provider, config.Logger)
}

// GetWeatherReport returns the first upstream report for city. A validation
// error stops the walk. The result is NotFound only if every upstream said so.
func (m *WeatherProviderManagerAdapter) GetWeatherReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	if len(m.providers) == 0 {
		return nil, errors.NewFetchError("no weather providers configured", nil)
	}

	var failures []error
	for _, provider := range m.providers {
		name := provider.GetProviderName()

		report, err := provider.GetWeatherReport(ctx, city)
		switch {
		case err == nil:
			if len(failures) > 0 {
				m.logger.Info("Weather served by fallback provider",
					ports.F("provider", name), ports.F("city", city), ports.F("skipped", len(failures)))
			}
			return report, nil
		case errors.IsValidationError(err):
			return nil, err
		}

		failures = append(failures, err)
		m.logger.Warn("Weather provider failed",
			ports.F("provider", name), ports.F("city", city), ports.F("error", err.Error()))

		if ctx.Err() != nil {
			break
		}
	}

	return nil, m.chainFailure(city, failures)
}

func (m *WeatherProviderManagerAdapter) chainFailure(city string, failures []error) error {
	last := failures[len(failures)-1]
	m.logger.Error("Weather provider chain exhausted",
		ports.F("city", city), ports.F("attempts", len(failures)), ports.F("last_error", last.Error()))

	for _, err := range failures {
		if !errors.IsNotFoundError(err) {
			return errors.NewFetchError(fmt.Sprintf("weather unavailable after %d of %d providers", len(failures), len(m.providers)), last)
		}
	}
	return errors.NewNotFoundError("City not found")
}

// GetProviderInfo describes the chain for health and metrics output
func (m *WeatherProviderManagerAdapter) GetProviderInfo() map[string]interface{} {
	names := make([]string, 0, len(m.providers))
	for _, provider := range m.providers {
		names = append(names, provider.GetProviderName())
	}

	return map[string]interface{}{
		"total_providers":  len(names),
		"provider_order":   names,
		"chain_enabled":    true,
		"fallback_enabled": len(names) > 1,
	}
}
