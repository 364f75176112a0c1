package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// RateLimitedWeatherProvider wraps a WeatherProvider with a token bucket
type RateLimitedWeatherProvider struct {
	provider ports.WeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedWeatherProvider allows rps requests per second (fractional for
// less than one) with bursts of up to burst requests.
func NewRateLimitedWeatherProvider(provider ports.WeatherProvider, rps float64, burst int) ports.WeatherProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedWeatherProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetWeatherReport waits for a token or context cancellation, then forwards
func (r *RateLimitedWeatherProvider) GetWeatherReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewFetchError(fmt.Sprintf("%s rate limit wait canceled", r.provider.GetProviderName()), err)
	}
	return r.provider.GetWeatherReport(ctx, city)
}

// GetProviderName returns the wrapped provider's name
func (r *RateLimitedWeatherProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}

// BreakerSettings configures CircuitBreakerWeatherProvider
type BreakerSettings struct {
	// MaxRequests allowed through while half-open
	MaxRequests uint32
	// Interval clears the failure counts while closed; 0 never clears
	Interval time.Duration
	// Timeout is how long the breaker stays open
	Timeout time.Duration
	// ConsecutiveFailures trips the breaker
	ConsecutiveFailures uint32
}

// DefaultBreakerSettings returns the settings used when none are configured
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// CircuitBreakerWeatherProvider stops calling an upstream that keeps failing.
// Unknown cities and invalid input are answers, not failures, and never trip it.
type CircuitBreakerWeatherProvider struct {
	provider ports.WeatherProvider
	breaker  *gobreaker.CircuitBreaker
}

// NewCircuitBreakerWeatherProvider wraps provider with a circuit breaker
func NewCircuitBreakerWeatherProvider(provider ports.WeatherProvider, settings BreakerSettings, logger ports.Logger) ports.WeatherProvider {
	name := provider.GetProviderName()
	threshold := settings.ConsecutiveFailures
	if threshold == 0 {
		threshold = DefaultBreakerSettings().ConsecutiveFailures
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.IsNotFoundError(err) || errors.IsValidationError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("Weather provider circuit state changed",
					ports.F("provider", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})

	return &CircuitBreakerWeatherProvider{
		provider: provider,
		breaker:  cb,
	}
}

// GetWeatherReport forwards through the breaker
func (c *CircuitBreakerWeatherProvider) GetWeatherReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.provider.GetWeatherReport(ctx, city)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewFetchError(fmt.Sprintf("%s circuit open", c.GetProviderName()), err)
		}
		return nil, err
	}

	report, ok := result.(*ports.WeatherReport)
	if !ok {
		return nil, errors.NewFetchError("unexpected result type from circuit breaker", nil)
	}
	return report, nil
}

// GetProviderName returns the wrapped provider's name
func (c *CircuitBreakerWeatherProvider) GetProviderName() string {
	return c.provider.GetProviderName()
}

// State reports the breaker state ("closed", "half-open", "open")
func (c *CircuitBreakerWeatherProvider) State() string {
	return c.breaker.State().String()
}
