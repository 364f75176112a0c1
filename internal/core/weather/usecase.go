package weather

import (
	"context"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// UseCase serves weather reports from the cache or the provider chain.
// It implements ports.WeatherFetcher.
type UseCase struct {
	providers ports.WeatherProviderManager
	cache     ports.WeatherCache
	config    ports.ConfigProvider
	logger    ports.Logger
	metrics   ports.MetricsCollector
}

// UseCaseDependencies are the ports the use case needs. Metrics is optional.
type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProviderManager
	Cache           ports.WeatherCache
	Config          ports.ConfigProvider
	Logger          ports.Logger
	Metrics         ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	required := []struct {
		missing bool
		name    string
	}{
		{deps.WeatherProvider == nil, "weather provider"},
		{deps.Cache == nil, "cache"},
		{deps.Config == nil, "config"},
		{deps.Logger == nil, "logger"},
	}
	for _, r := range required {
		if r.missing {
			return nil, errors.NewValidationError(r.name + " is required")
		}
	}

	return &UseCase{
		providers: deps.WeatherProvider,
		cache:     deps.Cache,
		config:    deps.Config,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

// FetchReport returns current conditions and forecast for city. Names that
// differ only in case or surrounding space share one cache entry.
func (uc *UseCase) FetchReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	request := WeatherRequest{City: city}
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	request.NormalizeCity()

	settings := uc.config.GetWeatherConfig()

	var (
		report *ports.WeatherReport
		err    error
	)
	if settings.EnableCache {
		report, err = uc.cachedOrFetched(ctx, request, settings)
	} else {
		report, err = uc.fetch(ctx, request.City)
	}
	if err != nil {
		uc.logger.Warn("Weather lookup failed", ports.F("city", request.City), ports.F("error", err))
		return nil, fmt.Errorf("weather for %s: %w", request.City, err)
	}

	uc.logger.Debug("Weather lookup served",
		ports.F("city", report.Current.City),
		ports.F("provider", report.Provider))
	return report, nil
}

func (uc *UseCase) cachedOrFetched(ctx context.Context, request WeatherRequest, settings ports.WeatherConfig) (*ports.WeatherReport, error) {
	key := request.CacheKey()

	if cached, err := uc.cache.Get(ctx, key); err == nil && ValidateReport(cached) == nil {
		uc.countCacheLookup(ctx, true)
		return cached, nil
	}
	uc.countCacheLookup(ctx, false)

	report, err := uc.fetch(ctx, request.City)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, report, settings.CacheTTL); err != nil {
		uc.logger.Warn("Weather report not cached", ports.F("key", key), ports.F("error", err))
	}
	return report, nil
}

// fetch asks the provider chain. NotFound passes through; anything else is a FetchError.
func (uc *UseCase) fetch(ctx context.Context, city string) (*ports.WeatherReport, error) {
	report, err := uc.providers.GetWeatherReport(ctx, city)
	switch {
	case errors.IsNotFoundError(err):
		return nil, err
	case err != nil:
		return nil, errors.NewFetchError("weather provider failed", err)
	}

	if err := ValidateReport(report); err != nil {
		return nil, errors.NewFetchError("unusable weather data: "+err.Error(), nil)
	}
	return report, nil
}

func (uc *UseCase) countCacheLookup(ctx context.Context, hit bool) {
	switch {
	case uc.metrics == nil:
	case hit:
		uc.metrics.RecordCacheHit(ctx)
	default:
		uc.metrics.RecordCacheMiss(ctx)
	}
}

// GetProviderInfo describes the configured provider chain
func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	return uc.providers.GetProviderInfo()
}
