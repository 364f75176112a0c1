package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// callEvents names the log messages and event tags of one traced call
type callEvents struct {
	started, completed, failed string
	start, success, failure    string
}

var (
	providerEvents = callEvents{
		started: "Weather API request started", completed: "Weather API request completed", failed: "Weather API request failed",
		start: "request", success: "response", failure: "error",
	}
	chainEvents = callEvents{
		started: "Weather provider chain started", completed: "Weather provider chain completed", failed: "Weather provider chain failed",
		start: "chain_start", success: "chain_success", failure: "chain_error",
	}
)

// traceReport logs fetch around one report lookup for city. describe adds
// fields for a successful report.
func traceReport(
	ctx context.Context,
	logger ports.Logger,
	ev callEvents,
	base []ports.Field,
	fetch func(context.Context) (*ports.WeatherReport, error),
	describe func(*ports.WeatherReport) []ports.Field,
) (*ports.WeatherReport, error) {
	with := func(extra ...ports.Field) []ports.Field {
		return append(append(make([]ports.Field, 0, len(base)+len(extra)), base...), extra...)
	}

	logger.Info(ev.started, with(ports.F("event", ev.start))...)

	began := time.Now()
	report, err := fetch(ctx)
	elapsed := ports.F("duration_ms", time.Since(began).Milliseconds())

	if err != nil {
		logger.Error(ev.failed, with(ports.F("event", ev.failure), elapsed, ports.F("error", err.Error()))...)
		return nil, err
	}

	fields := with(ports.F("event", ev.success), elapsed)
	if report != nil {
		fields = append(fields, describe(report)...)
	}
	logger.Info(ev.completed, fields...)
	return report, nil
}

// WeatherProviderLoggingDecorator logs each upstream call of one provider
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{provider: provider, logger: logger}
}

func (d *WeatherProviderLoggingDecorator) GetWeatherReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	base := []ports.Field{ports.F("provider", d.provider.GetProviderName()), ports.F("city", city)}
	fetch := func(ctx context.Context) (*ports.WeatherReport, error) {
		return d.provider.GetWeatherReport(ctx, city)
	}
	return traceReport(ctx, d.logger, providerEvents, base, fetch, describeReport)
}

func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// describeReport summarizes the current conditions and forecast size
func describeReport(report *ports.WeatherReport) []ports.Field {
	var fields []ports.Field
	if c := report.Current; c != nil {
		fields = append(fields,
			ports.F("temperature", c.Temperature),
			ports.F("humidity", c.Humidity),
			ports.F("description", c.ConditionDescription))
	}
	if report.Forecast != nil {
		fields = append(fields, ports.F("forecast_samples", len(report.Forecast.Samples)))
	}
	return fields
}

// WeatherProviderManagerLoggingDecorator logs each walk of the provider chain
type WeatherProviderManagerLoggingDecorator struct {
	manager ports.WeatherProviderManager
	logger  ports.Logger
}

func NewWeatherProviderManagerLoggingDecorator(manager ports.WeatherProviderManager, logger ports.Logger) ports.WeatherProviderManager {
	return &WeatherProviderManagerLoggingDecorator{manager: manager, logger: logger}
}

func (d *WeatherProviderManagerLoggingDecorator) GetWeatherReport(ctx context.Context, city string) (*ports.WeatherReport, error) {
	fetch := func(ctx context.Context) (*ports.WeatherReport, error) {
		return d.manager.GetWeatherReport(ctx, city)
	}
	servedBy := func(report *ports.WeatherReport) []ports.Field {
		return []ports.Field{ports.F("provider", report.Provider)}
	}
	return traceReport(ctx, d.logger, chainEvents, []ports.Field{ports.F("city", city)}, fetch, servedBy)
}

// GetProviderInfo adds logging_enabled to the wrapped manager's info
func (d *WeatherProviderManagerLoggingDecorator) GetProviderInfo() map[string]interface{} {
	info := d.manager.GetProviderInfo()
	info["logging_enabled"] = true
	return info
}
