package weather

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/logger"
)

type useCaseMocks struct {
	provider *mocks.WeatherProviderManager
	cache    *mocks.WeatherCache
	config   *mocks.ConfigProvider
	metrics  *mocks.MetricsCollector
}

func newTestUseCase(t *testing.T, enableCache bool) (*UseCase, useCaseMocks) {
	t.Helper()
	m := useCaseMocks{
		provider: mocks.NewWeatherProviderManager(t),
		cache:    mocks.NewWeatherCache(t),
		config:   mocks.NewConfigProvider(t),
		metrics:  mocks.NewMetricsCollector(t),
	}

	m.config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{
		EnableCache: enableCache,
		CacheTTL:    10 * time.Minute,
	}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		WeatherProvider: m.provider,
		Cache:           m.cache,
		Config:          m.config,
		Logger:          infrastructure.NewSlogLoggerAdapter(logger.NewWithWriter(io.Discard, slog.LevelDebug)),
		Metrics:         m.metrics,
	})
	require.NoError(t, err)
	return uc, m
}

func TestUseCase_FetchReport_CacheMiss(t *testing.T) {
	uc, m := newTestUseCase(t, true)
	report := validReport()

	m.cache.EXPECT().Get(mock.Anything, "weather:london").Return((*ports.WeatherReport)(nil), errors.NewNotFoundError("cache miss"))
	m.metrics.EXPECT().RecordCacheMiss(mock.Anything).Return()
	m.provider.EXPECT().GetWeatherReport(mock.Anything, "London").Return(report, nil)
	m.cache.EXPECT().Set(mock.Anything, "weather:london", report, 10*time.Minute).Return(nil)

	result, err := uc.FetchReport(context.Background(), "  London ")

	require.NoError(t, err)
	assert.Equal(t, report, result)
}

func TestUseCase_FetchReport_CacheHit(t *testing.T) {
	uc, m := newTestUseCase(t, true)
	report := validReport()

	m.cache.EXPECT().Get(mock.Anything, "weather:london").Return(report, nil)
	m.metrics.EXPECT().RecordCacheHit(mock.Anything).Return()

	result, err := uc.FetchReport(context.Background(), "London")

	require.NoError(t, err)
	assert.Equal(t, "London", result.Current.City)
	m.provider.AssertNotCalled(t, "GetWeatherReport", mock.Anything, mock.Anything)
}

func TestUseCase_FetchReport_CacheDisabled(t *testing.T) {
	uc, m := newTestUseCase(t, false)

	m.provider.EXPECT().GetWeatherReport(mock.Anything, "Paris").Return(validReport(), nil)

	_, err := uc.FetchReport(context.Background(), "Paris")

	require.NoError(t, err)
	m.cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestUseCase_FetchReport_CacheSetFailureIsNotFatal(t *testing.T) {
	uc, m := newTestUseCase(t, true)
	report := validReport()

	m.cache.EXPECT().Get(mock.Anything, mock.Anything).Return((*ports.WeatherReport)(nil), errors.NewNotFoundError("cache miss"))
	m.metrics.EXPECT().RecordCacheMiss(mock.Anything).Return()
	m.provider.EXPECT().GetWeatherReport(mock.Anything, "London").Return(report, nil)
	m.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.NewStorageError("redis down", nil))

	result, err := uc.FetchReport(context.Background(), "London")

	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestUseCase_FetchReport_ValidationError(t *testing.T) {
	uc, _ := newTestUseCase(t, true)

	result, err := uc.FetchReport(context.Background(), "")

	assert.Nil(t, result)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestUseCase_FetchReport_ProviderErrors(t *testing.T) {
	tests := []struct {
		name     string
		report   *ports.WeatherReport
		err      error
		expected errors.ErrorType
	}{
		{
			name:     "NotFoundPreserved",
			err:      errors.NewNotFoundError("City not found"),
			expected: errors.ErrorTypeNotFound,
		},
		{
			name:     "UpstreamFailure",
			err:      errors.NewFetchError("status 500", nil),
			expected: errors.ErrorTypeFetch,
		},
		{
			name:     "MissingCurrent",
			report:   &ports.WeatherReport{Forecast: &ports.ForecastData{}},
			expected: errors.ErrorTypeFetch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUseCase(t, false)
			m.provider.EXPECT().GetWeatherReport(mock.Anything, "Atlantis").Return(tt.report, tt.err)

			result, err := uc.FetchReport(context.Background(), "Atlantis")

			assert.Nil(t, result)
			assert.Equal(t, tt.expected, errors.TypeOf(err))
		})
	}
}

func TestUseCase_Constructor_Validation(t *testing.T) {
	tests := []struct {
		name    string
		deps    UseCaseDependencies
		wantErr bool
		errMsg  string
	}{
		{
			name: "missing_weather_provider",
			deps: UseCaseDependencies{
				Cache:  mocks.NewWeatherCache(t),
				Config: mocks.NewConfigProvider(t),
				Logger: &infrastructure.SlogLoggerAdapter{},
			},
			wantErr: true,
			errMsg:  "weather provider is required",
		},
		{
			name: "missing_logger",
			deps: UseCaseDependencies{
				WeatherProvider: mocks.NewWeatherProviderManager(t),
				Cache:           mocks.NewWeatherCache(t),
				Config:          mocks.NewConfigProvider(t),
			},
			wantErr: true,
			errMsg:  "logger is required",
		},
		{
			name: "metrics_optional",
			deps: UseCaseDependencies{
				WeatherProvider: mocks.NewWeatherProviderManager(t),
				Cache:           mocks.NewWeatherCache(t),
				Config:          mocks.NewConfigProvider(t),
				Logger:          &infrastructure.SlogLoggerAdapter{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, uc)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, uc)
			}
		})
	}
}
