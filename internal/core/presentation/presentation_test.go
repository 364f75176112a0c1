package presentation

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/ports"
)

func ptr(v float64) *float64 { return &v }

func TestGlyphForCondition(t *testing.T) {
	tests := []struct {
		condition string
		want      string
	}{
		{"Thunderstorm", "⛈️"},
		{"Drizzle", "🌦️"},
		{"Rain", "🌧️"},
		{"Snow", "❄️"},
		{"Clear", "☀️"},
		{"Clouds", "☁️"},
		{"Mist", "🌫️"},
		{"Smoke", "🌫️"},
		{"Haze", "🌫️"},
		{"Dust", "🌫️"},
		{"Fog", "🌫️"},
		{"Sand", "🌫️"},
		{"Ash", "🌫️"},
		{"Squall", "🌬️"},
		{"Tornado", "🌪️"},
		{"rain", FallbackGlyph},
		{"Hail", FallbackGlyph},
		{"", FallbackGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			assert.Equal(t, tt.want, GlyphForCondition(tt.condition))
		})
	}
}

func TestIconFileForCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"01d", IconClear},
		{"01n", IconClear},
		{"02d", IconClouds},
		{"03n", IconClouds},
		{"04d", IconClouds},
		{"09d", IconRain},
		{"10n", IconRain},
		{"11d", IconRain},
		{"50d", IconMist},
		{"13d", IconClouds},
		{"0", IconClouds},
		{"", IconClouds},
		{"xyz", IconClouds},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IconFileForCode(tt.code))
		})
	}

	assert.Equal(t, "static/icons/rain.png", IconPath("10d"))
}

func TestMappingsAreTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	known := map[string]bool{IconClear: true, IconClouds: true, IconRain: true, IconMist: true}

	for i := 0; i < 500; i++ {
		b := make([]byte, rng.Intn(6))
		for j := range b {
			b[j] = byte(rng.Intn(256))
		}
		s := string(b)
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, GlyphForCondition(s))
			assert.True(t, known[IconFileForCode(s)])
		})
	}
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		name        string
		hour        int
		description string
		want        string
	}{
		{"EarlyNight", 0, "", "Good Night 🌙"},
		{"LateNight", 4, "", "Good Night 🌙"},
		{"MorningStart", 5, "", "Good Morning ☀️"},
		{"MorningRain", 9, "light rain expected", "Good Morning ☀️" + SuffixRain},
		{"Afternoon", 12, "clear sky", "Good Afternoon 🌤️" + SuffixClear},
		{"AfternoonEnd", 17, "scattered clouds", "Good Afternoon 🌤️" + SuffixCloud},
		{"EveningSunset", 18, "mist", "Good Evening 🌇" + SuffixMist},
		{"EveningSunsetLate", 19, "freezing fog", "Good Evening 🌇" + SuffixMist},
		{"EveningMoon", 20, "", "Good Evening 🌙"},
		{"EveningMoonLate", 23, "snow", "Good Evening 🌙"},
		{"RainWinsOverCloud", 10, "rain and clouds", "Good Morning ☀️" + SuffixRain},
		{"ClearWinsOverMist", 10, "clear after mist", "Good Morning ☀️" + SuffixClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Greeting(tt.hour, tt.description))
		})
	}
}

func TestGreeting_MorningRainScenario(t *testing.T) {
	got := Greeting(9, "light rain expected")

	assert.Contains(t, got, "Morning")
	assert.Contains(t, got, GlyphSun)
	assert.True(t, strings.HasSuffix(got, SuffixRain))
}

// The evening text starts at 18:00 but the moon glyph only at 20:00.
// This asymmetry is intentional and kept.
func TestGreeting_KnownBandAsymmetry(t *testing.T) {
	for hour := 18; hour < 20; hour++ {
		assert.Equal(t, "Evening", PartOfDay(hour))
		assert.Equal(t, GlyphSunset, GreetingGlyph(hour))
	}
	for hour := 20; hour < 24; hour++ {
		assert.Equal(t, "Evening", PartOfDay(hour))
		assert.Equal(t, GlyphMoon, GreetingGlyph(hour))
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Light Rain", TitleCase("light rain"))
	assert.Equal(t, "Overcast Clouds", TitleCase("overcast clouds"))
	assert.Equal(t, "  Broken  Clouds", TitleCase("  broken  clouds"))
	assert.Equal(t, "Already Upper", TitleCase("Already Upper"))
	assert.Equal(t, "", TitleCase(""))
	assert.Equal(t, "Éclair", TitleCase("éclair"))
}

func TestFormatVisibilityKm(t *testing.T) {
	assert.Equal(t, "10.00 km", FormatVisibilityKm(ptr(10000)))
	assert.Equal(t, "1.23 km", FormatVisibilityKm(ptr(1234)))
	assert.Equal(t, "0.00 km", FormatVisibilityKm(ptr(0)))
	assert.Equal(t, UnknownText, FormatVisibilityKm(nil))
}

func TestFormatClock(t *testing.T) {
	midnight := time.Date(2024, 1, 1, 0, 5, 9, 0, time.UTC)
	assert.Equal(t, "12:05:09 AM", FormatClockTime(midnight))
	assert.Equal(t, "Mon, Jan 1, 2024", FormatClockDate(midnight))

	afternoon := time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, "01:45:00 PM", FormatClockTime(afternoon))
	assert.Equal(t, "Fri, Mar 15, 2024", FormatClockDate(afternoon))

	noon := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "12:00:00 PM", FormatClockTime(noon))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 22, Round(21.5))
	assert.Equal(t, 21, Round(21.49))
	assert.Equal(t, -2, Round(-2.5))
	assert.Equal(t, -3, Round(-2.51))
	assert.Equal(t, 0, Round(0))
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "22°C", FormatTemperature(21.5, preferences.Celsius))
	assert.Equal(t, "68°F", FormatTemperature(20, preferences.Fahrenheit))
	assert.Equal(t, "-2°C", FormatTemperature(-2.5, preferences.Celsius))
	assert.Equal(t, "15°", FormatDegrees(14.6, preferences.Celsius))
	assert.Equal(t, "--°", FormatDerived(forecast.Unknown, preferences.Celsius))
	assert.Equal(t, "50°", FormatDerived(forecast.KnownTemperature(10), preferences.Fahrenheit))
	assert.Equal(t, UnknownText, FormatOptionalDegrees(nil, preferences.Celsius))
	assert.Equal(t, "3°", FormatOptionalDegrees(ptr(3.2), preferences.Celsius))
}

func TestFormatHighLow(t *testing.T) {
	assert.Equal(t, "25/18°", FormatHighLow(ptr(24.6), ptr(18.1), preferences.Celsius))
	assert.Equal(t, "--/18°", FormatHighLow(nil, ptr(18), preferences.Celsius))
	assert.Equal(t, "--/--°", FormatHighLow(nil, nil, preferences.Fahrenheit))
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "36 km/h", FormatWind(10, preferences.KilometersPerHour))
	assert.Equal(t, "22 mph", FormatWind(10, preferences.MilesPerHour))
	assert.Equal(t, "1013 hPa", FormatPressure(1013, preferences.Hectopascal))
	assert.Equal(t, "29.91 inHg", FormatPressure(1013, preferences.InchesOfMercury))
	assert.Equal(t, "65%", FormatHumidity(65))
	assert.Equal(t, "20%", FormatPrecipitation(ptr(0.2)))
	assert.Equal(t, "0%", FormatPrecipitation(nil))
	assert.Equal(t, "7.5", FormatUVIndex(ptr(7.5)))
	assert.Equal(t, UnknownText, FormatUVIndex(nil))
	assert.Equal(t, UnknownText, FormatMoonPhase(" "))
	assert.Equal(t, "0.25", FormatMoonPhase("0.25"))
}

func TestFormatTimes(t *testing.T) {
	sunrise := time.Date(2024, 1, 1, 6, 12, 0, 0, time.UTC).Unix()

	assert.Equal(t, "06:12 AM", FormatSunTime(sunrise, time.UTC))
	assert.Equal(t, UnknownTime, FormatSunTime(0, time.UTC))
	assert.Equal(t, "6:00", FormatHourLabel(sunrise, time.UTC))
	assert.Equal(t, "0:00", FormatHourLabel(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix(), time.UTC))
	assert.Equal(t, "Wed, Jan 3", FormatDayLabel("2024-01-03"))
	assert.Equal(t, "garbage", FormatDayLabel("garbage"))
}

func TestHourlyCards(t *testing.T) {
	samples := []forecast.Sample{
		{
			Timestamp:                time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC).Unix(),
			Temperature:              12.4,
			Humidity:                 81,
			ConditionIcon:            "10d",
			ConditionDescription:     "light rain",
			PrecipitationProbability: ptr(0.6),
		},
	}

	cards := HourlyCards(samples, time.UTC, preferences.Celsius)
	require.Len(t, cards, 1)
	assert.Equal(t, ports.HourlyCard{
		Hour:          "15:00",
		Icon:          "static/icons/rain.png",
		Title:         "light rain",
		Temperature:   "12°C",
		Humidity:      "81%",
		Precipitation: "60%",
	}, cards[0])
}

func TestDayCards(t *testing.T) {
	summaries := []forecast.DaySummary{
		{
			DateKey:     "2024-01-02",
			DayHigh:     forecast.KnownTemperature(9.6),
			NightLow:    forecast.Unknown,
			Icon:        "04d",
			Description: "broken clouds",
		},
	}

	cards := DayCards(summaries, preferences.Celsius)
	require.Len(t, cards, 1)
	assert.Equal(t, ports.DayCard{
		Day:         "Tue, Jan 2",
		Icon:        "static/icons/clouds.png",
		Title:       "broken clouds",
		High:        "10°",
		Low:         "--°",
		Description: "Broken Clouds",
	}, cards[0])
}
