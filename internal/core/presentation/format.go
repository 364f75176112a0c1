package presentation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/preferences"
)

// Unknown-value placeholders
const (
	UnknownText = "--"
	UnknownTime = "--:--"
)

const (
	msToKmh       = 3.6
	msToMph       = 2.2369362920544
	hPaToInHg     = 0.0295299830714
	clockLayout   = "03:04:05 PM"
	dateLayout    = "Mon, Jan 2, 2006"
	sunLayout     = "03:04 PM"
	dayLabelShort = "Mon, Jan 2"
	dateKeyLayout = "2006-01-02"
)

var wordStart = regexp.MustCompile(`(^|\s)\S`)

// Round rounds half-up (toward positive infinity), so -2.5 becomes -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// TitleCase capitalizes the first character of the string and every
// character that follows whitespace.
func TitleCase(description string) string {
	return wordStart.ReplaceAllStringFunc(description, strings.ToUpper)
}

// FormatVisibilityKm renders meters as kilometers with two decimals, or the
// unknown placeholder when visibility was not reported.
func FormatVisibilityKm(meters *float64) string {
	if meters == nil {
		return UnknownText
	}
	return fmt.Sprintf("%.2f km", *meters/1000)
}

// FormatClockTime renders t as "HH:MM:SS AM/PM"; midnight shows as 12.
func FormatClockTime(t time.Time) string {
	return t.Format(clockLayout)
}

// FormatClockDate renders t as "Mon, Jan 2, 2006"
func FormatClockDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatSunTime renders a Unix timestamp as "HH:MM AM/PM" in loc; zero means not reported.
func FormatSunTime(unix int64, loc *time.Location) string {
	if unix == 0 {
		return UnknownTime
	}
	return time.Unix(unix, 0).In(loc).Format(sunLayout)
}

// FormatHourLabel renders the local hour of a sample as "H:00"
func FormatHourLabel(unix int64, loc *time.Location) string {
	return fmt.Sprintf("%d:00", time.Unix(unix, 0).In(loc).Hour())
}

// FormatDayLabel renders a YYYY-MM-DD key as "Mon, Jan 2"; unparseable keys are returned as-is.
func FormatDayLabel(dateKey string) string {
	d, err := time.Parse(dateKeyLayout, dateKey)
	if err != nil {
		return dateKey
	}
	return d.Format(dayLabelShort)
}

// ConvertTemperature converts a Celsius value into unit
func ConvertTemperature(celsius float64, unit preferences.TemperatureUnit) float64 {
	if unit == preferences.Fahrenheit {
		return celsius*9/5 + 32
	}
	return celsius
}

// FormatTemperature renders a current temperature with its unit letter, e.g. "21°C"
func FormatTemperature(celsius float64, unit preferences.TemperatureUnit) string {
	return fmt.Sprintf("%d°%s", Round(ConvertTemperature(celsius, unit)), temperatureLetter(unit))
}

// FormatDegrees renders a temperature as "21°" without the unit letter
func FormatDegrees(celsius float64, unit preferences.TemperatureUnit) string {
	return fmt.Sprintf("%d°", Round(ConvertTemperature(celsius, unit)))
}

// FormatDerived renders a derived forecast temperature, "--°" when unknown
func FormatDerived(t forecast.Temperature, unit preferences.TemperatureUnit) string {
	if !t.Known {
		return UnknownText + "°"
	}
	return FormatDegrees(t.Value, unit)
}

// FormatOptionalDegrees renders an optional temperature, "--" when absent
func FormatOptionalDegrees(celsius *float64, unit preferences.TemperatureUnit) string {
	if celsius == nil {
		return UnknownText
	}
	return FormatDegrees(*celsius, unit)
}

// FormatHighLow renders "high/low°" with "--" for either side when absent
func FormatHighLow(high, low *float64, unit preferences.TemperatureUnit) string {
	part := func(v *float64) string {
		if v == nil {
			return UnknownText
		}
		return strconv.Itoa(Round(ConvertTemperature(*v, unit)))
	}
	return part(high) + "/" + part(low) + "°"
}

// FormatWind renders a wind speed given in m/s in the chosen unit
func FormatWind(metersPerSecond float64, unit preferences.WindUnit) string {
	if unit == preferences.MilesPerHour {
		return fmt.Sprintf("%d mph", Round(metersPerSecond*msToMph))
	}
	return fmt.Sprintf("%d km/h", Round(metersPerSecond*msToKmh))
}

// FormatPressure renders a pressure given in hPa in the chosen unit
func FormatPressure(hPa float64, unit preferences.PressureUnit) string {
	if unit == preferences.InchesOfMercury {
		return fmt.Sprintf("%.2f inHg", hPa*hPaToInHg)
	}
	return fmt.Sprintf("%d hPa", Round(hPa))
}

// FormatHumidity renders a humidity percentage
func FormatHumidity(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

// FormatPrecipitation renders a probability in [0,1] as a percentage; absent counts as 0.
func FormatPrecipitation(probability *float64) string {
	if probability == nil {
		return "0%"
	}
	return fmt.Sprintf("%d%%", Round(*probability*100))
}

// FormatUVIndex renders the UV index as reported, "--" when absent
func FormatUVIndex(uvi *float64) string {
	if uvi == nil {
		return UnknownText
	}
	return strconv.FormatFloat(*uvi, 'f', -1, 64)
}

// FormatMoonPhase renders the moon phase, "--" when absent or empty
func FormatMoonPhase(phase string) string {
	if strings.TrimSpace(phase) == "" {
		return UnknownText
	}
	return phase
}

func temperatureLetter(unit preferences.TemperatureUnit) string {
	if unit == preferences.Fahrenheit {
		return "F"
	}
	return "C"
}
