// Package presentation maps weather conditions to glyphs and icon files and
// formats derived values for display. Every function is pure and total:
// unrecognized input falls back to a defined value instead of failing.
package presentation

import "strings"

// FallbackGlyph is shown for condition groups outside the known taxonomy
const FallbackGlyph = "🌈"

// Icon files served from IconPathPrefix
const (
	IconPathPrefix = "static/icons/"

	IconClear  = "clear.png"
	IconClouds = "clouds.png"
	IconRain   = "rain.png"
	IconMist   = "mist.png"
)

var conditionGlyphs = map[string]string{
	"Thunderstorm": "⛈️",
	"Drizzle":      "🌦️",
	"Rain":         "🌧️",
	"Snow":         "❄️",
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Mist":         "🌫️",
	"Smoke":        "🌫️",
	"Haze":         "🌫️",
	"Dust":         "🌫️",
	"Fog":          "🌫️",
	"Sand":         "🌫️",
	"Ash":          "🌫️",
	"Squall":       "🌬️",
	"Tornado":      "🌪️",
}

var iconPrefixes = []struct {
	prefixes []string
	file     string
}{
	{[]string{"01"}, IconClear},
	{[]string{"02", "03", "04"}, IconClouds},
	{[]string{"09", "10", "11"}, IconRain},
	{[]string{"50"}, IconMist},
}

// GlyphForCondition returns the display glyph for a condition group such as
// "Rain". Matching is exact; anything else yields FallbackGlyph.
func GlyphForCondition(conditionMain string) string {
	if glyph, ok := conditionGlyphs[conditionMain]; ok {
		return glyph
	}
	return FallbackGlyph
}

// IconFileForCode maps a provider icon code ("10d", "01n", ...) to a local
// icon file by its two-character prefix. Unknown prefixes use the clouds icon.
func IconFileForCode(iconCode string) string {
	for _, group := range iconPrefixes {
		for _, p := range group.prefixes {
			if strings.HasPrefix(iconCode, p) {
				return group.file
			}
		}
	}
	return IconClouds
}

// IconPath returns the served path of the icon for iconCode
func IconPath(iconCode string) string {
	return IconPathPrefix + IconFileForCode(iconCode)
}
