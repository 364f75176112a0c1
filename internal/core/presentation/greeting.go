package presentation

import (
	"fmt"
	"strings"
)

// Greeting glyphs
const (
	GlyphMoon       = "🌙"
	GlyphSun        = "☀️"
	GlyphPartialSun = "🌤️"
	GlyphSunset     = "🌇"
)

// Greeting suffixes keyed by description keyword
const (
	SuffixRain  = " – It might rain, stay cozy!"
	SuffixClear = " – Clear skies ahead!"
	SuffixCloud = " – A bit cloudy today."
	SuffixMist  = " – Drive safe in the mist!"
)

// greetingSuffixes is checked in order; the first keyword found wins
var greetingSuffixes = []struct {
	keywords []string
	suffix   string
}{
	{[]string{"rain"}, SuffixRain},
	{[]string{"clear"}, SuffixClear},
	{[]string{"cloud"}, SuffixCloud},
	{[]string{"mist", "fog"}, SuffixMist},
}

// PartOfDay returns Night, Morning, Afternoon or Evening for a local hour.
func PartOfDay(hour int) string {
	switch {
	case hour < 5:
		return "Night"
	case hour < 12:
		return "Morning"
	case hour < 18:
		return "Afternoon"
	default:
		return "Evening"
	}
}

// GreetingGlyph returns the glyph shown next to the greeting.
// The moon band starts at 20:00 while the text switches to Evening at 18:00,
// so 18:00-19:59 reads "Evening" with the sunset glyph.
func GreetingGlyph(hour int) string {
	switch {
	case hour < 5 || hour >= 20:
		return GlyphMoon
	case hour < 12:
		return GlyphSun
	case hour < 18:
		return GlyphPartialSun
	default:
		return GlyphSunset
	}
}

// Greeting builds the greeting line for a local hour, optionally followed by
// a remark about the current condition description. An empty description
// means no remark.
func Greeting(hour int, description string) string {
	msg := fmt.Sprintf("Good %s %s", PartOfDay(hour), GreetingGlyph(hour))
	if description == "" {
		return msg
	}
	for _, s := range greetingSuffixes {
		for _, kw := range s.keywords {
			if strings.Contains(description, kw) {
				return msg + s.suffix
			}
		}
	}
	return msg
}
