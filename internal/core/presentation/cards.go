package presentation

import (
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/ports"
)

// HourlyCards renders samples for the 24-hour view
func HourlyCards(samples []forecast.Sample, loc *time.Location, unit preferences.TemperatureUnit) []ports.HourlyCard {
	cards := make([]ports.HourlyCard, len(samples))
	for i, s := range samples {
		cards[i] = ports.HourlyCard{
			Hour:          FormatHourLabel(s.Timestamp, loc),
			Icon:          IconPath(s.ConditionIcon),
			Title:         s.ConditionDescription,
			Temperature:   FormatTemperature(s.Temperature, unit),
			Humidity:      FormatHumidity(s.Humidity),
			Precipitation: FormatPrecipitation(s.PrecipitationProbability),
		}
	}
	return cards
}

// DayCards renders day summaries for the 3-day or 7-day view
func DayCards(summaries []forecast.DaySummary, unit preferences.TemperatureUnit) []ports.DayCard {
	cards := make([]ports.DayCard, len(summaries))
	for i, s := range summaries {
		cards[i] = ports.DayCard{
			Day:         FormatDayLabel(s.DateKey),
			Icon:        IconPath(s.Icon),
			Title:       s.Description,
			High:        FormatDerived(s.DayHigh, unit),
			Low:         FormatDerived(s.NightLow, unit),
			Description: TitleCase(s.Description),
		}
	}
	return cards
}
