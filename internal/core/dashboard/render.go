package dashboard

import (
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/presentation"
	"weatherdash.app/internal/ports"
)

type detail struct {
	target ports.DetailTarget
	text   string
}

// panel holds every display text derived from one report. It is computed in
// full before anything is pushed so a failed render never leaves a mix of old
// and new values.
type panel struct {
	city        string
	temperature string
	glyph       string
	icon        string
	description string
	details     []detail
	greeting    string
	hourly      []ports.HourlyCard
	threeDay    []ports.DayCard
	sevenDay    []ports.DayCard
}

func buildPanel(report *ports.WeatherReport, units preferences.Units, agg *forecast.Aggregator, hourlyCount int, now time.Time) panel {
	cur := report.Current
	loc := agg.Location()

	moonPhase := ""
	if report.Forecast != nil {
		moonPhase = report.Forecast.MoonPhase
	}

	p := panel{
		city:        cur.City,
		temperature: presentation.FormatTemperature(cur.Temperature, units.Temperature),
		glyph:       presentation.GlyphForCondition(cur.ConditionMain),
		icon:        presentation.IconPath(cur.ConditionIcon),
		description: cur.ConditionDescription,
		details: []detail{
			{ports.DetailFeelsLike, presentation.FormatDegrees(cur.FeelsLike, units.Temperature)},
			{ports.DetailHumidity, presentation.FormatHumidity(cur.Humidity)},
			{ports.DetailWind, presentation.FormatWind(cur.WindSpeed, units.Wind)},
			{ports.DetailPressure, presentation.FormatPressure(cur.Pressure, units.Pressure)},
			{ports.DetailVisibility, presentation.FormatVisibilityKm(cur.Visibility)},
			{ports.DetailHighLow, presentation.FormatHighLow(cur.TempMax, cur.TempMin, units.Temperature)},
			{ports.DetailSunrise, presentation.FormatSunTime(cur.Sunrise, loc)},
			{ports.DetailSunset, presentation.FormatSunTime(cur.Sunset, loc)},
			{ports.DetailDewPoint, presentation.FormatOptionalDegrees(cur.DewPoint, units.Temperature)},
			{ports.DetailUVIndex, presentation.FormatUVIndex(cur.UVIndex)},
			{ports.DetailMoonPhase, presentation.FormatMoonPhase(moonPhase)},
		},
		greeting: presentation.Greeting(now.In(loc).Hour(), cur.ConditionDescription),
		hourly:   []ports.HourlyCard{},
		threeDay: []ports.DayCard{},
		sevenDay: []ports.DayCard{},
	}

	if samples := toSamples(report.Forecast); len(samples) > 0 {
		views := agg.Views(samples, hourlyCount)
		p.hourly = presentation.HourlyCards(views.Hourly, loc, units.Temperature)
		p.threeDay = presentation.DayCards(views.ThreeDay, units.Temperature)
		p.sevenDay = presentation.DayCards(views.SevenDay, units.Temperature)
	}

	return p
}

// apply pushes every field independently; a failing field never blocks the others
func (c *Controller) apply(p panel) {
	c.set("city_name", c.display.SetCityName(p.city))
	c.set("temperature", c.display.SetTemperature(p.temperature))
	c.set("condition_glyph", c.display.SetConditionGlyph(p.glyph))
	c.set("condition_icon", c.display.SetConditionIcon(p.icon))
	c.set("description", c.display.SetDescription(p.description))
	for _, d := range p.details {
		c.set(string(d.target), c.display.SetDetail(d.target, d.text))
	}
	c.set("greeting", c.display.SetGreeting(p.greeting))
	c.set("hourly_forecast", c.display.SetHourlyForecast(p.hourly))
	c.set("three_day_forecast", c.display.SetThreeDayForecast(p.threeDay))
	c.set("seven_day_forecast", c.display.SetSevenDayForecast(p.sevenDay))
}

func (c *Controller) applyPreferences(prefs preferences.Preferences) {
	c.set("theme", c.display.SetTheme(string(prefs.Theme)))
	c.set("units", c.display.SetUnits(
		string(prefs.Units.Temperature),
		string(prefs.Units.Wind),
		string(prefs.Units.Pressure)))
	c.set("favorites", c.display.SetFavorites(prefs.FavoriteCities))
}

func (c *Controller) renderClock(now time.Time) {
	local := now.In(c.aggregator.Location())
	c.set("clock", c.display.SetClock(
		presentation.FormatClockTime(local),
		presentation.FormatClockDate(local)))
}
