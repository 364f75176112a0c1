package ports

// DetailTarget names one of the secondary fields of the summary panel
type DetailTarget string

const (
	DetailFeelsLike  DetailTarget = "feels_like"
	DetailHumidity   DetailTarget = "humidity"
	DetailWind       DetailTarget = "wind"
	DetailPressure   DetailTarget = "pressure"
	DetailVisibility DetailTarget = "visibility"
	DetailHighLow    DetailTarget = "high_low"
	DetailSunrise    DetailTarget = "sunrise"
	DetailSunset     DetailTarget = "sunset"
	DetailDewPoint   DetailTarget = "dew_point"
	DetailUVIndex    DetailTarget = "uv_index"
	DetailMoonPhase  DetailTarget = "moon_phase"
)

// DetailTargets lists every detail field in panel order
var DetailTargets = []DetailTarget{
	DetailFeelsLike, DetailHumidity, DetailWind, DetailPressure, DetailVisibility,
	DetailHighLow, DetailSunrise, DetailSunset, DetailDewPoint, DetailUVIndex, DetailMoonPhase,
}

// HourlyCard is one entry of the 24-hour view
type HourlyCard struct {
	Hour          string `json:"hour"`
	Icon          string `json:"icon"`
	Title         string `json:"title"`
	Temperature   string `json:"temperature"`
	Humidity      string `json:"humidity"`
	Precipitation string `json:"precipitation"`
}

// DayCard is one entry of the 3-day or 7-day view
type DayCard struct {
	Day         string `json:"day"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	High        string `json:"high"`
	Low         string `json:"low"`
	Description string `json:"description"`
}

// DisplaySurface is the set of named display fields the dashboard renders into.
// A setter returns a MissingDisplayTarget error when its element does not exist;
// callers treat that as a per-field skip.
type DisplaySurface interface {
	SetCityName(text string) error
	SetTemperature(text string) error
	SetConditionGlyph(glyph string) error
	SetConditionIcon(path string) error
	SetDescription(text string) error
	SetDetail(target DetailTarget, text string) error
	SetGreeting(text string) error
	SetClock(timeText, dateText string) error
	SetTheme(theme string) error
	SetUnits(temperature, wind, pressure string) error
	SetFavorites(cities []string) error
	SetHourlyForecast(cards []HourlyCard) error
	SetThreeDayForecast(cards []DayCard) error
	SetSevenDayForecast(cards []DayCard) error
	Notify(message string) error
}

// MapDisplay is the map widget: one viewport and at most one marker
type MapDisplay interface {
	SetView(center Coordinates, zoom int) error
	AddMarker(at Coordinates, label string) error
	RemoveMarker() error
}
