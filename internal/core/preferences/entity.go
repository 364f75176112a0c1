package preferences

import "fmt"

// Theme is the dashboard color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// IsValid reports whether t is one of the known themes
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}

// TemperatureUnit selects Celsius or Fahrenheit display
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
)

func (u TemperatureUnit) IsValid() bool {
	return u == Celsius || u == Fahrenheit
}

// WindUnit selects km/h or mph display
type WindUnit string

const (
	KilometersPerHour WindUnit = "kmh"
	MilesPerHour      WindUnit = "mph"
)

func (u WindUnit) IsValid() bool {
	return u == KilometersPerHour || u == MilesPerHour
}

// PressureUnit selects hPa or inHg display
type PressureUnit string

const (
	Hectopascal     PressureUnit = "hPa"
	InchesOfMercury PressureUnit = "inHg"
)

func (u PressureUnit) IsValid() bool {
	return u == Hectopascal || u == InchesOfMercury
}

// UnitKind names one of the three unit toggles
type UnitKind string

const (
	UnitKindTemperature UnitKind = "temp"
	UnitKindWind        UnitKind = "wind"
	UnitKindPressure    UnitKind = "pressure"
)

// Units is the unit selection used when formatting values
type Units struct {
	Temperature TemperatureUnit
	Wind        WindUnit
	Pressure    PressureUnit
}

// DefaultUnits returns C, km/h and hPa
func DefaultUnits() Units {
	return Units{
		Temperature: Celsius,
		Wind:        KilometersPerHour,
		Pressure:    Hectopascal,
	}
}

// Preferences is the persisted personalization state
type Preferences struct {
	Theme          Theme
	Units          Units
	FavoriteCities []string
}

// Defaults returns the state used when nothing has been persisted yet
func Defaults() Preferences {
	return Preferences{
		Theme:          ThemeLight,
		Units:          DefaultUnits(),
		FavoriteCities: []string{},
	}
}

// HasFavorite reports whether city is already a favorite (exact, case-sensitive match)
func (p Preferences) HasFavorite(city string) bool {
	for _, c := range p.FavoriteCities {
		if c == city {
			return true
		}
	}
	return false
}

// Update carries the fields to persist; nil fields are left untouched.
type Update struct {
	Theme           *Theme
	TemperatureUnit *TemperatureUnit
	WindUnit        *WindUnit
	PressureUnit    *PressureUnit
}

// IsEmpty reports whether the update changes nothing
func (u Update) IsEmpty() bool {
	return u.Theme == nil && u.TemperatureUnit == nil && u.WindUnit == nil && u.PressureUnit == nil
}

// UnitUpdate builds an Update for one unit toggle from its raw value
func UnitUpdate(kind UnitKind, value string) (Update, error) {
	switch kind {
	case UnitKindTemperature:
		u := TemperatureUnit(value)
		if !u.IsValid() {
			return Update{}, fmt.Errorf("invalid temperature unit %q", value)
		}
		return Update{TemperatureUnit: &u}, nil
	case UnitKindWind:
		u := WindUnit(value)
		if !u.IsValid() {
			return Update{}, fmt.Errorf("invalid wind unit %q", value)
		}
		return Update{WindUnit: &u}, nil
	case UnitKindPressure:
		u := PressureUnit(value)
		if !u.IsValid() {
			return Update{}, fmt.Errorf("invalid pressure unit %q", value)
		}
		return Update{PressureUnit: &u}, nil
	default:
		return Update{}, fmt.Errorf("unknown unit kind %q", kind)
	}
}
