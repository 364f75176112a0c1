// Package display holds the display surface and map adapters the dashboard
// controller renders into.
package display

import (
	"sync"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Target names for the fields that are not detail targets
const (
	TargetCityName         = "city_name"
	TargetTemperature      = "temperature"
	TargetConditionGlyph   = "condition_glyph"
	TargetConditionIcon    = "condition_icon"
	TargetDescription      = "description"
	TargetGreeting         = "greeting"
	TargetClock            = "clock"
	TargetTheme            = "theme"
	TargetUnits            = "units"
	TargetFavorites        = "favorites"
	TargetHourlyForecast   = "hourly_forecast"
	TargetThreeDayForecast = "three_day_forecast"
	TargetSevenDayForecast = "seven_day_forecast"
	TargetNotification     = "notification"
	TargetMap              = "map"
)

// DefaultNotificationLimit bounds the notifications kept in a snapshot
const DefaultNotificationLimit = 20

// Notification is one message shown to the user
type Notification struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// UnitsState mirrors the three unit toggles
type UnitsState struct {
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
}

// ClockState is the rendered clock
type ClockState struct {
	Time string `json:"time"`
	Date string `json:"date"`
}

// MapState is the rendered map widget
type MapState struct {
	Center      ports.Coordinates  `json:"center"`
	Zoom        int                `json:"zoom"`
	Marker      *ports.Coordinates `json:"marker,omitempty"`
	MarkerLabel string             `json:"marker_label,omitempty"`
}

// Snapshot is everything currently rendered on the dashboard
type Snapshot struct {
	CityName         string                        `json:"city_name"`
	Temperature      string                        `json:"temperature"`
	ConditionGlyph   string                        `json:"condition_glyph"`
	ConditionIcon    string                        `json:"condition_icon"`
	Description      string                        `json:"description"`
	Details          map[ports.DetailTarget]string `json:"details"`
	Greeting         string                        `json:"greeting"`
	Clock            ClockState                    `json:"clock"`
	Theme            string                        `json:"theme"`
	Units            UnitsState                    `json:"units"`
	Favorites        []string                      `json:"favorites"`
	HourlyForecast   []ports.HourlyCard            `json:"hourly_forecast"`
	ThreeDayForecast []ports.DayCard               `json:"three_day_forecast"`
	SevenDayForecast []ports.DayCard               `json:"seven_day_forecast"`
	Notifications    []Notification                `json:"notifications"`
	Map              MapState                      `json:"map"`
}

// SnapshotSurface keeps the rendered dashboard in memory so it can be served
// as JSON. Targets listed in the missing set behave like absent elements.
type SnapshotSurface struct {
	mu      sync.RWMutex
	state   Snapshot
	missing map[string]struct{}
	limit   int
	now     func() time.Time
}

// SnapshotOption configures a SnapshotSurface
type SnapshotOption func(*SnapshotSurface)

// WithMissingTargets marks targets as absent from the page
func WithMissingTargets(targets ...string) SnapshotOption {
	return func(s *SnapshotSurface) {
		for _, t := range targets {
			s.missing[t] = struct{}{}
		}
	}
}

// WithNotificationLimit sets how many notifications are retained
func WithNotificationLimit(limit int) SnapshotOption {
	return func(s *SnapshotSurface) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithClock overrides the notification timestamp source
func WithClock(now func() time.Time) SnapshotOption {
	return func(s *SnapshotSurface) {
		s.now = now
	}
}

func NewSnapshotSurface(opts ...SnapshotOption) *SnapshotSurface {
	s := &SnapshotSurface{
		state: Snapshot{
			Details:          make(map[ports.DetailTarget]string),
			Favorites:        []string{},
			HourlyForecast:   []ports.HourlyCard{},
			ThreeDayForecast: []ports.DayCard{},
			SevenDayForecast: []ports.DayCard{},
			Notifications:    []Notification{},
		},
		missing: make(map[string]struct{}),
		limit:   DefaultNotificationLimit,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the rendered state
func (s *SnapshotSurface) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Details = make(map[ports.DetailTarget]string, len(s.state.Details))
	for k, v := range s.state.Details {
		out.Details[k] = v
	}
	out.Favorites = append([]string{}, s.state.Favorites...)
	out.HourlyForecast = append([]ports.HourlyCard{}, s.state.HourlyForecast...)
	out.ThreeDayForecast = append([]ports.DayCard{}, s.state.ThreeDayForecast...)
	out.SevenDayForecast = append([]ports.DayCard{}, s.state.SevenDayForecast...)
	out.Notifications = append([]Notification{}, s.state.Notifications...)
	if s.state.Map.Marker != nil {
		m := *s.state.Map.Marker
		out.Map.Marker = &m
	}
	return out
}

// update runs fn under the lock unless target is missing
func (s *SnapshotSurface) update(target string, fn func(*Snapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.missing[target]; ok {
		return errors.NewMissingDisplayTargetError(target)
	}
	fn(&s.state)
	return nil
}

func (s *SnapshotSurface) SetCityName(text string) error {
	return s.update(TargetCityName, func(st *Snapshot) { st.CityName = text })
}

func (s *SnapshotSurface) SetTemperature(text string) error {
	return s.update(TargetTemperature, func(st *Snapshot) { st.Temperature = text })
}

func (s *SnapshotSurface) SetConditionGlyph(glyph string) error {
	return s.update(TargetConditionGlyph, func(st *Snapshot) { st.ConditionGlyph = glyph })
}

func (s *SnapshotSurface) SetConditionIcon(path string) error {
	return s.update(TargetConditionIcon, func(st *Snapshot) { st.ConditionIcon = path })
}

func (s *SnapshotSurface) SetDescription(text string) error {
	return s.update(TargetDescription, func(st *Snapshot) { st.Description = text })
}

func (s *SnapshotSurface) SetDetail(target ports.DetailTarget, text string) error {
	return s.update(string(target), func(st *Snapshot) { st.Details[target] = text })
}

func (s *SnapshotSurface) SetGreeting(text string) error {
	return s.update(TargetGreeting, func(st *Snapshot) { st.Greeting = text })
}

func (s *SnapshotSurface) SetClock(timeText, dateText string) error {
	return s.update(TargetClock, func(st *Snapshot) {
		st.Clock = ClockState{Time: timeText, Date: dateText}
	})
}

func (s *SnapshotSurface) SetTheme(theme string) error {
	return s.update(TargetTheme, func(st *Snapshot) { st.Theme = theme })
}

func (s *SnapshotSurface) SetUnits(temperature, wind, pressure string) error {
	return s.update(TargetUnits, func(st *Snapshot) {
		st.Units = UnitsState{Temperature: temperature, Wind: wind, Pressure: pressure}
	})
}

func (s *SnapshotSurface) SetFavorites(cities []string) error {
	return s.update(TargetFavorites, func(st *Snapshot) {
		st.Favorites = append([]string{}, cities...)
	})
}

func (s *SnapshotSurface) SetHourlyForecast(cards []ports.HourlyCard) error {
	return s.update(TargetHourlyForecast, func(st *Snapshot) {
		st.HourlyForecast = append([]ports.HourlyCard{}, cards...)
	})
}

func (s *SnapshotSurface) SetThreeDayForecast(cards []ports.DayCard) error {
	return s.update(TargetThreeDayForecast, func(st *Snapshot) {
		st.ThreeDayForecast = append([]ports.DayCard{}, cards...)
	})
}

func (s *SnapshotSurface) SetSevenDayForecast(cards []ports.DayCard) error {
	return s.update(TargetSevenDayForecast, func(st *Snapshot) {
		st.SevenDayForecast = append([]ports.DayCard{}, cards...)
	})
}

// Notify appends message, dropping the oldest once the limit is reached
func (s *SnapshotSurface) Notify(message string) error {
	return s.update(TargetNotification, func(st *Snapshot) {
		st.Notifications = append(st.Notifications, Notification{Message: message, At: s.now()})
		if over := len(st.Notifications) - s.limit; over > 0 {
			st.Notifications = append([]Notification{}, st.Notifications[over:]...)
		}
	})
}

func (s *SnapshotSurface) SetView(center ports.Coordinates, zoom int) error {
	return s.update(TargetMap, func(st *Snapshot) {
		st.Map.Center = center
		st.Map.Zoom = zoom
	})
}

func (s *SnapshotSurface) AddMarker(at ports.Coordinates, label string) error {
	return s.update(TargetMap, func(st *Snapshot) {
		marker := at
		st.Map.Marker = &marker
		st.Map.MarkerLabel = label
	})
}

func (s *SnapshotSurface) RemoveMarker() error {
	return s.update(TargetMap, func(st *Snapshot) {
		st.Map.Marker = nil
		st.Map.MarkerLabel = ""
	})
}

var (
	_ ports.DisplaySurface = (*SnapshotSurface)(nil)
	_ ports.MapDisplay     = (*SnapshotSurface)(nil)
)
