// Package dashboard orchestrates user actions: it fetches reports, routes them
// through the forecast aggregator and presentation helpers, and pushes the
// result to the display surface and the map.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/presentation"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// PreferenceStore is the persistence the controller needs for personalization
type PreferenceStore interface {
	Load(ctx context.Context) preferences.Preferences
	Save(ctx context.Context, update preferences.Update) error
	AddFavorite(ctx context.Context, city string) ([]string, error)
	RemoveFavorite(ctx context.Context, city string) ([]string, error)
}

// Controller owns the dashboard state. Network calls run without the lock;
// their results are applied under it, so one completed action mutates the
// display, the map and the preferences at a time.
type Controller struct {
	fetcher    ports.WeatherFetcher
	geocoder   ports.ReverseGeocoder
	prefs      PreferenceStore
	display    ports.DisplaySurface
	mapView    ports.MapDisplay
	aggregator *forecast.Aggregator
	logger     ports.Logger
	metrics    ports.MetricsCollector
	opts       Options

	mu         sync.Mutex
	viewport   MapViewportState
	settings   preferences.Preferences
	lastReport *ports.WeatherReport
}

type ControllerDependencies struct {
	Fetcher     ports.WeatherFetcher
	Geocoder    ports.ReverseGeocoder
	Preferences PreferenceStore
	Display     ports.DisplaySurface
	Map         ports.MapDisplay
	Logger      ports.Logger
	Metrics     ports.MetricsCollector
	Options     Options
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("reverse geocoder is required")
	}
	if deps.Preferences == nil {
		return nil, errors.NewValidationError("preference store is required")
	}
	if deps.Display == nil {
		return nil, errors.NewValidationError("display surface is required")
	}
	if deps.Map == nil {
		return nil, errors.NewValidationError("map display is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	opts := deps.Options.withDefaults()
	return &Controller{
		fetcher:    deps.Fetcher,
		geocoder:   deps.Geocoder,
		prefs:      deps.Preferences,
		display:    deps.Display,
		mapView:    deps.Map,
		aggregator: forecast.NewAggregator(opts.Location),
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		opts:       opts,
		viewport: MapViewportState{
			Center: *opts.DefaultCenter,
			Zoom:   opts.DefaultZoom,
		},
		settings: preferences.Defaults(),
	}, nil
}

// Start loads the saved preferences and renders the initial state:
// theme, units, favorites, greeting, clock and the default map view.
func (c *Controller) Start(ctx context.Context) {
	prefs := c.prefs.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings = prefs
	c.applyPreferences(prefs)

	now := c.opts.Now()
	c.set("greeting", c.display.SetGreeting(c.greeting(now, "")))
	c.renderClock(now)
	c.set("map_view", c.mapView.SetView(c.viewport.Center, c.viewport.Zoom))

	c.logger.Info("Dashboard started",
		ports.F("theme", prefs.Theme),
		ports.F("favorites", len(prefs.FavoriteCities)))
}

// Search fetches and renders the weather for city. On failure the user is
// notified and the previous display state is left as it was.
func (c *Controller) Search(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if !validation.IsValidCityName(city) {
		return errors.NewValidationError("city name is required")
	}

	report, err := c.fetcher.FetchReport(ctx, city)
	if err == nil && (report == nil || report.Current == nil) {
		err = errors.NewFetchError("response has no current conditions", nil)
	}
	if err != nil {
		c.logger.Warn("Weather fetch failed", ports.F("city", city), ports.F("error", err))
		c.notify(ctx, MsgFetchFailed)
		if errors.IsNotFoundError(err) {
			return err
		}
		return errors.NewFetchError(fmt.Sprintf("fetch weather for %s", city), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := buildPanel(report, c.settings.Units, c.aggregator, c.opts.HourlyCount, c.opts.Now())
	c.apply(p)
	c.moveMarker(report.Current.Coord, report.Current.City)
	c.lastReport = report

	c.logger.Info("Dashboard updated",
		ports.F("city", report.Current.City),
		ports.F("forecast_samples", len(toSamples(report.Forecast))))
	return nil
}

// QuickSelect searches for a favorite city
func (c *Controller) QuickSelect(ctx context.Context, city string) error {
	return c.Search(ctx, city)
}

// Geolocate resolves a position fix to a city name and searches for it
func (c *Controller) Geolocate(ctx context.Context, at ports.Coordinates) error {
	if !validation.IsValidLatitude(at.Lat) || !validation.IsValidLongitude(at.Lon) {
		return errors.NewValidationError("coordinates out of range")
	}

	city, err := c.geocoder.ReverseGeocode(ctx, at)
	if err != nil {
		c.logger.Warn("Reverse geocoding failed",
			ports.F("lat", at.Lat),
			ports.F("lon", at.Lon),
			ports.F("error", err))
		c.notify(ctx, MsgGeocodeFailed)
		return errors.NewGeolocationUnavailableError("reverse geocoding failed", err)
	}

	return c.Search(ctx, city)
}

// GeolocationFailed reports that no position fix could be obtained.
// No fallback city is chosen.
func (c *Controller) GeolocationFailed(ctx context.Context, reason GeolocationFailure) error {
	switch reason {
	case GeolocationDenied:
		c.notify(ctx, MsgGeolocationDenied)
		return errors.NewGeolocationDeniedError("location access denied")
	case GeolocationUnsupported:
		c.notify(ctx, MsgGeolocationUnsupported)
		return errors.NewGeolocationUnavailableError("geolocation not supported", nil)
	default:
		return errors.NewValidationError(fmt.Sprintf("unknown geolocation failure %q", reason))
	}
}

// SetTheme persists and applies theme
func (c *Controller) SetTheme(ctx context.Context, theme preferences.Theme) error {
	if !theme.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid theme %q", theme))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.prefs.Save(ctx, preferences.Update{Theme: &theme}); err != nil {
		return err
	}
	c.settings.Theme = theme
	c.set("theme", c.display.SetTheme(string(theme)))
	return nil
}

// SetUnit persists one unit toggle and re-renders the last report in the new units
func (c *Controller) SetUnit(ctx context.Context, kind preferences.UnitKind, value string) error {
	update, err := preferences.UnitUpdate(kind, value)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.prefs.Save(ctx, update); err != nil {
		return err
	}

	units := c.settings.Units
	switch {
	case update.TemperatureUnit != nil:
		units.Temperature = *update.TemperatureUnit
	case update.WindUnit != nil:
		units.Wind = *update.WindUnit
	case update.PressureUnit != nil:
		units.Pressure = *update.PressureUnit
	}
	c.settings.Units = units

	c.set("units", c.display.SetUnits(string(units.Temperature), string(units.Wind), string(units.Pressure)))
	if c.lastReport != nil {
		c.apply(buildPanel(c.lastReport, units, c.aggregator, c.opts.HourlyCount, c.opts.Now()))
	}
	return nil
}

// AddFavorite adds the currently displayed city to the favorites
func (c *Controller) AddFavorite(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastReport == nil {
		c.notifyLocked(ctx, MsgSearchFirst)
		return errors.NewValidationError("no city displayed")
	}

	city := c.lastReport.Current.City
	favorites, err := c.prefs.AddFavorite(ctx, city)
	if err != nil {
		if errors.IsDuplicateFavoriteError(err) {
			c.notifyLocked(ctx, fmt.Sprintf(MsgDuplicateFavorite, city))
		}
		return err
	}

	c.settings.FavoriteCities = favorites
	c.set("favorites", c.display.SetFavorites(favorites))
	return nil
}

// RemoveFavorite removes city from the favorites; absent cities are ignored
func (c *Controller) RemoveFavorite(ctx context.Context, city string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	favorites, err := c.prefs.RemoveFavorite(ctx, city)
	if err != nil {
		return err
	}

	c.settings.FavoriteCities = favorites
	c.set("favorites", c.display.SetFavorites(favorites))
	return nil
}

// Tick re-renders the clock
func (c *Controller) Tick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.renderClock(now)
}

// Viewport returns a copy of the map state
func (c *Controller) Viewport() MapViewportState {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.viewport
	if v.Marker != nil {
		m := *v.Marker
		v.Marker = &m
	}
	return v
}

// Preferences returns the preferences currently applied
func (c *Controller) Preferences() preferences.Preferences {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.settings
	p.FavoriteCities = append([]string(nil), c.settings.FavoriteCities...)
	return p
}

// CurrentCity returns the displayed city, or "" before the first successful search
func (c *Controller) CurrentCity() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lastReport == nil {
		return ""
	}
	return c.lastReport.Current.City
}

// moveMarker recenters the map and replaces the marker; at most one exists
func (c *Controller) moveMarker(at ports.Coordinates, label string) {
	c.set("map_view", c.mapView.SetView(at, c.opts.SearchZoom))
	if c.viewport.Marker != nil {
		c.set("map_marker", c.mapView.RemoveMarker())
		c.viewport.Marker = nil
	}
	if err := c.mapView.AddMarker(at, label); err != nil {
		c.set("map_marker", err)
	} else {
		marker := at
		c.viewport.Marker = &marker
	}
	c.viewport.Center = at
	c.viewport.Zoom = c.opts.SearchZoom
}

func (c *Controller) greeting(now time.Time, description string) string {
	return presentation.Greeting(now.In(c.aggregator.Location()).Hour(), description)
}

func (c *Controller) notify(ctx context.Context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifyLocked(ctx, message)
}

func (c *Controller) notifyLocked(ctx context.Context, message string) {
	if c.metrics != nil {
		c.metrics.RecordNotification(ctx)
	}
	c.set("notification", c.display.Notify(message))
}

// set handles the result of one display update. Missing targets are skipped.
func (c *Controller) set(field string, err error) {
	if err == nil {
		return
	}
	if errors.IsMissingDisplayTargetError(err) {
		c.logger.Debug("Display target missing, skipped", ports.F("field", field))
		return
	}
	c.logger.Warn("Display update failed", ports.F("field", field), ports.F("error", err))
}
