package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// Storage keys
const (
	KeyTheme        = "theme"
	KeyUnitTemp     = "unit_temp"
	KeyUnitWind     = "unit_wind"
	KeyUnitPressure = "unit_pressure"
	KeyFavorites    = "favorites"
)

// Store persists Preferences field by field in a key-value store.
// Every write happens immediately; there is no batching.
type Store struct {
	kv        ports.KeyValueStore
	logger    ports.Logger
	metrics   ports.MetricsCollector
	namespace string

	// favorites are read-modify-write
	mu sync.Mutex
}

type StoreDependencies struct {
	KV        ports.KeyValueStore
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
	Namespace string
}

func NewStore(deps StoreDependencies) (*Store, error) {
	if deps.KV == nil {
		return nil, errors.NewValidationError("key-value store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Store{
		kv:        deps.KV,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		namespace: deps.Namespace,
	}, nil
}

// Load reads every field independently. A missing, unreadable or invalid value
// falls back to that field's default and leaves the other fields untouched.
func (s *Store) Load(ctx context.Context) Preferences {
	prefs := Defaults()

	if v, ok := s.read(ctx, KeyTheme); ok {
		if t := Theme(v); t.IsValid() {
			prefs.Theme = t
		} else {
			s.logCorrupt(KeyTheme, v)
		}
	}
	if v, ok := s.read(ctx, KeyUnitTemp); ok {
		if u := TemperatureUnit(v); u.IsValid() {
			prefs.Units.Temperature = u
		} else {
			s.logCorrupt(KeyUnitTemp, v)
		}
	}
	if v, ok := s.read(ctx, KeyUnitWind); ok {
		if u := WindUnit(v); u.IsValid() {
			prefs.Units.Wind = u
		} else {
			s.logCorrupt(KeyUnitWind, v)
		}
	}
	if v, ok := s.read(ctx, KeyUnitPressure); ok {
		if u := PressureUnit(v); u.IsValid() {
			prefs.Units.Pressure = u
		} else {
			s.logCorrupt(KeyUnitPressure, v)
		}
	}

	prefs.FavoriteCities = s.loadFavorites(ctx)
	return prefs
}

// Save writes only the fields set in update
func (s *Store) Save(ctx context.Context, update Update) error {
	if update.Theme != nil {
		if !update.Theme.IsValid() {
			return errors.NewValidationError(fmt.Sprintf("invalid theme %q", *update.Theme))
		}
	}
	if update.TemperatureUnit != nil && !update.TemperatureUnit.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid temperature unit %q", *update.TemperatureUnit))
	}
	if update.WindUnit != nil && !update.WindUnit.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid wind unit %q", *update.WindUnit))
	}
	if update.PressureUnit != nil && !update.PressureUnit.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid pressure unit %q", *update.PressureUnit))
	}

	if update.Theme != nil {
		if err := s.write(ctx, KeyTheme, string(*update.Theme)); err != nil {
			return err
		}
	}
	if update.TemperatureUnit != nil {
		if err := s.write(ctx, KeyUnitTemp, string(*update.TemperatureUnit)); err != nil {
			return err
		}
	}
	if update.WindUnit != nil {
		if err := s.write(ctx, KeyUnitWind, string(*update.WindUnit)); err != nil {
			return err
		}
	}
	if update.PressureUnit != nil {
		if err := s.write(ctx, KeyUnitPressure, string(*update.PressureUnit)); err != nil {
			return err
		}
	}
	return nil
}

// Favorites returns the persisted favorite cities in insertion order
func (s *Store) Favorites(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadFavorites(ctx)
}

// AddFavorite appends city and persists the list. It fails with a
// DuplicateFavorite error when city is already present (case-sensitive).
func (s *Store) AddFavorite(ctx context.Context, city string) ([]string, error) {
	city = strings.TrimSpace(city)
	if !validation.IsValidCityName(city) {
		return nil, errors.NewValidationError("invalid city name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := s.loadFavorites(ctx)
	for _, c := range favorites {
		if c == city {
			return favorites, errors.NewDuplicateFavoriteError(city)
		}
	}

	favorites = append(favorites, city)
	if err := s.writeFavorites(ctx, favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// RemoveFavorite removes city if present; removing an absent city is a no-op
func (s *Store) RemoveFavorite(ctx context.Context, city string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := s.loadFavorites(ctx)
	kept := make([]string, 0, len(favorites))
	for _, c := range favorites {
		if c != city {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(favorites) {
		return favorites, nil
	}

	if err := s.writeFavorites(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Store) loadFavorites(ctx context.Context) []string {
	raw, ok := s.read(ctx, KeyFavorites)
	if !ok {
		return []string{}
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logCorrupt(KeyFavorites, raw)
		return []string{}
	}

	seen := make(map[string]struct{}, len(stored))
	favorites := make([]string, 0, len(stored))
	for _, c := range stored {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		favorites = append(favorites, c)
	}
	return favorites
}

func (s *Store) writeFavorites(ctx context.Context, favorites []string) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	return s.write(ctx, KeyFavorites, string(data))
}

func (s *Store) read(ctx context.Context, key string) (string, bool) {
	value, found, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		s.logger.Warn("Failed to read preference, using default",
			ports.F("key", key),
			ports.F("error", err))
		return "", false
	}
	return value, found
}

func (s *Store) write(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, s.key(key), value); err != nil {
		s.logger.Error("Failed to persist preference",
			ports.F("key", key),
			ports.F("error", err))
		return errors.NewStorageError(fmt.Sprintf("persist preference %s", key), err)
	}

	if s.metrics != nil {
		s.metrics.RecordPreferenceWrite(ctx, key)
	}
	s.logger.Debug("Preference saved", ports.F("key", key), ports.F("value", value))
	return nil
}

func (s *Store) logCorrupt(key, value string) {
	s.logger.Warn("Ignoring invalid stored preference",
		ports.F("key", key),
		ports.F("value", value))
}

func (s *Store) key(name string) string {
	if s.namespace == "" {
		return name
	}
	return s.namespace + ":" + name
}
