package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func TestSnapshotSurface_RendersFields(t *testing.T) {
	s := NewSnapshotSurface()

	require.NoError(t, s.SetCityName("Kyiv"))
	require.NoError(t, s.SetTemperature("12°C"))
	require.NoError(t, s.SetConditionGlyph("☀️"))
	require.NoError(t, s.SetConditionIcon("icons/clear-day.svg"))
	require.NoError(t, s.SetDescription("clear sky"))
	require.NoError(t, s.SetDetail(ports.DetailHumidity, "55%"))
	require.NoError(t, s.SetClock("09:15:00", "Monday, January 6, 2025"))
	require.NoError(t, s.SetTheme("dark"))
	require.NoError(t, s.SetUnits("F", "mph", "inHg"))
	require.NoError(t, s.SetFavorites([]string{"Kyiv", "Oslo"}))
	require.NoError(t, s.SetHourlyForecast([]ports.HourlyCard{{Hour: "9:00", Temperature: "12°"}}))

	snap := s.Snapshot()
	assert.Equal(t, "Kyiv", snap.CityName)
	assert.Equal(t, "12°C", snap.Temperature)
	assert.Equal(t, "55%", snap.Details[ports.DetailHumidity])
	assert.Equal(t, ClockState{Time: "09:15:00", Date: "Monday, January 6, 2025"}, snap.Clock)
	assert.Equal(t, UnitsState{Temperature: "F", Wind: "mph", Pressure: "inHg"}, snap.Units)
	assert.Equal(t, []string{"Kyiv", "Oslo"}, snap.Favorites)
	assert.Len(t, snap.HourlyForecast, 1)
	assert.Empty(t, snap.ThreeDayForecast)
}

func TestSnapshotSurface_SnapshotIsACopy(t *testing.T) {
	s := NewSnapshotSurface()
	require.NoError(t, s.SetFavorites([]string{"Kyiv"}))
	require.NoError(t, s.AddMarker(ports.Coordinates{Lat: 1, Lon: 2}, "Kyiv"))

	snap := s.Snapshot()
	snap.Favorites[0] = "Paris"
	snap.Map.Marker.Lat = 99

	again := s.Snapshot()
	assert.Equal(t, "Kyiv", again.Favorites[0])
	assert.Equal(t, 1.0, again.Map.Marker.Lat)
}

func TestSnapshotSurface_MissingTargets(t *testing.T) {
	s := NewSnapshotSurface(WithMissingTargets(TargetGreeting, string(ports.DetailUVIndex), TargetMap))

	err := s.SetGreeting("Good morning")
	assert.True(t, errors.IsMissingDisplayTargetError(err))
	assert.True(t, errors.IsMissingDisplayTargetError(s.SetDetail(ports.DetailUVIndex, "5")))
	assert.True(t, errors.IsMissingDisplayTargetError(s.SetView(ports.Coordinates{}, 3)))

	require.NoError(t, s.SetDetail(ports.DetailWind, "5 km/h"))
	snap := s.Snapshot()
	assert.Empty(t, snap.Greeting)
	assert.NotContains(t, snap.Details, ports.DetailUVIndex)
	assert.Equal(t, "5 km/h", snap.Details[ports.DetailWind])
}

func TestSnapshotSurface_MapMarker(t *testing.T) {
	s := NewSnapshotSurface()

	require.NoError(t, s.SetView(ports.Coordinates{Lat: 50.45, Lon: 30.52}, 8))
	require.NoError(t, s.AddMarker(ports.Coordinates{Lat: 50.45, Lon: 30.52}, "Kyiv"))
	require.NoError(t, s.AddMarker(ports.Coordinates{Lat: 59.91, Lon: 10.75}, "Oslo"))

	snap := s.Snapshot()
	assert.Equal(t, 8, snap.Map.Zoom)
	require.NotNil(t, snap.Map.Marker)
	assert.Equal(t, 59.91, snap.Map.Marker.Lat)
	assert.Equal(t, "Oslo", snap.Map.MarkerLabel)

	require.NoError(t, s.RemoveMarker())
	assert.Nil(t, s.Snapshot().Map.Marker)
}

func TestSnapshotSurface_NotificationsAreBounded(t *testing.T) {
	at := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)
	s := NewSnapshotSurface(WithNotificationLimit(3), WithClock(func() time.Time { return at }))

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Notify(fmt.Sprintf("message %d", i)))
	}

	notes := s.Snapshot().Notifications
	require.Len(t, notes, 3)
	assert.Equal(t, "message 2", notes[0].Message)
	assert.Equal(t, "message 4", notes[2].Message)
	assert.Equal(t, at, notes[2].At)
}

func TestSnapshotSurface_JSON(t *testing.T) {
	s := NewSnapshotSurface()
	require.NoError(t, s.SetCityName("Kyiv"))
	require.NoError(t, s.SetDetail(ports.DetailSunrise, "07:45"))

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Kyiv", decoded["city_name"])
	assert.Equal(t, "07:45", decoded["details"].(map[string]interface{})["sunrise"])
	assert.Equal(t, []interface{}{}, decoded["favorites"])
	assert.NotContains(t, decoded["map"], "marker")
}

func TestSnapshotSurface_ConcurrentUpdates(t *testing.T) {
	s := NewSnapshotSurface()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.SetTemperature(fmt.Sprintf("%d°C", i))
			_ = s.Notify("tick")
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Snapshot().Notifications, 20)
}

func TestTextSurface_Render(t *testing.T) {
	s := NewTextSurface()
	require.NoError(t, s.SetGreeting("Good morning! ☀️"))
	require.NoError(t, s.SetCityName("Kyiv"))
	require.NoError(t, s.SetTemperature("12°C"))
	require.NoError(t, s.SetConditionGlyph("☀️"))
	require.NoError(t, s.SetDescription("clear sky"))
	require.NoError(t, s.SetDetail(ports.DetailHumidity, "55%"))
	require.NoError(t, s.SetThreeDayForecast([]ports.DayCard{{Day: "Mon, Jan 6", High: "14°", Low: "3°", Description: "clear sky"}}))
	require.NoError(t, s.SetFavorites([]string{"Kyiv", "Oslo"}))
	require.NoError(t, s.Notify("Failed to fetch weather data. Please try again."))

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Good morning! ☀️")
	assert.Contains(t, out, "Kyiv  12°C")
	assert.Contains(t, out, "Humidity")
	assert.Contains(t, out, "55%")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "Mon, Jan 6")
	assert.NotContains(t, out, "7 days")
	assert.Contains(t, out, "Favorites: Kyiv, Oslo")
	assert.Contains(t, out, "! Failed to fetch weather data.")
}

func TestTextSurface_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextSurface().Render(&buf))

	assert.NotContains(t, buf.String(), "Favorites")
}
