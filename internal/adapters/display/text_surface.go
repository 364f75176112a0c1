package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"weatherdash.app/internal/ports"
)

var detailLabels = map[ports.DetailTarget]string{
	ports.DetailFeelsLike:  "Feels like",
	ports.DetailHumidity:   "Humidity",
	ports.DetailWind:       "Wind",
	ports.DetailPressure:   "Pressure",
	ports.DetailVisibility: "Visibility",
	ports.DetailHighLow:    "High / Low",
	ports.DetailSunrise:    "Sunrise",
	ports.DetailSunset:     "Sunset",
	ports.DetailDewPoint:   "Dew point",
	ports.DetailUVIndex:    "UV index",
	ports.DetailMoonPhase:  "Moon phase",
}

// TextSurface renders the dashboard as plain text for terminals
type TextSurface struct {
	*SnapshotSurface
}

func NewTextSurface(opts ...SnapshotOption) *TextSurface {
	return &TextSurface{SnapshotSurface: NewSnapshotSurface(opts...)}
}

// Render writes the current snapshot to w
func (t *TextSurface) Render(w io.Writer) error {
	s := t.Snapshot()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if s.Greeting != "" {
		fmt.Fprintf(tw, "%s\n", s.Greeting)
	}
	if s.Clock.Time != "" {
		fmt.Fprintf(tw, "%s  %s\n", s.Clock.Time, s.Clock.Date)
	}
	fmt.Fprintln(tw)

	if s.CityName != "" {
		fmt.Fprintf(tw, "%s %s  %s\n", s.ConditionGlyph, s.CityName, s.Temperature)
		fmt.Fprintf(tw, "%s\n\n", s.Description)
		for _, target := range ports.DetailTargets {
			if text, ok := s.Details[target]; ok {
				fmt.Fprintf(tw, "%s\t%s\n", detailLabels[target], text)
			}
		}
	}

	if len(s.HourlyForecast) > 0 {
		fmt.Fprintf(tw, "\nNext hours\n")
		for _, c := range s.HourlyForecast {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Hour, c.Icon, c.Temperature, c.Humidity, c.Precipitation)
		}
	}
	writeDays(tw, "3 days", s.ThreeDayForecast)
	writeDays(tw, "7 days", s.SevenDayForecast)

	if len(s.Favorites) > 0 {
		fmt.Fprintf(tw, "\nFavorites: %s\n", strings.Join(s.Favorites, ", "))
	}
	for _, n := range s.Notifications {
		fmt.Fprintf(tw, "! %s\n", n.Message)
	}

	return tw.Flush()
}

func writeDays(w io.Writer, title string, cards []ports.DayCard) {
	if len(cards) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Day, c.Icon, c.High, c.Low, c.Description)
	}
}
