// Package forecast turns a flat, time-ordered list of forecast samples into
// the hourly, 3-day and 7-day views shown on the dashboard. Everything here is
// pure: no I/O and no shared state.
package forecast

import "time"

// Aggregator derives forecast views using loc as the local time zone for
// calendar dates and hours of day.
type Aggregator struct {
	loc *time.Location
}

// NewAggregator creates an aggregator; a nil location means time.Local.
func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{loc: loc}
}

// Location returns the zone used for local dates and hours
func (a *Aggregator) Location() *time.Location {
	return a.loc
}

// HourlySlice returns the first count samples in original order. A count of
// zero or less means DefaultHourlyCount. Asking for more than is available
// returns everything.
func (a *Aggregator) HourlySlice(samples []Sample, count int) []Sample {
	if count <= 0 {
		count = DefaultHourlyCount
	}
	if count > len(samples) {
		count = len(samples)
	}
	out := make([]Sample, count)
	copy(out, samples[:count])
	return out
}

// BucketByCalendarDay groups samples by local calendar date (YYYY-MM-DD).
// Buckets appear in first-seen date order and keep input order within each
// bucket; a date seen again after a gap joins its existing bucket.
func (a *Aggregator) BucketByCalendarDay(samples []Sample) []DayBucket {
	index := make(map[string]int)
	var buckets []DayBucket

	for _, s := range samples {
		key := s.Time(a.loc).Format(dateKeyLayout)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, DayBucket{DateKey: key})
		}
		buckets[i].Samples = append(buckets[i].Samples, s)
	}

	return buckets
}

// ThreeDayView summarizes the first three buckets. The day high comes from
// samples whose local hour is within [6,18]; the night low from the rest.
func (a *Aggregator) ThreeDayView(buckets []DayBucket) []DaySummary {
	buckets = firstN(buckets, threeDayLimit)
	summaries := make([]DaySummary, 0, len(buckets))

	for _, b := range buckets {
		if len(b.Samples) == 0 {
			continue
		}
		var dayTemps, nightTemps []float64
		for _, s := range b.Samples {
			if isDaytime(s.Time(a.loc).Hour()) {
				dayTemps = append(dayTemps, s.Temperature)
			} else {
				nightTemps = append(nightTemps, s.Temperature)
			}
		}
		summaries = append(summaries, summarize(b, maxOf(dayTemps), minOf(nightTemps)))
	}

	return summaries
}

// SevenDayView summarizes the first seven buckets using the whole bucket's
// temperatures for both the high and the low.
func (a *Aggregator) SevenDayView(buckets []DayBucket) []DaySummary {
	buckets = firstN(buckets, sevenDayLimit)
	summaries := make([]DaySummary, 0, len(buckets))

	for _, b := range buckets {
		if len(b.Samples) == 0 {
			continue
		}
		temps := b.Temperatures()
		summaries = append(summaries, summarize(b, maxOf(temps), minOf(temps)))
	}

	return summaries
}

// Views computes all three views from one sample list
func (a *Aggregator) Views(samples []Sample, hourlyCount int) Views {
	buckets := a.BucketByCalendarDay(samples)
	return Views{
		Hourly:   a.HourlySlice(samples, hourlyCount),
		ThreeDay: a.ThreeDayView(buckets),
		SevenDay: a.SevenDayView(buckets),
	}
}

func summarize(b DayBucket, high, low Temperature) DaySummary {
	rep := b.Representative()
	return DaySummary{
		DateKey:     b.DateKey,
		DayHigh:     high,
		NightLow:    low,
		Icon:        rep.ConditionIcon,
		Description: rep.ConditionDescription,
	}
}

func isDaytime(hour int) bool {
	return hour >= dayStartHour && hour <= dayEndHour
}

func firstN(buckets []DayBucket, n int) []DayBucket {
	if len(buckets) > n {
		return buckets[:n]
	}
	return buckets
}
