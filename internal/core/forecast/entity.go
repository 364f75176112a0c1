package forecast

import (
	"math"
	"time"
)

// DefaultHourlyCount is the number of samples shown in the 24-hour view
const DefaultHourlyCount = 24

const (
	threeDayLimit = 3
	sevenDayLimit = 7

	dayStartHour = 6
	dayEndHour   = 18

	dateKeyLayout = "2006-01-02"
)

// Sample is one forecast data point
type Sample struct {
	Timestamp            int64
	Temperature          float64
	Humidity             int
	ConditionMain        string
	ConditionIcon        string
	ConditionDescription string
	// nil when the provider did not report it
	PrecipitationProbability *float64
}

// Time returns the sample's valid time in loc
func (s Sample) Time(loc *time.Location) time.Time {
	return time.Unix(s.Timestamp, 0).In(loc)
}

// DayBucket groups samples sharing a local calendar date
type DayBucket struct {
	DateKey string
	Samples []Sample
}

// Temperatures returns every sample temperature in bucket order
func (b DayBucket) Temperatures() []float64 {
	temps := make([]float64, len(b.Samples))
	for i, s := range b.Samples {
		temps[i] = s.Temperature
	}
	return temps
}

// Representative returns the sample at the middle index of the bucket.
// Callers must not pass an empty bucket; BucketByCalendarDay never builds one.
func (b DayBucket) Representative() Sample {
	return b.Samples[len(b.Samples)/2]
}

// Temperature is a derived value that may be unknown when there was nothing to derive it from
type Temperature struct {
	Value float64
	Known bool
}

// Unknown is the sentinel used for empty temperature sets
var Unknown = Temperature{}

// KnownTemperature wraps a derived value
func KnownTemperature(v float64) Temperature {
	return Temperature{Value: v, Known: true}
}

// DaySummary is the derived high/low/icon/description for one bucket
type DaySummary struct {
	DateKey     string
	DayHigh     Temperature
	NightLow    Temperature
	Icon        string
	Description string
}

// Views bundles the three display-ready forecast views
type Views struct {
	Hourly   []Sample
	ThreeDay []DaySummary
	SevenDay []DaySummary
}

func maxOf(values []float64) Temperature {
	if len(values) == 0 {
		return Unknown
	}
	m := math.Inf(-1)
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return KnownTemperature(m)
}

func minOf(values []float64) Temperature {
	if len(values) == 0 {
		return Unknown
	}
	m := math.Inf(1)
	for _, v := range values {
		if v < m {
			m = v
		}
	}
	return KnownTemperature(m)
}
