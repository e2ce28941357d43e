package bucket

import (
	"fmt"
	"time"
)

// Granularity selects the bucket width used when grouping events for charts.
type Granularity string

const (
	Day  Granularity = "day"
	Week Granularity = "week"
)

func ParseGranularity(s string) Granularity {
	if s == string(Week) {
		return Week
	}
	return Day
}

// StartOfDay truncates a timestamp to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday-aligned start of the week containing t,
// truncated to midnight.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// Start returns the bucket start for a timestamp at the given granularity.
func Start(t time.Time, g Granularity) time.Time {
	if g == Week {
		return StartOfWeek(t)
	}
	return StartOfDay(t)
}

// Key returns the stable sortable bucket key, always the YYYY-MM-DD of the
// bucket start.
func Key(t time.Time, g Granularity) string {
	s := Start(t, g)
	return fmt.Sprintf("%04d-%02d-%02d", s.Year(), int(s.Month()), s.Day())
}

// Label returns the human label: DD/MM for a day bucket, DD/MM–DD/MM for a
// week bucket.
func Label(t time.Time, g Granularity) string {
	s := Start(t, g)
	if g == Week {
		end := s.AddDate(0, 0, 6)
		return fmt.Sprintf("%s–%s", dayLabel(s), dayLabel(end))
	}
	return dayLabel(s)
}

func dayLabel(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}

// Step is the iteration stride between consecutive buckets, in days.
func Step(g Granularity) int {
	if g == Week {
		return 7
	}
	return 1
}

// Range returns every bucket start between from and to inclusive, so a chart
// series stays contiguous even when the event log has empty periods.
func Range(from, to time.Time, g Granularity) []time.Time {
	var starts []time.Time
	end := Start(to, g)
	for cursor := Start(from, g); !cursor.After(end); cursor = cursor.AddDate(0, 0, Step(g)) {
		starts = append(starts, cursor)
	}
	return starts
}
