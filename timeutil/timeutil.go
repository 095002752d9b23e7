// Package timeutil provides UTC-only calendar-boundary and epoch helpers.
//
// Lifecycle timestamps are UTC epoch seconds stored as floats; every function
// here converts its input to UTC before computing. There is no timezone
// handling beyond that.
package timeutil

import "time"

// DayLayout is the default calendar-day layout used for date grouping.
const DayLayout = "2006-01-02"

// Timestamp converts a time to UTC epoch seconds as a float.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// Time converts UTC epoch seconds back to a time.Time in UTC.
func Time(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// Format renders an epoch-seconds timestamp using the given layout, in UTC.
func Format(ts float64, layout string) string {
	return Time(ts).Format(layout)
}

// Parse parses a date string with the given layout and pins it to UTC.
func Parse(s, layout string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// StartOfDay returns the given instant with all time components zeroed, UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999999 on the given instant's UTC day.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_999_000, time.UTC)
}

// StartOfWeek returns the start of day of the most recent Monday, UTC.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	sinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -sinceMonday)
}

// StartOfMonth returns the first day of the instant's UTC month, time zeroed.
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
