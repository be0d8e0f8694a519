package utils

import "time"

// Day-bucketing helpers. Every summary and streak feature relies on these
// so that a record is attributed to exactly one calendar day regardless of
// the time-of-day of its timestamp.
//
// All bucketing is done in UTC, ignoring any offset carried by the input.
// A client sending a local-midnight timestamp near a UTC day boundary may
// therefore land on the neighbouring UTC day; that is the documented
// behaviour, not something to correct per-timezone here.

// AtMidnightUTC normalizes t to 00:00:00.000 UTC of its UTC calendar date.
func AtMidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the inclusive [start, end] bounds of t's UTC calendar
// date: 00:00:00.000 and 23:59:59.999999999.
func DayBounds(t time.Time) (start, end time.Time) {
	start = AtMidnightUTC(t)
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// DayKey returns the UTC calendar date of t as "YYYY-MM-DD". Two timestamps
// on the same UTC date always produce the same key.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
