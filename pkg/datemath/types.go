package datemath

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time of day attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// At stamps the clock onto the date in loc.
func (d Date) At(c Clock, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, 0, 0, loc)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n))
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Format12 renders c on a 12-hour clock, e.g. "3:00 PM".
func (c Clock) Format12() string {
	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if c.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute, suffix)
}

// ClockSource records which rule produced a start time, in precedence order.
type ClockSource int

const (
	ClockNone ClockSource = iota
	ClockPartOfDay
	ClockSingle
	ClockRange
)

// ClockResult is the outcome of scanning an utterance for clock phrases.
// End is set only when the utterance carried an explicit range.
type ClockResult struct {
	Start  Clock
	End    *Clock
	Source ClockSource
}

// Found reports whether any clock phrase was recognised.
func (r ClockResult) Found() bool {
	return r.Source != ClockNone
}

// RangeMinutes returns the length of an explicit range. A range whose end is
// not after its start is read as crossing midnight.
func (r ClockResult) RangeMinutes() (int, bool) {
	if r.End == nil {
		return 0, false
	}
	d := r.End.Minutes() - r.Start.Minutes()
	if d <= 0 {
		d += 24 * 60
	}
	return d, true
}
