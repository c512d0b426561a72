// Package calendar is the date engine behind the month and week views: pure
// (year, month, day) arithmetic, ISO-8601 week numbering, grid generation and
// the canonical keys notes are stored under.
//
// Months are 0-based (0 = January) at this package's API, matching the view
// state the grids are driven from. A Date never carries a time zone; any
// time.Time used internally is UTC midnight.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	layoutDateKey = "2006-01-02"
	layoutSlotKey = "2006-01-02T15:04"
)

var (
	// ErrInvalidKey is returned when a string is neither a DateKey nor a
	// TimeSlotKey.
	ErrInvalidKey = errors.New("calendar: invalid key")
)

// Date is a wall-clock calendar date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date from a year, a 0-based month and a day. Out of range
// months and days overflow into neighbouring months and years, so
// NewDate(2026, 1, 29) is March 1st 2026 and NewDate(2026, 0, 0) is
// December 31st 2025.
func NewDate(year, month, day int) Date {
	return fromTime(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates t to its date in t's own location.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func fromTime(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Year returns the date's year.
func (d Date) Year() int { return d.year }

// Month returns the date's month.
func (d Date) Month() time.Month { return d.month }

// MonthIndex returns the 0-based month.
func (d Date) MonthIndex() int { return int(d.month) - 1 }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week, Sunday = 0.
func (d Date) Weekday() time.Weekday { return d.utc().Weekday() }

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return fromTime(d.utc().AddDate(0, 0, n))
}

// Equal reports whether both dates are the same day.
func (d Date) Equal(o Date) bool { return d == o }

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.utc().Before(o.utc()) }

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String returns the DateKey of d.
func (d Date) String() string { return DateKey(d) }

// MarshalText encodes d as its DateKey.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(DateKey(d)), nil
}

// UnmarshalText decodes a DateKey.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDateKey(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysInMonth returns the number of days in the 0-based month of year.
func DaysInMonth(year, month int) int {
	switch time.Month(month + 1) {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	}
	// Normalize months outside 0..11 the same way NewDate does.
	first := NewDate(year, month, 1)
	return DaysInMonth(first.Year(), first.MonthIndex())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FirstWeekdayOfMonth returns the weekday of the 1st of the 0-based month.
func FirstWeekdayOfMonth(year, month int) time.Weekday {
	return NewDate(year, month, 1).Weekday()
}

// DateKey formats d as YYYY-MM-DD.
func DateKey(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// TimeSlotKey appends a zero-padded 24h hour label to a DateKey:
// YYYY-MM-DDTHH:00.
func TimeSlotKey(dateKey string, hour int) string {
	return fmt.Sprintf("%sT%s", dateKey, HourLabel(hour))
}

// HourLabel formats hour as HH:00.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// ParseDateKey parses a YYYY-MM-DD key.
func ParseDateKey(key string) (Date, error) {
	t, err := time.Parse(layoutDateKey, key)
	if err != nil || t.Format(layoutDateKey) != key {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return fromTime(t), nil
}

// ParseTimeSlotKey parses a YYYY-MM-DDTHH:00 key into its date and hour.
func ParseTimeSlotKey(key string) (Date, int, error) {
	t, err := time.Parse(layoutSlotKey, key)
	if err != nil || t.Format(layoutSlotKey) != key || t.Minute() != 0 {
		return Date{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return fromTime(t), t.Hour(), nil
}

// Clock provides the reference date used to flag today's cell.
type Clock interface {
	Today() Date
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Today implements Clock.
func (SystemClock) Today() Date { return DateOf(time.Now()) }

// FixedClock always reports the same date.
type FixedClock Date

// Today implements Clock.
func (c FixedClock) Today() Date { return Date(c) }
