package calendar

import (
	"errors"
	"fmt"
)

// Defaults for Options.
const (
	DefaultHoursStart     = 6
	DefaultHoursEnd       = 22
	DefaultYearRangeStart = 1970
	DefaultYearRangeEnd   = 2100
)

// Options are the recognized calendar settings. They are passed explicitly to
// whoever drives the grid generators.
type Options struct {
	WeekStart      WeekStart `json:"week_start" yaml:"week_start"`
	HoursStart     int       `json:"hours_start" yaml:"hours_start"`
	HoursEnd       int       `json:"hours_end" yaml:"hours_end"`
	YearRangeStart int       `json:"year_range_start" yaml:"year_range_start"`
	YearRangeEnd   int       `json:"year_range_end" yaml:"year_range_end"`
}

// DefaultOptions returns Monday-start weeks, 06:00-22:00 and years 1970-2100.
func DefaultOptions() Options {
	return Options{
		WeekStart:      Monday,
		HoursStart:     DefaultHoursStart,
		HoursEnd:       DefaultHoursEnd,
		YearRangeStart: DefaultYearRangeStart,
		YearRangeEnd:   DefaultYearRangeEnd,
	}
}

// Validate checks hour and year bounds.
func (o Options) Validate() error {
	var errs []error
	if o.WeekStart != Monday && o.WeekStart != Sunday {
		errs = append(errs, fmt.Errorf("week start must be monday or sunday, got %d", o.WeekStart))
	}
	if o.HoursStart < 0 || o.HoursStart > 23 {
		errs = append(errs, fmt.Errorf("hours start %d outside 0..23", o.HoursStart))
	}
	if o.HoursEnd < 0 || o.HoursEnd > 23 {
		errs = append(errs, fmt.Errorf("hours end %d outside 0..23", o.HoursEnd))
	}
	if o.HoursEnd < o.HoursStart {
		errs = append(errs, fmt.Errorf("hours end %d before hours start %d", o.HoursEnd, o.HoursStart))
	}
	if o.YearRangeEnd < o.YearRangeStart {
		errs = append(errs, fmt.Errorf("year range end %d before start %d", o.YearRangeEnd, o.YearRangeStart))
	}
	if len(errs) > 0 {
		return fmt.Errorf("calendar: invalid options: %w", errors.Join(errs...))
	}
	return nil
}

// InYearRange reports whether year is within the supported range.
func (o Options) InYearRange(year int) bool {
	return year >= o.YearRangeStart && year <= o.YearRangeEnd
}

// InHours reports whether hour is a displayed week-view hour.
func (o Options) InHours(hour int) bool {
	return hour >= o.HoursStart && hour <= o.HoursEnd
}
