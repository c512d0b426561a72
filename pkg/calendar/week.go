package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// WeekStart selects which weekday opens a displayed week. The values line up
// with time.Weekday so they can be used directly in offset arithmetic.
type WeekStart int

const (
	Sunday WeekStart = WeekStart(time.Sunday)
	Monday WeekStart = WeekStart(time.Monday)
)

// ParseWeekStart accepts "monday" or "sunday" in any case.
func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monday", "mon", "1":
		return Monday, nil
	case "sunday", "sun", "0":
		return Sunday, nil
	}
	return Monday, fmt.Errorf("calendar: unknown week start %q", s)
}

func (w WeekStart) String() string {
	if w == Sunday {
		return "sunday"
	}
	return "monday"
}

// MarshalText encodes the week start by name.
func (w WeekStart) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// isoWeekday maps Sunday to 7 so weeks run Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	dow := int(t.Weekday())
	if dow == 0 {
		dow = 7
	}
	return dow
}

// thursdayOf returns the Thursday of the ISO week containing d.
func thursdayOf(d Date) time.Time {
	t := d.utc()
	return t.AddDate(0, 0, 4-isoWeekday(t))
}

// ISOWeekNumber returns the ISO-8601 week number of d. Week 1 is the week
// holding the year's first Thursday, so late December days can be in week 1
// and early January days in week 52 or 53.
func ISOWeekNumber(d Date) int {
	return (thursdayOf(d).YearDay() + 6) / 7
}

// ISOWeek returns the ISO week-numbering year and week of d.
func ISOWeek(d Date) (year, week int) {
	th := thursdayOf(d)
	return th.Year(), (th.YearDay() + 6) / 7
}

// WeeksInYear returns the number of ISO weeks in year, 52 or 53.
func WeeksInYear(year int) int {
	return ISOWeekNumber(NewDate(year, 11, 28))
}

// WeekDates returns the seven dates of an ISO week. With Monday the week runs
// Monday..Sunday; with Sunday it is shifted back one day to run
// Sunday..Saturday. Week numbers past the end of the year are not rejected:
// they roll into the following year the same way date overflow does.
func WeekDates(year, isoWeek int, weekStart WeekStart) [7]Date {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -isoWeekday(jan4)+1+(isoWeek-1)*7)

	offset := 0
	if weekStart == Sunday {
		offset = -1
	}

	var dates [7]Date
	for i := range dates {
		dates[i] = fromTime(monday.AddDate(0, 0, offset+i))
	}
	return dates
}

// WeeksInMonth returns the distinct ISO week numbers touched by the days of
// the 0-based month, in ascending order.
func WeeksInMonth(year, month int) []int {
	seen := make(map[int]struct{}, 6)
	weeks := make([]int, 0, 6)
	for d := 1; d <= DaysInMonth(year, month); d++ {
		w := ISOWeekNumber(NewDate(year, month, d))
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}

// OrderedWeekdays returns the weekdays in column order for weekStart.
func OrderedWeekdays(weekStart WeekStart) [7]time.Weekday {
	var days [7]time.Weekday
	for i := range days {
		days[i] = time.Weekday((int(weekStart) + i) % 7)
	}
	return days
}
