package calendar

import (
	"fmt"
	"time"
)

// Mode is the active calendar view.
type Mode int

const (
	MonthMode Mode = iota
	WeekMode
)

func (m Mode) String() string {
	if m == WeekMode {
		return "week"
	}
	return "month"
}

// View is the navigation state of a calendar: which month or ISO week is on
// screen. Navigation methods return a new View; a View is never shared
// mutable state.
//
// In MonthMode Year is the calendar year of Month. In WeekMode Year is the
// ISO week-numbering year of Week, and Month is a month the week overlaps,
// so early January weeks can carry the previous Year. Week is 0 until the
// view first switches to WeekMode.
type View struct {
	Mode      Mode
	Year      int
	Month     int // 0-based
	Week      int
	WeekStart WeekStart
}

// NewView opens the month containing today.
func NewView(today Date, weekStart WeekStart) View {
	return View{
		Mode:      MonthMode,
		Year:      today.Year(),
		Month:     today.MonthIndex(),
		WeekStart: weekStart,
	}
}

// Prev steps back one month or one ISO week. Stepping weeks moves Month to
// the month of the week's Thursday.
func (v View) Prev() View {
	if v.Mode == MonthMode {
		v.Month--
		if v.Month < 0 {
			v.Month = 11
			v.Year--
		}
		return v
	}
	v.Week--
	if v.Week < 1 {
		v.Year--
		v.Week = WeeksInYear(v.Year)
	}
	return v.thursdayMonth()
}

// Next steps forward one month or one ISO week.
func (v View) Next() View {
	if v.Mode == MonthMode {
		v.Month++
		if v.Month > 11 {
			v.Month = 0
			v.Year++
		}
		return v
	}
	v.Week++
	if v.Week > WeeksInYear(v.Year) {
		v.Year++
		v.Week = 1
	}
	return v.thursdayMonth()
}

// thursdayMonth keeps Month in step with a week. The Thursday of an ISO week
// always falls in its week-numbering year.
func (v View) thursdayMonth() View {
	v.Month = WeekDates(v.Year, v.Week, Monday)[3].MonthIndex()
	return v
}

// AtWeekOf shows the ISO week holding d, with Month set to d's month.
func (v View) AtWeekOf(d Date) View {
	v.Mode = WeekMode
	v.Year, v.Week = ISOWeek(d)
	v.Month = d.MonthIndex()
	return v
}

// WithMode switches between month and week view. Entering week view for the
// first time seeds Week from the first day of the current month; later it
// re-checks the remembered week against the month.
func (v View) WithMode(m Mode) View {
	if v.Mode == m && (m == MonthMode || v.Week != 0) {
		return v
	}
	year := v.calendarYear()
	v.Mode = m
	if m == MonthMode {
		v.Year = year
		return v
	}
	if v.Week == 0 {
		v.Year, v.Week = ISOWeek(NewDate(year, v.Month, 1))
		return v
	}
	return v.pick(year, v.Week)
}

// WithMonth jumps to the 0-based month of year. A selected week is re-checked
// against the new month.
func (v View) WithMonth(year, month int) View {
	first := NewDate(year, month, 1)
	v.Month = first.MonthIndex()
	if v.Week == 0 && v.Mode == MonthMode {
		v.Year = first.Year()
		return v
	}
	return v.pick(first.Year(), v.Week)
}

// WithWeekStart changes the first column of the grids.
func (v View) WithWeekStart(ws WeekStart) View {
	v.WeekStart = ws
	return v
}

// SelectWeek picks one of the ISO weeks of the current month. A week the month
// does not touch falls back to the month's first week.
func (v View) SelectWeek(week int) View {
	return v.pick(v.calendarYear(), week)
}

// calendarYear is the calendar year of Month.
func (v View) calendarYear() int {
	if v.Mode == MonthMode || v.Week == 0 {
		return v.Year
	}
	dates := WeekDates(v.Year, v.Week, Monday)
	for _, d := range dates {
		if d.MonthIndex() == v.Month {
			return d.Year()
		}
	}
	return dates[3].Year()
}

// pick selects week among the ISO weeks touching Month of year. In WeekMode
// Year becomes the week-numbering year of the chosen week.
func (v View) pick(year, week int) View {
	first := NewDate(year, v.Month, 1)
	isoYear, isoWeek := ISOWeek(first)
	for day := 2; day <= DaysInMonth(year, v.Month) && isoWeek != week; day++ {
		if y, w := ISOWeek(NewDate(year, v.Month, day)); w == week {
			isoYear, isoWeek = y, w
		}
	}
	if isoWeek != week {
		isoYear, isoWeek = ISOWeek(first)
	}
	v.Week = isoWeek
	v.Year = year
	if v.Mode == WeekMode {
		v.Year = isoYear
	}
	return v
}

// Title is the English heading for the view, e.g. "February 2026" or
// "Week 7, 2026".
func (v View) Title() string {
	if v.Mode == WeekMode {
		return fmt.Sprintf("Week %d, %d", v.Week, v.Year)
	}
	return fmt.Sprintf("%s %d", time.Month(v.Month+1), v.Year)
}
