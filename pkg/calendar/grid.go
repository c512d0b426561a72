package calendar

import "time"

const (
	// GridRows is the number of week rows in a month grid.
	GridRows = 6
	// GridCells is the fixed size of a month grid.
	GridCells = GridRows * 7
)

// DayCell is one cell of a month grid.
type DayCell struct {
	Date           Date   `json:"date" yaml:"date"`
	DayNumber      int    `json:"day" yaml:"day"`
	IsCurrentMonth bool   `json:"current_month" yaml:"current_month"`
	IsToday        bool   `json:"today" yaml:"today"`
	IsWeekend      bool   `json:"weekend" yaml:"weekend"`
	DateKey        string `json:"key" yaml:"key"`
}

// MonthGrid is the 6x7 month layout, row-major.
type MonthGrid []DayCell

// Rows splits the grid into weeks of seven cells.
func (g MonthGrid) Rows() [][]DayCell {
	rows := make([][]DayCell, 0, GridRows)
	for i := 0; i+7 <= len(g); i += 7 {
		rows = append(rows, g[i:i+7])
	}
	return rows
}

func makeDayCell(d Date, isCurrentMonth bool, today Date) DayCell {
	dow := d.Weekday()
	return DayCell{
		Date:           d,
		DayNumber:      d.Day(),
		IsCurrentMonth: isCurrentMonth,
		IsToday:        d.Equal(today),
		IsWeekend:      dow == time.Sunday || dow == time.Saturday,
		DateKey:        DateKey(d),
	}
}

// GenerateMonthGrid lays out the 0-based month of year as exactly 42 cells:
// the tail of the previous month up to the first column, every day of the
// month, then the head of the next month. IsWeekend always means Saturday or
// Sunday, whichever day opens the week.
func GenerateMonthGrid(year, month int, weekStart WeekStart, today Date) MonthGrid {
	// Normalize so month -1 or 12 behave like native date overflow.
	first := NewDate(year, month, 1)
	year, month = first.Year(), first.MonthIndex()

	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	total := DaysInMonth(year, month)

	prevYear, prevMonth := year, month-1
	if month == 0 {
		prevYear, prevMonth = year-1, 11
	}
	prevDays := DaysInMonth(prevYear, prevMonth)

	grid := make(MonthGrid, 0, GridCells)
	for i := offset - 1; i >= 0; i-- {
		grid = append(grid, makeDayCell(NewDate(prevYear, prevMonth, prevDays-i), false, today))
	}
	for d := 1; d <= total; d++ {
		grid = append(grid, makeDayCell(NewDate(year, month, d), true, today))
	}

	nextYear, nextMonth := year, month+1
	if month == 11 {
		nextYear, nextMonth = year+1, 0
	}
	// NewDate normalizes, so nextDay may run past the end of the next month.
	for nextDay := 1; len(grid) < GridCells; nextDay++ {
		grid = append(grid, makeDayCell(NewDate(nextYear, nextMonth, nextDay), false, today))
	}
	return grid
}

// HourRow is one hour across the seven days of a week grid.
type HourRow struct {
	Hour  int       `json:"hour" yaml:"hour"`
	Label string    `json:"label" yaml:"label"`
	Slots [7]string `json:"slots" yaml:"slots"`
}

// WeekGrid is the week view: seven day headers and one row per hour.
type WeekGrid struct {
	Year    int       `json:"year" yaml:"year"`
	Week    int       `json:"week" yaml:"week"`
	Headers [7]Date   `json:"headers" yaml:"headers"`
	Rows    []HourRow `json:"rows" yaml:"rows"`
}

// GenerateWeekGrid produces the TimeSlotKey for every (day, hour) pair of an
// ISO week, hours inclusive on both ends.
func GenerateWeekGrid(year, isoWeek int, weekStart WeekStart, hoursStart, hoursEnd int) WeekGrid {
	g := WeekGrid{
		Year:    year,
		Week:    isoWeek,
		Headers: WeekDates(year, isoWeek, weekStart),
	}

	var keys [7]string
	for i, d := range g.Headers {
		keys[i] = DateKey(d)
	}

	for h := hoursStart; h <= hoursEnd; h++ {
		row := HourRow{Hour: h, Label: HourLabel(h)}
		for i, k := range keys {
			row.Slots[i] = TimeSlotKey(k, h)
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}
