package app

import (
	"fmt"
	"time"

	"tableflip.dev/calprint/pkg/calendar"
)

// MonthCell is a grid cell together with its day notes.
type MonthCell struct {
	calendar.DayCell `yaml:",inline"`
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// MonthView is everything a renderer needs for one month.
type MonthView struct {
	Title     string             `json:"title" yaml:"title"`
	Year      int                `json:"year" yaml:"year"`
	Month     int                `json:"month" yaml:"month"`
	WeekStart calendar.WeekStart `json:"week_start" yaml:"week_start"`
	Weekdays  [7]time.Weekday    `json:"-" yaml:"-"`
	Weeks     []int              `json:"weeks" yaml:"weeks"`
	Cells     []MonthCell        `json:"cells" yaml:"cells"`
}

// Rows splits the cells into six weeks of seven.
func (v MonthView) Rows() [][]MonthCell {
	rows := make([][]MonthCell, 0, calendar.GridRows)
	for i := 0; i+7 <= len(v.Cells); i += 7 {
		rows = append(rows, v.Cells[i:i+7])
	}
	return rows
}

// MonthView builds the month grid for year and 0-based month.
func (s *Service) MonthView(year, month int) (MonthView, error) {
	first := calendar.NewDate(year, month, 1)
	year, month = first.Year(), first.MonthIndex()
	if err := s.checkYear(year); err != nil {
		return MonthView{}, err
	}

	grid := calendar.GenerateMonthGrid(year, month, s.Options.WeekStart, s.Today())
	cells := make([]MonthCell, len(grid))
	for i, c := range grid {
		cells[i] = MonthCell{DayCell: c, Notes: s.notesAt(c.DateKey)}
	}
	return MonthView{
		Title:     calendar.View{Year: year, Month: month}.Title(),
		Year:      year,
		Month:     month,
		WeekStart: s.Options.WeekStart,
		Weekdays:  calendar.OrderedWeekdays(s.Options.WeekStart),
		Weeks:     calendar.WeeksInMonth(year, month),
		Cells:     cells,
	}, nil
}

// WeekDay is a column header of the week view.
type WeekDay struct {
	Date      calendar.Date `json:"date" yaml:"date"`
	DateKey   string        `json:"date_key" yaml:"date_key"`
	IsToday   bool          `json:"is_today" yaml:"is_today"`
	IsWeekend bool          `json:"is_weekend" yaml:"is_weekend"`
	Notes     []string      `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Label is the short header, e.g. "Sat 14 Feb".
func (d WeekDay) Label() string {
	return fmt.Sprintf("%.3s %d %.3s", d.Date.Weekday(), d.Date.Day(), d.Date.Month())
}

// Slot is one hour of one day.
type Slot struct {
	Key   string   `json:"key" yaml:"key"`
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// WeekRow is one hour across the seven days.
type WeekRow struct {
	Hour  int     `json:"hour" yaml:"hour"`
	Label string  `json:"label" yaml:"label"`
	Slots [7]Slot `json:"slots" yaml:"slots"`
}

// WeekView is everything a renderer needs for one ISO week.
type WeekView struct {
	Title string     `json:"title" yaml:"title"`
	Year  int        `json:"year" yaml:"year"`
	Week  int        `json:"week" yaml:"week"`
	Days  [7]WeekDay `json:"days" yaml:"days"`
	Rows  []WeekRow  `json:"rows" yaml:"rows"`
}

// WeekView builds the hour grid of an ISO week. Week 53 of a 52 week year is
// accepted and shows the first week of the next year. A week whose
// week-numbering year is outside the year range is still shown when one of
// its days is inside it.
func (s *Service) WeekView(year, week int) (WeekView, error) {
	if week < 1 || week > 53 {
		return WeekView{}, fmt.Errorf("%w: %d not in 1..53", ErrWeekOutOfRange, week)
	}
	if err := s.checkYear(year); err != nil && !s.weekTouchesRange(year, week) {
		return WeekView{}, err
	}

	grid := calendar.GenerateWeekGrid(year, week, s.Options.WeekStart, s.Options.HoursStart, s.Options.HoursEnd)
	today := s.Today()

	v := WeekView{
		Title: calendar.View{Mode: calendar.WeekMode, Year: year, Week: week}.Title(),
		Year:  year,
		Week:  week,
		Rows:  make([]WeekRow, len(grid.Rows)),
	}
	for i, d := range grid.Headers {
		dow := d.Weekday()
		v.Days[i] = WeekDay{
			Date:      d,
			DateKey:   calendar.DateKey(d),
			IsToday:   d.Equal(today),
			IsWeekend: dow == time.Saturday || dow == time.Sunday,
			Notes:     s.notesAt(calendar.DateKey(d)),
		}
	}
	for r, row := range grid.Rows {
		out := WeekRow{Hour: row.Hour, Label: row.Label}
		for i, key := range row.Slots {
			out.Slots[i] = Slot{Key: key, Notes: s.notesAt(key)}
		}
		v.Rows[r] = out
	}
	return v, nil
}

// WeekViewOn builds the week containing d.
func (s *Service) WeekViewOn(d calendar.Date) (WeekView, error) {
	year, week := calendar.ISOWeek(d)
	return s.WeekView(year, week)
}

func (s *Service) notesAt(key string) []string {
	if s.Index == nil {
		return nil
	}
	if notes := s.Index.Get(key); len(notes) > 0 {
		return notes
	}
	return nil
}

func (s *Service) weekTouchesRange(year, week int) bool {
	for _, d := range calendar.WeekDates(year, week, calendar.Monday) {
		if s.Options.InYearRange(d.Year()) {
			return true
		}
	}
	return false
}
