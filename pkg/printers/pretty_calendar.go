package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
)

const width = len("WW  11 12 13 14 15 16 17") // an example week with its number

// Month prints the 6x7 month grid. Days with notes are highlighted and their
// notes are listed under the grid.
func (pp *PrettyPrint) Month(v app.MonthView) {
	out := pp.out()
	tf := color.New(color.Bold)

	mid := (width - len(v.Title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), v.Title)

	head := color.New(color.Faint, color.Underline)
	names := make([]string, len(v.Weekdays))
	for i, d := range v.Weekdays {
		names[i] = fmt.Sprintf("%.2s", d)
	}
	_, _ = head.Fprintf(out, "%-2s  %s\n", "Wk", strings.Join(names, " "))

	weekNo := color.New(color.FgHiBlack)
	other := color.New(color.Faint)
	plain := color.New()
	weekend := color.New(color.FgHiBlue)
	noted := color.New(color.Bold, color.FgHiYellow)
	today := color.New(color.Bold, color.ReverseVideo)

	for _, row := range v.Rows() {
		_, _ = weekNo.Fprintf(out, "%2d  ", rowWeek(row, v.WeekStart))
		for i, c := range row {
			p := plain
			switch {
			case c.IsToday:
				p = today
			case !c.IsCurrentMonth:
				p = other
			case len(c.Notes) > 0:
				p = noted
			case c.IsWeekend:
				p = weekend
			}
			_, _ = p.Fprintf(out, "%2d", c.DayNumber)
			if i < len(row)-1 {
				_, _ = fmt.Fprint(out, " ")
			}
		}
		_, _ = fmt.Fprintln(out, "")
	}

	var noteDays []app.MonthCell
	for _, c := range v.Cells {
		if c.IsCurrentMonth && len(c.Notes) > 0 {
			noteDays = append(noteDays, c)
		}
	}
	if len(noteDays) == 0 {
		pp.NewLine()
		return
	}
	pp.NewLine()
	day := color.New(color.FgHiYellow)
	for _, c := range noteDays {
		for i, n := range c.Notes {
			label := fmt.Sprintf("%2d %.2s", c.DayNumber, c.Date.Weekday())
			if i > 0 {
				label = strings.Repeat(" ", len(label))
			}
			_, _ = day.Fprint(out, label)
			_, _ = fmt.Fprintf(out, "  %s\n", n)
		}
	}
	pp.NewLine()
}

// rowWeek is the ISO week shown next to a grid row. Sunday-start rows are
// numbered by their Monday.
func rowWeek(row []app.MonthCell, ws calendar.WeekStart) int {
	c := row[0]
	if ws == calendar.Sunday && len(row) > 1 {
		c = row[1]
	}
	return calendar.ISOWeekNumber(c.Date)
}

// Week prints the hour table of an ISO week. Day notes sit in the first row,
// then one row per hour; long notes are truncated.
func (pp *PrettyPrint) Week(v app.WeekView) {
	pp.Title(v.Title)

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = " | "
	tbl.MaxColWidth = pp.noteWidth()

	header := []interface{}{""}
	allDay := []interface{}{bold.Sprint("day")}
	hasDayNotes := false
	for _, d := range v.Days {
		label := d.Label()
		if d.IsToday {
			label = "*" + label
		}
		header = append(header, bold.Sprint(label))
		allDay = append(allDay, pp.clip(d.Notes))
		if len(d.Notes) > 0 {
			hasDayNotes = true
		}
	}
	tbl.AddRow(header...)
	if hasDayNotes {
		tbl.AddRow(allDay...)
	}

	for _, r := range v.Rows {
		cells := []interface{}{r.Label}
		for _, s := range r.Slots {
			cells = append(cells, pp.clip(s.Notes))
		}
		tbl.AddRow(cells...)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
