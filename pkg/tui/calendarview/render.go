package calendarview

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
)

const (
	defaultColWidth = 12
	minColWidth     = 6
	maxColWidth     = 24
	labelWidth      = 5
)

const helpText = "Keys: h/l previous/next day, j/k previous/next week (hour in week view), n/p next/previous page, t today, " +
	"m month view, w week view, s toggle week start, tab cycle notes, a add, e edit, d delete, r reload, q quit"

// View renders the grid, the selected notes and the status line.
func (m Model) View() string {
	var (
		body string
		err  error
	)
	if m.view.Mode == calendar.WeekMode {
		body, err = m.renderWeek()
	} else {
		body, err = m.renderMonth()
	}
	if err != nil {
		body = m.styles.Title.Render(m.view.Title()) + "\n" + "ERR: " + err.Error()
	}
	body += "\n\n" + m.renderNotes()

	switch m.mode {
	case modeInsert:
		prompt := "Add: "
		if m.action == actionEdit {
			prompt = "Edit: "
		}
		body += "\n\n" + prompt + m.input.View()
	case modeHelp:
		body += "\n\n" + m.styles.Help.Render(helpText)
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeHelp: "HELP"}[m.mode]
	status := m.styles.Status.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))
	return body + "\n\n" + status
}

func (m Model) renderMonth() (string, error) {
	v, err := m.svc.MonthView(m.view.Year, m.view.Month)
	if err != nil {
		return "", err
	}

	header := []string{"Wk"}
	for _, wd := range v.Weekdays {
		header = append(header, fmt.Sprintf("%.2s", wd))
	}
	lines := []string{
		m.styles.Title.Render(v.Title),
		m.styles.Header.Render(strings.Join(header, " ")),
	}

	for _, row := range v.Rows() {
		cells := []string{m.styles.Header.Render(fmt.Sprintf("%2d", rowWeek(row, v.WeekStart)))}
		for _, c := range row {
			style := m.styles.cell(!c.IsCurrentMonth, c.IsWeekend, len(c.Notes) > 0, c.IsToday, c.Date.Equal(m.cursor))
			cells = append(cells, style.Render(fmt.Sprintf("%2d", c.DayNumber)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n"), nil
}

// rowWeek numbers a grid row by the ISO week of its Monday.
func rowWeek(row []app.MonthCell, ws calendar.WeekStart) int {
	i := 0
	if ws == calendar.Sunday {
		i = 1
	}
	return calendar.ISOWeekNumber(row[i].Date)
}

func (m Model) renderWeek() (string, error) {
	v, err := m.svc.WeekView(m.view.Year, m.view.Week)
	if err != nil {
		return "", err
	}
	w := m.colWidth()
	sel := m.column()
	label := m.styles.Header.Width(labelWidth)

	header := []string{strings.Repeat(" ", labelWidth)}
	day := []string{label.Render("day")}
	for i, d := range v.Days {
		style := m.styles.cell(false, d.IsWeekend, false, d.IsToday, false).Width(w)
		header = append(header, style.Render(fit(d.Label(), w)))

		style = m.styles.cell(false, false, len(d.Notes) > 0, false, i == sel && m.hour == dayRow).Width(w)
		day = append(day, style.Render(fit(strings.Join(d.Notes, "; "), w)))
	}

	lines := []string{
		m.styles.Title.Render(v.Title),
		strings.Join(header, " "),
		strings.Join(day, " "),
	}
	for _, row := range v.Rows {
		cells := []string{label.Render(row.Label)}
		for i, slot := range row.Slots {
			style := m.styles.cell(false, false, len(slot.Notes) > 0, false, i == sel && m.hour == row.Hour).Width(w)
			cells = append(cells, style.Render(fit(strings.Join(slot.Notes, "; "), w)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n"), nil
}

// colWidth shares the terminal width between the seven day columns.
func (m Model) colWidth() int {
	if m.width == 0 {
		return defaultColWidth
	}
	w := (m.width-labelWidth)/7 - 1
	if w < minColWidth {
		w = minColWidth
	}
	if w > maxColWidth {
		w = maxColWidth
	}
	return w
}

func fit(s string, w int) string {
	return truncate.StringWithTail(s, uint(w), "…")
}

func (m Model) renderNotes() string {
	key := m.selectedKey()
	lines := []string{m.styles.Title.Render(app.FormatKey(key))}
	notes := m.notes()
	if len(notes) == 0 {
		lines = append(lines, m.styles.Status.Render("no notes, a to add"))
	}
	for i, n := range notes {
		marker := "  "
		if i == m.note {
			marker = "→ "
		}
		lines = append(lines, fmt.Sprintf("%s%d %s", marker, i, n))
	}
	return m.styles.Panel.Render(strings.Join(lines, "\n"))
}
