// Package calendarview is the interactive calendar: a month or week grid with
// the notes of the selected day or hour slot underneath.
package calendarview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
	"tableflip.dev/calprint/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionEdit
)

// dayRow selects the whole-day row of the week grid instead of an hour.
const dayRow = -1

const normalStatus = "h/l day, j/k week or hour, n/p page, m/w mode, a add, e edit, d delete, ? help"

// Model is the calendar UI state.
type Model struct {
	svc  *app.Service
	view calendar.View

	cursor calendar.Date
	hour   int
	note   int

	mode   mode
	action action
	input  textinput.Model
	status string

	watch  <-chan store.Event
	styles Styles

	width  int
	height int
}

// New opens the current month. Events received on watch reload the notes.
func New(svc *app.Service, watch <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "Note text"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")

	return Model{
		svc:    svc,
		view:   svc.NewView(),
		cursor: svc.Today(),
		hour:   dayRow,
		mode:   modeNormal,
		input:  ti,
		status: normalStatus,
		watch:  watch,
		styles: DefaultStyles(),
	}
}

// messages
type storeChangedMsg struct{ event store.Event }
type watchClosedMsg struct{}

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{ev}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case storeChangedMsg:
		m.svc.Reload()
		m.clampNote()
		m.status = "Notes changed on disk, reloaded"
		return m, m.waitForChange()
	case watchClosedMsg:
		m.watch = nil
	case tea.KeyPressMsg:
		if m.mode == modeInsert {
			return m.updateInsert(msg)
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) updateInsert(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commit()
		return m, nil
	case "esc":
		if m.action == actionEdit {
			m.status = "Edit cancelled"
		} else {
			m.status = "Add cancelled"
		}
		m.leaveInsert()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey applies one normal or help mode key.
func (m Model) handleKey(key string) (Model, tea.Cmd) {
	if m.mode == modeHelp {
		switch key {
		case "q", "esc", "?":
			m.mode = modeNormal
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp

	case "h", "left":
		m.goTo(m.cursor.AddDays(-1))
	case "l", "right":
		m.goTo(m.cursor.AddDays(1))
	case "j", "down":
		if m.view.Mode == calendar.WeekMode {
			m.moveHour(1)
		} else {
			m.goTo(m.cursor.AddDays(7))
		}
	case "k", "up":
		if m.view.Mode == calendar.WeekMode {
			m.moveHour(-1)
		} else {
			m.goTo(m.cursor.AddDays(-7))
		}
	case "n", "pgdown":
		m.step(1)
	case "p", "pgup":
		m.step(-1)
	case "t":
		m.goTo(m.svc.Today())

	case "m":
		m.setMode(calendar.MonthMode)
	case "w":
		m.setMode(calendar.WeekMode)
	case "s":
		m.toggleWeekStart()

	case "tab":
		m.cycleNote(1)
	case "shift+tab":
		m.cycleNote(-1)

	case "a", "o":
		cmd = m.enterInsert(actionAdd, "")
	case "e", "i":
		notes := m.notes()
		if len(notes) == 0 {
			m.status = "No note to edit"
			break
		}
		cmd = m.enterInsert(actionEdit, notes[m.note])
	case "d", "x":
		m.deleteNote()
	case "r":
		m.svc.Reload()
		m.clampNote()
		m.status = "Reloaded"
	}
	return m, cmd
}

// selectedKey is the DateKey of the cursor, or its TimeSlotKey when an hour
// row of the week grid is selected.
func (m Model) selectedKey() string {
	key := calendar.DateKey(m.cursor)
	if m.view.Mode == calendar.WeekMode && m.hour != dayRow {
		return calendar.TimeSlotKey(key, m.hour)
	}
	return key
}

func (m Model) notes() []string {
	notes, err := m.svc.Notes(m.selectedKey())
	if err != nil {
		return nil
	}
	return notes
}

func (m *Model) goTo(d calendar.Date) {
	if !m.svc.Options.InYearRange(d.Year()) {
		m.yearRangeError(d.Year())
		return
	}
	m.cursor = d
	m.note = 0
	m.follow()
}

// follow moves the view so the cursor is on screen.
func (m *Model) follow() {
	if m.view.Mode == calendar.MonthMode {
		if m.cursor.Year() != m.view.Year || m.cursor.MonthIndex() != m.view.Month {
			m.view = m.view.WithMonth(m.cursor.Year(), m.cursor.MonthIndex())
		}
		return
	}
	if m.column() < 0 {
		// A Sunday-start row opens the day before its ISO Monday.
		shift := 0
		if m.view.WeekStart == calendar.Sunday {
			shift = 1
		}
		m.view = m.view.AtWeekOf(m.cursor.AddDays(shift))
	}
}

func (m Model) dates() [7]calendar.Date {
	return calendar.WeekDates(m.view.Year, m.view.Week, m.view.WeekStart)
}

// column is the cursor's position in the displayed week, or -1.
func (m Model) column() int {
	for i, d := range m.dates() {
		if d.Equal(m.cursor) {
			return i
		}
	}
	return -1
}

func (m *Model) step(dir int) {
	next := m.view.Prev()
	if dir > 0 {
		next = m.view.Next()
	}

	if m.view.Mode == calendar.MonthMode {
		if !m.svc.Options.InYearRange(next.Year) {
			m.yearRangeError(next.Year)
			return
		}
		day := m.cursor.Day()
		if last := calendar.DaysInMonth(next.Year, next.Month); day > last {
			day = last
		}
		m.view = next
		m.cursor = calendar.NewDate(next.Year, next.Month, day)
	} else {
		col := m.column()
		if col < 0 {
			col = 0
		}
		dates := calendar.WeekDates(next.Year, next.Week, next.WeekStart)
		i := m.nearestInRange(dates, col)
		if i < 0 {
			m.yearRangeError(dates[col].Year())
			return
		}
		m.view = next
		m.cursor = dates[i]
	}
	m.note = 0
}

// nearestInRange is the index of the date closest to col whose year is in
// the configured range, or -1.
func (m Model) nearestInRange(dates [7]calendar.Date, col int) int {
	best := -1
	for i, d := range dates {
		if !m.svc.Options.InYearRange(d.Year()) {
			continue
		}
		if best < 0 || abs(i-col) < abs(best-col) {
			best = i
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (m *Model) yearRangeError(year int) {
	m.status = fmt.Sprintf("ERR: %d is outside %d..%d", year, m.svc.Options.YearRangeStart, m.svc.Options.YearRangeEnd)
}

func (m *Model) setMode(to calendar.Mode) {
	if m.view.Mode == to {
		return
	}
	if to == calendar.WeekMode {
		m.view = m.view.WithMode(calendar.WeekMode)
		if m.column() < 0 {
			if i := m.nearestInRange(m.dates(), 0); i >= 0 {
				m.cursor = m.dates()[i]
			} else {
				m.follow()
			}
		}
		m.hour = dayRow
	} else {
		m.view = m.view.WithMode(calendar.MonthMode).WithMonth(m.cursor.Year(), m.cursor.MonthIndex())
	}
	m.note = 0
	m.status = fmt.Sprintf("%s view", m.view.Mode)
}

func (m *Model) toggleWeekStart() {
	ws := calendar.Sunday
	if m.view.WeekStart == calendar.Sunday {
		ws = calendar.Monday
	}
	m.svc.Options.WeekStart = ws
	m.view = m.view.WithWeekStart(ws)
	m.follow()
	m.status = fmt.Sprintf("Weeks start on %s", ws)
}

func (m *Model) moveHour(delta int) {
	opts := m.svc.Options
	h := m.hour + delta
	if m.hour == dayRow && delta > 0 {
		h = opts.HoursStart
	}
	if h < opts.HoursStart {
		h = dayRow
	}
	if h > opts.HoursEnd {
		h = opts.HoursEnd
	}
	m.hour = h
	m.note = 0
}

func (m *Model) cycleNote(dir int) {
	n := len(m.notes())
	if n == 0 {
		return
	}
	m.note = (m.note + dir + n) % n
}

func (m *Model) clampNote() {
	n := len(m.notes())
	if m.note >= n {
		m.note = n - 1
	}
	if m.note < 0 {
		m.note = 0
	}
}

func (m *Model) enterInsert(a action, value string) tea.Cmd {
	m.mode = modeInsert
	m.action = a
	if a == actionEdit {
		m.input.Placeholder = "Edit note"
	} else {
		m.input.Placeholder = "New note"
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) leaveInsert() {
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) commit() {
	key := m.selectedKey()
	text := m.input.Value()
	switch m.action {
	case actionAdd:
		if i, err := m.svc.AddNote(key, text); err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.note = i
			m.status = "Added"
		}
	case actionEdit:
		if err := m.svc.EditNote(key, m.note, text); err != nil {
			m.status = "ERR: " + err.Error()
		} else {
			m.status = "Edited"
		}
	}
	m.leaveInsert()
}

func (m *Model) deleteNote() {
	if len(m.notes()) == 0 {
		m.status = "No note to delete"
		return
	}
	if err := m.svc.DeleteNote(m.selectedKey(), m.note); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.clampNote()
	m.status = "Deleted"
}

// Run shows the calendar full screen until the user quits.
func Run(svc *app.Service, watch <-chan store.Event) error {
	p := tea.NewProgram(New(svc, watch), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
