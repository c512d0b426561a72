package calendarview

import "github.com/charmbracelet/lipgloss/v2"

// Styles controls how the calendar is painted.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	OtherMonth lipgloss.Style
	Day        lipgloss.Style
	Weekend    lipgloss.Style
	Noted      lipgloss.Style
	Today      lipgloss.Style
	Selected   lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
	Panel      lipgloss.Style
}

// DefaultStyles returns the styling used by the calendar view.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		OtherMonth: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Day:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Weekend:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Noted:      lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
		Today:      lipgloss.NewStyle().Underline(true),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:       lipgloss.NewStyle().Italic(true),
		Panel:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// cell picks the style of one calendar cell. Later flags win.
func (s Styles) cell(otherMonth, weekend, noted, today, selected bool) lipgloss.Style {
	style := s.Day
	if weekend {
		style = s.Weekend
	}
	if otherMonth {
		style = s.OtherMonth
	}
	if noted {
		style = s.Noted.Inherit(style)
	}
	if today {
		style = s.Today.Inherit(style)
	}
	if selected {
		style = s.Selected.Inherit(style)
	}
	return style
}
