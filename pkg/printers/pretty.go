package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/calprint/pkg/app"
)

// PrettyPrint writes human readable calendars and notes.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// NoteWidth truncates note text in table cells; 0 uses DefaultNoteWidth.
	NoteWidth int
}

// DefaultNoteWidth is the widest a note gets inside a table cell.
const DefaultNoteWidth = 24

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) noteWidth() uint {
	if pp.NoteWidth <= 0 {
		return DefaultNoteWidth
	}
	return uint(pp.NoteWidth)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " note")
	default:
		_, _ = c.Fprintln(pp.out(), " notes")
	}
}

// Notes prints the notes under one key with their positions.
func (pp *PrettyPrint) Notes(key string, notes []string) {
	pp.TitleWithCount(app.FormatKey(key), len(notes))
	if len(notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	idx := color.New(color.FgHiYellow, color.Faint)
	for i, n := range notes {
		_, _ = idx.Fprintf(pp.out(), "%3d ", i)
		_, _ = fmt.Fprintln(pp.out(), n)
	}
	pp.NewLine()
}

// NotesList prints every key with its notes as a table.
func (pp *PrettyPrint) NotesList(all []app.KeyNotes) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("#"), bold.Sprint("Note"))
	for _, kn := range all {
		for i, n := range kn.Notes {
			key := kn.Key
			if i > 0 {
				key = ""
			}
			tbl.AddRow(key, i, n)
		}
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Weeks prints the ISO weeks touched by a month.
func (pp *PrettyPrint) Weeks(v app.MonthView) {
	pp.Title(v.Title)
	parts := make([]string, len(v.Weeks))
	for i, w := range v.Weeks {
		parts[i] = fmt.Sprintf("W%02d", w)
	}
	_, _ = fmt.Fprintln(pp.out(), strings.Join(parts, " "))
}

// Report prints an agenda grouped by day.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.TitleWithCount(fmt.Sprintf("%s to %s", r.Since, r.Until), r.Total)
	if len(r.Sections) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	day := color.New(color.Bold)
	hour := color.New(color.FgCyan)
	for _, s := range r.Sections {
		_, _ = day.Fprintln(pp.out(), s.Title)
		for _, e := range s.Entries {
			label := "     "
			if e.Hour >= 0 {
				label = fmt.Sprintf("%02d:00", e.Hour)
			}
			_, _ = hour.Fprintf(pp.out(), "  %s ", label)
			_, _ = fmt.Fprintln(pp.out(), e.Text)
		}
	}
	pp.NewLine()
}

func (pp *PrettyPrint) clip(notes []string) string {
	return truncate.StringWithTail(strings.Join(notes, "; "), pp.noteWidth(), "…")
}
