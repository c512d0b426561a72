// Package agenda prints the notes of a run of days.
package agenda

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
	"tableflip.dev/calprint/pkg/printers"
)

// Agenda prints Days days of notes starting at From.
type Agenda struct {
	Service *app.Service
	From    calendar.Date
	Days    int
	Format  printers.Format
	Out     io.Writer
}

// Do builds the report and prints it.
func (a *Agenda) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("can not print agenda, no service")
	}
	from := a.From
	if from.IsZero() {
		from = a.Service.Today()
	}
	days := a.Days
	if days < 1 {
		days = 1
	}

	r, err := a.Service.Report(from, from.AddDays(days-1))
	if err != nil {
		return err
	}
	if a.Format.Structured() {
		w := a.Out
		if w == nil {
			w = color.Output
		}
		return printers.Encode(w, a.Format, r)
	}
	pp := printers.PrettyPrint{Out: a.Out}
	pp.Report(r)
	return nil
}
