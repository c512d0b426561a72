// Package week prints the hour grid of an ISO week.
package week

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/calendar"
	"tableflip.dev/calprint/pkg/printers"
)

// Week prints one ISO week. A non-zero On wins over Year and Week; with
// neither set the current week is printed.
type Week struct {
	Service   *app.Service
	Year      int
	Week      int
	On        calendar.Date
	Format    printers.Format
	Out       io.Writer
	NoteWidth int
}

// Do renders the week as a table or as JSON/YAML.
func (n *Week) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not print week, no service")
	}

	var (
		v   app.WeekView
		err error
	)
	switch {
	case !n.On.IsZero():
		v, err = n.Service.WeekViewOn(n.On)
	case n.Week == 0:
		v, err = n.Service.WeekViewOn(n.Service.Today())
	default:
		year := n.Year
		if year == 0 {
			year, _ = calendar.ISOWeek(n.Service.Today())
		}
		v, err = n.Service.WeekView(year, n.Week)
	}
	if err != nil {
		return err
	}

	if n.Format.Structured() {
		w := n.Out
		if w == nil {
			w = color.Output
		}
		return printers.Encode(w, n.Format, v)
	}
	pp := printers.PrettyPrint{Out: n.Out, NoteWidth: n.NoteWidth}
	pp.Week(v)
	return nil
}
