// Package month prints month grids and the ISO weeks they touch.
package month

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/printers"
)

// Month prints one month.
type Month struct {
	Service *app.Service
	Year    int
	Month   int // 0-based
	Format  printers.Format
	Out     io.Writer
}

// Do renders the month as a grid or as JSON/YAML.
func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not print month, no service")
	}
	v, err := n.Service.MonthView(n.Year, n.Month)
	if err != nil {
		return err
	}
	if n.Format.Structured() {
		return printers.Encode(out(n.Out), n.Format, v)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Month(v)
	return nil
}

// WeekList is the structured form of Weeks.
type WeekList struct {
	Year  int   `json:"year" yaml:"year"`
	Month int   `json:"month" yaml:"month"`
	Weeks []int `json:"weeks" yaml:"weeks"`
}

// Weeks lists the ISO week numbers touched by a month.
type Weeks struct {
	Service *app.Service
	Year    int
	Month   int // 0-based
	Format  printers.Format
	Out     io.Writer
}

// Do prints the week numbers.
func (n *Weeks) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list weeks, no service")
	}
	v, err := n.Service.MonthView(n.Year, n.Month)
	if err != nil {
		return err
	}
	if n.Format.Structured() {
		return printers.Encode(out(n.Out), n.Format, WeekList{Year: v.Year, Month: v.Month, Weeks: v.Weeks})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Weeks(v)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
