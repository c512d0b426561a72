package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/calendar"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions picks a single date.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-2-28" or --on="2/28".`)
}

// GetOn parses --on. The zero Date means the flag was not set. The short form
// picks the next such date on or after today.
func (o *OnOptions) GetOn(today calendar.Date) (calendar.Date, error) {
	if o.OnString == "" {
		return calendar.Date{}, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err == nil {
		return calendar.DateOf(t), nil
	}
	t, err = time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return calendar.Date{}, err
	}
	d := calendar.NewDate(today.Year(), int(t.Month())-1, t.Day())
	if d.Before(today) {
		d = calendar.NewDate(today.Year()+1, int(t.Month())-1, t.Day())
	}
	return d, nil
}
