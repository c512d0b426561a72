// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/calendar"
)

// CalendarOptions overrides the configured week layout for one command.
type CalendarOptions struct {
	WeekStart string
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.WeekStart, "week-start", "",
		"First day of the week, 'monday' or 'sunday'. Defaults to the config file.")
}

// Apply sets the week start on opts when the flag was given.
func (o *CalendarOptions) Apply(opts *calendar.Options) error {
	if o.WeekStart == "" {
		return nil
	}
	ws, err := calendar.ParseWeekStart(o.WeekStart)
	if err != nil {
		return err
	}
	opts.WeekStart = ws
	return nil
}

// MonthOptions picks a month.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month as YYYY-MM, example: --month=2026-02. Defaults to this month.`)
}

// WeekOptions picks an ISO week.
type WeekOptions struct {
	Year int
	Week int
}

func AddWeekArgs(cmd *cobra.Command, o *WeekOptions) {
	cmd.Flags().IntVar(&o.Year, "year", 0,
		"ISO week-numbering year. Defaults to the current one.")
	cmd.Flags().IntVarP(&o.Week, "week", "w", 0,
		"ISO week number, 1 to 53. Defaults to the current week.")
}
