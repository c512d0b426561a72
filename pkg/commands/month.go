package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/commands/options"
	"tableflip.dev/calprint/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	mo := &options.MonthOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print a month grid with ISO week numbers.",
		Long: `Print the 6x7 grid of a month. Days with notes are highlighted and today
is underlined. Days of the previous and next month fill the first and last rows.`,
		Example: `
calprint month
calprint month --month 2026-02 --week-start sunday
calprint month -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			if err := co.Apply(&svc.Options); err != nil {
				return err
			}
			year, m, err := svc.ParseMonth(mo.Month)
			if err != nil {
				return output.HandleError(err)
			}
			r := month.Month{
				Service: svc,
				Year:    year,
				Month:   m,
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddCalendarArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addWeeks(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	mo := &options.MonthOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "List the ISO weeks a month touches.",
		Example: `
calprint weeks
calprint weeks --month 2026-12
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			if err := co.Apply(&svc.Options); err != nil {
				return err
			}
			year, m, err := svc.ParseMonth(mo.Month)
			if err != nil {
				return output.HandleError(err)
			}
			r := month.Weeks{
				Service: svc,
				Year:    year,
				Month:   m,
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddCalendarArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
