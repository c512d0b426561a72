package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/commands/options"
	"tableflip.dev/calprint/pkg/printers"
	"tableflip.dev/calprint/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	wo := &options.WeekOptions{}
	on := &options.OnOptions{}
	output := &options.OutputOptions{}
	noteWidth := printers.DefaultNoteWidth

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the hour grid of an ISO week.",
		Long: `Print one row per configured hour and one column per day of an ISO week,
with the notes of each hour slot. Day notes are shown above the hours.`,
		Example: `
calprint week
calprint week --week 7 --year 2026
calprint week --on 2/14
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
			d, err := on.GetOn(svc.Today())
			if err != nil {
				return err
			}
			r := week.Week{
				Service:   svc,
				Year:      wo.Year,
				Week:      wo.Week,
				On:        d,
				Format:    f,
				Out:       cmd.OutOrStdout(),
				NoteWidth: noteWidth,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddWeekArgs(cmd, wo)
	options.AddOnArgs(cmd, on)
	options.AddCalendarArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	cmd.Flags().IntVar(&noteWidth, "note-width", printers.DefaultNoteWidth, "Clip notes in each cell to this many columns.")

	topLevel.AddCommand(cmd)
}
