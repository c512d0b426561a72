package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/commands/options"
	"tableflip.dev/calprint/pkg/runner/icsfile"
)

func addExport(topLevel *cobra.Command) {
	var (
		path string
		utc  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every note as an iCalendar (.ics) event.",
		Long: `Export writes day notes as all-day events and hour slot notes as one hour
events. Each event has a stable UID so importing the file again adds nothing.`,
		Example: `
calprint export > notes.ics
calprint export --file ~/notes.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return err
			}
			r := icsfile.Export{
				Service:  svc,
				Path:     path,
				Out:      cmd.OutOrStdout(),
				Location: location(utc),
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "-", "File to write, - for stdout.")
	cmd.Flags().BoolVar(&utc, "utc", false, "Place hour slots in UTC instead of local time.")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	var utc bool
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add the events of an iCalendar (.ics) file as notes.",
		Long: `Import turns all-day events into day notes and timed events inside the
configured hours into hour slot notes. Other timed events become day notes
prefixed with their start time. Events already present are skipped.`,
		Example: `
calprint import holidays.ics
curl -s https://example.com/team.ics | calprint import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := icsfile.Import{
				Service:  svc,
				Path:     args[0],
				In:       cmd.InOrStdin(),
				Location: location(utc),
				Format:   f,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&utc, "utc", false, "Read event times in UTC instead of local time.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func location(utc bool) *time.Location {
	if utc {
		return time.UTC
	}
	return time.Local
}
