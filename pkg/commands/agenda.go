package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/calendar"
	"tableflip.dev/calprint/pkg/commands/options"
	"tableflip.dev/calprint/pkg/runner/agenda"
	"tableflip.dev/calprint/pkg/timeutil"
)

func addAgenda(topLevel *cobra.Command) {
	ao := &options.AgendaOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "List the notes of the coming days.",
		Long: `Agenda lists day and hour slot notes grouped by day, starting at --from and
covering --span days. Day notes come first, then the slots in hour order.`,
		Example: `
calprint agenda
calprint agenda --span 3d
calprint agenda --from 2026-02-09 --span 1w2d -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			f, err := output.Format()
			if err != nil {
				return err
			}
			days, _, err := timeutil.ParseSpan(ao.Span)
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}

			var from calendar.Date
			if ao.From != "" {
				key, err := svc.ResolveKey(ao.From)
				if err != nil {
					return output.HandleError(err)
				}
				if from, err = calendar.ParseDateKey(key); err != nil {
					return fmt.Errorf("--from needs a day, got %q", ao.From)
				}
			}

			r := agenda.Agenda{
				Service: svc,
				From:    from,
				Days:    days,
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddAgendaArgs(cmd, ao)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
