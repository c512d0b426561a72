package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/timeutil"
)

// AgendaOptions is the run of days an agenda covers.
type AgendaOptions struct {
	From string
	Span string
}

func AddAgendaArgs(cmd *cobra.Command, o *AgendaOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`First day, "today" or YYYY-MM-DD. Defaults to today.`)
	cmd.Flags().StringVar(&o.Span, "span", timeutil.DefaultSpan,
		"Days to include, for example 3d, 1w or 1w2d.")
}
