package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/commands/options"
	"tableflip.dev/calprint/pkg/events"
	"tableflip.dev/calprint/pkg/runner/ui"
	"tableflip.dev/calprint/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}
	var demo bool

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar.",
		Long: `Browse months and ISO weeks and manage notes from the keyboard. Press ? in
the calendar for the key bindings. Notes changed by other calprint commands
are picked up while the calendar is open.`,
		Example: `
calprint ui
calprint ui --week-start sunday
calprint ui --demo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				svc  *app.Service
				disk *store.Disk
				err  error
			)
			if demo {
				svc, err = demoService()
			} else {
				svc, disk, err = loadService()
			}
			if err != nil {
				return err
			}
			if err := co.Apply(&svc.Options); err != nil {
				return err
			}
			i := ui.UI{Service: svc, Store: disk}
			return i.Do(cmd.Context())
		},
	}

	options.AddCalendarArgs(cmd, co)
	cmd.Flags().BoolVar(&demo, "demo", false, "Open a scratch calendar with sample notes. Nothing is saved.")

	topLevel.AddCommand(cmd)
}

// demoService keeps sample notes in memory.
func demoService() (*app.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	svc := app.New(nil, cfg.Calendar)
	data, err := json.Marshal(ui.DemoNotes(svc.Today(), cfg.Calendar))
	if err != nil {
		return nil, err
	}
	svc.Index = events.New(store.NewMemory(data))
	svc.Index.Load()
	return svc, nil
}
