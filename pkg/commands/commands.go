package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/calprint/pkg/app"
	"tableflip.dev/calprint/pkg/config"
	"tableflip.dev/calprint/pkg/events"
	"tableflip.dev/calprint/pkg/store"
)

var (
	configFile string
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "calprint",
		Short: base.Wrap80("A month and week calendar with notes, on the command line."),
		Long: base.Wrap80("Print month grids and ISO week hour grids, keep notes on days and " +
			"hour slots, and browse them all in an interactive calendar."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file to use instead of searching for .calprint.yaml.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addMonth(topLevel)
	addWeeks(topLevel)
	addWeek(topLevel)
	addNote(topLevel)
	addAgenda(topLevel)
	addUI(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFile(configFile)
	}
	return config.Load()
}

// loadService opens the notes on disk and wraps them in a calendar service.
func loadService() (*app.Service, *store.Disk, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	disk, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	idx := events.New(disk)
	idx.Load()
	return app.New(idx, cfg.Calendar), disk, nil
}
