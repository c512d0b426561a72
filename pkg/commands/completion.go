package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(calprint completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(calprint completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// keyCompletions offers the keys that already have notes for the first
// argument of the note commands.
func keyCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc, _, err := loadService()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	all, err := svc.AllNotes()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := []string{"today"}
	for _, kn := range all {
		if strings.HasPrefix(kn.Key, toComplete) {
			keys = append(keys, kn.Key)
		}
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
