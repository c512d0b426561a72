package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/calprint/pkg/commands/options"
	"tableflip.dev/calprint/pkg/runner/note"
)

const keyHelp = `A key is a day or an hour slot:

  today, 2026-02-14          the day
  "today 9", "2026-02-14 09"  the 09:00 slot of that day
  2026-02-14T09:00           the same slot as stored

Slots must fall inside the configured hours.`

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Add, show, edit and delete notes on days and hour slots.",
		Long:  keyHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNoteAdd(cmd)
	addNoteGet(cmd)
	addNoteEdit(cmd)
	addNoteDelete(cmd)
	addNoteList(cmd)

	topLevel.AddCommand(cmd)
}

func addNoteAdd(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <key> <text>",
		Short: "Append a note to a day or hour slot.",
		Long:  keyHelp,
		Example: `
calprint note add today Buy flowers
calprint note add "today 9" Standup
calprint note add 2026-02-14T19:00 Dinner at eight
`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := note.Add{
				Service: svc,
				Key:     args[0],
				Text:    strings.Join(args[1:], " "),
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteGet(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "get <key>",
		Aliases: []string{"show"},
		Short:   "Show the notes of a day or hour slot.",
		Long:    keyHelp,
		Example: `
calprint note get today
calprint note get "2026-02-14 09" -o yaml
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := note.Get{
				Service: svc,
				Key:     args[0],
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteEdit(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit <key> <index> <text>",
		Short: "Replace the text of a note.",
		Long:  keyHelp + "\n\nNotes are numbered from 0 in the order they were added.",
		Example: `
calprint note edit today 0 Buy tulips
`,
		Args:              cobra.MinimumNArgs(3),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := note.Edit{
				Service: svc,
				Key:     args[0],
				Index:   index,
				Text:    strings.Join(args[2:], " "),
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteDelete(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <key> <index>",
		Aliases: []string{"rm"},
		Short:   "Delete a note. Later notes move up one position.",
		Long:    keyHelp,
		Example: `
calprint note delete "today 9" 1
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: keyCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := note.Delete{
				Service: svc,
				Key:     args[0],
				Index:   index,
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addNoteList(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every day and hour slot that has notes.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.Format()
			if err != nil {
				return err
			}
			svc, _, err := loadService()
			if err != nil {
				return output.HandleError(err)
			}
			r := note.List{
				Service: svc,
				Format:  f,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("index must be a number from 0, got %q", s)
	}
	return i, nil
}
