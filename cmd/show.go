package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"remindctl/internal/storage"
	"remindctl/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show <id>",
	Short:   "Show a reminder",
	Long:    "Show a single reminder with its description rendered as markdown.",
	Example: `  remindctl show a3kf9x2m`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := store.Get(args[0])
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Error: reminder %s not found\n", args[0])
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, r)
		} else {
			theme := ui.ResolveTheme(appConfig.Theme)
			ui.FormatReminderFull(os.Stdout, r, theme.MarkdownStyle)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
