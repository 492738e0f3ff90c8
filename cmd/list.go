package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"remindctl/internal/storage"
	"remindctl/internal/ui"
)

var (
	listPending bool
	listIDOnly  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	Long:  "List reminders ordered by due time (soonest first).",
	Example: `  remindctl list
  remindctl list --pending
  remindctl list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.OutOrStdout())
	},
}

func listRun(w io.Writer) error {
	reminders, err := store.List(storage.ListOptions{OnlyPending: listPending})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	if listIDOnly {
		for _, r := range reminders {
			fmt.Fprintln(w, r.ID)
		}
		return nil
	}

	if jsonOutput {
		ui.FormatJSON(w, reminders)
	} else {
		ui.FormatReminderList(w, reminders)
	}
	return nil
}

func init() {
	listCmd.Flags().BoolVar(&listPending, "pending", false, "only reminders that have not fired yet")
	listCmd.Flags().BoolVar(&listIDOnly, "id-only", false, "print just reminder IDs, one per line")
	rootCmd.AddCommand(listCmd)
}
