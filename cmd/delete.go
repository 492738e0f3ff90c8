package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"remindctl/internal/storage"
	"remindctl/internal/ui"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a reminder",
	Long:  "Permanently delete a reminder. Requires confirmation unless --force is used.",
	Example: `  remindctl delete a3kf9x2m
  remindctl delete a3kf9x2m --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		// Fetch the reminder to confirm it exists and show what is about to go
		r, err := store.Get(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "Error: reminder %s not found\n", id)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if !forceDelete {
			fmt.Fprintf(os.Stdout, "Reminder: %s (due %s)\n", r.Title, r.DueAt.Local().Format("2006-01-02 15:04"))

			confirmed, err := ui.Confirm("Delete this reminder? This cannot be undone.", ui.ResolveTheme(appConfig.Theme))
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(2)
			}
			if !confirmed {
				fmt.Fprintln(os.Stdout, "Cancelled.")
				return nil
			}
		}

		if err := store.Delete(id); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, ui.DeleteResult{ID: id, Deleted: true})
		} else {
			ui.FormatReminderDeleted(os.Stdout, id)
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
