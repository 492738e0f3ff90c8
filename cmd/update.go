package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"remindctl/internal/reminder"
	"remindctl/internal/storage"
	"remindctl/internal/ui"
)

var (
	updateTitle       string
	updateDescription string
	updateDue         string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a reminder",
	Long:  "Update a reminder's title, description, or due time. Moving the due time into the future re-arms the notification.",
	Example: `  remindctl update a3kf9x2m --title "Pay rent (late)"
  remindctl update a3kf9x2m --due "2026-04-02 09:00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fields storage.UpdateFields
		if cmd.Flags().Changed("title") {
			fields.Title = &updateTitle
		}
		if cmd.Flags().Changed("desc") {
			fields.Description = &updateDescription
		}
		if cmd.Flags().Changed("due") {
			dueAt, err := reminder.ParseDueAt(updateDue, time.Now())
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			fields.DueAt = &dueAt
		}

		if fields.Title == nil && fields.Description == nil && fields.DueAt == nil {
			fmt.Fprintln(os.Stderr, "Error: nothing to update (pass --title, --desc, or --due)")
			os.Exit(1)
		}

		r, err := store.Update(args[0], fields)
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
			ui.FormatReminderUpdated(os.Stdout, r)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "desc", "", "new description")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due time (HH:MM or YYYY-MM-DD HH:MM)")
	rootCmd.AddCommand(updateCmd)
}
