package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"remindctl/internal/reminder"
	"remindctl/internal/ui"
)

var (
	addDescription string
	addDue         string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a reminder",
	Long:  "Create a new reminder due at the given time.",
	Example: `  remindctl add "Pay rent" --due "2026-04-01 09:00"
  remindctl add "Stand up" --due 14:30 --desc "stretch your legs"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		dueAt, err := reminder.ParseDueAt(addDue, time.Now())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		r, err := reminder.New(title, addDescription, dueAt)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		if err := store.Create(r); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, r)
		} else {
			ui.FormatReminderCreated(os.Stdout, r)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "desc", "", "reminder description (markdown ok)")
	addCmd.Flags().StringVar(&addDue, "due", "", "due time (HH:MM or YYYY-MM-DD HH:MM)")
	addCmd.MarkFlagRequired("due")
	rootCmd.AddCommand(addCmd)
}
