package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"remindctl/internal/reminder"
)

// FormatReminderCreated formats a creation confirmation message.
func FormatReminderCreated(w io.Writer, r reminder.Reminder) {
	fmt.Fprintf(w, "Created reminder %s (due %s)\n", r.ID, r.DueAt.Local().Format("2006-01-02 15:04"))
}

// FormatReminderUpdated formats an update confirmation message.
func FormatReminderUpdated(w io.Writer, r reminder.Reminder) {
	fmt.Fprintf(w, "Updated reminder %s (due %s)\n", r.ID, r.DueAt.Local().Format("2006-01-02 15:04"))
}

// FormatReminderDeleted formats a deletion confirmation message.
func FormatReminderDeleted(w io.Writer, id string) {
	fmt.Fprintf(w, "Deleted reminder %s.\n", id)
}

// FormatReminderList formats reminders as a due-ordered table.
func FormatReminderList(w io.Writer, reminders []reminder.Reminder) {
	if len(reminders) == 0 {
		fmt.Fprintln(w, "No reminders found.")
		return
	}
	now := time.Now()
	for _, r := range reminders {
		marker := " "
		switch {
		case r.Notified:
			marker = "✓"
		case r.DueAt.Before(now):
			marker = "!"
		}
		fmt.Fprintf(w, "%s %s  %s  %s\n",
			marker,
			r.ID,
			r.DueAt.Local().Format("2006-01-02 15:04"),
			r.Title,
		)
	}
}

// FormatReminderFull formats a full reminder display with metadata header.
// The markdownStyle parameter controls glamour rendering of the description.
func FormatReminderFull(w io.Writer, r reminder.Reminder, markdownStyle string) {
	fmt.Fprintf(w, "Reminder: %s\n", r.ID)
	fmt.Fprintf(w, "Title: %s\n", r.Title)
	fmt.Fprintf(w, "Due: %s\n", r.DueAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Created: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Notified: %t\n", r.Notified)
	if r.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderMarkdownWithStyle(r.Description, 80, markdownStyle))
	}
}

// DeleteResult is the JSON output shape for delete operations.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// FormatJSON writes any value as indented JSON.
func FormatJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
