package mcptools

// CreateReminderInput is the input schema for the create_reminder MCP tool.
type CreateReminderInput struct {
	Title       string `json:"title" jsonschema-description:"Reminder title"`
	Description string `json:"description,omitempty" jsonschema-description:"Optional reminder description"`
	DueAt       string `json:"due_at" jsonschema-description:"Due time: HH:MM (today), YYYY-MM-DD HH:MM, or RFC3339"`
}

// CreateReminderOutput is the output schema for the create_reminder MCP tool.
type CreateReminderOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	DueAt string `json:"due_at"`
}

// ListRemindersInput is the input schema for the list_reminders MCP tool.
type ListRemindersInput struct {
	Pending bool `json:"pending,omitempty" jsonschema-description:"Only reminders that have not fired yet"`
	Limit   int  `json:"limit,omitempty" jsonschema-description:"Maximum number of results"`
}

// ListRemindersOutput is the output schema for the list_reminders MCP tool.
type ListRemindersOutput struct {
	Reminders []ReminderResult `json:"reminders"`
}

// ReminderResult is the common output format for reminder-related MCP tools.
type ReminderResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Preview  string `json:"preview,omitempty"`
	DueAt    string `json:"due_at"`
	Notified bool   `json:"notified"`
}

// DeleteReminderInput is the input schema for the delete_reminder MCP tool.
type DeleteReminderInput struct {
	ID string `json:"id" jsonschema-description:"Reminder ID to delete"`
}

// DeleteReminderOutput is the output schema for the delete_reminder MCP tool.
type DeleteReminderOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
