package mcptools

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"remindctl/internal/reminder"
	"remindctl/internal/storage"
)

// CreateReminderHandler returns the handler function for the create_reminder MCP tool.
func CreateReminderHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input CreateReminderInput) (*mcp.CallToolResult, CreateReminderOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateReminderInput) (*mcp.CallToolResult, CreateReminderOutput, error) {
		dueAt, err := reminder.ParseDueAt(input.DueAt, time.Now())
		if err != nil {
			return nil, CreateReminderOutput{}, err
		}

		r, err := reminder.New(input.Title, input.Description, dueAt)
		if err != nil {
			return nil, CreateReminderOutput{}, err
		}

		if err := store.Create(r); err != nil {
			return nil, CreateReminderOutput{}, err
		}

		return nil, CreateReminderOutput{
			ID:    r.ID,
			Title: r.Title,
			DueAt: r.DueAt.Local().Format("2006-01-02 15:04"),
		}, nil
	}
}
