package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"remindctl/internal/storage"
)

// ListRemindersHandler returns the handler function for the list_reminders MCP tool.
func ListRemindersHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input ListRemindersInput) (*mcp.CallToolResult, ListRemindersOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListRemindersInput) (*mcp.CallToolResult, ListRemindersOutput, error) {
		reminders, err := store.List(storage.ListOptions{
			OnlyPending: input.Pending,
			Limit:       input.Limit,
		})
		if err != nil {
			return nil, ListRemindersOutput{}, err
		}

		out := ListRemindersOutput{Reminders: []ReminderResult{}}
		for _, r := range reminders {
			out.Reminders = append(out.Reminders, ReminderResult{
				ID:       r.ID,
				Title:    r.Title,
				Preview:  r.Preview(80),
				DueAt:    r.DueAt.Local().Format("2006-01-02 15:04"),
				Notified: r.Notified,
			})
		}
		return nil, out, nil
	}
}
