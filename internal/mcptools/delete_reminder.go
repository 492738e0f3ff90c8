package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"remindctl/internal/storage"
)

// DeleteReminderHandler returns the handler function for the delete_reminder MCP tool.
func DeleteReminderHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input DeleteReminderInput) (*mcp.CallToolResult, DeleteReminderOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DeleteReminderInput) (*mcp.CallToolResult, DeleteReminderOutput, error) {
		if err := store.Delete(input.ID); err != nil {
			return nil, DeleteReminderOutput{}, err
		}
		return nil, DeleteReminderOutput{ID: input.ID, Deleted: true}, nil
	}
}
