package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"remindctl/internal/storage"
)

// NewReminderMCPServer creates an in-memory MCP server exposing reminder tools.
// Returns the server and a client transport for connecting to it.
func NewReminderMCPServer(store storage.Storage) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered reminder tools.
func CreateMCPServer(store storage.Storage) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "remindctl",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_reminder",
		Description: "Create a reminder that fires a desktop notification at its due time",
	}, CreateReminderHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_reminders",
		Description: "List reminders ordered by due time",
	}, ListRemindersHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_reminder",
		Description: "Delete a reminder by ID",
	}, DeleteReminderHandler(store))

	return server
}
