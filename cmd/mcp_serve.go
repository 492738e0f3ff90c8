package cmd

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"remindctl/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes reminder tools
over stdio transport, so MCP clients can create and inspect reminders.

Available tools:
  - create_reminder: Create a reminder with title, description, and due time
  - list_reminders: List reminders ordered by due time
  - delete_reminder: Delete a reminder by ID

Example client config:
  {
    "mcpServers": {
      "remindctl": {
        "command": "/path/to/remindctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store)

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting remindctl MCP server (stdio transport)")
	log.Printf("Storage backend: %s", appConfig.Storage)
	log.Printf("Data directory: %s", appConfig.DataDir)

	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
