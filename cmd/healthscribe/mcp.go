package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gupta19esha/HealthScribeGPT/pkg/mcp"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the HealthScribe MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes the journal, goals,
habits, meals, water tracker, reports and analytics as MCP tools via STDIO.

The --db flag is optional. If not provided, a system-specific default location will be used:
- Windows: %USERPROFILE%\AppData\Roaming\healthscribe\healthscribe.db
- macOS: ~/Library/Application Support/healthscribe/healthscribe.db
- Linux: ~/.local/share/healthscribe/healthscribe.db

Example:
  healthscribe mcp
  healthscribe mcp --db journal.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, dbConn, path, err := openService()
		if err != nil {
			return err
		}
		defer dbConn.Close()

		srv := mcp.NewHealthScribeMCPServer(svc)

		// stdout carries the JSON-RPC stream.
		fmt.Fprintf(os.Stderr, "HealthScribe MCP server started. DB: %s (WAL: %t, Sync: %s)\n", path, walMode, syncMode)
		fmt.Fprintf(os.Stderr, "Available tools: %s\n", strings.Join(mcp.ToolNames, ", "))
		fmt.Fprintln(os.Stderr, "Listening for MCP JSON-RPC on STDIN/STDOUT ... (Ctrl+C to quit)")

		return srv.Start()
	},
}
