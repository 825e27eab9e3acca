package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	healthscribe "github.com/gupta19esha/HealthScribeGPT/pkg"
	"github.com/gupta19esha/HealthScribeGPT/pkg/journal"
)

// HealthScribeMCPServer exposes a journal service as MCP tools over stdio.
type HealthScribeMCPServer struct {
	mcpServer *server.MCPServer
	journal   *journal.Service
}

// NewHealthScribeMCPServer creates the MCP server and registers every tool.
func NewHealthScribeMCPServer(svc *journal.Service) *HealthScribeMCPServer {
	s := server.NewMCPServer(
		"HealthScribe MCP Server",
		healthscribe.Version,
		server.WithResourceCapabilities(true, true),
		server.WithLogging(),
		server.WithRecovery(),
	)
	RegisterAllTools(s, svc)

	return &HealthScribeMCPServer{
		mcpServer: s,
		journal:   svc,
	}
}

// Start runs the stdio event loop.
func (s *HealthScribeMCPServer) Start() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPRawServer exposes the raw mcp-go server (useful for additional configuration).
func (s *HealthScribeMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}
