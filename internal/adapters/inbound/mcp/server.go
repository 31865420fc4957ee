package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewUnitcheckMCPServer creates a new MCP server with all unitcheck tools
// registered. With offline set, unit resolution uses the built-in fallback
// table only.
func NewUnitcheckMCPServer(offline bool) *server.MCPServer {
	s := server.NewMCPServer(
		"unitcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, offline)

	return s
}
