package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/lintgrade/lintgrade/internal/application"
)

// NewLintgradeMCPServer creates an MCP server exposing the analysis
// pipeline as tools, so AI coding assistants can request quality reports
// for files or in-memory snippets.
func NewLintgradeMCPServer(svc *application.AnalyzeService) *server.MCPServer {
	s := server.NewMCPServer(
		"lintgrade",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, svc)

	return s
}
