package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lintgrade/lintgrade/internal/application"
	"github.com/lintgrade/lintgrade/internal/domain"
)

// registerTools registers all lintgrade MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.AnalyzeService) {
	// 1. lintgrade_analyze_file
	s.AddTool(
		mcplib.NewTool("lintgrade_analyze_file",
			mcplib.WithDescription("Analyze a source file on disk and return its quality report as JSON"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file to analyze (.py, .js or .jsx)"),
			),
		),
		handleAnalyzeFile(svc),
	)

	// 2. lintgrade_analyze_code
	s.AddTool(
		mcplib.NewTool("lintgrade_analyze_code",
			mcplib.WithDescription("Analyze an in-memory code snippet and return its quality report as JSON"),
			mcplib.WithString("code",
				mcplib.Required(),
				mcplib.Description("Source code to analyze"),
			),
			mcplib.WithString("file_type",
				mcplib.Required(),
				mcplib.Description("File type of the code: py, js or jsx"),
			),
		),
		handleAnalyzeCode(svc),
	)
}

func handleAnalyzeFile(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.AnalyzeFile(ctx, file)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleAnalyzeCode(svc *application.AnalyzeService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		code, err := request.RequireString("code")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		fileType, err := request.RequireString("file_type")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.AnalyzeSource(ctx, code, domain.FileType(fileType))
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
