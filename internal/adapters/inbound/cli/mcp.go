package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpadapter "github.com/lintgrade/lintgrade/internal/adapters/inbound/mcp"
	"github.com/lintgrade/lintgrade/internal/adapters/outbound/config"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the lintgrade MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start lintgrade MCP server (stdio)",
		Long:  "Start the lintgrade MCP server using stdio transport. This lets AI coding assistants request quality reports for files and snippets.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := newAnalyzeService(cfg, zap.NewNop(), true)
			s := mcpadapter.NewLintgradeMCPServer(svc)
			return server.ServeStdio(s)
		},
	}
}
