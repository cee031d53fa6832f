package cli

import (
	"github.com/spf13/cobra"

	"github.com/lintgrade/lintgrade/internal/adapters/outbound/linter"
	"github.com/lintgrade/lintgrade/internal/adapters/outbound/llm"
	"github.com/lintgrade/lintgrade/internal/application"
	"github.com/lintgrade/lintgrade/internal/domain"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lintgrade",
		Short:         "Score code quality from linter findings",
		Long:          "Lintgrade turns pylint and eslint findings into a normalized quality score with prioritized recommendations, optionally enriched by an AI review.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newAnalyzeService wires the standard set of outbound adapters. AI
// enhancement is active only when a Groq key is configured and the
// caller has not disabled it.
func newAnalyzeService(cfg domain.Config, logger *zap.Logger, ai bool) *application.AnalyzeService {
	var completer domain.ChatCompleter
	if ai && cfg.GroqAPIKey != "" {
		completer = llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)
	}
	return application.NewAnalyzeService(
		linter.Registry(cfg, logger),
		application.NewEnhancer(completer, logger),
		cfg.Weights,
		logger,
	)
}
