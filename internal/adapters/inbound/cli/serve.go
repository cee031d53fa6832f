package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/adapters/inbound/httpapi"
	"github.com/lintgrade/lintgrade/internal/adapters/outbound/config"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the code analysis HTTP API",
		Long:  "Serve the analysis pipeline over HTTP: file uploads on /analyze-code, JSON snippets on /analyze, health on / and Prometheus metrics on /metrics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			if err := os.MkdirAll(cfg.TempDir, 0o755); err != nil {
				return fmt.Errorf("creating temp dir: %w", err)
			}

			svc := newAnalyzeService(cfg, logger, true)
			srv := httpapi.NewServer(svc, cfg.TempDir, logger)

			if addr == "" {
				addr = cfg.ListenAddr
			}
			return srv.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to LINTGRADE_ADDR or :8000)")

	return cmd
}
