package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/adapters/outbound/config"
	"github.com/lintgrade/lintgrade/internal/adapters/outbound/gitinfo"
	"github.com/lintgrade/lintgrade/internal/adapters/outbound/tui"
	"github.com/lintgrade/lintgrade/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput bool
		noAI       bool
		ciMode     bool
		minScore   float64
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a source file and print its quality report",
		Long:  "Run the configured linter on a Python or JavaScript file, score the findings across six quality categories, and print prioritized recommendations.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := newAnalyzeService(cfg, zap.NewNop(), !noAI)
			report, err := svc.AnalyzeFile(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			// Attach git commit hash if the file lives in a repo
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(filepath.Dir(path)); err == nil {
				report.CommitHash = hash
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}

			fileType, _ := domain.FileTypeForPath(path)
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, fileType))

			if ciMode && report.TotalScore < minScore {
				return fmt.Errorf("score %s is below minimum %s",
					trimFloat(report.TotalScore), trimFloat(minScore))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&noAI, "no-ai", false, "Skip AI enhancement even when a key is configured")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().Float64Var(&minScore, "min", 0, "Minimum total score for CI mode")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
