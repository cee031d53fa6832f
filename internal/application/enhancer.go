package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/domain"
	"github.com/lintgrade/lintgrade/internal/domain/enhance"
)

// Enhancer augments a deterministic report with model-generated insights.
// It never fails past its boundary: a missing credential yields status
// "skipped", any call failure yields status "error" with a message, and
// in both cases the deterministic portion of the report is preserved
// unchanged.
type Enhancer struct {
	completer domain.ChatCompleter
	logger    *zap.Logger
}

// NewEnhancer wires a completion client. A nil completer means no
// credential is configured and every run is skipped.
func NewEnhancer(completer domain.ChatCompleter, logger *zap.Logger) *Enhancer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enhancer{completer: completer, logger: logger}
}

// Enabled reports whether a completion client is configured.
func (e *Enhancer) Enabled() bool { return e.completer != nil }

// Enhance attaches an AIAnalysis to the report and, on success, merges
// the parsed insights into the recommendation list under the enhanced
// ten-entry cap.
func (e *Enhancer) Enhance(ctx context.Context, code string, violations []domain.Violation, report *domain.Report, fileType domain.FileType) *domain.Report {
	if !e.Enabled() {
		report.AIAnalysis = &domain.AIAnalysis{
			Status:  domain.AIStatusSkipped,
			Message: "AI API key not configured",
		}
		return report
	}

	prompt := enhance.BuildPrompt(code, violations, report, fileType)
	content, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		e.logger.Warn("AI enhancement failed", zap.Error(err))
		report.AIAnalysis = &domain.AIAnalysis{
			Status:  domain.AIStatusError,
			Message: fmt.Sprintf("completion request failed: %v", err),
		}
		return report
	}
	if strings.TrimSpace(content) == "" {
		report.AIAnalysis = &domain.AIAnalysis{
			Status:  domain.AIStatusError,
			Message: "model returned empty content",
		}
		return report
	}

	insights := enhance.ParseSections(content)
	report.AIAnalysis = &domain.AIAnalysis{
		Status:   domain.AIStatusSuccess,
		Insights: insights,
	}
	report.Recommendations = enhance.MergeRecommendations(report.Recommendations, insights, enhance.MaxMerged)
	return report
}
