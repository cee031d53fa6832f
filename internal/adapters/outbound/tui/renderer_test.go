package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintgrade/lintgrade/internal/adapters/outbound/tui"
	"github.com/lintgrade/lintgrade/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		TotalScore: 89.5,
		CategoryScores: map[domain.Category]float64{
			domain.NamingConventions:  8,
			domain.FunctionModularity: 20,
			domain.Documentation:      17,
			domain.Formatting:         14.5,
			domain.Reusability:        15,
			domain.BestPractices:      15,
		},
		DetailedAnalysis: map[domain.Category]domain.Analysis{
			domain.NamingConventions: {ViolationCount: 1},
			domain.Documentation:     {ViolationCount: 1},
			domain.Formatting:        {ViolationCount: 1},
			domain.BestPractices:     {ViolationCount: 2},
		},
		Recommendations: []domain.Recommendation{
			{
				Category:         string(domain.NamingConventions),
				Priority:         domain.PriorityHigh,
				Suggestion:       "Consider following consistent naming conventions.",
				ExampleViolation: "Invalid name 'myVar' for variable",
				Source:           domain.SourceLinter,
			},
			{
				Category:   "Security Concerns",
				Priority:   domain.PriorityMedium,
				Suggestion: "Validate the upload path.",
				Source:     domain.SourceAI,
			},
		},
	}
}

func TestRenderReport_ContainsScoreAndGrade(t *testing.T) {
	output := tui.RenderReport(sampleReport(), domain.Python)
	assert.Contains(t, output, "89.5")
	assert.Contains(t, output, "100")
	assert.Contains(t, output, "A")
}

func TestRenderReport_ContainsCategoryNames(t *testing.T) {
	output := tui.RenderReport(sampleReport(), domain.Python)
	assert.Contains(t, output, "naming_conventions")
	assert.Contains(t, output, "best_practices")
	assert.Contains(t, output, "2 violations")
}

func TestRenderReport_ContainsRecommendations(t *testing.T) {
	output := tui.RenderReport(sampleReport(), domain.Python)
	assert.Contains(t, output, "HIGH")
	assert.Contains(t, output, "MEDIUM")
	assert.Contains(t, output, "AI")
	assert.Contains(t, output, "Validate the upload path.")
	assert.Contains(t, output, "e.g. Invalid name 'myVar' for variable")
}

func TestRenderReport_NamingHint(t *testing.T) {
	output := tui.RenderReport(sampleReport(), domain.Python)
	assert.Contains(t, output, "rename 'myVar' to 'my_var'")
}

func TestRenderReport_CleanReport(t *testing.T) {
	report := &domain.Report{
		TotalScore:       100,
		CategoryScores:   domain.DefaultWeights().MaxScore,
		DetailedAnalysis: map[domain.Category]domain.Analysis{},
	}

	output := tui.RenderReport(report, domain.JavaScript)
	assert.Contains(t, output, "No issues found.")
	assert.Contains(t, output, "A+")
}

func TestRenderReport_AIStatuses(t *testing.T) {
	report := sampleReport()

	report.AIAnalysis = &domain.AIAnalysis{Status: domain.AIStatusSkipped, Message: "AI API key not configured"}
	assert.Contains(t, tui.RenderReport(report, domain.Python), "skipped")

	report.AIAnalysis = &domain.AIAnalysis{Status: domain.AIStatusError, Message: "rate limited"}
	assert.Contains(t, tui.RenderReport(report, domain.Python), "rate limited")

	report.AIAnalysis = &domain.AIAnalysis{Status: domain.AIStatusSuccess}
	assert.Contains(t, tui.RenderReport(report, domain.Python), "AI Review")
}
