package enhance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintgrade/lintgrade/internal/domain"
	"github.com/lintgrade/lintgrade/internal/domain/enhance"
)

func TestBuildPrompt(t *testing.T) {
	report := &domain.Report{
		TotalScore: 92.5,
		Recommendations: []domain.Recommendation{
			{Priority: domain.PriorityHigh, Suggestion: "Use a code formatter.", Source: domain.SourceLinter},
		},
	}
	violations := []domain.Violation{
		{Message: "Line too long (105/100)", Line: 12, Severity: domain.Named("warning")},
	}

	prompt := enhance.BuildPrompt("x = 1", violations, report, domain.Python)

	assert.Contains(t, prompt, "Analyze this py code")
	assert.Contains(t, prompt, "```py\nx = 1\n```")
	assert.Contains(t, prompt, "Score: 92.5/100")
	assert.Contains(t, prompt, "- Line 12: Line too long (105/100)")
	assert.Contains(t, prompt, "- [High] Use a code formatter.")

	for _, header := range []string{
		"## Code Quality Insights",
		"## Refactoring Suggestions",
		"## Best Practices",
		"## Security Concerns",
		"## Performance Optimizations",
	} {
		assert.Contains(t, prompt, header)
	}
}

func TestBuildPrompt_EmptyInputs(t *testing.T) {
	report := &domain.Report{TotalScore: 100}

	prompt := enhance.BuildPrompt("x = 1", nil, report, domain.Python)

	assert.Contains(t, prompt, "No violations found.")
	assert.Contains(t, prompt, "No recommendations available.")
	assert.Contains(t, prompt, "Score: 100/100")
}

func TestBuildPrompt_CapsViolationsAtFive(t *testing.T) {
	report := &domain.Report{TotalScore: 50}
	violations := make([]domain.Violation, 8)
	for i := range violations {
		violations[i] = domain.Violation{Message: "Issue", Line: i + 1, Severity: domain.Named("warning")}
	}

	prompt := enhance.BuildPrompt("x = 1", violations, report, domain.JavaScript)

	assert.Contains(t, prompt, "- Line 5: Issue")
	assert.NotContains(t, prompt, "- Line 6: Issue")
}
