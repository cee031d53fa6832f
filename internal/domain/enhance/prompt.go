package enhance

import (
	"fmt"
	"strings"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// promptViolationLimit caps how many findings are embedded in the prompt.
const promptViolationLimit = 5

// BuildPrompt assembles the review prompt from the code under analysis,
// the linter findings and the deterministic report. Pure function; the
// adapter owns the network call. The model is instructed to answer with
// the five section headers the parser recognizes.
func BuildPrompt(code string, violations []domain.Violation, report *domain.Report, fileType domain.FileType) string {
	return fmt.Sprintf(`Analyze this %s code and provide insights. Format your response in markdown with appropriate headings and code blocks.

Code:
%s%s
%s
%s

Current Analysis:
- Score: %g/100
- Key Issues:
%s

Current Recommendations:
%s

Please provide the following sections, using markdown formatting:

## Code Quality Insights
(List additional code quality insights not covered by the linter)

## Refactoring Suggestions
(Provide specific refactoring suggestions with code examples in markdown code blocks)

## Best Practices
(List relevant best practices for this code)

## Security Concerns
(List potential security issues)

## Performance Optimizations
(List performance optimization opportunities)

Focus on practical, actionable improvements that would make the code more maintainable, efficient, and secure.
Use markdown code blocks for any code examples.`,
		fileType, "```", fileType, code, "```",
		report.TotalScore,
		formatViolations(violations),
		formatRecommendations(report.Recommendations),
	)
}

func formatViolations(violations []domain.Violation) string {
	if len(violations) == 0 {
		return "No violations found."
	}
	if len(violations) > promptViolationLimit {
		violations = violations[:promptViolationLimit]
	}
	lines := make([]string, 0, len(violations))
	for _, v := range violations {
		lines = append(lines, fmt.Sprintf("- Line %d: %s", v.Line, v.Message))
	}
	return strings.Join(lines, "\n")
}

func formatRecommendations(recommendations []domain.Recommendation) string {
	if len(recommendations) == 0 {
		return "No recommendations available."
	}
	lines := make([]string, 0, len(recommendations))
	for _, r := range recommendations {
		lines = append(lines, fmt.Sprintf("- [%s] %s", r.Priority, r.Suggestion))
	}
	return strings.Join(lines, "\n")
}
