package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// maxRecommendations caps the deterministic recommendation list. AI
// enhancement replaces this cap with its own larger one.
const maxRecommendations = 5

// suggestions are the fixed per-category remediation templates.
var suggestions = map[domain.Category]string{
	domain.NamingConventions:  "Consider following consistent naming conventions. Use snake_case for Python and camelCase for JavaScript.",
	domain.FunctionModularity: "Break down large functions into smaller, more manageable pieces. Aim for functions with a single responsibility.",
	domain.Documentation:      "Add descriptive docstrings and comments to explain complex logic and function purposes.",
	domain.Formatting:         "Use consistent indentation and line lengths. Consider using a code formatter.",
	domain.Reusability:        "Extract repeated code into reusable functions or components.",
	domain.BestPractices:      "Follow language-specific best practices and patterns.",
}

// PriorityFor maps a category's violation count to a priority level.
// Zero-violation categories never reach the output, but the policy is
// total so it stays testable.
func PriorityFor(count int) string {
	switch {
	case count >= 3:
		return domain.PriorityHigh
	case count >= 1:
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

// Recommend ranks categories by violation count, breaking ties on the sum
// of severity weights, and emits up to five prioritized suggestions.
// Categories without violations are skipped.
func Recommend(categorized map[domain.Category][]domain.Violation) []domain.Recommendation {
	type ranked struct {
		category   domain.Category
		violations []domain.Violation
		weight     float64
	}

	entries := make([]ranked, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		violations := categorized[cat]
		var weight float64
		for _, v := range violations {
			weight += v.Severity.Weight()
		}
		entries = append(entries, ranked{category: cat, violations: violations, weight: weight})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if len(entries[i].violations) != len(entries[j].violations) {
			return len(entries[i].violations) > len(entries[j].violations)
		}
		return entries[i].weight > entries[j].weight
	})

	recommendations := []domain.Recommendation{}
	for _, e := range entries {
		if len(e.violations) == 0 {
			continue
		}
		recommendations = append(recommendations, domain.Recommendation{
			Category:         string(e.category),
			Priority:         PriorityFor(len(e.violations)),
			Suggestion:       suggestion(e.category, e.violations),
			ExampleViolation: e.violations[0].Message,
			Source:           domain.SourceLinter,
		})
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// suggestion appends the category's most frequent issue types to its
// template.
func suggestion(cat domain.Category, violations []domain.Violation) string {
	base := suggestions[cat]
	if common := MostCommonIssues(violations, 3); len(common) > 0 {
		base += fmt.Sprintf(" Focus on fixing: %s.", strings.Join(common, ", "))
	}
	return base
}
