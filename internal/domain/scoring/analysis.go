package scoring

import (
	"sort"
	"strings"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// issueTypeDelimiters end the leading "issue type" portion of a message.
const issueTypeDelimiters = ":.()"

// IssueType extracts the leading issue type from a violation message:
// everything before the first ':', '.', '(' or ')', trimmed.
func IssueType(message string) string {
	if i := strings.IndexAny(message, issueTypeDelimiters); i >= 0 {
		message = message[:i]
	}
	return strings.TrimSpace(message)
}

// MostCommonIssues returns the top n distinct issue types by frequency.
// Ties keep first-seen order.
func MostCommonIssues(violations []domain.Violation, n int) []string {
	counts := make(map[string]int)
	order := []string{}
	for _, v := range violations {
		t := IssueType(v.Message)
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// Analyze builds the per-category breakdown for the final report. Every
// category appears, including those with no violations.
func Analyze(categorized map[domain.Category][]domain.Violation) map[domain.Category]domain.Analysis {
	analysis := make(map[domain.Category]domain.Analysis, len(domain.Categories))
	for _, cat := range domain.Categories {
		violations := categorized[cat]

		breakdown := map[string]int{
			domain.SeverityError:   0,
			domain.SeverityWarning: 0,
			domain.SeverityInfo:    0,
		}
		for _, v := range violations {
			breakdown[v.Severity.Bucket()]++
		}

		analysis[cat] = domain.Analysis{
			ViolationCount:    len(violations),
			SeverityBreakdown: breakdown,
			MostCommonIssues:  MostCommonIssues(violations, 3),
		}
	}
	return analysis
}
