package scoring

import (
	"strings"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// rule pairs a keyword group with the category it selects. Rules are
// evaluated in order and the first match wins, so a message touching both
// naming and documentation lands in naming_conventions.
type rule struct {
	keywords []string
	category domain.Category
}

var rules = []rule{
	{[]string{"name", "naming", "identifier", "camelcase", "snake_case"}, domain.NamingConventions},
	{[]string{"function", "method", "too many", "complex", "length"}, domain.FunctionModularity},
	{[]string{"doc", "comment", "documentation", "missing description"}, domain.Documentation},
	{[]string{"indent", "whitespace", "line length", "too long", "spacing"}, domain.Formatting},
	{[]string{"duplicate", "similar", "reuse", "redundant"}, domain.Reusability},
}

// Classify assigns a violation to a category based on its message text,
// case-insensitively. Messages matching no keyword group fall back to
// best_practices, so no violation is ever dropped.
func Classify(v domain.Violation) domain.Category {
	message := strings.ToLower(v.Message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(message, keyword) {
				return r.category
			}
		}
	}
	return domain.BestPractices
}
