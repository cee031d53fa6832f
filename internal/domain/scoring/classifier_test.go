package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintgrade/lintgrade/internal/domain"
	"github.com/lintgrade/lintgrade/internal/domain/scoring"
)

func classify(message string) domain.Category {
	return scoring.Classify(domain.Violation{Message: message, Severity: domain.Named("warning")})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected domain.Category
	}{
		{"naming keyword", "Invalid name 'x' for variable", domain.NamingConventions},
		{"snake case keyword", "identifier should use snake_case", domain.NamingConventions},
		{"modularity keyword", "Too many branches (15/12)", domain.FunctionModularity},
		{"complexity keyword", "Function is too complex", domain.FunctionModularity},
		{"documentation keyword", "Missing module docstring", domain.Documentation},
		{"comment keyword", "Block comment should start with '# '", domain.Documentation},
		{"formatting keyword", "Unexpected indentation", domain.Formatting},
		{"line too long", "Line too long (105/100)", domain.Formatting},
		{"line length keyword", "line length exceeds 100 characters", domain.Formatting},
		{"reusability keyword", "Duplicate code detected", domain.Reusability},
		{"redundant keyword", "Redundant assignment", domain.Reusability},
		{"fallback", "Consider using enumerate", domain.BestPractices},
		{"empty message", "", domain.BestPractices},
		{"case insensitive", "INVALID NAME DETECTED", domain.NamingConventions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.message))
		})
	}
}

func TestClassify_FirstMatchingGroupWins(t *testing.T) {
	// Mentions docs and naming; naming is checked first.
	assert.Equal(t, domain.NamingConventions, classify("Missing docstring for poorly named variable"))

	// Mentions modularity and formatting; modularity is checked first.
	assert.Equal(t, domain.FunctionModularity, classify("function body has inconsistent indentation"))
}
