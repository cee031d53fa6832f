package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintgrade/lintgrade/internal/domain"
	"github.com/lintgrade/lintgrade/internal/domain/scoring"
)

func TestIssueType(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"Invalid name 'x': does not conform", "Invalid name 'x'"},
		{"Line too long (105/100)", "Line too long"},
		{"Trailing whitespace. Remove it", "Trailing whitespace"},
		{"Missing docstring", "Missing docstring"},
		{"  padded message  ", "padded message"},
		{"", ""},
		{": leading delimiter", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, scoring.IssueType(tt.message), "message %q", tt.message)
	}
}

func TestMostCommonIssues(t *testing.T) {
	violations := []domain.Violation{
		{Message: "Line too long (105/100)"},
		{Message: "Invalid name 'x': bad"},
		{Message: "Line too long (140/100)"},
		{Message: "Missing docstring"},
		{Message: "Line too long (101/100)"},
		{Message: "Invalid name 'y': bad"},
		{Message: "Unused import os"},
	}

	top := scoring.MostCommonIssues(violations, 3)

	require.Len(t, top, 3)
	assert.Equal(t, "Line too long", top[0])
	assert.Equal(t, "Invalid name 'x'", top[1])
	// Ties keep first-seen order.
	assert.Equal(t, "Missing docstring", top[2])
}

func TestMostCommonIssues_FewerThanLimit(t *testing.T) {
	violations := []domain.Violation{{Message: "Only issue"}}
	assert.Equal(t, []string{"Only issue"}, scoring.MostCommonIssues(violations, 3))
	assert.Empty(t, scoring.MostCommonIssues(nil, 3))
}

func TestAnalyze(t *testing.T) {
	categorized := map[domain.Category][]domain.Violation{
		domain.NamingConventions: {
			{Message: "Invalid name 'x': bad", Severity: domain.Named("error")},
			{Message: "Invalid name 'y': bad", Severity: domain.Named("warning")},
			{Message: "Bad identifier casing", Severity: domain.Ordinal(0)},
		},
	}

	analysis := scoring.Analyze(categorized)

	require.Len(t, analysis, len(domain.Categories))

	naming := analysis[domain.NamingConventions]
	assert.Equal(t, 3, naming.ViolationCount)
	assert.Equal(t, map[string]int{"error": 1, "warning": 1, "info": 1}, naming.SeverityBreakdown)
	assert.Equal(t, []string{"Invalid name 'x'", "Invalid name 'y'", "Bad identifier casing"}, naming.MostCommonIssues)

	// Untouched categories still appear with a zeroed breakdown.
	docs := analysis[domain.Documentation]
	assert.Equal(t, 0, docs.ViolationCount)
	assert.Equal(t, map[string]int{"error": 0, "warning": 0, "info": 0}, docs.SeverityBreakdown)
	assert.Empty(t, docs.MostCommonIssues)
}
