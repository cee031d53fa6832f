package domain

// Recommendation priorities, highest first.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// PriorityRank orders priorities for merge sorting. Unknown priorities
// rank below Low.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Recommendation sources.
const (
	SourceLinter = "linter"
	SourceAI     = "AI"
)

// Recommendation is one prioritized, human-readable suggestion. Order
// within a report is significant and part of the output contract.
type Recommendation struct {
	Category         string `json:"category"`
	Priority         string `json:"priority"`
	Suggestion       string `json:"suggestion"`
	ExampleViolation string `json:"example_violation,omitempty"`
	Source           string `json:"source"`
}

// Analysis is the per-category breakdown consumed by the final report.
type Analysis struct {
	ViolationCount    int            `json:"violation_count"`
	SeverityBreakdown map[string]int `json:"severity_breakdown"`
	MostCommonIssues  []string       `json:"most_common_issues"`
}

// AI enhancement outcomes.
const (
	AIStatusSkipped = "skipped"
	AIStatusSuccess = "success"
	AIStatusError   = "error"
)

// AIAnalysis records the outcome of the optional model review. Insights
// holds the parsed response sections keyed by section name.
type AIAnalysis struct {
	Status   string              `json:"status"`
	Message  string              `json:"message,omitempty"`
	Insights map[string][]string `json:"insights,omitempty"`
}

// Report is the final artifact of one analysis run. It is built bottom-up
// once per request and never mutated after being returned.
type Report struct {
	TotalScore       float64               `json:"total_score"`
	CategoryScores   map[Category]float64  `json:"category_scores"`
	DetailedAnalysis map[Category]Analysis `json:"detailed_analysis"`
	Recommendations  []Recommendation      `json:"recommendations"`
	AIAnalysis       *AIAnalysis           `json:"ai_analysis,omitempty"`
	CommitHash       string                `json:"commit_hash,omitempty"`
}

func (r *Report) Grade() string { return GradeFor(r.TotalScore) }

func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
