package domain

// Violation is one linter finding, already reduced by an adapter to the
// common shape the scoring pipeline consumes. Line and Rule are
// informational only; classification looks at Message alone.
type Violation struct {
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule,omitempty"`
}
