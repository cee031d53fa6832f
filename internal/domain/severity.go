package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity buckets shared by every linter after normalization.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Severity is the seriousness of one linter finding. Linters disagree on
// representation: pylint emits named levels while eslint emits an ordinal
// 0/1/2 scale where 2 is most severe. Both collapse into the same three
// buckets and the same weight domain, so the rest of the pipeline never
// branches on the source representation.
type Severity struct {
	name    string
	code    int
	ordinal bool
}

// Named builds a Severity from a level name ("error", "warning", "info").
func Named(level string) Severity {
	return Severity{name: strings.ToLower(level)}
}

// Ordinal builds a Severity from a numeric linter scale (0/1/2).
func Ordinal(code int) Severity {
	return Severity{code: code, ordinal: true}
}

// Weight returns the deduction multiplier: 1.0 for errors, 0.5 for
// warnings, 0.25 for informational findings. Unrecognized levels count as
// warnings.
func (s Severity) Weight() float64 {
	if s.ordinal {
		switch s.code {
		case 2:
			return 1.0
		case 1:
			return 0.5
		case 0:
			return 0.25
		}
		return 0.5
	}
	switch s.name {
	case SeverityError:
		return 1.0
	case SeverityWarning:
		return 0.5
	case SeverityInfo:
		return 0.25
	}
	return 0.5
}

// Bucket normalizes to one of the three named levels. Ordinal 2 is an
// error, 1 a warning, anything else informational; unrecognized names are
// also counted as informational.
func (s Severity) Bucket() string {
	if s.ordinal {
		switch s.code {
		case 2:
			return SeverityError
		case 1:
			return SeverityWarning
		}
		return SeverityInfo
	}
	switch s.name {
	case SeverityError, SeverityWarning, SeverityInfo:
		return s.name
	}
	return SeverityInfo
}

func (s Severity) String() string { return s.Bucket() }

// MarshalJSON preserves the source representation: named severities
// serialize as strings, ordinal ones as numbers.
func (s Severity) MarshalJSON() ([]byte, error) {
	if s.ordinal {
		return json.Marshal(s.code)
	}
	return json.Marshal(s.name)
}

// UnmarshalJSON accepts either a level name or a numeric code.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		*s = Ordinal(code)
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("severity must be a string level or an integer code: %w", err)
	}
	*s = Named(name)
	return nil
}
