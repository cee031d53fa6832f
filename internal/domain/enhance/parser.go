package enhance

import "strings"

// sectionPrefixes map recognized markdown headers to insight keys.
// Matching is by prefix, so decorated headers ("## Security Concerns ⚠")
// still land in the right section.
var sectionPrefixes = []struct {
	prefix string
	key    string
}{
	{"## Code Quality", "code_quality_insights"},
	{"## Refactoring", "refactoring_suggestions"},
	{"## Best Practices", "best_practices"},
	{"## Security", "security_concerns"},
	{"## Performance", "performance_optimizations"},
}

// SectionKeys lists the insight keys in canonical order.
var SectionKeys = []string{
	"code_quality_insights",
	"refactoring_suggestions",
	"best_practices",
	"security_concerns",
	"performance_optimizations",
}

// ParseSections splits a model response into per-section paragraph lists.
// It is a line-oriented state machine: a recognized header switches the
// active section, a blank line after accumulated content flushes one
// paragraph-sized entry, and trailing content is flushed at end of input.
// Lines before the first recognized header are discarded. A response
// missing every header parses to empty lists, never an error.
func ParseSections(content string) map[string][]string {
	sections := make(map[string][]string, len(SectionKeys))
	for _, key := range SectionKeys {
		sections[key] = []string{}
	}

	var current string
	var buf []string

	flush := func() {
		if current == "" || len(buf) == 0 {
			return
		}
		if entry := strings.TrimSpace(strings.Join(buf, "\n")); entry != "" {
			sections[current] = append(sections[current], entry)
		}
		buf = nil
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimRight(raw, " \t")
		switch {
		case headerKey(line) != "":
			current = headerKey(line)
			buf = nil
		case current != "" && line != "":
			buf = append(buf, line)
		case current != "" && line == "" && len(buf) > 0:
			flush()
		}
	}
	flush()

	return sections
}

// headerKey returns the insight key for a recognized header line, or ""
// when the line is not a section header.
func headerKey(line string) string {
	for _, s := range sectionPrefixes {
		if strings.HasPrefix(line, s.prefix) {
			return s.key
		}
	}
	return ""
}
