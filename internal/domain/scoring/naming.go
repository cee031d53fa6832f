package scoring

import (
	"strings"

	"github.com/fatih/camelcase"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// SuggestIdentifier rewrites an identifier into the naming style expected
// for the file type: snake_case for Python, camelCase for JavaScript and
// React. Used by renderers to turn a naming violation's offending
// identifier into a concrete rename hint.
func SuggestIdentifier(name string, fileType domain.FileType) string {
	if fileType == domain.Python {
		return toSnakeCase(name)
	}
	return toCamelCase(name)
}

// identifierWords splits an identifier on both underscores and CamelCase
// humps, lowercased.
func identifierWords(name string) []string {
	var words []string
	for _, part := range strings.Split(name, "_") {
		for _, word := range camelcase.Split(part) {
			if word != "" {
				words = append(words, strings.ToLower(word))
			}
		}
	}
	return words
}

func toSnakeCase(name string) string {
	return strings.Join(identifierWords(name), "_")
}

func toCamelCase(name string) string {
	words := identifierWords(name)
	for i := 1; i < len(words); i++ {
		words[i] = strings.ToUpper(words[i][:1]) + words[i][1:]
	}
	return strings.Join(words, "")
}
