package domain

import "context"

// Linter produces normalized findings for a single source file. Adapters
// wrap external linter binaries; how the linter executes stays behind
// this port, only the shape of its output is constrained.
type Linter interface {
	Lint(ctx context.Context, filePath string) ([]Violation, error)
}

// ChatCompleter is a single-shot text completion call against a language
// model endpoint. Implementations do not retry; the caller decides what a
// failure means.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
