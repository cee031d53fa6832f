package linter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// pylintMessage is one entry of pylint's --output-format=json array.
type pylintMessage struct {
	Type      string `json:"type"`
	Line      int    `json:"line"`
	Message   string `json:"message"`
	MessageID string `json:"message-id"`
}

// Pylint implements domain.Linter for Python files by invoking the
// pylint binary with JSON output.
type Pylint struct {
	rcfile string
	logger *zap.Logger
}

func NewPylint(rcfile string, logger *zap.Logger) *Pylint {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pylint{rcfile: rcfile, logger: logger}
}

func (p *Pylint) Lint(ctx context.Context, filePath string) ([]domain.Violation, error) {
	args := []string{"--output-format=json"}
	if p.rcfile != "" {
		args = append(args, "--rcfile", p.rcfile)
	}
	args = append(args, filePath)

	cmd := exec.CommandContext(ctx, "pylint", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// pylint exits non-zero whenever it reports anything, so the exit
	// code only matters when there is no output to parse.
	runErr := cmd.Run()
	if stdout.Len() == 0 {
		if runErr != nil {
			return nil, fmt.Errorf("running pylint: %w (%s)", runErr, strings.TrimSpace(stderr.String()))
		}
		return []domain.Violation{}, nil
	}

	violations, err := ParsePylintOutput(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	p.logger.Debug("pylint completed",
		zap.String("file", filePath),
		zap.Int("findings", len(violations)))
	return violations, nil
}

// ParsePylintOutput converts pylint's JSON report into normalized
// violations with named severities.
func ParsePylintOutput(data []byte) ([]domain.Violation, error) {
	var messages []pylintMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parsing pylint output: %w", err)
	}

	violations := make([]domain.Violation, 0, len(messages))
	for _, m := range messages {
		violations = append(violations, domain.Violation{
			Message:  m.Message,
			Line:     m.Line,
			Severity: pylintSeverity(m.Type),
			Rule:     m.MessageID,
		})
	}
	return violations, nil
}

// pylintSeverity maps pylint message types onto the named levels.
// Convention and refactor messages are informational.
func pylintSeverity(messageType string) domain.Severity {
	switch messageType {
	case "error", "fatal":
		return domain.Named(domain.SeverityError)
	case "warning":
		return domain.Named(domain.SeverityWarning)
	default:
		return domain.Named(domain.SeverityInfo)
	}
}
