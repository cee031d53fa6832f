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

// eslintResult is one file entry of eslint's --format json output.
type eslintResult struct {
	FilePath string          `json:"filePath"`
	Messages []eslintMessage `json:"messages"`
}

type eslintMessage struct {
	RuleID   string `json:"ruleId"`
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
}

// ESLint implements domain.Linter for JavaScript and React files by
// invoking the eslint binary with JSON output.
type ESLint struct {
	configPath string
	logger     *zap.Logger
}

func NewESLint(configPath string, logger *zap.Logger) *ESLint {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ESLint{configPath: configPath, logger: logger}
}

func (e *ESLint) Lint(ctx context.Context, filePath string) ([]domain.Violation, error) {
	args := []string{"--format", "json"}
	if e.configPath != "" {
		args = append(args, "--config", e.configPath)
	}
	args = append(args, filePath)

	cmd := exec.CommandContext(ctx, "eslint", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// eslint exits 1 when it finds problems; only a run with no JSON on
	// stdout counts as a failure.
	runErr := cmd.Run()
	if stdout.Len() == 0 {
		if runErr != nil {
			return nil, fmt.Errorf("running eslint: %w (%s)", runErr, strings.TrimSpace(stderr.String()))
		}
		return []domain.Violation{}, nil
	}

	violations, err := ParseESLintOutput(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	e.logger.Debug("eslint completed",
		zap.String("file", filePath),
		zap.Int("findings", len(violations)))
	return violations, nil
}

// ParseESLintOutput converts eslint's JSON report into normalized
// violations, keeping the ordinal severity scale.
func ParseESLintOutput(data []byte) ([]domain.Violation, error) {
	var results []eslintResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parsing eslint output: %w", err)
	}

	violations := []domain.Violation{}
	for _, result := range results {
		for _, m := range result.Messages {
			violations = append(violations, domain.Violation{
				Message:  m.Message,
				Line:     m.Line,
				Severity: domain.Ordinal(m.Severity),
				Rule:     m.RuleID,
			})
		}
	}
	return violations, nil
}
