package application

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/domain"
	"github.com/lintgrade/lintgrade/internal/domain/scoring"
)

// AnalyzeService orchestrates the analysis pipeline:
// lint → classify/score → analyze → recommend → (optional) AI enhancement.
// Every request is processed synchronously with run-local state, so a
// single service instance is safe for concurrent use.
type AnalyzeService struct {
	linters  map[domain.FileType]domain.Linter
	enhancer *Enhancer
	weights  domain.CategoryWeights
	logger   *zap.Logger
}

func NewAnalyzeService(
	linters map[domain.FileType]domain.Linter,
	enhancer *Enhancer,
	weights domain.CategoryWeights,
	logger *zap.Logger,
) *AnalyzeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if enhancer == nil {
		enhancer = NewEnhancer(nil, logger)
	}
	return &AnalyzeService{
		linters:  linters,
		enhancer: enhancer,
		weights:  weights,
		logger:   logger,
	}
}

// AIEnabled reports whether AI enhancement will be attempted.
func (s *AnalyzeService) AIEnabled() bool { return s.enhancer.Enabled() }

// AnalyzeFile runs the full pipeline against a source file on disk. The
// file type is dispatched from the extension; unsupported extensions are
// rejected before any work happens.
func (s *AnalyzeService) AnalyzeFile(ctx context.Context, path string) (*domain.Report, error) {
	fileType, err := domain.FileTypeForPath(path)
	if err != nil {
		return nil, err
	}

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	violations := s.lint(ctx, fileType, path)
	report := s.buildReport(violations)

	return s.enhancer.Enhance(ctx, string(code), violations, report, fileType), nil
}

// AnalyzeSource analyzes in-memory code by staging it in a temp file for
// the linter binary. The temp file is removed before returning.
func (s *AnalyzeService) AnalyzeSource(ctx context.Context, code string, fileType domain.FileType) (*domain.Report, error) {
	if !fileType.Valid() {
		return nil, fmt.Errorf("unsupported file type %q (allowed: py, js, jsx)", fileType)
	}

	tmp, err := os.CreateTemp("", "lintgrade-*"+fileType.Ext())
	if err != nil {
		return nil, fmt.Errorf("staging source: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(code); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("staging source: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("staging source: %w", err)
	}

	violations := s.lint(ctx, fileType, tmp.Name())
	report := s.buildReport(violations)

	return s.enhancer.Enhance(ctx, code, violations, report, fileType), nil
}

// lint runs the registered linter for the file type. Adapter failures
// degrade to an empty finding list so scoring still produces a (maximal)
// report instead of failing the request.
func (s *AnalyzeService) lint(ctx context.Context, fileType domain.FileType, path string) []domain.Violation {
	linter, ok := s.linters[fileType]
	if !ok {
		s.logger.Warn("no linter registered for file type",
			zap.String("file_type", string(fileType)))
		return nil
	}

	violations, err := linter.Lint(ctx, path)
	if err != nil {
		s.logger.Warn("linter failed, continuing with no findings",
			zap.String("file_type", string(fileType)),
			zap.Error(err))
		return nil
	}
	return violations
}

func (s *AnalyzeService) buildReport(violations []domain.Violation) *domain.Report {
	card := scoring.Score(violations, s.weights)
	return &domain.Report{
		TotalScore:       card.Total(),
		CategoryScores:   card.Scores,
		DetailedAnalysis: scoring.Analyze(card.Categorized),
		Recommendations:  scoring.Recommend(card.Categorized),
	}
}
