package linter

import (
	"go.uber.org/zap"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// Registry builds the file-type → linter dispatch table. JavaScript and
// React files share the eslint adapter.
func Registry(cfg domain.Config, logger *zap.Logger) map[domain.FileType]domain.Linter {
	eslint := NewESLint(cfg.ESLintConfig, logger)
	return map[domain.FileType]domain.Linter{
		domain.Python:     NewPylint(cfg.PylintRCFile, logger),
		domain.JavaScript: eslint,
		domain.React:      eslint,
	}
}
