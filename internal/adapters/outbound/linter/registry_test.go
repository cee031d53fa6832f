package linter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintgrade/lintgrade/internal/adapters/outbound/linter"
	"github.com/lintgrade/lintgrade/internal/domain"
)

func TestRegistry_CoversAllFileTypes(t *testing.T) {
	linters := linter.Registry(domain.Config{}, nil)

	require.Len(t, linters, len(domain.FileTypes))
	for _, ft := range domain.FileTypes {
		assert.Contains(t, linters, ft)
	}
}

func TestRegistry_JSAndJSXShareESLint(t *testing.T) {
	linters := linter.Registry(domain.Config{}, nil)
	assert.Same(t, linters[domain.JavaScript], linters[domain.React])
}
