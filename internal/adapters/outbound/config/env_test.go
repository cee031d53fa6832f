package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintgrade/lintgrade/internal/adapters/outbound/config"
	"github.com/lintgrade/lintgrade/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("LINTGRADE_ADDR", "")
	t.Setenv("LINTGRADE_TEMP_DIR", "")
	t.Setenv("PYLINT_RCFILE", "")
	t.Setenv("ESLINT_CONFIG", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.GroqAPIKey)
	assert.Equal(t, "qwen-qwq-32b", cfg.GroqModel)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.NotEmpty(t, cfg.TempDir)
	assert.Equal(t, domain.DefaultWeights(), cfg.Weights)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("LINTGRADE_ADDR", ":9000")
	t.Setenv("LINTGRADE_TEMP_DIR", "/tmp/lintgrade-test")
	t.Setenv("PYLINT_RCFILE", "/etc/pylintrc")
	t.Setenv("ESLINT_CONFIG", "/etc/eslintrc.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "gsk_test", cfg.GroqAPIKey)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModel)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/tmp/lintgrade-test", cfg.TempDir)
	assert.Equal(t, "/etc/pylintrc", cfg.PylintRCFile)
	assert.Equal(t, "/etc/eslintrc.json", cfg.ESLintConfig)
}
