package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// Load reads configuration from the environment, with optional .env
// support for local development, and overlays category weight overrides
// from .lintgrade.yaml in the working directory.
func Load() (domain.Config, error) {
	// Best effort: a missing .env is normal, real env vars always win.
	_ = godotenv.Load()

	cfg := domain.Config{
		GroqAPIKey:   os.Getenv("GROQ_API_KEY"),
		GroqModel:    getenvDefault("GROQ_MODEL", "qwen-qwq-32b"),
		ListenAddr:   getenvDefault("LINTGRADE_ADDR", ":8000"),
		TempDir:      getenvDefault("LINTGRADE_TEMP_DIR", os.TempDir()),
		PylintRCFile: os.Getenv("PYLINT_RCFILE"),
		ESLintConfig: os.Getenv("ESLINT_CONFIG"),
	}

	weights, err := LoadWeights(".")
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading weights: %w", err)
	}
	cfg.Weights = weights

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
