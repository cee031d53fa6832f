package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lintgrade/lintgrade/internal/domain"
)

const fileName = ".lintgrade.yaml"

// weightsFile is the on-disk override format. Both maps are partial:
// unlisted categories keep their defaults.
type weightsFile struct {
	MaxScores      map[string]float64 `yaml:"max_scores"`
	BaseDeductions map[string]float64 `yaml:"base_deductions"`
}

// LoadWeights reads .lintgrade.yaml from dir and overlays it on the
// default scoring policy. A missing file yields the defaults. Unknown
// category names and override sets whose maxima no longer sum to 100 are
// rejected, catching typos before they skew every score.
func LoadWeights(dir string) (domain.CategoryWeights, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultWeights(), nil
		}
		return domain.CategoryWeights{}, err
	}

	var f weightsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.CategoryWeights{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	weights := domain.DefaultWeights()
	for name, v := range f.MaxScores {
		cat := domain.Category(name)
		if !cat.Valid() {
			return domain.CategoryWeights{}, fmt.Errorf("invalid %s: unknown category %q in max_scores", fileName, name)
		}
		weights.MaxScore[cat] = v
	}
	for name, v := range f.BaseDeductions {
		cat := domain.Category(name)
		if !cat.Valid() {
			return domain.CategoryWeights{}, fmt.Errorf("invalid %s: unknown category %q in base_deductions", fileName, name)
		}
		weights.BaseDeduction[cat] = v
	}

	if err := weights.Validate(); err != nil {
		return domain.CategoryWeights{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return weights, nil
}
