package scoring

import (
	"math"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// Scorecard holds the per-category running scores and the violations
// grouped by category for one analysis run. All state is local to the
// run; nothing here is shared across requests.
type Scorecard struct {
	Weights     domain.CategoryWeights
	Scores      map[domain.Category]float64
	Categorized map[domain.Category][]domain.Violation
}

// NewScorecard starts every category at its maximum, with an entry in
// Categorized for every category even before any violation arrives.
func NewScorecard(weights domain.CategoryWeights) *Scorecard {
	card := &Scorecard{
		Weights:     weights,
		Scores:      make(map[domain.Category]float64, len(domain.Categories)),
		Categorized: make(map[domain.Category][]domain.Violation, len(domain.Categories)),
	}
	for _, cat := range domain.Categories {
		card.Scores[cat] = weights.MaxScore[cat]
		card.Categorized[cat] = []domain.Violation{}
	}
	return card
}

// Apply classifies one violation and subtracts its severity-weighted
// deduction from the owning category, clamped at zero. Deductions are
// strictly subtractive, so the final scores do not depend on violation
// order.
func (card *Scorecard) Apply(v domain.Violation) {
	cat := Classify(v)
	deduction := card.Weights.BaseDeduction[cat] * v.Severity.Weight()
	card.Scores[cat] = math.Max(0, card.Scores[cat]-deduction)
	card.Categorized[cat] = append(card.Categorized[cat], v)
}

// Total sums the final category scores. With the default weights the
// result ranges over [0, 100].
func (card *Scorecard) Total() float64 {
	var total float64
	for _, cat := range domain.Categories {
		total += card.Scores[cat]
	}
	return total
}

// Score runs the full deduction pass over a violation list.
func Score(violations []domain.Violation, weights domain.CategoryWeights) *Scorecard {
	card := NewScorecard(weights)
	for _, v := range violations {
		card.Apply(v)
	}
	return card
}
