package domain

import "fmt"

// Category is one of the six fixed code-quality dimensions.
type Category string

const (
	NamingConventions  Category = "naming_conventions"
	FunctionModularity Category = "function_modularity"
	Documentation      Category = "documentation"
	Formatting         Category = "formatting"
	Reusability        Category = "reusability"
	BestPractices      Category = "best_practices"
)

// Categories lists every category in report order.
var Categories = []Category{
	NamingConventions,
	FunctionModularity,
	Documentation,
	Formatting,
	Reusability,
	BestPractices,
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryWeights holds the per-category point budgets and deduction
// units. Maxima sum to 100 so the total score reads as a percentage.
type CategoryWeights struct {
	MaxScore      map[Category]float64
	BaseDeduction map[Category]float64
}

// DefaultWeights returns the standard scoring policy.
func DefaultWeights() CategoryWeights {
	return CategoryWeights{
		MaxScore: map[Category]float64{
			NamingConventions:  10,
			FunctionModularity: 20,
			Documentation:      20,
			Formatting:         15,
			Reusability:        15,
			BestPractices:      20,
		},
		BaseDeduction: map[Category]float64{
			NamingConventions:  2,
			FunctionModularity: 4,
			Documentation:      3,
			Formatting:         2,
			Reusability:        3,
			BestPractices:      3,
		},
	}
}

// Validate checks that every category has a budget and a positive
// deduction unit, and that the budgets sum to 100.
func (w CategoryWeights) Validate() error {
	var sum float64
	for _, c := range Categories {
		m, ok := w.MaxScore[c]
		if !ok {
			return fmt.Errorf("missing max score for category %q", c)
		}
		if m < 0 {
			return fmt.Errorf("max score for category %q must not be negative", c)
		}
		sum += m

		d, ok := w.BaseDeduction[c]
		if !ok {
			return fmt.Errorf("missing base deduction for category %q", c)
		}
		if d <= 0 {
			return fmt.Errorf("base deduction for category %q must be positive", c)
		}
	}
	if sum != 100 {
		return fmt.Errorf("category max scores must sum to 100, got %g", sum)
	}
	return nil
}
