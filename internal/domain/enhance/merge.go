package enhance

import (
	"sort"
	"strings"

	"github.com/lintgrade/lintgrade/internal/domain"
)

// MaxMerged caps the combined recommendation list once AI enhancement has
// run. It replaces the deterministic five-entry cap, it does not add to
// it.
const MaxMerged = 10

// maxPerSection limits how many entries each insight section contributes.
const maxPerSection = 2

// MergeRecommendations appends up to two entries per insight section to
// the base list, tagged as AI-sourced with Medium priority, then
// stable-sorts the combined list by priority and truncates it at limit.
// Pure function; the base slice is never mutated.
func MergeRecommendations(base []domain.Recommendation, insights map[string][]string, limit int) []domain.Recommendation {
	merged := make([]domain.Recommendation, 0, len(base)+len(SectionKeys)*maxPerSection)
	merged = append(merged, base...)

	for _, key := range SectionKeys {
		items := insights[key]
		if len(items) > maxPerSection {
			items = items[:maxPerSection]
		}
		for _, item := range items {
			merged = append(merged, domain.Recommendation{
				Category:   SectionTitle(key),
				Priority:   domain.PriorityMedium,
				Suggestion: item,
				Source:     domain.SourceAI,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return domain.PriorityRank(merged[i].Priority) > domain.PriorityRank(merged[j].Priority)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// SectionTitle humanizes an insight key: "code_quality_insights" becomes
// "Code Quality Insights".
func SectionTitle(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
