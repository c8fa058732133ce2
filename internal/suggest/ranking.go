package suggest

import "sort"

// RankSuggestions sorts suggestions by ImpactScore in descending order,
// breaking ties by priority then title.
func RankSuggestions(suggestions []Suggestion) []Suggestion {
	sorted := make([]Suggestion, len(suggestions))
	copy(sorted, suggestions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.ImpactScore != b.ImpactScore {
			return a.ImpactScore > b.ImpactScore
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Title < b.Title
	})
	return sorted
}

// ComputeImpact calculates an impact score for a suggestion.
// Formula: (affectedItems * urgency * minutesSaved) / effort
//
// Parameters:
//   - affectedItems: number of records the issue touches
//   - urgency: how pressing the issue is (0.0-1.0)
//   - minutesSaved: estimated minutes saved or protected by acting
//   - effort: estimated minutes of effort to act on the suggestion
//
// Returns 0 if effort is zero to avoid division by zero.
func ComputeImpact(affectedItems int, urgency float64, minutesSaved float64, effort float64) float64 {
	if effort <= 0 {
		return 0
	}
	return (float64(affectedItems) * urgency * minutesSaved) / effort
}
