// Package suggest turns an analytics report into ranked, actionable
// recommendations.
package suggest

import (
	"time"

	"github.com/blackwell-systems/focussphere/internal/analytics"
)

// Priority levels for suggestions.
const (
	PriorityCritical = 1
	PriorityHigh     = 2
	PriorityMedium   = 3
	PriorityLow      = 4
)

// Suggestion represents an actionable recommendation.
type Suggestion struct {
	Category    string  `json:"category"`
	Priority    int     `json:"priority"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImpactScore float64 `json:"impact_score"`
}

// AnalysisContext provides all data needed by rules to generate
// recommendations.
type AnalysisContext struct {
	// Report is the refresh the suggestions are derived from.
	Report *analytics.Report

	// Now is the wall-clock time of the request; evening-only rules use it.
	Now time.Time
}

// Rule is a function that examines the analysis context and produces
// zero or more suggestions.
type Rule func(ctx *AnalysisContext) []Suggestion
