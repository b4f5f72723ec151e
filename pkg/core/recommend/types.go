// Package recommend produces the metric importance ranking shown in the
// dashboard's insights panel. It delegates scoring to a generative-AI
// provider when one is configured and falls back to the deterministic
// heuristic scorer on any transport, parse, or matching failure. Both paths
// share the same redistribution post-filter so score distributions look the
// same regardless of source.
package recommend

import (
	"errors"

	"findash/pkg/core/catalog"
	"findash/pkg/core/scoring"
)

// Result is the full recommendation payload. Ephemeral: held in UI state
// only, never persisted.
type Result struct {
	ID                  string                 `json:"id"`
	ScoredMetrics       []scoring.ScoredMetric `json:"scored_metrics"`
	TopMetrics          []catalog.Metric       `json:"top_metrics"`
	DashboardAnalysis   string                 `json:"dashboard_analysis,omitempty"`
	CompetitiveInsights string                 `json:"competitive_insights,omitempty"`
	Source              string                 `json:"source"` // "ai" or "heuristic"
}

// Error taxonomy for the AI scoring path. All of these are recovered locally
// by falling back to the heuristic scorer; none surface as fatal.
var (
	ErrScoringTransport = errors.New("ai scorer transport failure")
	ErrScoringParse     = errors.New("ai scorer returned malformed response")
	ErrMetricMatch      = errors.New("ai scorer returned no matchable metrics")
)

// topMetrics takes the first n of an already score-sorted slice.
func topMetrics(scored []scoring.ScoredMetric, n int) []catalog.Metric {
	if n > len(scored) {
		n = len(scored)
	}
	out := make([]catalog.Metric, 0, n)
	for _, s := range scored[:n] {
		out = append(out, s.Metric)
	}
	return out
}
