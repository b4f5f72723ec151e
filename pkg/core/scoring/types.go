// Package scoring computes importance scores (1-10) for catalog metrics
// given company and industry context, with optional user preference
// weighting, and post-processes score distributions so no single middle
// value dominates the ranking.
package scoring

import "findash/pkg/core/catalog"

// ScoredMetric is one metric's importance score. Produced fresh per scoring
// request and never persisted.
type ScoredMetric struct {
	Metric      catalog.Metric `json:"metric"`
	Label       string         `json:"label"`
	Score       int            `json:"score"`
	Explanation string         `json:"explanation,omitempty"`
}

// Preferences carry the user's optional weighting context.
type Preferences struct {
	FocusAreas    []string `json:"focus_areas,omitempty"`    // growth, value, income, stability
	TimeHorizon   string   `json:"time_horizon,omitempty"`   // short, medium, long
	RiskTolerance string   `json:"risk_tolerance,omitempty"` // low, medium, high
}

// Request is the scoring input: company context plus the metrics to score.
type Request struct {
	Ticker      string          `json:"ticker"`
	Name        string          `json:"name,omitempty"`
	Industry    string          `json:"industry"`
	Competitors []string        `json:"competitors,omitempty"`
	Metrics     []catalog.Entry `json:"metrics"`
	Preferences *Preferences    `json:"user_preferences,omitempty"`
}

func clampScore(s int) int {
	if s < 1 {
		return 1
	}
	if s > 10 {
		return 10
	}
	return s
}
