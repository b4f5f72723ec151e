package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"findash/pkg/core/catalog"
	"findash/pkg/core/scoring"
	"findash/pkg/core/utils"
)

type aiScoredMetric struct {
	Metric      string `json:"metric"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation,omitempty"`
}

type aiResponse struct {
	ScoredMetrics       []aiScoredMetric `json:"scoredMetrics"`
	DashboardAnalysis   string           `json:"dashboardAnalysis,omitempty"`
	CompetitiveInsights string           `json:"competitiveInsights,omitempty"`
}

// parseResponse turns raw model output into scored metrics. The contract:
// strip a wrapping code fence, parse (repairing common LLM JSON defects if
// the first parse fails), and require a scoredMetrics array. Returned labels
// are matched back to the requested catalog entries; an unmatched label is
// dropped with a warning rather than silently substituted, and a response
// with zero matchable labels is a matching failure.
func parseResponse(raw string, requested []catalog.Entry, log zerolog.Logger) (*aiResponse, []scoring.ScoredMetric, error) {
	payload := utils.StripCodeFence(raw)

	var resp aiResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		repaired, repairErr := utils.RepairJSON(payload)
		if repairErr != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrScoringParse, err)
		}
		if err := json.Unmarshal([]byte(repaired), &resp); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrScoringParse, err)
		}
	}
	if resp.ScoredMetrics == nil {
		return nil, nil, fmt.Errorf("%w: missing scoredMetrics array", ErrScoringParse)
	}

	byLabel := make(map[string]catalog.Entry, len(requested))
	for _, e := range requested {
		byLabel[normalizeLabel(e.Label)] = e
	}

	var matched []scoring.ScoredMetric
	for _, sm := range resp.ScoredMetrics {
		entry, ok := byLabel[normalizeLabel(sm.Metric)]
		if !ok {
			log.Warn().Str("label", sm.Metric).Msg("ai returned unknown metric label, dropping")
			continue
		}
		matched = append(matched, scoring.ScoredMetric{
			Metric:      entry.ID,
			Label:       entry.Label,
			Score:       clamp(sm.Score),
			Explanation: sm.Explanation,
		})
	}
	if len(matched) == 0 {
		return nil, nil, fmt.Errorf("%w: %d labels, none matched", ErrMetricMatch, len(resp.ScoredMetrics))
	}

	return &resp, matched, nil
}

// normalizeLabel folds case and punctuation so "P/E to Growth (PEG) Ratio"
// matches "p/e to growth peg ratio" and similar near-misses.
func normalizeLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func clamp(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
