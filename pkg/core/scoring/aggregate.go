package scoring

import (
	"sort"

	"findash/pkg/core/catalog"
)

// ComponentScore is one widget's aggregated importance.
type ComponentScore struct {
	Component  catalog.Component `json:"component"`
	Importance float64           `json:"importance"`
}

// CalculateOverallImportance averages the scores of the given metrics.
// Metrics without a score, and an empty metric list, count as the neutral 5.
func CalculateOverallImportance(metricIDs []catalog.Metric, scored []ScoredMetric) float64 {
	if len(metricIDs) == 0 {
		return 5
	}
	byMetric := make(map[catalog.Metric]int, len(scored))
	for _, s := range scored {
		byMetric[s.Metric] = s.Score
	}
	total := 0.0
	for _, id := range metricIDs {
		if s, ok := byMetric[id]; ok {
			total += float64(s)
		} else {
			total += 5
		}
	}
	return total / float64(len(metricIDs))
}

// RankComponents scores every dashboard widget against the scored metrics
// and returns them sorted by importance descending. Equal importance keeps
// the widgets' display order (stable sort).
func RankComponents(scored []ScoredMetric) []ComponentScore {
	out := make([]ComponentScore, 0, len(catalog.Components))
	for _, c := range catalog.Components {
		out = append(out, ComponentScore{
			Component:  c,
			Importance: CalculateOverallImportance(c.Metrics, scored),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out
}

// TopComponents returns the n highest-ranked widgets.
func TopComponents(scored []ScoredMetric, n int) []ComponentScore {
	ranked := RankComponents(scored)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
