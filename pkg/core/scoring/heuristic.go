package scoring

import (
	"math/rand"
	"sort"

	"findash/pkg/core/catalog"
)

const baseScore = 5

// Scorer is the deterministic rule-based importance scorer used when the AI
// scorer is disabled or fails. Randomness (the ±1 jitter) sits behind an
// injectable source so tests can pin it down or turn it off.
type Scorer struct {
	rng    *rand.Rand
	jitter bool
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithRand injects a deterministic random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Scorer) { s.rng = r }
}

// WithoutJitter disables the ±1 random adjustment entirely.
func WithoutJitter() Option {
	return func(s *Scorer) { s.jitter = false }
}

// NewScorer builds a heuristic scorer. By default jitter is on and seeded
// from the global source.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		rng:    rand.New(rand.NewSource(rand.Int63())),
		jitter: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score produces one ScoredMetric per requested metric, without any network
// call. Adjustments apply in a fixed order (industry, company, jitter,
// preferences), each step clamped to [1,10] before the next. The result is
// sorted by score descending, ties broken by catalog display order.
func (s *Scorer) Score(req Request) []ScoredMetric {
	out := make([]ScoredMetric, 0, len(req.Metrics))
	prefKeys := preferenceKeys(req.Preferences)

	for _, entry := range req.Metrics {
		score := baseScore

		score = clampScore(score + industryDelta(req.Industry, entry.Label))
		score = clampScore(score + companyDelta(req.Ticker, entry.Label))

		if s.jitter {
			score = clampScore(score + s.rng.Intn(3) - 1)
		}

		for _, key := range prefKeys {
			if labelContainsAny(entry.Label, preferenceRules[key]) {
				score = clampScore(score + 1)
			}
		}

		sm := ScoredMetric{Metric: entry.ID, Label: entry.Label, Score: score}
		if score >= 8 {
			sm.Explanation = explanationFor(entry.Label, req.Industry)
		}
		out = append(out, sm)
	}

	SortByScore(out)
	return out
}

// SortByScore orders scored metrics descending by score, with catalog
// display order as the stable tie-break.
func SortByScore(metrics []ScoredMetric) {
	sort.SliceStable(metrics, func(i, j int) bool {
		if metrics[i].Score != metrics[j].Score {
			return metrics[i].Score > metrics[j].Score
		}
		return catalog.Position(metrics[i].Metric) < catalog.Position(metrics[j].Metric)
	})
}
