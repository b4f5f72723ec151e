package scoring

import (
	"math"
	"math/rand"
)

// Redistributor spreads score distributions that cluster in the middle
// band. Generative models drift toward "safe" 5-7 scores; the same pass is
// applied to heuristic output so both modes share one distribution contract:
// no score in {5,6,7} held by more than ceil(N*0.15) metrics, and the
// extreme bands occupied whenever N >= 2.
type Redistributor struct {
	rng *rand.Rand
}

// NewRedistributor builds a redistributor with its own random source.
func NewRedistributor() *Redistributor {
	return &Redistributor{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewRedistributorWithRand injects a deterministic random source for tests.
func NewRedistributorWithRand(r *rand.Rand) *Redistributor {
	return &Redistributor{rng: r}
}

// Apply enforces the spread constraint in place and returns the metrics
// re-sorted descending by score.
func (r *Redistributor) Apply(metrics []ScoredMetric) []ScoredMetric {
	n := len(metrics)
	if n == 0 {
		return metrics
	}

	cap := int(math.Ceil(float64(n) * 0.15))

	for _, crowded := range []int{5, 6, 7} {
		holders := indexesAt(metrics, crowded)
		excess := len(holders) - cap
		if excess <= 0 {
			continue
		}
		// Pick the excess holders at random and push each toward an extreme,
		// landing outside the crowded band so one move cannot re-violate it.
		r.rng.Shuffle(len(holders), func(i, j int) {
			holders[i], holders[j] = holders[j], holders[i]
		})
		for _, idx := range holders[:excess] {
			if r.rng.Intn(2) == 0 {
				metrics[idx].Score = 8 + r.rng.Intn(3) // 8..10
			} else {
				metrics[idx].Score = 1 + r.rng.Intn(4) // 1..4
			}
		}
	}

	if n >= 2 {
		r.ensureExtremes(metrics)
	}

	SortByScore(metrics)
	return metrics
}

// ensureExtremes guarantees at least one metric in the 9-10 band and one in
// the 1-2 band, promoting the current highest and demoting the current
// lowest when needed.
func (r *Redistributor) ensureExtremes(metrics []ScoredMetric) {
	hi := 0
	for i, m := range metrics {
		if m.Score > metrics[hi].Score {
			hi = i
		}
	}
	if metrics[hi].Score < 9 {
		metrics[hi].Score = 9
	}

	// The lowest slot must be a different metric than the promoted one.
	lo := -1
	for i, m := range metrics {
		if i == hi {
			continue
		}
		if lo == -1 || m.Score < metrics[lo].Score {
			lo = i
		}
	}
	if lo >= 0 && metrics[lo].Score > 2 {
		metrics[lo].Score = 2
	}
}

func indexesAt(metrics []ScoredMetric, score int) []int {
	var out []int
	for i, m := range metrics {
		if m.Score == score {
			out = append(out, i)
		}
	}
	return out
}
