package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"findash/pkg/core/agent"
	"findash/pkg/core/scoring"
	"findash/pkg/core/utils"
)

// agentType keys the scoring task in config/models.yaml.
const agentType = "metric_scoring"

// Recommender is the scoring entry point the API layer calls.
type Recommender struct {
	agents        *agent.Manager
	scorer        *scoring.Scorer
	redistributor *scoring.Redistributor
	log           zerolog.Logger
	aiEnabled     bool
}

// New builds a recommender. Pass a nil agent manager (or aiEnabled=false) to
// run heuristic-only.
func New(agents *agent.Manager, aiEnabled bool, log zerolog.Logger) *Recommender {
	return &Recommender{
		agents:        agents,
		scorer:        scoring.NewScorer(),
		redistributor: scoring.NewRedistributor(),
		log:           log,
		aiEnabled:     aiEnabled,
	}
}

// WithScorer overrides the fallback scorer, used by tests to pin randomness.
func (r *Recommender) WithScorer(s *scoring.Scorer, rd *scoring.Redistributor) *Recommender {
	r.scorer = s
	r.redistributor = rd
	return r
}

// GetMetricRecommendations scores the requested metrics. The AI path is
// attempted first when enabled; every failure degrades to the heuristic
// scorer so the caller always receives a usable ranking.
func (r *Recommender) GetMetricRecommendations(ctx context.Context, req scoring.Request) *Result {
	if r.aiEnabled && r.agents != nil {
		result, err := r.scoreWithAI(ctx, req)
		if err == nil {
			return result
		}
		r.log.Warn().Err(err).Str("ticker", req.Ticker).Msg("ai scoring failed, using heuristic fallback")
	}
	return r.scoreWithHeuristic(req)
}

func (r *Recommender) scoreWithAI(ctx context.Context, req scoring.Request) (*Result, error) {
	raw, err := r.agents.ExecutePrompt(ctx, agentType, BuildPrompt(req), scoringSystemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScoringTransport, err)
	}

	resp, matched, err := parseResponse(raw, req.Metrics, r.log)
	if err != nil {
		return nil, err
	}

	matched = r.redistributor.Apply(matched)

	return &Result{
		ID:                  uuid.NewString(),
		ScoredMetrics:       matched,
		TopMetrics:          topMetrics(matched, 5),
		DashboardAnalysis:   utils.CleanMarkdown(resp.DashboardAnalysis),
		CompetitiveInsights: utils.CleanMarkdown(resp.CompetitiveInsights),
		Source:              "ai",
	}, nil
}

func (r *Recommender) scoreWithHeuristic(req scoring.Request) *Result {
	scored := r.redistributor.Apply(r.scorer.Score(req))
	return &Result{
		ID:            uuid.NewString(),
		ScoredMetrics: scored,
		TopMetrics:    topMetrics(scored, 5),
		Source:        "heuristic",
	}
}
