package insights

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"findash/pkg/core/catalog"
	"findash/pkg/core/recommend"
	"findash/pkg/core/scoring"
)

var (
	recommender *recommend.Recommender
	log         zerolog.Logger
)

func InitHandler(r *recommend.Recommender, l zerolog.Logger) {
	recommender = r
	log = l
}

type RecommendationRequest struct {
	Ticker      string               `json:"ticker"`
	Name        string               `json:"name"`
	Industry    string               `json:"industry"`
	Competitors []string             `json:"competitors"`
	Preferences *scoring.Preferences `json:"user_preferences"`
}

// HandleRecommendations scores the full metric catalog for a company and
// returns the ranked list plus the AI analysis text when available.
func HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Ticker) == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	result := recommender.GetMetricRecommendations(r.Context(), scoring.Request{
		Ticker:      strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Name:        req.Name,
		Industry:    req.Industry,
		Competitors: req.Competitors,
		Metrics:     catalog.Entries,
		Preferences: req.Preferences,
	})

	writeJSON(w, result)
}

type ImportanceRequest struct {
	ScoredMetrics []scoring.ScoredMetric `json:"scored_metrics"`
	Top           int                    `json:"top"`
}

type ImportanceResponse struct {
	Components []scoring.ComponentScore `json:"components"`
}

// HandleComponentImportance aggregates per-metric scores into dashboard
// widget rankings. With top > 0 only the n highest widgets are returned.
func HandleComponentImportance(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req ImportanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ranked := scoring.RankComponents(req.ScoredMetrics)
	if req.Top > 0 && req.Top < len(ranked) {
		ranked = ranked[:req.Top]
	}

	writeJSON(w, ImportanceResponse{Components: ranked})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("response encode failed")
	}
}
