// Package cachectl exposes the TTL cache's stats and clear operations for
// the dashboard's debug panel.
package cachectl

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"findash/pkg/cache"
)

var (
	store cache.Store
	log   zerolog.Logger
)

func InitHandler(s cache.Store, l zerolog.Logger) {
	store = s
	log = l
}

// HandleStats answers GET /api/cache/stats.
func HandleStats(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	stats := store.Stats(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Error().Err(err).Msg("response encode failed")
	}
}

// HandleClear answers POST /api/cache/clear.
func HandleClear(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := store.Clear(r.Context()); err != nil {
		http.Error(w, "cache clear failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info().Msg("cache cleared")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}
