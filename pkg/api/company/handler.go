package company

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"findash/pkg/core/derive"
	"findash/pkg/core/provider"
	"findash/pkg/core/series"
	"findash/pkg/core/store"
)

var (
	client    *provider.Client
	snapshots *store.SnapshotStore
	log       zerolog.Logger
)

// InitHandler wires the handler's collaborators. snapshots may be nil to
// disable the offline fallback.
func InitHandler(c *provider.Client, s *store.SnapshotStore, l zerolog.Logger) {
	client = c
	snapshots = s
	log = l
}

type MetricsRequest struct {
	Ticker string `json:"ticker"`
}

type MetricsResponse struct {
	Bundle  *series.StatementBundle `json:"bundle"`
	Derived *derive.Metrics         `json:"derived"`
	Source  string                  `json:"source"` // "live" or "snapshot"
}

// HandleCompanyMetrics fetches the statement bundle for a ticker and returns
// it together with the derived metric series. When the upstream provider is
// down, the latest stored snapshot is served instead.
func HandleCompanyMetrics(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req MetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		http.Error(w, "ticker is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	bundle, err := client.FetchStatements(ctx, ticker)
	if err != nil {
		log.Warn().Err(err).Str("ticker", ticker).Msg("live fetch failed, checking snapshots")
		if snapshots != nil {
			snap, snapErr := snapshots.Latest(ctx, ticker)
			if snapErr == nil && snap != nil {
				writeJSON(w, MetricsResponse{Bundle: snap.Bundle, Derived: snap.Derived, Source: "snapshot"})
				return
			}
		}
		http.Error(w, "statement fetch failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	derived := derive.Compute(bundle)

	if snapshots != nil {
		if _, err := snapshots.Save(ctx, bundle, derived); err != nil {
			log.Warn().Err(err).Str("ticker", ticker).Msg("snapshot save failed")
		}
	}

	writeJSON(w, MetricsResponse{Bundle: bundle, Derived: derived, Source: "live"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("response encode failed")
	}
}
