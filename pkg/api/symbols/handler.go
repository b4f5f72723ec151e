package symbols

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"findash/pkg/core/provider"
)

var (
	pageURL string
	log     zerolog.Logger

	mu        sync.Mutex
	directory []provider.Symbol
)

// InitHandler configures the listing page the directory is scraped from.
// The scrape happens lazily on the first search and is kept for the process
// lifetime.
func InitHandler(listingURL string, l zerolog.Logger) {
	pageURL = listingURL
	log = l
}

type SearchResponse struct {
	Symbols []provider.Symbol `json:"symbols"`
}

// HandleSearch answers GET /api/symbols/search?q=...&limit=...
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	query := r.URL.Query().Get("q")
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	dir, err := loadDirectory(r)
	if err != nil {
		http.Error(w, "symbol directory unavailable: "+err.Error(), http.StatusBadGateway)
		return
	}

	matches := provider.SearchSymbols(dir, query, limit)
	if matches == nil {
		matches = []provider.Symbol{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(SearchResponse{Symbols: matches}); err != nil {
		log.Error().Err(err).Msg("response encode failed")
	}
}

func loadDirectory(r *http.Request) ([]provider.Symbol, error) {
	mu.Lock()
	defer mu.Unlock()
	if directory != nil {
		return directory, nil
	}
	dir, err := provider.FetchSymbolDirectory(r.Context(), pageURL)
	if err != nil {
		return nil, err
	}
	log.Info().Int("symbols", len(dir)).Msg("symbol directory loaded")
	directory = dir
	return directory, nil
}
