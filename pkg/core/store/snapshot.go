package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"findash/pkg/core/derive"
	"findash/pkg/core/series"
)

// SnapshotStore persists fetched statement bundles and their derived metrics.
// Hybrid vault: DB (primary, full history) + file system (fallback/local,
// latest snapshot per ticker).
type SnapshotStore struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewSnapshotStore creates a snapshot store. If pool is nil it falls back to
// a file-based store in dir; if dir is also empty a local default is used.
func NewSnapshotStore(pool *pgxpool.Pool, dir string) *SnapshotStore {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "snapshots")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check snapshot dir: %v\n", err)
		}
	}
	return &SnapshotStore{pool: pool, fileDir: dir}
}

// Snapshot is one persisted fetch result for a ticker.
type Snapshot struct {
	ID       string                  `json:"id"`
	Ticker   string                  `json:"ticker"`
	Name     string                  `json:"name"`
	Industry string                  `json:"industry"`
	Bundle   *series.StatementBundle `json:"bundle"`
	Derived  *derive.Metrics         `json:"derived"`
	SavedAt  time.Time               `json:"saved_at"`
}

// Save stores a snapshot, overwriting the file copy for the ticker and
// appending a history row in the DB when one is configured.
func (s *SnapshotStore) Save(ctx context.Context, bundle *series.StatementBundle, derived *derive.Metrics) (*Snapshot, error) {
	if bundle == nil || bundle.Ticker == "" {
		return nil, fmt.Errorf("snapshot requires a bundle with a ticker")
	}

	snap := &Snapshot{
		ID:       uuid.NewString(),
		Ticker:   strings.ToUpper(bundle.Ticker),
		Name:     bundle.Name,
		Industry: bundle.Industry,
		Bundle:   bundle,
		Derived:  derived,
		SavedAt:  time.Now().UTC(),
	}

	if s.pool != nil {
		payload, err := json.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		query := `
			INSERT INTO statement_snapshots (id, ticker, company_name, industry, data, saved_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := s.pool.Exec(ctx, query,
			snap.ID, snap.Ticker, snap.Name, snap.Industry, payload, snap.SavedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to save snapshot to db: %w", err)
		}
	}

	if s.fileDir != "" {
		fileBytes, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		if err := os.WriteFile(s.tickerPath(snap.Ticker), fileBytes, 0644); err != nil {
			return nil, fmt.Errorf("failed to save snapshot file: %w", err)
		}
	}

	return snap, nil
}

// Latest returns the most recent snapshot for a ticker, or nil when none is
// stored. A nil result with nil error is a plain miss.
func (s *SnapshotStore) Latest(ctx context.Context, ticker string) (*Snapshot, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("empty ticker")
	}

	if s.pool != nil {
		query := `
			SELECT data
			FROM statement_snapshots
			WHERE ticker = $1
			ORDER BY saved_at DESC
			LIMIT 1
		`
		var payload []byte
		err := s.pool.QueryRow(ctx, query, ticker).Scan(&payload)
		if err != nil {
			return nil, nil // miss
		}
		var snap Snapshot
		if err := json.Unmarshal(payload, &snap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal db snapshot: %w", err)
		}
		return &snap, nil
	}

	if s.fileDir != "" {
		return s.loadFromFile(s.tickerPath(ticker))
	}

	return nil, nil
}

// Exists reports whether any snapshot is stored for the ticker.
func (s *SnapshotStore) Exists(ctx context.Context, ticker string) bool {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if s.pool != nil {
		query := `SELECT 1 FROM statement_snapshots WHERE ticker = $1 LIMIT 1`
		var exists int
		if err := s.pool.QueryRow(ctx, query, ticker).Scan(&exists); err == nil {
			return true
		}
	}

	if s.fileDir != "" {
		if _, err := os.Stat(s.tickerPath(ticker)); err == nil {
			return true
		}
	}

	return false
}

// Tickers lists the tickers with a stored snapshot.
func (s *SnapshotStore) Tickers(ctx context.Context) ([]string, error) {
	if s.pool != nil {
		rows, err := s.pool.Query(ctx, `SELECT DISTINCT ticker FROM statement_snapshots ORDER BY ticker`)
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshot tickers: %w", err)
		}
		defer rows.Close()

		var tickers []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				return nil, err
			}
			tickers = append(tickers, t)
		}
		return tickers, rows.Err()
	}

	if s.fileDir != "" {
		files, err := os.ReadDir(s.fileDir)
		if err != nil {
			return nil, nil
		}
		var tickers []string
		for _, f := range files {
			if filepath.Ext(f.Name()) != ".json" {
				continue
			}
			tickers = append(tickers, strings.TrimSuffix(f.Name(), ".json"))
		}
		return tickers, nil
	}

	return nil, nil
}

func (s *SnapshotStore) tickerPath(ticker string) string {
	safe := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return '_'
	}, ticker)
	return filepath.Join(s.fileDir, safe+".json")
}

func (s *SnapshotStore) loadFromFile(path string) (*Snapshot, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, nil // not found
	}
	var snap Snapshot
	if err := json.Unmarshal(bytes, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
