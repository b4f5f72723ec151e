// Package cache provides the expiring key-value store used in front of the
// financial data provider. Repeated identical fetches inside the TTL window
// come back from here instead of the network. The default backend is
// in-memory; a Redis backend is available for multi-process deployments.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Entries   int64 `json:"entries"`
	Evictions int64 `json:"evictions"`
}

// Store is the expiring key-value contract.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Stats(ctx context.Context) Stats
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is the in-process Store. Expired entries are evicted lazily on
// read and during Stats.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
	stats   Stats
}

// NewMemory builds an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

var _ Store = (*Memory)(nil)

func (m *Memory) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		m.stats.Misses++
		return false, nil
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, key)
		m.stats.Evictions++
		m.stats.Misses++
		return false, nil
	}
	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, err
	}
	m.stats.Hits++
	return true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(ttl)}
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
	return nil
}

func (m *Memory) Stats(ctx context.Context) Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, e := range m.entries {
		if m.now().After(e.expiresAt) {
			delete(m.entries, key)
			m.stats.Evictions++
		}
	}
	s := m.stats
	s.Entries = int64(len(m.entries))
	return s
}

// withClock overrides the time source; tests use it to force expiry.
func (m *Memory) withClock(now func() time.Time) *Memory {
	m.now = now
	return m
}
