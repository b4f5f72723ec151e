package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	type payload struct {
		Ticker string  `json:"ticker"`
		Value  float64 `json:"value"`
	}

	require.NoError(t, m.Set(ctx, "quote:ACME", payload{"ACME", 42.5}, time.Minute))

	var got payload
	found, err := m.Get(ctx, "quote:ACME", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, payload{"ACME", 42.5}, got)

	var missing payload
	found, err = m.Get(ctx, "quote:OTHER", &missing)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	m := NewMemory().withClock(func() time.Time { return now })

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))

	var v string
	found, err := m.Get(ctx, "k", &v)
	require.NoError(t, err)
	require.True(t, found)

	// Advance past the TTL: entry is evicted on read.
	now = now.Add(2 * time.Minute)
	found, err = m.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)

	stats := m.Stats(ctx)
	assert.Equal(t, int64(1), stats.Evictions)
	assert.Equal(t, int64(0), stats.Entries)
}

func TestMemoryRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, m.Set(ctx, "b", 2, time.Minute))

	require.NoError(t, m.Remove(ctx, "a"))
	var n int
	found, _ := m.Get(ctx, "a", &n)
	assert.False(t, found)

	require.NoError(t, m.Clear(ctx))
	assert.Equal(t, int64(0), m.Stats(ctx).Entries)
}

func TestMemoryStatsCounters(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))

	var v string
	_, _ = m.Get(ctx, "k", &v)    // hit
	_, _ = m.Get(ctx, "gone", &v) // miss

	stats := m.Stats(ctx)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Entries)
}
