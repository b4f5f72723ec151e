package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findash/pkg/core/derive"
	"findash/pkg/core/series"
)

func testBundle(ticker string) *series.StatementBundle {
	return &series.StatementBundle{
		Ticker:   ticker,
		Name:     ticker + " Corp",
		Industry: "Technology",
		BalanceSheet: series.BalanceSheet{
			TotalEquity: series.Series{{Year: 2023, Value: 200}},
		},
		IncomeStatement: series.IncomeStatement{
			Revenue: series.Series{{Year: 2023, Value: 400}},
		},
		Market: series.MarketData{MarketCap: 1500, CurrentPrice: 150},
	}
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	s := NewSnapshotStore(nil, t.TempDir())
	ctx := context.Background()

	bundle := testBundle("acme")
	derived := derive.Compute(bundle)

	saved, err := s.Save(ctx, bundle, derived)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "ACME", saved.Ticker)

	got, err := s.Latest(ctx, "acme")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "ACME Corp", got.Name)
	require.NotNil(t, got.Derived)
	assert.Equal(t, derived.EstimatedSharesOutstanding, got.Derived.EstimatedSharesOutstanding)
}

func TestSnapshotLatestMissReturnsNil(t *testing.T) {
	s := NewSnapshotStore(nil, t.TempDir())

	got, err := s.Latest(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotOverwriteKeepsNewest(t *testing.T) {
	s := NewSnapshotStore(nil, t.TempDir())
	ctx := context.Background()

	first, err := s.Save(ctx, testBundle("ACME"), nil)
	require.NoError(t, err)

	updated := testBundle("ACME")
	updated.Name = "ACME Holdings"
	second, err := s.Save(ctx, updated, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := s.Latest(ctx, "ACME")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, "ACME Holdings", got.Name)
}

func TestSnapshotExistsAndTickers(t *testing.T) {
	s := NewSnapshotStore(nil, t.TempDir())
	ctx := context.Background()

	assert.False(t, s.Exists(ctx, "ACME"))

	_, err := s.Save(ctx, testBundle("ACME"), nil)
	require.NoError(t, err)
	_, err = s.Save(ctx, testBundle("ZETA"), nil)
	require.NoError(t, err)

	assert.True(t, s.Exists(ctx, "acme"))

	tickers, err := s.Tickers(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ACME", "ZETA"}, tickers)
}

func TestSnapshotRejectsEmptyBundle(t *testing.T) {
	s := NewSnapshotStore(nil, t.TempDir())

	_, err := s.Save(context.Background(), nil, nil)
	assert.Error(t, err)

	_, err = s.Save(context.Background(), &series.StatementBundle{}, nil)
	assert.Error(t, err)
}
