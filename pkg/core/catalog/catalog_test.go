package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findash/pkg/core/derive"
	"findash/pkg/core/series"
)

func fixtureData() *CompanyData {
	yearly := func(values ...float64) series.Series {
		s := make(series.Series, len(values))
		for i, v := range values {
			s[i] = series.Point{Year: 2023 - i, Value: v}
		}
		return s
	}

	bundle := &series.StatementBundle{
		Ticker: "ACME",
		BalanceSheet: series.BalanceSheet{
			TotalAssets:        yearly(500, 450),
			TotalLiabilities:   yearly(300, 280),
			TotalEquity:        yearly(200, 170),
			CashAndEquivalents: yearly(80, 70),
			AccountsReceivable: yearly(40, 38),
			Inventory:          yearly(22, 20),
			Goodwill:           yearly(10, 10),
			IntangibleAssets:   yearly(5, 5),
			AccountsPayable:    yearly(30, 28),
			ShortTermDebt:      yearly(15, 14),
			LongTermDebt:       yearly(90, 95),
		},
		IncomeStatement: series.IncomeStatement{
			Revenue:           yearly(400, 360),
			CostOfRevenue:     yearly(240, 220),
			OperatingExpenses: yearly(80, 75),
			NetIncome:         yearly(95, 48),
			EPS:               yearly(6, 5),
			EBITDA:            yearly(100, 85),
		},
		CashFlow: series.CashFlow{
			OperatingCashFlow:   yearly(110, 62),
			CapitalExpenditures: yearly(-25, -22),
			FreeCashFlow:        yearly(85, 40),
		},
		Market: series.MarketData{
			MarketCap:     1500,
			CurrentPrice:  150,
			DividendYield: 0.015,
			Beta:          1.1,
		},
	}

	return &CompanyData{Bundle: bundle, Derived: derive.Compute(bundle)}
}

func TestEveryCatalogPathResolves(t *testing.T) {
	doc := fixtureData().Document()

	for _, entry := range Entries {
		require.NotEmpty(t, entry.DataPath, "metric %s has no data path", entry.ID)
		require.NotEmpty(t, entry.Label, "metric %s has no label", entry.ID)
		require.NotEmpty(t, string(entry.Category), "metric %s has no category", entry.ID)

		v, ok := LatestValue(doc, entry.DataPath)
		assert.True(t, ok, "path %q for metric %s did not resolve", entry.DataPath, entry.ID)
		assert.False(t, v != v, "path %q yielded NaN", entry.DataPath) // NaN check
	}
}

func TestLookupAndDataPath(t *testing.T) {
	e, ok := Lookup(GrahamNumber)
	require.True(t, ok)
	assert.Equal(t, InvestorValue, e.Category)
	assert.Equal(t, "derived.valuation.graham_number", DataPath(GrahamNumber))

	// Unknown metrics resolve to zero values, never panic.
	_, ok = Lookup(Metric("does_not_exist"))
	assert.False(t, ok)
	assert.Empty(t, DataPath(Metric("does_not_exist")))
	assert.Equal(t, Category(""), CategoryOf(Metric("does_not_exist")))
}

func TestResolveMalformedPaths(t *testing.T) {
	doc := fixtureData().Document()

	_, ok := Resolve(doc, "")
	assert.False(t, ok)
	_, ok = Resolve(doc, "bundle.no_such_group.revenue")
	assert.False(t, ok)
	_, ok = Resolve(doc, "bundle.market.market_cap.too_deep")
	assert.False(t, ok)
}

func TestLatestValuePicksNewestYear(t *testing.T) {
	doc := fixtureData().Document()

	v, ok := LatestValue(doc, "bundle.income_statement.revenue")
	require.True(t, ok)
	assert.Equal(t, 400.0, v, "latest-year revenue, not the first array element")

	v, ok = LatestValue(doc, "bundle.market.market_cap")
	require.True(t, ok)
	assert.Equal(t, 1500.0, v)
}

func TestComponentImportanceScore(t *testing.T) {
	c := Components[0]
	scores := map[Metric]int{}
	for _, id := range c.Metrics {
		scores[id] = 8
	}
	assert.Equal(t, 8.0, c.GetImportanceScore(scores))

	// Missing scores default to the neutral 5.
	assert.Equal(t, 5.0, c.GetImportanceScore(nil))

	var provider MetricProvider = c
	assert.Equal(t, c.Metrics, provider.GetProvidedMetrics())
	assert.Equal(t, c.Category, provider.GetMetricCategory())
}

func TestComponentMetricsExistInCatalog(t *testing.T) {
	for _, c := range Components {
		for _, id := range c.Metrics {
			_, ok := Lookup(id)
			assert.True(t, ok, "component %s references unknown metric %s", c.ID, id)
		}
	}
}

func TestPositionOrdersByDisplayOrder(t *testing.T) {
	assert.Equal(t, 0, Position(Entries[0].ID))
	assert.Less(t, Position(GrahamNumber), Position(RDToRevenue))
	assert.Equal(t, len(Entries), Position(Metric("unknown")))
}
