package derive

import (
	"math"
	"testing"

	"findash/pkg/core/series"
)

func yearly(values ...float64) series.Series {
	s := make(series.Series, len(values))
	year := 2023
	for i, v := range values {
		s[i] = series.Point{Year: year - i, Value: v}
	}
	return s
}

func fixtureBundle() *series.StatementBundle {
	return &series.StatementBundle{
		Ticker:   "ACME",
		Name:     "Acme Corp",
		Industry: "Technology",
		BalanceSheet: series.BalanceSheet{
			TotalAssets:        yearly(500000, 450000, 400000),
			TotalLiabilities:   yearly(300000, 280000, 260000),
			TotalEquity:        yearly(200000, 170000, 140000),
			CashAndEquivalents: yearly(80000, 70000, 60000),
			AccountsReceivable: yearly(40000, 38000, 35000),
			Inventory:          yearly(22000, 20000, 18000),
			Goodwill:           yearly(10000, 10000, 10000),
			IntangibleAssets:   yearly(5000, 5000, 5000),
			AccountsPayable:    yearly(30000, 28000, 26000),
			ShortTermDebt:      yearly(15000, 14000, 13000),
			LongTermDebt:       yearly(90000, 95000, 100000),
		},
		IncomeStatement: series.IncomeStatement{
			Revenue:           yearly(400000, 360000, 320000),
			CostOfRevenue:     yearly(240000, 220000, 200000),
			GrossProfit:       yearly(160000, 140000, 120000),
			OperatingExpenses: yearly(80000, 75000, 70000),
			OperatingIncome:   yearly(80000, 65000, 50000),
			NetIncome:         yearly(95000, 48000, 36000),
			EPS:               yearly(6.0, 5.0, 4.5),
			EBITDA:            yearly(100000, 85000, 70000),
		},
		CashFlow: series.CashFlow{
			OperatingCashFlow:   yearly(110000, 62000, 48000),
			CapitalExpenditures: yearly(-25000, -22000, -20000),
			FreeCashFlow:        yearly(85000, 40000, 28000),
		},
		Market: series.MarketData{
			MarketCap:    1500000,
			CurrentPrice: 150,
		},
	}
}

func TestOperationalFormulas(t *testing.T) {
	m := Compute(fixtureBundle())
	op := m.Operational

	// DIO = inventory / (cogs/365) = 22000 / (240000/365)
	wantDIO := 22000.0 / (240000.0 / 365.0)
	if math.Abs(op.DaysOfInventoryOnHand.At(0)-wantDIO) > 0.0001 {
		t.Errorf("DIO expected %f, got %f", wantDIO, op.DaysOfInventoryOnHand.At(0))
	}

	// Income quality = OCF / NI = 110000 / 95000
	wantIQ := 110000.0 / 95000.0
	if math.Abs(op.IncomeQuality.At(0)-wantIQ) > 0.0001 {
		t.Errorf("income quality expected %f, got %f", wantIQ, op.IncomeQuality.At(0))
	}

	// CCC identity must hold exactly at every index.
	for i := range op.CashConversionCycle {
		want := op.DaysOfInventoryOnHand.At(i) + op.DaysSalesOutstanding.At(i) - op.DaysPayablesOutstanding.At(i)
		if op.CashConversionCycle.At(i) != want {
			t.Errorf("CCC[%d] expected %f, got %f", i, want, op.CashConversionCycle.At(i))
		}
	}

	// Capex ratio is a magnitude percentage.
	for i := range op.CapexToOperatingCash {
		if op.CapexToOperatingCash.At(i) < 0 {
			t.Errorf("capexToOperatingCash[%d] negative: %f", i, op.CapexToOperatingCash.At(i))
		}
	}

	// R&D estimate = 15% of opex over revenue: 12000/400000 = 3%.
	if math.Abs(op.RDToRevenue.At(0)-3.0) > 0.0001 {
		t.Errorf("rdToRevenue expected 3.0, got %f", op.RDToRevenue.At(0))
	}
}

func TestZeroDenominatorsNeverPanic(t *testing.T) {
	b := fixtureBundle()
	b.IncomeStatement.CostOfRevenue = yearly(0, 0, 0)
	b.IncomeStatement.NetIncome = yearly(0, 0, 0)
	b.IncomeStatement.Revenue = yearly(0, 0, 0)
	b.IncomeStatement.EBITDA = yearly(0, 0, 0)
	b.CashFlow.OperatingCashFlow = yearly(0, 0, 0)
	b.CashFlow.FreeCashFlow = yearly(0, 0, 0)
	b.Market = series.MarketData{} // zero market cap and price

	m := Compute(b)

	// Inventory 22000 with zero COGS: neutral guard divides by 1, not 0.
	if got := m.Operational.DaysOfInventoryOnHand.At(0); got != 22000 {
		t.Errorf("DIO with zero COGS expected 22000, got %f", got)
	}

	all := collectAll(m)
	for name, s := range all {
		for i, p := range s {
			if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
				t.Errorf("%s[%d] is not finite: %f", name, i, p.Value)
			}
		}
	}
}

func TestSeriesLengthsMatchPrimaryInput(t *testing.T) {
	b := fixtureBundle()
	m := Compute(b)

	if len(m.Operational.DaysOfInventoryOnHand) != len(b.BalanceSheet.Inventory) {
		t.Errorf("DIO length %d != inventory length %d",
			len(m.Operational.DaysOfInventoryOnHand), len(b.BalanceSheet.Inventory))
	}
	if len(m.Valuation.GrahamNumber) != len(b.IncomeStatement.EPS) {
		t.Errorf("graham length %d != eps length %d",
			len(m.Valuation.GrahamNumber), len(b.IncomeStatement.EPS))
	}
	if len(m.PerShare.RevenuePerShare) != len(b.IncomeStatement.Revenue) {
		t.Errorf("revenue/share length %d != revenue length %d",
			len(m.PerShare.RevenuePerShare), len(b.IncomeStatement.Revenue))
	}
}

func TestUnsortedInputIsSortedLatestFirst(t *testing.T) {
	b := fixtureBundle()
	// Reverse the OCF series so the oldest year comes first.
	rev := make(series.Series, 0, 3)
	for i := len(b.CashFlow.OperatingCashFlow) - 1; i >= 0; i-- {
		rev = append(rev, b.CashFlow.OperatingCashFlow[i])
	}
	b.CashFlow.OperatingCashFlow = rev

	m := Compute(b)
	if m.Operational.IncomeQuality.YearAt(0) != 2023 {
		t.Errorf("expected latest year 2023 first, got %d", m.Operational.IncomeQuality.YearAt(0))
	}
	wantIQ := 110000.0 / 95000.0
	if math.Abs(m.Operational.IncomeQuality.At(0)-wantIQ) > 0.0001 {
		t.Errorf("income quality after sort expected %f, got %f", wantIQ, m.Operational.IncomeQuality.At(0))
	}
}

func TestValuationFormulas(t *testing.T) {
	b := fixtureBundle()
	m := Compute(b)
	v := m.Valuation

	// Shares = 1500000 / 150 = 10000
	if m.EstimatedSharesOutstanding != 10000 {
		t.Errorf("shares expected 10000, got %f", m.EstimatedSharesOutstanding)
	}

	// Graham = sqrt(15 * eps * 1.5 * bvps), bvps = 200000/10000 = 20
	wantGraham := math.Sqrt(15 * 6.0 * 1.5 * 20.0)
	if math.Abs(v.GrahamNumber.At(0)-wantGraham) > 0.0001 {
		t.Errorf("graham expected %f, got %f", wantGraham, v.GrahamNumber.At(0))
	}

	// FCF yield = 85000/1500000*100
	wantYield := 85000.0 / 1500000.0 * 100
	if math.Abs(v.FreeCashFlowYield.At(0)-wantYield) > 0.0001 {
		t.Errorf("fcf yield expected %f, got %f", wantYield, v.FreeCashFlowYield.At(0))
	}

	// EV = 1500000 + 90000 + 15000 - 80000 = 1525000
	wantEVS := 1525000.0 / 400000.0
	if math.Abs(v.EVToSales.At(0)-wantEVS) > 0.0001 {
		t.Errorf("ev/sales expected %f, got %f", wantEVS, v.EVToSales.At(0))
	}

	// Net debt = 90000 + 15000 - 80000 = 25000; /EBITDA 100000
	if math.Abs(v.NetDebtToEBITDA.At(0)-0.25) > 0.0001 {
		t.Errorf("netDebt/EBITDA expected 0.25, got %f", v.NetDebtToEBITDA.At(0))
	}

	// ROIC = 95000 / (200000+90000+15000) * 100
	wantROIC := 95000.0 / 305000.0 * 100
	if math.Abs(v.ReturnOnInvestedCapital.At(0)-wantROIC) > 0.0001 {
		t.Errorf("ROIC expected %f, got %f", wantROIC, v.ReturnOnInvestedCapital.At(0))
	}
}

func TestGrahamNegativeProductClampsToZero(t *testing.T) {
	b := fixtureBundle()
	b.IncomeStatement.EPS = yearly(-2.0, -1.5, -1.0)
	m := Compute(b)
	for i, p := range m.Valuation.GrahamNumber {
		if p.Value != 0 {
			t.Errorf("graham[%d] with negative EPS expected 0, got %f", i, p.Value)
		}
	}
}

func TestPEGRatio(t *testing.T) {
	b := fixtureBundle()
	m := Compute(b)

	// Latest year: pe = 150/6 = 25, growth = (6-5)/5 = 0.2 -> peg = 25/20
	if math.Abs(m.Valuation.PEGRatio.At(0)-1.25) > 0.0001 {
		t.Errorf("peg expected 1.25, got %f", m.Valuation.PEGRatio.At(0))
	}

	// Oldest year has no prior point: growth falls back to 0.05.
	// pe = 150/4.5, peg = pe/5
	wantOldest := (150.0 / 4.5) / 5.0
	if math.Abs(m.Valuation.PEGRatio.At(2)-wantOldest) > 0.0001 {
		t.Errorf("peg fallback expected %f, got %f", wantOldest, m.Valuation.PEGRatio.At(2))
	}

	// Declining EPS means non-positive growth -> 0.
	b.IncomeStatement.EPS = yearly(4.0, 5.0, 6.0)
	m = Compute(b)
	if m.Valuation.PEGRatio.At(0) != 0 {
		t.Errorf("peg with negative growth expected 0, got %f", m.Valuation.PEGRatio.At(0))
	}
}

func TestPerShareMetrics(t *testing.T) {
	m := Compute(fixtureBundle())
	ps := m.PerShare

	if math.Abs(ps.RevenuePerShare.At(0)-40.0) > 0.0001 {
		t.Errorf("revenue/share expected 40, got %f", ps.RevenuePerShare.At(0))
	}
	if math.Abs(ps.BookValuePerShare.At(0)-20.0) > 0.0001 {
		t.Errorf("book value/share expected 20, got %f", ps.BookValuePerShare.At(0))
	}
	// Tangible = (200000 - 10000 - 5000) / 10000
	if math.Abs(ps.TangibleBookValuePerShare.At(0)-18.5) > 0.0001 {
		t.Errorf("tangible bv/share expected 18.5, got %f", ps.TangibleBookValuePerShare.At(0))
	}
}

func collectAll(m *Metrics) map[string]series.Series {
	return map[string]series.Series{
		"daysOfInventoryOnHand":     m.Operational.DaysOfInventoryOnHand,
		"daysPayablesOutstanding":   m.Operational.DaysPayablesOutstanding,
		"daysSalesOutstanding":      m.Operational.DaysSalesOutstanding,
		"cashConversionCycle":       m.Operational.CashConversionCycle,
		"incomeQuality":             m.Operational.IncomeQuality,
		"capexToOperatingCash":      m.Operational.CapexToOperatingCash,
		"rdToRevenue":               m.Operational.RDToRevenue,
		"grahamNumber":              m.Valuation.GrahamNumber,
		"freeCashFlowYield":         m.Valuation.FreeCashFlowYield,
		"pegRatio":                  m.Valuation.PEGRatio,
		"evToSales":                 m.Valuation.EVToSales,
		"evToFcf":                   m.Valuation.EVToFCF,
		"netDebtToEbitda":           m.Valuation.NetDebtToEBITDA,
		"returnOnInvestedCapital":   m.Valuation.ReturnOnInvestedCapital,
		"revenuePerShare":           m.PerShare.RevenuePerShare,
		"netIncomePerShare":         m.PerShare.NetIncomePerShare,
		"operatingCashFlowPerShare": m.PerShare.OperatingCashFlowPerShare,
		"freeCashFlowPerShare":      m.PerShare.FreeCashFlowPerShare,
		"bookValuePerShare":         m.PerShare.BookValuePerShare,
		"tangibleBookValuePerShare": m.PerShare.TangibleBookValuePerShare,
	}
}
