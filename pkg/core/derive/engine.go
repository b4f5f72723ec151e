package derive

import (
	"math"

	"findash/pkg/core/series"
)

// =============================================================================
// DERIVATION ENGINE
// Index i is the i-th point after sorting by year descending, not the year
// itself. Parallel series are assumed index-aligned after sorting; a missing
// point reads as 0 and is caught by the division guards.
// =============================================================================

// Compute derives the full metric set from a raw statement bundle.
func Compute(b *series.StatementBundle) *Metrics {
	if b == nil {
		return &Metrics{}
	}

	shares := safeDiv(b.Market.MarketCap, b.Market.CurrentPrice)

	bs := sortedBalanceSheet(b.BalanceSheet)
	is := sortedIncomeStatement(b.IncomeStatement)
	cf := sortedCashFlow(b.CashFlow)

	return &Metrics{
		Operational:                computeOperational(bs, is, cf),
		Valuation:                  computeValuation(bs, is, cf, b.Market, shares),
		PerShare:                   computePerShare(bs, is, cf, shares),
		EstimatedSharesOutstanding: shares,
	}
}

func computeOperational(bs series.BalanceSheet, is series.IncomeStatement, cf series.CashFlow) OperationalMetrics {
	dio := eachPoint(bs.Inventory, func(i int) float64 {
		return divOrNeutral(bs.Inventory.At(i), is.CostOfRevenue.At(i)/365)
	})
	dpo := eachPoint(bs.AccountsPayable, func(i int) float64 {
		return divOrNeutral(bs.AccountsPayable.At(i), is.CostOfRevenue.At(i)/365)
	})
	dso := eachPoint(bs.AccountsReceivable, func(i int) float64 {
		return divOrNeutral(bs.AccountsReceivable.At(i), is.Revenue.At(i)/365)
	})

	// CCC = DIO + DSO - DPO, aligned on the inventory series.
	ccc := eachPoint(bs.Inventory, func(i int) float64 {
		return dio.At(i) + dso.At(i) - dpo.At(i)
	})

	return OperationalMetrics{
		DaysOfInventoryOnHand:   dio,
		DaysPayablesOutstanding: dpo,
		DaysSalesOutstanding:    dso,
		CashConversionCycle:     ccc,
		IncomeQuality: eachPoint(cf.OperatingCashFlow, func(i int) float64 {
			return divOrNeutral(cf.OperatingCashFlow.At(i), is.NetIncome.At(i))
		}),
		// Both sides as magnitudes: capex is reported negative and the ratio
		// must stay non-negative even in a negative-OCF year.
		CapexToOperatingCash: eachPoint(cf.CapitalExpenditures, func(i int) float64 {
			return safeDiv(math.Abs(cf.CapitalExpenditures.At(i)), math.Abs(cf.OperatingCashFlow.At(i))) * 100
		}),
		// No explicit R&D line in the upstream statements; estimated as 15%
		// of operating expenses. Documented approximation, not measured R&D.
		RDToRevenue: eachPoint(is.OperatingExpenses, func(i int) float64 {
			return safeDiv(is.OperatingExpenses.At(i)*0.15, is.Revenue.At(i)) * 100
		}),
	}
}

func computeValuation(bs series.BalanceSheet, is series.IncomeStatement, cf series.CashFlow, m series.MarketData, shares float64) ValuationMetrics {
	ev := func(i int) float64 {
		return m.MarketCap + bs.LongTermDebt.At(i) + bs.ShortTermDebt.At(i) - bs.CashAndEquivalents.At(i)
	}
	netDebt := func(i int) float64 {
		return bs.LongTermDebt.At(i) + bs.ShortTermDebt.At(i) - bs.CashAndEquivalents.At(i)
	}

	return ValuationMetrics{
		GrahamNumber: eachPoint(is.EPS, func(i int) float64 {
			bvps := safeDiv(bs.TotalEquity.At(i), shares)
			product := 15 * is.EPS.At(i) * 1.5 * bvps
			if product < 0 {
				return 0
			}
			return math.Sqrt(product)
		}),
		FreeCashFlowYield: eachPoint(cf.FreeCashFlow, func(i int) float64 {
			return safeDiv(cf.FreeCashFlow.At(i), m.MarketCap) * 100
		}),
		PEGRatio: eachPoint(is.EPS, func(i int) float64 {
			return pegAt(is.EPS, m.CurrentPrice, i)
		}),
		EVToSales: eachPoint(is.Revenue, func(i int) float64 {
			return safeDiv(ev(i), is.Revenue.At(i))
		}),
		EVToFCF: eachPoint(cf.FreeCashFlow, func(i int) float64 {
			return safeDiv(ev(i), cf.FreeCashFlow.At(i))
		}),
		NetDebtToEBITDA: eachPoint(is.EBITDA, func(i int) float64 {
			return safeDiv(netDebt(i), is.EBITDA.At(i))
		}),
		ReturnOnInvestedCapital: eachPoint(is.NetIncome, func(i int) float64 {
			invested := bs.TotalEquity.At(i) + bs.LongTermDebt.At(i) + bs.ShortTermDebt.At(i)
			return safeDiv(is.NetIncome.At(i), invested) * 100
		}),
	}
}

func computePerShare(bs series.BalanceSheet, is series.IncomeStatement, cf series.CashFlow, shares float64) PerShareMetrics {
	perShare := func(src series.Series) series.Series {
		return eachPoint(src, func(i int) float64 {
			return safeDiv(src.At(i), shares)
		})
	}

	return PerShareMetrics{
		RevenuePerShare:           perShare(is.Revenue),
		NetIncomePerShare:         perShare(is.NetIncome),
		OperatingCashFlowPerShare: perShare(cf.OperatingCashFlow),
		FreeCashFlowPerShare:      perShare(cf.FreeCashFlow),
		BookValuePerShare:         perShare(bs.TotalEquity),
		TangibleBookValuePerShare: eachPoint(bs.TotalEquity, func(i int) float64 {
			tangible := bs.TotalEquity.At(i) - bs.Goodwill.At(i) - bs.IntangibleAssets.At(i)
			return safeDiv(tangible, shares)
		}),
	}
}

// pegAt computes PEG for index i of the EPS series (sorted latest-first, so
// i+1 is the prior year). Missing prior-year data falls back to pe=15 and
// growth=0.05.
func pegAt(eps series.Series, price float64, i int) float64 {
	pe := 15.0
	growth := 0.05

	if cur := eps.At(i); cur != 0 {
		pe = price / cur
	}
	if i+1 < len(eps) && eps.At(i+1) != 0 {
		growth = (eps.At(i) - eps.At(i+1)) / math.Abs(eps.At(i+1))
	}

	if growth <= 0 {
		return 0
	}
	return pe / (growth * 100)
}

// =============================================================================
// GUARDS & HELPERS
// =============================================================================

// safeDiv returns 0 when the denominator is 0.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// divOrNeutral substitutes 1 for a zero denominator. Used for ratios with a
// neutral baseline (income quality, days-of metrics) where 0 would be more
// misleading than the raw numerator.
func divOrNeutral(numerator, denominator float64) float64 {
	if denominator == 0 {
		denominator = 1
	}
	return numerator / denominator
}

// eachPoint maps fn over the indexes of the primary series, preserving years
// and length. Any non-finite result is clamped to 0 to uphold the never-NaN
// contract.
func eachPoint(primary series.Series, fn func(i int) float64) series.Series {
	out := make(series.Series, len(primary))
	for i := range primary {
		v := fn(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		out[i] = series.Point{Year: primary[i].Year, Value: v}
	}
	return out
}

func sortedBalanceSheet(bs series.BalanceSheet) series.BalanceSheet {
	return series.BalanceSheet{
		TotalAssets:            bs.TotalAssets.SortDesc(),
		TotalLiabilities:       bs.TotalLiabilities.SortDesc(),
		TotalEquity:            bs.TotalEquity.SortDesc(),
		CashAndEquivalents:     bs.CashAndEquivalents.SortDesc(),
		ShortTermInvestments:   bs.ShortTermInvestments.SortDesc(),
		AccountsReceivable:     bs.AccountsReceivable.SortDesc(),
		Inventory:              bs.Inventory.SortDesc(),
		PropertyPlantEquipment: bs.PropertyPlantEquipment.SortDesc(),
		Goodwill:               bs.Goodwill.SortDesc(),
		IntangibleAssets:       bs.IntangibleAssets.SortDesc(),
		AccountsPayable:        bs.AccountsPayable.SortDesc(),
		ShortTermDebt:          bs.ShortTermDebt.SortDesc(),
		LongTermDebt:           bs.LongTermDebt.SortDesc(),
	}
}

func sortedIncomeStatement(is series.IncomeStatement) series.IncomeStatement {
	return series.IncomeStatement{
		Revenue:           is.Revenue.SortDesc(),
		CostOfRevenue:     is.CostOfRevenue.SortDesc(),
		GrossProfit:       is.GrossProfit.SortDesc(),
		OperatingExpenses: is.OperatingExpenses.SortDesc(),
		OperatingIncome:   is.OperatingIncome.SortDesc(),
		NetIncome:         is.NetIncome.SortDesc(),
		EPS:               is.EPS.SortDesc(),
		EBITDA:            is.EBITDA.SortDesc(),
	}
}

func sortedCashFlow(cf series.CashFlow) series.CashFlow {
	return series.CashFlow{
		OperatingCashFlow:    cf.OperatingCashFlow.SortDesc(),
		CapitalExpenditures:  cf.CapitalExpenditures.SortDesc(),
		FreeCashFlow:         cf.FreeCashFlow.SortDesc(),
		DividendsPaid:        cf.DividendsPaid.SortDesc(),
		NetInvestingCashFlow: cf.NetInvestingCashFlow.SortDesc(),
		NetFinancingCashFlow: cf.NetFinancingCashFlow.SortDesc(),
		NetChangeInCash:      cf.NetChangeInCash.SortDesc(),
	}
}
