// Package derive provides deterministic derivation of operational, valuation,
// and per-share metric series from a raw statement bundle. Every function is a
// pure computation over in-memory series: no I/O, no errors, no panics.
// Division and lookup failures degrade to numeric defaults so a dashboard tab
// never blocks on partial data.
package derive

import "findash/pkg/core/series"

// OperationalMetrics are efficiency ratios computed from the working-capital
// and cash-flow line items.
type OperationalMetrics struct {
	DaysOfInventoryOnHand   series.Series `json:"days_of_inventory_on_hand"`
	DaysPayablesOutstanding series.Series `json:"days_payables_outstanding"`
	DaysSalesOutstanding    series.Series `json:"days_sales_outstanding"`
	CashConversionCycle     series.Series `json:"cash_conversion_cycle"`
	IncomeQuality           series.Series `json:"income_quality"`
	CapexToOperatingCash    series.Series `json:"capex_to_operating_cash"`
	RDToRevenue             series.Series `json:"rd_to_revenue"`
}

// ValuationMetrics relate statement values to the company's market pricing.
type ValuationMetrics struct {
	GrahamNumber            series.Series `json:"graham_number"`
	FreeCashFlowYield       series.Series `json:"free_cash_flow_yield"`
	PEGRatio                series.Series `json:"peg_ratio"`
	EVToSales               series.Series `json:"ev_to_sales"`
	EVToFCF                 series.Series `json:"ev_to_fcf"`
	NetDebtToEBITDA         series.Series `json:"net_debt_to_ebitda"`
	ReturnOnInvestedCapital series.Series `json:"return_on_invested_capital"`
}

// PerShareMetrics divide statement aggregates by the estimated share count.
type PerShareMetrics struct {
	RevenuePerShare           series.Series `json:"revenue_per_share"`
	NetIncomePerShare         series.Series `json:"net_income_per_share"`
	OperatingCashFlowPerShare series.Series `json:"operating_cash_flow_per_share"`
	FreeCashFlowPerShare      series.Series `json:"free_cash_flow_per_share"`
	BookValuePerShare         series.Series `json:"book_value_per_share"`
	TangibleBookValuePerShare series.Series `json:"tangible_book_value_per_share"`
}

// Metrics is the full derived dataset for one company. Computed once per
// fetched bundle and immutable afterward; a new bundle means a full recompute.
type Metrics struct {
	Operational OperationalMetrics `json:"operational"`
	Valuation   ValuationMetrics   `json:"valuation"`
	PerShare    PerShareMetrics    `json:"per_share"`

	// EstimatedSharesOutstanding is marketCap / currentPrice: a single
	// current-day scalar applied across all historical years. A known
	// approximation, kept so per-share history matches the quote endpoint.
	EstimatedSharesOutstanding float64 `json:"estimated_shares_outstanding"`
}
