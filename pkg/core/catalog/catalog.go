// Package catalog is the static registry of dashboard metrics: a closed set
// of identifiers, each mapped to a display label, a category, and a dotted
// data path into the company document. The tables are process-wide constants
// initialized once and never mutated at runtime.
package catalog

// Category groups metrics for the dashboard's importance views.
type Category string

const (
	FinancialHealth       Category = "financial_health"
	OperationalEfficiency Category = "operational_efficiency"
	InvestorValue         Category = "investor_value"
	ResearchInnovation    Category = "research_innovation"
)

// Metric identifies one catalog entry.
type Metric string

const (
	CashAndEquivalents    Metric = "cash_and_equivalents"
	TotalEquity           Metric = "total_equity"
	LongTermDebt          Metric = "long_term_debt"
	NetDebtToEBITDA       Metric = "net_debt_to_ebitda"
	IncomeQuality         Metric = "income_quality"
	Beta                  Metric = "beta"
	DaysInventoryOnHand   Metric = "days_inventory_on_hand"
	DaysSalesOutstanding  Metric = "days_sales_outstanding"
	DaysPayables          Metric = "days_payables_outstanding"
	CashConversionCycle   Metric = "cash_conversion_cycle"
	CapexToOperatingCash  Metric = "capex_to_operating_cash"
	ReturnOnCapital       Metric = "return_on_invested_capital"
	GrahamNumber          Metric = "graham_number"
	FreeCashFlowYield     Metric = "free_cash_flow_yield"
	PEGRatio              Metric = "peg_ratio"
	EVToSales             Metric = "ev_to_sales"
	EVToFCF               Metric = "ev_to_fcf"
	DividendYield         Metric = "dividend_yield"
	MarketCap             Metric = "market_cap"
	BookValuePerShare     Metric = "book_value_per_share"
	RevenuePerShare       Metric = "revenue_per_share"
	FreeCashFlowPerShare  Metric = "free_cash_flow_per_share"
	RDToRevenue           Metric = "rd_to_revenue"
	IntangibleAssets      Metric = "intangible_assets"
)

// Entry describes one metric. Category is the single source of truth here;
// nothing is inferred from catalog position.
type Entry struct {
	ID       Metric   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	DataPath string   `json:"data_path"`
}

// Entries is the full catalog in display order. Display order is also the
// tie-break order for top-N rankings.
var Entries = []Entry{
	{CashAndEquivalents, "Cash & Equivalents", FinancialHealth, "bundle.balance_sheet.cash_and_equivalents"},
	{TotalEquity, "Total Equity (Book Value)", FinancialHealth, "bundle.balance_sheet.total_equity"},
	{LongTermDebt, "Long-Term Debt", FinancialHealth, "bundle.balance_sheet.long_term_debt"},
	{NetDebtToEBITDA, "Net Debt to EBITDA", FinancialHealth, "derived.valuation.net_debt_to_ebitda"},
	{IncomeQuality, "Income Quality", FinancialHealth, "derived.operational.income_quality"},
	{Beta, "Beta (Market Risk)", FinancialHealth, "bundle.market.beta"},
	{DaysInventoryOnHand, "Days of Inventory On Hand", OperationalEfficiency, "derived.operational.days_of_inventory_on_hand"},
	{DaysSalesOutstanding, "Days Sales Outstanding", OperationalEfficiency, "derived.operational.days_sales_outstanding"},
	{DaysPayables, "Days Payables Outstanding", OperationalEfficiency, "derived.operational.days_payables_outstanding"},
	{CashConversionCycle, "Cash Conversion Cycle", OperationalEfficiency, "derived.operational.cash_conversion_cycle"},
	{CapexToOperatingCash, "CapEx to Operating Cash Flow", OperationalEfficiency, "derived.operational.capex_to_operating_cash"},
	{ReturnOnCapital, "Return on Invested Capital", OperationalEfficiency, "derived.valuation.return_on_invested_capital"},
	{GrahamNumber, "Graham Number", InvestorValue, "derived.valuation.graham_number"},
	{FreeCashFlowYield, "Free Cash Flow Yield", InvestorValue, "derived.valuation.free_cash_flow_yield"},
	{PEGRatio, "P/E to Growth (PEG) Ratio", InvestorValue, "derived.valuation.peg_ratio"},
	{EVToSales, "EV to Sales", InvestorValue, "derived.valuation.ev_to_sales"},
	{EVToFCF, "EV to Free Cash Flow", InvestorValue, "derived.valuation.ev_to_fcf"},
	{DividendYield, "Dividend Yield", InvestorValue, "bundle.market.dividend_yield"},
	{MarketCap, "Market Cap", InvestorValue, "bundle.market.market_cap"},
	{BookValuePerShare, "Book Value per Share", InvestorValue, "derived.per_share.book_value_per_share"},
	{RevenuePerShare, "Revenue per Share", InvestorValue, "derived.per_share.revenue_per_share"},
	{FreeCashFlowPerShare, "Free Cash Flow per Share", InvestorValue, "derived.per_share.free_cash_flow_per_share"},
	{RDToRevenue, "R&D to Revenue", ResearchInnovation, "derived.operational.rd_to_revenue"},
	{IntangibleAssets, "Intangibles & Innovation Base", ResearchInnovation, "bundle.balance_sheet.intangible_assets"},
}

var byID = func() map[Metric]Entry {
	m := make(map[Metric]Entry, len(Entries))
	for _, e := range Entries {
		m[e.ID] = e
	}
	return m
}()

// Lookup returns the entry for a metric and whether it exists.
func Lookup(id Metric) (Entry, bool) {
	e, ok := byID[id]
	return e, ok
}

// DataPath returns the dotted access path for a metric, or "" when unknown.
func DataPath(id Metric) string {
	return byID[id].DataPath
}

// CategoryOf returns the category for a metric, or "" when unknown.
func CategoryOf(id Metric) Category {
	return byID[id].Category
}

// Label returns the display name for a metric, or the raw id when unknown.
func Label(id Metric) string {
	if e, ok := byID[id]; ok {
		return e.Label
	}
	return string(id)
}

// Position returns the display-order index of a metric, used as the stable
// tie-break for equal scores. Unknown metrics sort last.
func Position(id Metric) int {
	for i, e := range Entries {
		if e.ID == id {
			return i
		}
	}
	return len(Entries)
}
