// Package series defines the time-series data model shared by the fetch
// adapter, the derivation engine, and the API layer. Every statement line
// item is a Series of yearly Points; consumers must tolerate unsorted input
// and sort latest-first before taking "current" values.
package series

// Point is a single fiscal-year observation.
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Series is an ordered collection of yearly points. Within one logical
// series no two points share a year; the fetch adapter enforces that.
type Series []Point

// BalanceSheet holds balance-sheet line items as yearly series.
type BalanceSheet struct {
	TotalAssets            Series `json:"total_assets"`
	TotalLiabilities       Series `json:"total_liabilities"`
	TotalEquity            Series `json:"total_equity"`
	CashAndEquivalents     Series `json:"cash_and_equivalents"`
	ShortTermInvestments   Series `json:"short_term_investments"`
	AccountsReceivable     Series `json:"accounts_receivable"`
	Inventory              Series `json:"inventory"`
	PropertyPlantEquipment Series `json:"property_plant_equipment"`
	Goodwill               Series `json:"goodwill"`
	IntangibleAssets       Series `json:"intangible_assets"`
	AccountsPayable        Series `json:"accounts_payable"`
	ShortTermDebt          Series `json:"short_term_debt"`
	LongTermDebt           Series `json:"long_term_debt"`
}

// IncomeStatement holds income-statement line items as yearly series.
type IncomeStatement struct {
	Revenue           Series `json:"revenue"`
	CostOfRevenue     Series `json:"cost_of_revenue"`
	GrossProfit       Series `json:"gross_profit"`
	OperatingExpenses Series `json:"operating_expenses"`
	OperatingIncome   Series `json:"operating_income"`
	NetIncome         Series `json:"net_income"`
	EPS               Series `json:"eps"`
	EBITDA            Series `json:"ebitda"`
}

// CashFlow holds cash-flow-statement line items as yearly series.
type CashFlow struct {
	OperatingCashFlow    Series `json:"operating_cash_flow"`
	CapitalExpenditures  Series `json:"capital_expenditures"`
	FreeCashFlow         Series `json:"free_cash_flow"`
	DividendsPaid        Series `json:"dividends_paid"`
	NetInvestingCashFlow Series `json:"net_investing_cash_flow"`
	NetFinancingCashFlow Series `json:"net_financing_cash_flow"`
	NetChangeInCash      Series `json:"net_change_in_cash"`
}

// MarketData holds current-day scalar facts from the quote endpoint.
// These are single values, not series; per-share history derived from them
// carries a documented point-in-time approximation.
type MarketData struct {
	MarketCap     float64 `json:"market_cap"`
	CurrentPrice  float64 `json:"current_price"`
	YearHigh      float64 `json:"year_high"`
	YearLow       float64 `json:"year_low"`
	DividendYield float64 `json:"dividend_yield"`
	Beta          float64 `json:"beta"`
}

// StatementBundle is the full raw dataset for one company: the three
// statements plus market scalars. It is assembled once per fetch and never
// mutated afterward.
type StatementBundle struct {
	Ticker          string          `json:"ticker"`
	Name            string          `json:"name"`
	Industry        string          `json:"industry"`
	BalanceSheet    BalanceSheet    `json:"balance_sheet"`
	IncomeStatement IncomeStatement `json:"income_statement"`
	CashFlow        CashFlow        `json:"cash_flow"`
	Market          MarketData      `json:"market"`
}
