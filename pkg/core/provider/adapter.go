package provider

import (
	"strconv"

	"findash/pkg/core/series"
)

// Wire types mirror the FMP statement payloads, one struct per endpoint.
// Only the fields the dashboard uses are declared.

type fmpBalanceSheet struct {
	CalendarYear            string  `json:"calendarYear"`
	Date                    string  `json:"date"`
	TotalAssets             float64 `json:"totalAssets"`
	TotalLiabilities        float64 `json:"totalLiabilities"`
	TotalStockholdersEquity float64 `json:"totalStockholdersEquity"`
	CashAndCashEquivalents  float64 `json:"cashAndCashEquivalents"`
	ShortTermInvestments    float64 `json:"shortTermInvestments"`
	NetReceivables          float64 `json:"netReceivables"`
	Inventory               float64 `json:"inventory"`
	PropertyPlantEquipment  float64 `json:"propertyPlantEquipmentNet"`
	Goodwill                float64 `json:"goodwill"`
	IntangibleAssets        float64 `json:"intangibleAssets"`
	AccountPayables         float64 `json:"accountPayables"`
	ShortTermDebt           float64 `json:"shortTermDebt"`
	LongTermDebt            float64 `json:"longTermDebt"`
}

type fmpIncomeStatement struct {
	CalendarYear      string  `json:"calendarYear"`
	Date              string  `json:"date"`
	Revenue           float64 `json:"revenue"`
	CostOfRevenue     float64 `json:"costOfRevenue"`
	GrossProfit       float64 `json:"grossProfit"`
	OperatingExpenses float64 `json:"operatingExpenses"`
	OperatingIncome   float64 `json:"operatingIncome"`
	NetIncome         float64 `json:"netIncome"`
	EPS               float64 `json:"eps"`
	EBITDA            float64 `json:"ebitda"`
}

type fmpCashFlow struct {
	CalendarYear            string  `json:"calendarYear"`
	Date                    string  `json:"date"`
	OperatingCashFlow       float64 `json:"operatingCashFlow"`
	CapitalExpenditure      float64 `json:"capitalExpenditure"`
	FreeCashFlow            float64 `json:"freeCashFlow"`
	DividendsPaid           float64 `json:"dividendsPaid"`
	NetCashUsedForInvesting float64 `json:"netCashUsedForInvestingActivites"`
	NetCashUsedForFinancing float64 `json:"netCashUsedProvidedByFinancingActivities"`
	NetChangeInCash         float64 `json:"netChangeInCash"`
}

type fmpQuote struct {
	MarketCap float64 `json:"marketCap"`
	Price     float64 `json:"price"`
	YearHigh  float64 `json:"yearHigh"`
	YearLow   float64 `json:"yearLow"`
}

type fmpProfile struct {
	CompanyName string  `json:"companyName"`
	Industry    string  `json:"industry"`
	Beta        float64 `json:"beta"`
	LastDiv     float64 `json:"lastDiv"`
}

// assembleBundle converts wire payloads into the internal bundle. Duplicate
// fiscal years (amended filings) keep the first occurrence, which the
// upstream orders newest-first; sorting is left to the consumers.
func assembleBundle(ticker string, balance []fmpBalanceSheet, income []fmpIncomeStatement, cashflow []fmpCashFlow, quotes []fmpQuote, profiles []fmpProfile) *series.StatementBundle {
	b := &series.StatementBundle{Ticker: ticker}

	seenBS := map[int]bool{}
	for _, row := range balance {
		year := fiscalYear(row.CalendarYear, row.Date)
		if year == 0 || seenBS[year] {
			continue
		}
		seenBS[year] = true
		bs := &b.BalanceSheet
		bs.TotalAssets = append(bs.TotalAssets, series.Point{Year: year, Value: row.TotalAssets})
		bs.TotalLiabilities = append(bs.TotalLiabilities, series.Point{Year: year, Value: row.TotalLiabilities})
		bs.TotalEquity = append(bs.TotalEquity, series.Point{Year: year, Value: row.TotalStockholdersEquity})
		bs.CashAndEquivalents = append(bs.CashAndEquivalents, series.Point{Year: year, Value: row.CashAndCashEquivalents})
		bs.ShortTermInvestments = append(bs.ShortTermInvestments, series.Point{Year: year, Value: row.ShortTermInvestments})
		bs.AccountsReceivable = append(bs.AccountsReceivable, series.Point{Year: year, Value: row.NetReceivables})
		bs.Inventory = append(bs.Inventory, series.Point{Year: year, Value: row.Inventory})
		bs.PropertyPlantEquipment = append(bs.PropertyPlantEquipment, series.Point{Year: year, Value: row.PropertyPlantEquipment})
		bs.Goodwill = append(bs.Goodwill, series.Point{Year: year, Value: row.Goodwill})
		bs.IntangibleAssets = append(bs.IntangibleAssets, series.Point{Year: year, Value: row.IntangibleAssets})
		bs.AccountsPayable = append(bs.AccountsPayable, series.Point{Year: year, Value: row.AccountPayables})
		bs.ShortTermDebt = append(bs.ShortTermDebt, series.Point{Year: year, Value: row.ShortTermDebt})
		bs.LongTermDebt = append(bs.LongTermDebt, series.Point{Year: year, Value: row.LongTermDebt})
	}

	seenIS := map[int]bool{}
	for _, row := range income {
		year := fiscalYear(row.CalendarYear, row.Date)
		if year == 0 || seenIS[year] {
			continue
		}
		seenIS[year] = true
		is := &b.IncomeStatement
		is.Revenue = append(is.Revenue, series.Point{Year: year, Value: row.Revenue})
		is.CostOfRevenue = append(is.CostOfRevenue, series.Point{Year: year, Value: row.CostOfRevenue})
		is.GrossProfit = append(is.GrossProfit, series.Point{Year: year, Value: row.GrossProfit})
		is.OperatingExpenses = append(is.OperatingExpenses, series.Point{Year: year, Value: row.OperatingExpenses})
		is.OperatingIncome = append(is.OperatingIncome, series.Point{Year: year, Value: row.OperatingIncome})
		is.NetIncome = append(is.NetIncome, series.Point{Year: year, Value: row.NetIncome})
		is.EPS = append(is.EPS, series.Point{Year: year, Value: row.EPS})
		is.EBITDA = append(is.EBITDA, series.Point{Year: year, Value: row.EBITDA})
	}

	seenCF := map[int]bool{}
	for _, row := range cashflow {
		year := fiscalYear(row.CalendarYear, row.Date)
		if year == 0 || seenCF[year] {
			continue
		}
		seenCF[year] = true
		cf := &b.CashFlow
		cf.OperatingCashFlow = append(cf.OperatingCashFlow, series.Point{Year: year, Value: row.OperatingCashFlow})
		cf.CapitalExpenditures = append(cf.CapitalExpenditures, series.Point{Year: year, Value: row.CapitalExpenditure})
		cf.FreeCashFlow = append(cf.FreeCashFlow, series.Point{Year: year, Value: row.FreeCashFlow})
		cf.DividendsPaid = append(cf.DividendsPaid, series.Point{Year: year, Value: row.DividendsPaid})
		cf.NetInvestingCashFlow = append(cf.NetInvestingCashFlow, series.Point{Year: year, Value: row.NetCashUsedForInvesting})
		cf.NetFinancingCashFlow = append(cf.NetFinancingCashFlow, series.Point{Year: year, Value: row.NetCashUsedForFinancing})
		cf.NetChangeInCash = append(cf.NetChangeInCash, series.Point{Year: year, Value: row.NetChangeInCash})
	}

	if len(quotes) > 0 {
		q := quotes[0]
		b.Market.MarketCap = q.MarketCap
		b.Market.CurrentPrice = q.Price
		b.Market.YearHigh = q.YearHigh
		b.Market.YearLow = q.YearLow
	}
	if len(profiles) > 0 {
		p := profiles[0]
		b.Name = p.CompanyName
		b.Industry = p.Industry
		b.Market.Beta = p.Beta
		if b.Market.CurrentPrice != 0 {
			b.Market.DividendYield = p.LastDiv / b.Market.CurrentPrice
		}
	}

	return b
}

// fiscalYear prefers the explicit calendarYear field and falls back to the
// leading year of the filing date.
func fiscalYear(calendarYear, date string) int {
	if y, err := strconv.Atoi(calendarYear); err == nil {
		return y
	}
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			return y
		}
	}
	return 0
}
