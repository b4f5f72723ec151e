package catalog

// Component describes one dashboard widget and the metrics it displays.
// The table is used to aggregate per-metric importance scores into a
// per-widget ranking.
type Component struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Category    Category `json:"category"`
	Metrics     []Metric `json:"metrics"`
}

// MetricProvider is implemented by anything that can describe a widget's
// metric surface. Components satisfy it; UI-facing descriptors can too,
// without depending on any rendering framework.
type MetricProvider interface {
	GetProvidedMetrics() []Metric
	GetMetricCategory() Category
	GetImportanceScore(scores map[Metric]int) float64
}

// Components maps widget identifiers to their metric sets, in display order.
var Components = []Component{
	{
		ID:          "liquidity-snapshot",
		DisplayName: "Liquidity Snapshot",
		Category:    FinancialHealth,
		Metrics:     []Metric{CashAndEquivalents, LongTermDebt, NetDebtToEBITDA, Beta},
	},
	{
		ID:          "working-capital",
		DisplayName: "Working Capital Cycle",
		Category:    OperationalEfficiency,
		Metrics:     []Metric{DaysInventoryOnHand, DaysSalesOutstanding, DaysPayables, CashConversionCycle},
	},
	{
		ID:          "cash-flow-quality",
		DisplayName: "Cash Flow Quality",
		Category:    OperationalEfficiency,
		Metrics:     []Metric{IncomeQuality, CapexToOperatingCash, FreeCashFlowYield},
	},
	{
		ID:          "valuation-panel",
		DisplayName: "Valuation",
		Category:    InvestorValue,
		Metrics:     []Metric{GrahamNumber, PEGRatio, EVToSales, EVToFCF, MarketCap},
	},
	{
		ID:          "per-share-panel",
		DisplayName: "Per-Share Figures",
		Category:    InvestorValue,
		Metrics:     []Metric{RevenuePerShare, BookValuePerShare, FreeCashFlowPerShare, DividendYield},
	},
	{
		ID:          "innovation-panel",
		DisplayName: "Research & Innovation",
		Category:    ResearchInnovation,
		Metrics:     []Metric{RDToRevenue, IntangibleAssets},
	},
}

// GetProvidedMetrics returns the metrics shown by this component.
func (c Component) GetProvidedMetrics() []Metric {
	return c.Metrics
}

// GetMetricCategory returns the component's category.
func (c Component) GetMetricCategory() Category {
	return c.Category
}

// GetImportanceScore averages the component's metric scores. Metrics missing
// from the score map count as the neutral 5.
func (c Component) GetImportanceScore(scores map[Metric]int) float64 {
	if len(c.Metrics) == 0 {
		return 5
	}
	total := 0.0
	for _, id := range c.Metrics {
		if s, ok := scores[id]; ok {
			total += float64(s)
		} else {
			total += 5
		}
	}
	return total / float64(len(c.Metrics))
}
