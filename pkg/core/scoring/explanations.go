package scoring

import "fmt"

// cannedExplanations back the highest-scoring metrics. Only metrics reaching
// the 8+ band get an explanation attached.
var cannedExplanations = map[string]string{
	"R&D to Revenue":               "Research intensity is the clearest signal of whether this company can sustain its competitive moat.",
	"Free Cash Flow Yield":         "Free cash flow yield shows how much real cash the business generates relative to its price tag.",
	"Cash Conversion Cycle":        "The cash conversion cycle reveals how efficiently working capital turns into cash.",
	"Income Quality":               "Income quality compares reported earnings to actual operating cash, exposing accrual-heavy results.",
	"Graham Number":                "The Graham number anchors valuation to earnings power and book value rather than market sentiment.",
	"P/E to Growth (PEG) Ratio":    "PEG relates the earnings multiple to growth, separating expensive-but-growing from just expensive.",
	"Net Debt to EBITDA":           "Net debt to EBITDA is the fastest read on balance-sheet risk and refinancing headroom.",
	"Cash & Equivalents":           "The cash position determines how much optionality management has in a downturn.",
	"Days of Inventory On Hand":    "Inventory days expose demand softness well before it reaches the income statement.",
	"CapEx to Operating Cash Flow": "The capex ratio shows how much of operating cash must be reinvested just to stand still.",
	"Return on Invested Capital":   "ROIC tells you whether growth actually creates value or merely consumes capital.",
	"Dividend Yield":               "For income-oriented holders the yield and its coverage dominate the investment case.",
}

// explanationFor returns the canned text for a label, or a generated
// sentence when none exists.
func explanationFor(label, industry string) string {
	if text, ok := cannedExplanations[label]; ok {
		return text
	}
	if industry == "" {
		industry = "this"
	}
	return fmt.Sprintf("%s ranks among the most decisive indicators for %s companies right now.", label, industry)
}
