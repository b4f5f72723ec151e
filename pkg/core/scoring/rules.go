package scoring

import (
	_ "embed"
	"encoding/json"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

//go:embed resources/rules.hjson
var rulesSource []byte

// IndustryRule bumps metrics whose label contains any of the listed
// substrings when the company is in the named industry.
type IndustryRule struct {
	Industry string   `json:"industry"`
	Contains []string `json:"contains"`
	Delta    int      `json:"delta"`
}

// CompanyRule is the same mechanism keyed by ticker symbol.
type CompanyRule struct {
	Ticker   string   `json:"ticker"`
	Contains []string `json:"contains"`
	Delta    int      `json:"delta"`
}

type ruleSet struct {
	Industry []IndustryRule `json:"industry"`
	Company  []CompanyRule  `json:"company"`
}

// rules is parsed once from the embedded HJSON resource. A parse failure is
// a build defect, so it panics at init rather than limping along with an
// empty table.
var rules = func() ruleSet {
	var raw any
	if err := hjson.Unmarshal(rulesSource, &raw); err != nil {
		panic("scoring: malformed rules.hjson: " + err.Error())
	}
	normalized, err := json.Marshal(raw)
	if err != nil {
		panic("scoring: rules.hjson not JSON-representable: " + err.Error())
	}
	var rs ruleSet
	if err := json.Unmarshal(normalized, &rs); err != nil {
		panic("scoring: rules.hjson schema mismatch: " + err.Error())
	}
	return rs
}()

// preferenceRules map each preference setting to the label substrings it
// boosts. Each matching rule adds +1 independently; a metric can collect
// several bumps in one pass.
var preferenceRules = map[string][]string{
	"focus:growth":    {"Growth", "Revenue", "R&D"},
	"focus:value":     {"P/E", "Book", "Graham"},
	"focus:income":    {"Dividend", "Yield", "Payout"},
	"focus:stability": {"Debt", "Risk", "Coverage"},
	"horizon:short":   {"Current", "Quick"},
	"horizon:long":    {"CapEx", "R&D", "Growth"},
	"risk:low":        {"Debt", "Coverage", "Current"},
	"risk:high":       {"Growth", "R&D", "Innovation"},
}

func labelContainsAny(label string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(label, n) {
			return true
		}
	}
	return false
}

// industryDelta sums every industry rule matching the label.
func industryDelta(industry, label string) int {
	delta := 0
	for _, r := range rules.Industry {
		if r.Industry == industry && labelContainsAny(label, r.Contains) {
			delta += r.Delta
		}
	}
	return delta
}

// companyDelta sums every ticker rule matching the label.
func companyDelta(ticker, label string) int {
	delta := 0
	for _, r := range rules.Company {
		if strings.EqualFold(r.Ticker, ticker) && labelContainsAny(label, r.Contains) {
			delta += r.Delta
		}
	}
	return delta
}

// preferenceKeys expands user preferences into rule-table keys.
func preferenceKeys(p *Preferences) []string {
	if p == nil {
		return nil
	}
	var keys []string
	for _, f := range p.FocusAreas {
		keys = append(keys, "focus:"+strings.ToLower(f))
	}
	if p.TimeHorizon != "" {
		keys = append(keys, "horizon:"+strings.ToLower(p.TimeHorizon))
	}
	if p.RiskTolerance != "" {
		keys = append(keys, "risk:"+strings.ToLower(p.RiskTolerance))
	}
	return keys
}
