package catalog

import (
	"encoding/json"
	"strings"

	"findash/pkg/core/derive"
	"findash/pkg/core/series"
)

// CompanyData is the document the catalog data paths resolve against: the
// raw bundle under "bundle" and the computed metrics under "derived".
type CompanyData struct {
	Bundle  *series.StatementBundle `json:"bundle"`
	Derived *derive.Metrics         `json:"derived"`
}

// Document flattens the company data into a JSON-shaped map for path
// resolution. The round-trip through encoding/json keeps the path segments
// in lockstep with the struct tags, so a renamed field fails loudly in tests
// rather than silently drifting.
func (c *CompanyData) Document() map[string]any {
	raw, err := json.Marshal(c)
	if err != nil {
		return map[string]any{}
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return map[string]any{}
	}
	return doc
}

// Resolve walks a dotted path through the document. It returns the value at
// the path (a float64 scalar or a []any series) and whether the full path
// exists. It never panics on malformed paths or missing segments.
func Resolve(doc map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var cur any = doc
	for _, seg := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = node[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// LatestValue resolves a path and reduces it to a single number: scalars are
// returned as-is, series yield their most recent point's value. Missing or
// non-numeric values return 0 and false.
func LatestValue(doc map[string]any, path string) (float64, bool) {
	v, ok := Resolve(doc, path)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case []any:
		latestYear := 0
		latestVal := 0.0
		found := false
		for _, item := range t {
			p, ok := item.(map[string]any)
			if !ok {
				continue
			}
			year, _ := p["year"].(float64)
			val, _ := p["value"].(float64)
			if !found || int(year) > latestYear {
				latestYear = int(year)
				latestVal = val
				found = true
			}
		}
		return latestVal, found
	default:
		return 0, false
	}
}
