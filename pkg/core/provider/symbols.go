package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Symbol is one entry of the ticker directory behind the search box.
type Symbol struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// FetchSymbolDirectory scrapes an exchange listing page into a symbol
// directory. The page is expected to carry one table with ticker and
// company-name columns, which is what the common listing pages serve.
func FetchSymbolDirectory(ctx context.Context, pageURL string) ([]Symbol, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("symbol directory fetch: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("symbol directory status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("symbol directory parse: %w", err)
	}

	var symbols []Symbol
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return // header row
		}
		ticker := strings.TrimSpace(cells.Eq(0).Text())
		name := strings.TrimSpace(cells.Eq(1).Text())
		if ticker == "" || name == "" {
			return
		}
		symbols = append(symbols, Symbol{Ticker: strings.ToUpper(ticker), Name: name})
	})
	if len(symbols) == 0 {
		return nil, fmt.Errorf("symbol directory yielded no rows")
	}
	return symbols, nil
}

// SearchSymbols filters a directory by prefix or substring, ticker matches
// ranked ahead of name matches.
func SearchSymbols(directory []Symbol, query string, limit int) []Symbol {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var tickerHits, nameHits []Symbol
	for _, s := range directory {
		switch {
		case strings.HasPrefix(s.Ticker, q):
			tickerHits = append(tickerHits, s)
		case strings.Contains(strings.ToUpper(s.Name), q):
			nameHits = append(nameHits, s)
		}
	}

	out := append(tickerHits, nameHits...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
