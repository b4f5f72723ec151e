// Package provider implements the REST client to the external financial data
// API and adapts its statement payloads into the internal series model. The
// core treats any fetch failure as "no data": errors propagate to the caller
// and nothing is substituted.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"findash/pkg/cache"
	"findash/pkg/core/series"
)

// Client fetches company statements from an FMP-compatible REST API, with
// rate limiting toward the upstream and TTL caching of assembled bundles.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	store      cache.Store
	ttl        time.Duration
	log        zerolog.Logger
}

// New builds a provider client. rps bounds requests per second toward the
// upstream API; store may be nil to disable caching.
func New(baseURL, apiKey string, rps float64, store cache.Store, ttl time.Duration, log zerolog.Logger) *Client {
	if rps <= 0 {
		rps = 4
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		store:      store,
		ttl:        ttl,
		log:        log,
	}
}

// FetchStatements returns the full raw bundle for a ticker. Within the TTL
// window repeated calls come from the cache; a cache failure only costs a
// re-fetch, never the request.
func (c *Client) FetchStatements(ctx context.Context, ticker string) (*series.StatementBundle, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, fmt.Errorf("empty ticker")
	}

	cacheKey := "bundle:" + ticker
	if c.store != nil {
		var cached series.StatementBundle
		found, err := c.store.Get(ctx, cacheKey, &cached)
		if err != nil {
			c.log.Warn().Err(err).Str("ticker", ticker).Msg("bundle cache read failed")
		}
		if found {
			return &cached, nil
		}
	}

	var balance []fmpBalanceSheet
	if err := c.getJSON(ctx, "/balance-sheet-statement/"+ticker, &balance); err != nil {
		return nil, fmt.Errorf("balance sheet fetch for %s: %w", ticker, err)
	}
	var income []fmpIncomeStatement
	if err := c.getJSON(ctx, "/income-statement/"+ticker, &income); err != nil {
		return nil, fmt.Errorf("income statement fetch for %s: %w", ticker, err)
	}
	var cashflow []fmpCashFlow
	if err := c.getJSON(ctx, "/cash-flow-statement/"+ticker, &cashflow); err != nil {
		return nil, fmt.Errorf("cash flow fetch for %s: %w", ticker, err)
	}
	var quotes []fmpQuote
	if err := c.getJSON(ctx, "/quote/"+ticker, &quotes); err != nil {
		return nil, fmt.Errorf("quote fetch for %s: %w", ticker, err)
	}
	var profiles []fmpProfile
	if err := c.getJSON(ctx, "/profile/"+ticker, &profiles); err != nil {
		return nil, fmt.Errorf("profile fetch for %s: %w", ticker, err)
	}

	bundle := assembleBundle(ticker, balance, income, cashflow, quotes, profiles)

	if c.store != nil {
		if err := c.store.Set(ctx, cacheKey, bundle, c.ttl); err != nil {
			c.log.Warn().Err(err).Str("ticker", ticker).Msg("bundle cache write failed")
		}
	}
	return bundle, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	params := url.Values{}
	params.Set("limit", "10")
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}
	u += "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d: %s", res.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("upstream payload decode: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
