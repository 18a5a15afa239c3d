// Package yahoo quotes tickers and the USD/TWD rate from the Yahoo
// Finance v8 chart API.
package yahoo

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	networth "github.com/cafa101001/my-asset-app"
)

// ErrNoResult is returned when the chart API answers with an empty result set.
var ErrNoResult = errors.New("yahoo: no result")

const defaultBaseURL = "https://query2.finance.yahoo.com"

type cachedQuote struct {
	price   float64
	fetched time.Time
}

// Client fetches quotes with a small in-memory cache, so that rendering a
// summary right after a holdings table does not hit the API twice.
type Client struct {
	http    *http.Client
	baseURL string
	ttl     time.Duration

	mu    sync.RWMutex
	cache map[string]cachedQuote
}

// New returns a client with the given cache TTL. A zero ttl disables caching.
func New(ttl time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: 8 * time.Second},
		baseURL: defaultBaseURL,
		ttl:     ttl,
		cache:   make(map[string]cachedQuote),
	}
}

// QuerySymbol maps a ledger ticker to the symbol Yahoo understands:
// all-digit Taiwan codes get a ".TW" suffix, bare crypto symbols a "-USD"
// pair suffix, anything already qualified passes through.
func QuerySymbol(ticker string) string {
	t := networth.NormalizeTicker(ticker)
	if strings.Contains(t, ".") || strings.Contains(t, "-") {
		return t
	}
	if isDigits(t) {
		return t + ".TW"
	}
	switch t {
	case "BTC", "ETH", "SOL", "USDT":
		return t + "-USD"
	}
	return t
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// nativeCurrency infers the quote currency from the query symbol.
func nativeCurrency(symbol string) string {
	if strings.HasSuffix(symbol, ".TW") || strings.HasSuffix(symbol, ".TWO") {
		return "TWD"
	}
	return "USD"
}

// Quotes returns the latest price for every ticker it can resolve, keyed by
// the original ticker. Tickers Yahoo does not know are left out of the map.
func (c *Client) Quotes(tickers []string) (map[string]networth.Money, error) {
	quotes := make(map[string]networth.Money, len(tickers))
	for _, ticker := range tickers {
		symbol := QuerySymbol(ticker)
		price, err := c.price(symbol)
		if err != nil {
			log.Printf("no quote for %q (%s): %v", ticker, symbol, err)
			continue
		}
		quotes[ticker] = networth.M(decimal.NewFromFloat(price), nativeCurrency(symbol))
	}
	return quotes, nil
}

// USDTWD returns how many TWD one USD buys.
func (c *Client) USDTWD() (networth.Quantity, error) {
	rate, err := c.price("USDTWD=X")
	if err != nil {
		return networth.Q(0), fmt.Errorf("cannot fetch USD/TWD rate: %w", err)
	}
	return networth.Q(decimal.NewFromFloat(rate)), nil
}

func (c *Client) price(symbol string) (float64, error) {
	c.mu.RLock()
	if q, ok := c.cache[symbol]; ok && time.Since(q.fetched) < c.ttl {
		c.mu.RUnlock()
		return q.price, nil
	}
	c.mu.RUnlock()

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, symbol)
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "my-asset-app/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("yahoo http %d", resp.StatusCode)
	}

	var raw struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
				} `json:"meta"`
				Timestamp  []int64 `json:"timestamp"`
				Indicators struct {
					Quote []struct {
						Close []float64 `json:"close"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, err
	}
	if len(raw.Chart.Result) == 0 {
		return 0, ErrNoResult
	}

	r := raw.Chart.Result[0]
	price := r.Meta.RegularMarketPrice
	if price <= 0 && len(r.Indicators.Quote) > 0 {
		// meta can be empty off-hours, fall back to the last close
		closes := r.Indicators.Quote[0].Close
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] > 0 {
				price = closes[i]
				break
			}
		}
	}
	if price <= 0 {
		return 0, ErrNoResult
	}

	c.mu.Lock()
	c.cache[symbol] = cachedQuote{price: price, fetched: time.Now()}
	c.mu.Unlock()
	return price, nil
}
