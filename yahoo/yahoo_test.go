package yahoo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	networth "github.com/cafa101001/my-asset-app"
)

func TestQuerySymbol(t *testing.T) {
	tests := []struct {
		ticker string
		want   string
	}{
		{"2330", "2330.TW"},
		{"0050", "0050.TW"},
		{"VOO", "VOO"},
		{"btc", "BTC-USD"},
		{"ETH", "ETH-USD"},
		{"SOL", "SOL-USD"},
		{"USDT", "USDT-USD"},
		{"BTC-USD", "BTC-USD"},
		{"2330.TW", "2330.TW"},
		{" voo ", "VOO"},
	}
	for _, tc := range tests {
		if got := QuerySymbol(tc.ticker); got != tc.want {
			t.Errorf("QuerySymbol(%q) = %q, want %q", tc.ticker, got, tc.want)
		}
	}
}

func chartBody(price float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"regularMarketPrice":%g}}]}}`, price)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(time.Minute)
	c.baseURL = srv.URL
	return c
}

func TestQuotes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "2330.TW"):
			fmt.Fprint(w, chartBody(612.5))
		case strings.Contains(r.URL.Path, "BTC-USD"):
			fmt.Fprint(w, chartBody(43000))
		default:
			fmt.Fprint(w, `{"chart":{"result":[]}}`)
		}
	})

	quotes, err := c.Quotes([]string{"2330", "BTC", "GHOST"})
	if err != nil {
		t.Fatal(err)
	}
	if len(quotes) != 2 {
		t.Fatalf("got %d quotes, want 2", len(quotes))
	}
	if p := quotes["2330"]; p.Currency() != "TWD" || !p.Equal(networth.TWD(612.5)) {
		t.Errorf("2330 quote = %s", p)
	}
	if p := quotes["BTC"]; p.Currency() != "USD" || !p.Equal(networth.M(43000.0, "USD")) {
		t.Errorf("BTC quote = %s", p)
	}
	if _, ok := quotes["GHOST"]; ok {
		t.Error("unknown ticker must be left out of the quote map")
	}
}

func TestQuotesFallsBackToLastClose(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":0},
			"timestamp":[1,2,3],
			"indicators":{"quote":[{"close":[101.5,102.25,0]}]}}]}}`)
	})

	quotes, err := c.Quotes([]string{"VOO"})
	if err != nil {
		t.Fatal(err)
	}
	if p := quotes["VOO"]; !p.Equal(networth.M(102.25, "USD")) {
		t.Errorf("VOO quote = %s, want last non-zero close", p)
	}
}

func TestUSDTWD(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, chartBody(32.125))
	})

	rate, err := c.USDTWD()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotPath, "USDTWD=X") {
		t.Errorf("queried %q, want the USDTWD=X pair", gotPath)
	}
	if !rate.Equal(networth.Q(32.125)) {
		t.Errorf("rate = %s, want 32.125", rate)
	}
}

func TestQuoteCacheAvoidsSecondFetch(t *testing.T) {
	var hits int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, chartBody(100))
	})

	for range 3 {
		if _, err := c.Quotes([]string{"VOO"}); err != nil {
			t.Fatal(err)
		}
	}
	if hits != 1 {
		t.Errorf("server hit %d times, want 1 (cached)", hits)
	}
}
