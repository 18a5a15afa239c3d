package networth

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLedger_AppendKeepsChronologicalOrder(t *testing.T) {
	ledger := NewLedger(
		trade(t, day(10), "2330", DomesticEquity, Buy, 1, 100),
		trade(t, day(2), "AAPL", ForeignEquity, Buy, 1, 100),
	)
	ledger.Append(trade(t, day(5), "BTC", Crypto, Buy, 1, 100))

	var got []string
	for _, tx := range ledger.Transactions() {
		got = append(got, tx.Ticker)
	}
	want := []string{"AAPL", "BTC", "2330"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestLedger_StableSortPreservesSameDayOrder(t *testing.T) {
	first := trade(t, day(7), "VT", ForeignEquity, Buy, 1, 10)
	second := trade(t, day(7), "VT", ForeignEquity, Sell, 1, 20)
	ledger := NewLedger(first, second)

	var actions []Action
	for _, tx := range ledger.Transactions() {
		actions = append(actions, tx.Action)
	}
	if actions[0] != Buy || actions[1] != Sell {
		t.Errorf("same-day order = %v, want insertion order [buy sell]", actions)
	}
}

func TestLedger_Tickers(t *testing.T) {
	ledger := NewLedger(
		trade(t, day(1), "2330", DomesticEquity, Buy, 1, 100),
		trade(t, day(2), "AAPL", ForeignEquity, Buy, 1, 100),
		trade(t, day(3), "2330", DomesticEquity, Sell, 1, 110),
	)
	got := ledger.Tickers()
	if len(got) != 2 || got[0] != "2330" || got[1] != "AAPL" {
		t.Errorf("Tickers() = %v, want [2330 AAPL]", got)
	}
}

func TestLedger_BoundaryDates(t *testing.T) {
	ledger := NewLedger()
	if !ledger.OldestTransactionDate().IsZero() {
		t.Error("empty ledger should have a zero oldest date")
	}
	ledger.Append(
		trade(t, day(9), "2330", DomesticEquity, Buy, 1, 100),
		trade(t, day(3), "2330", DomesticEquity, Buy, 1, 100),
	)
	if got := ledger.OldestTransactionDate(); got != NewDate(2025, time.March, 3) {
		t.Errorf("OldestTransactionDate = %s", got)
	}
	if got := ledger.NewestTransactionDate(); got != NewDate(2025, time.March, 9) {
		t.Errorf("NewestTransactionDate = %s", got)
	}
}

func TestDecodeLedger(t *testing.T) {
	const jsonl = `
{"ticker":"2330","class":"domestic-equity","action":"buy","quantity":10,"price":585.5,"date":"2025-03-01"}
{"ticker":"btc","class":"crypto","action":"sell","quantity":0.25,"price":64000,"date":"2025-3-2","memo":"trim"}
`
	ledger, err := DecodeLedger(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ledger.Len())
	}

	var txs []Transaction
	for _, tx := range ledger.Transactions() {
		txs = append(txs, tx)
	}
	if txs[0].Ticker != "2330" || !txs[0].Price.Equal(Q(585.5)) {
		t.Errorf("first tx = %+v", txs[0])
	}
	// lower-case tickers are normalized on decode
	if txs[1].Ticker != "BTC" || txs[1].Class != Crypto || txs[1].Memo != "trim" {
		t.Errorf("second tx = %+v", txs[1])
	}
}

func TestDecodeLedger_RejectsMalformedRows(t *testing.T) {
	testCases := []struct {
		name  string
		jsonl string
	}{
		{"negative quantity", `{"ticker":"X","class":"crypto","action":"buy","quantity":-1,"price":10,"date":"2025-03-01"}`},
		{"non numeric price", `{"ticker":"X","class":"crypto","action":"buy","quantity":1,"price":"abc","date":"2025-03-01"}`},
		{"unknown class", `{"ticker":"X","class":"bond","action":"buy","quantity":1,"price":10,"date":"2025-03-01"}`},
		{"missing date", `{"ticker":"X","class":"crypto","action":"buy","quantity":1,"price":10}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.jsonl)); err == nil {
				t.Error("DecodeLedger() accepted a malformed row")
			}
		})
	}
}

func TestEncodeLedger_RoundTrip(t *testing.T) {
	ledger := NewLedger(
		trade(t, day(1), "0050", DomesticEquity, Buy, 100, 150.25),
		trade(t, day(2), "ETH", Crypto, Sell, 0.5, 2500),
	)

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() failed: %v", err)
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() failed: %v", err)
	}
	if decoded.Len() != ledger.Len() {
		t.Fatalf("round trip lost rows: %d != %d", decoded.Len(), ledger.Len())
	}
	holdingsA, realizedA, _ := Holdings(ledger, Q(32))
	holdingsB, realizedB, _ := Holdings(decoded, Q(32))
	if !realizedA.Equal(realizedB) || len(holdingsA) != len(holdingsB) {
		t.Error("round-tripped ledger computes different holdings")
	}
}
