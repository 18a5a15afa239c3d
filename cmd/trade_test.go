package cmd

import (
	"testing"

	networth "github.com/cafa101001/my-asset-app"
)

func TestGuessClass(t *testing.T) {
	tests := []struct {
		ticker string
		want   networth.AssetClass
	}{
		{"2330", networth.DomesticEquity},
		{"0050", networth.DomesticEquity},
		{"VOO", networth.ForeignEquity},
		{"AAPL", networth.ForeignEquity},
		{"BTC", networth.Crypto},
		{"eth", networth.Crypto},
		{"BTC-USD", networth.Crypto},
		{"BRK.B", networth.ForeignEquity},
	}
	for _, tc := range tests {
		if got := guessClass(tc.ticker); got != tc.want {
			t.Errorf("guessClass(%q) = %s, want %s", tc.ticker, got, tc.want)
		}
	}
}
