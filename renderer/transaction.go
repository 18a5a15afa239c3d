package renderer

import (
	"fmt"
	"strings"

	networth "github.com/cafa101001/my-asset-app"
)

// Transaction renders a single ledger row to a one-line string.
func Transaction(tx networth.Transaction) string {
	switch tx.Action {
	case networth.Buy:
		return fmt.Sprintf("Bought %s %s at %s on %s", tx.Quantity, tx.Ticker, tx.UnitPrice(), tx.Date)
	case networth.Sell:
		return fmt.Sprintf("Sold %s %s at %s on %s", tx.Quantity, tx.Ticker, tx.UnitPrice(), tx.Date)
	default:
		return fmt.Sprintf("%s %s %s", tx.Action, tx.Quantity, tx.Ticker)
	}
}

// TransactionsMarkdown renders the ledger with the realized gain each sell
// contributed. Buys leave the column blank.
func TransactionsMarkdown(rows []networth.TradeGain) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Transactions")
	fmt.Fprintln(&b)
	if len(rows) == 0 {
		fmt.Fprintln(&b, "The ledger is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Action | Ticker | Quantity | Price | Realized P&L | Id |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")
	for _, r := range rows {
		realized := ""
		if r.Action == networth.Sell {
			realized = r.Realized.SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Date, r.Action, r.Ticker, r.Quantity, r.UnitPrice(), realized, r.ID)
	}
	return b.String()
}
