package renderer

import (
	"fmt"
	"strings"

	networth "github.com/cafa101001/my-asset-app"
)

// HoldingsMarkdown renders the open positions with their TWD-normalized
// valuation.
func HoldingsMarkdown(v *networth.Valuation, on networth.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings on %s\n\n", on)
	if len(v.Positions) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Class | Quantity | Avg Cost | Price | Market Value (TWD) | P&L (TWD) | Return |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")
	for _, p := range v.Positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			label(p.Holding),
			p.Class,
			quantityCell(p.Quantity),
			p.AverageCost,
			priceCell(p),
			p.MarketValue,
			p.Unrealized.SignedString(),
			p.Return.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | | **%s** | **%s** | |\n",
		v.TotalMarketValue,
		v.TotalMarketValue.Sub(v.TotalCost).SignedString(),
	)

	if !v.Realized.IsZero() {
		fmt.Fprintf(&b, "\nRealized P&L to date: %s\n", v.Realized.SignedString())
	}
	for _, p := range v.Positions {
		if !p.PriceKnown {
			fmt.Fprintf(&b, "\n> No quote for %s; valued at zero.\n", p.Ticker)
		}
	}
	return b.String()
}
