// Package renderer turns valuation results into markdown for the terminal.
package renderer

import (
	"fmt"

	networth "github.com/cafa101001/my-asset-app"
)

// priceCell renders a native price, flagging missing quotes rather than
// presenting a silent zero.
func priceCell(p networth.Position) string {
	if !p.PriceKnown {
		return "n/a"
	}
	return p.Price.String()
}

// quantityCell trims quantities for display.
func quantityCell(q networth.Quantity) string { return q.String() }

// label renders "name (ticker)" when a display name is known.
func label(h networth.Holding) string {
	if h.DisplayName == "" || h.DisplayName == h.Ticker {
		return h.Ticker
	}
	return fmt.Sprintf("%s (%s)", h.DisplayName, h.Ticker)
}
