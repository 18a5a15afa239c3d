package renderer

import (
	"fmt"
	"strings"

	networth "github.com/cafa101001/my-asset-app"
)

// HistoryMarkdown renders saved snapshots, most recent first, with the
// day-over-day move in net assets.
func HistoryMarkdown(snaps []networth.Snapshot) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Net Worth History")
	fmt.Fprintln(&b)
	if len(snaps) == 0 {
		fmt.Fprintln(&b, "No snapshots saved yet. Run `nwa summary -save` to record one.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Market Value | Liquidity | Liabilities | Net Assets | Change |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|")
	for i, s := range snaps {
		change := ""
		if i+1 < len(snaps) {
			change = s.NetAssets.Sub(snaps[i+1].NetAssets).SignedString()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			s.Date, s.MarketValue, s.Liquidity, s.Liabilities, s.NetAssets, change)
	}
	return b.String()
}
