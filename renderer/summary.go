package renderer

import (
	"fmt"
	"strings"

	networth "github.com/cafa101001/my-asset-app"
)

// SummaryMarkdown renders the full net-worth picture: assets, cash, debt
// and progress toward the retirement target.
func SummaryMarkdown(on networth.Date, net networth.NetWorth, v *networth.Valuation, set networth.Settings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Net Worth Summary on %s\n\n", on)

	fmt.Fprintln(&b, "| | Amount (TWD) |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Market Value | %s |\n", net.MarketValue)
	fmt.Fprintf(&b, "| Liquidity | %s |\n", net.Liquidity)
	fmt.Fprintf(&b, "| Liabilities | %s |\n", net.Liabilities.Neg().SignedString())
	fmt.Fprintf(&b, "| **Net Assets** | **%s** |\n", net.NetAssets)

	if v != nil {
		fmt.Fprintln(&b, "\n## Performance")
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "| | Amount (TWD) |")
		fmt.Fprintln(&b, "|:---|---:|")
		fmt.Fprintf(&b, "| Unrealized P&L | %s |\n", v.TotalMarketValue.Sub(v.TotalCost).SignedString())
		fmt.Fprintf(&b, "| Realized P&L | %s |\n", v.Realized.SignedString())
		fmt.Fprintf(&b, "| **Total P&L** | **%s** |\n", v.TotalPNL.SignedString())
	}

	target := set.FireTarget()
	progress := networth.Progress(net, target)
	fmt.Fprintln(&b, "\n## Financial Independence")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Target (%s): %s\n\n", set.Mode, target)
	fmt.Fprintf(&b, "Progress: %s %s\n", progressBar(progress), progress)

	return b.String()
}

// progressBar renders a ten-slot bar, clamped to [0, 100].
func progressBar(p networth.Percent) string {
	filled := int(p) / 10
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return "`[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + "]`"
}
