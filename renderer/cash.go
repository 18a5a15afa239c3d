package renderer

import (
	"fmt"
	"strings"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/store"
)

// AccountsMarkdown renders the cash accounts and their total.
func AccountsMarkdown(accounts []store.Account) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Liquidity")
	fmt.Fprintln(&b)
	if len(accounts) == 0 {
		fmt.Fprintln(&b, "No cash accounts recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Account | Amount (TWD) |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, a := range accounts {
		fmt.Fprintf(&b, "| %s | %s |\n", a.Name, a.Amount)
	}
	total := store.Total(accounts, func(a store.Account) networth.Money { return a.Amount })
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", total)
	return b.String()
}

// LiabilitiesMarkdown renders outstanding debts and their total.
func LiabilitiesMarkdown(debts []store.Liability) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Liabilities")
	fmt.Fprintln(&b)
	if len(debts) == 0 {
		fmt.Fprintln(&b, "No liabilities recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Name | Category | Amount (TWD) |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, d := range debts {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", d.Name, d.Category, d.Amount)
	}
	total := store.Total(debts, func(d store.Liability) networth.Money { return d.Amount })
	fmt.Fprintf(&b, "| **Total** | | **%s** |\n", total)
	return b.String()
}

// IncomesMarkdown renders the annual income history.
func IncomesMarkdown(incomes []store.Income) string {
	var b strings.Builder

	fmt.Fprintln(&b, "# Income History")
	fmt.Fprintln(&b)
	if len(incomes) == 0 {
		fmt.Fprintln(&b, "No income recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Recorded | Annual Income (TWD) | Note |")
	fmt.Fprintln(&b, "|:---|---:|:---|")
	for _, in := range incomes {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", in.RecordedAt, in.Annual, in.Note)
	}
	return b.String()
}
