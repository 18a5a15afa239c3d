package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/renderer"
)

type holdingsCmd struct {
	noNames bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show open positions valued in TWD" }
func (*holdingsCmd) Usage() string {
	return `nwa holdings [-no-names]

  Replays the ledger, fetches current prices and the USD/TWD rate, and
  shows every open position with its TWD market value, cost and return.
`
}

func (p *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.noNames, "no-names", false, "Skip the TWSE company-name lookup.")
}

func (p *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	ledger, err := db.Ledger(cfg.User)
	if err != nil {
		return fail(err)
	}

	md := Quotes(cfg)
	fx := networth.Rate(md)
	holdings, realized, _ := networth.Holdings(ledger, fx)
	if !p.noNames {
		Names(holdings)
	}

	prices, err := md.Quotes(tickersOf(holdings))
	if err != nil {
		return fail(err)
	}

	v := networth.Valuate(holdings, realized, prices, fx)
	printMarkdown(renderer.HoldingsMarkdown(v, networth.Today()))
	return subcommands.ExitSuccess
}

func tickersOf(holdings []networth.Holding) []string {
	tickers := make([]string, 0, len(holdings))
	for _, h := range holdings {
		tickers = append(tickers, h.Ticker)
	}
	return tickers
}
