package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/renderer"
	"github.com/cafa101001/my-asset-app/store"
)

type summaryCmd struct {
	save bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show net worth and FIRE progress" }
func (*summaryCmd) Usage() string {
	return `nwa summary [-save]

  Aggregates market value, cash and debt into today's net assets and
  reports progress toward the financial-independence target.
  With -save, stores today's snapshot; saving twice on the same day
  overwrites the earlier one.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.save, "save", false, "Persist today's snapshot.")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	prices, err := md.Quotes(tickersOf(holdings))
	if err != nil {
		return fail(err)
	}
	v := networth.Valuate(holdings, realized, prices, fx)

	accounts, err := db.Liquidity(cfg.User)
	if err != nil {
		return fail(err)
	}
	debts, err := db.Liabilities(cfg.User)
	if err != nil {
		return fail(err)
	}
	set, err := db.Settings(cfg.User)
	if err != nil {
		return fail(err)
	}

	liquidity := store.Total(accounts, func(a store.Account) networth.Money { return a.Amount })
	liabilities := store.Total(debts, func(d store.Liability) networth.Money { return d.Amount })
	net := networth.NewNetWorth(v.TotalMarketValue, liquidity, liabilities)

	printMarkdown(renderer.SummaryMarkdown(networth.Today(), net, v, set))

	if p.save {
		snap := networth.NewSnapshot(networth.Today(), net)
		if err := db.SaveSnapshot(cfg.User, snap); err != nil {
			return fail(err)
		}
		fmt.Printf("Saved snapshot for %s\n", snap.Date)
	}
	return subcommands.ExitSuccess
}
