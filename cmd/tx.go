package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/renderer"
)

type txCmd struct {
	ticker string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `nwa tx [-t <ticker>] [-head <n>] [-tail <n>]

  Lists transactions in chronological order, each sell annotated with the
  profit or loss it realized against the average cost at that moment.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ticker, "t", "", "Show only this ticker.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		return fail(fmt.Errorf("-head and -tail flags cannot be used together"))
	}

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

	fx := networth.Rate(Quotes(cfg))
	_, _, rows := networth.Holdings(ledger, fx)

	if p.ticker != "" {
		ticker := networth.NormalizeTicker(p.ticker)
		filtered := rows[:0]
		for _, r := range rows {
			if r.Ticker == ticker {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	if p.head > 0 && len(rows) > p.head {
		rows = rows[:p.head]
	}
	if p.tail > 0 && len(rows) > p.tail {
		rows = rows[len(rows)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(rows))
	return subcommands.ExitSuccess
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction by id" }
func (*rmCmd) Usage() string {
	return `nwa rm <id>...

  Deletes ledger rows by id (shown in the last column of 'nwa tx').
  Transactions are immutable: to edit one, delete it and record it again.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return fail(fmt.Errorf("expected at least one transaction id"))
	}

	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	for _, id := range f.Args() {
		if err := db.DeleteTransaction(cfg.User, id); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted %s\n", id)
	}
	return subcommands.ExitSuccess
}
