package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/renderer"
)

type incomeCmd struct {
	add  float64
	note string
	date string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "track annual income over time" }
func (*incomeCmd) Usage() string {
	return `nwa income [-add <twd> [-note <text>] [-d <date>]]

  Without flags, lists recorded annual income figures, most recent first.

Usage Examples:
$ nwa income -add 1650000 -note "salary + bonus"
$ nwa income
`
}

func (p *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.add, "add", 0, "Annual income in TWD to record.")
	f.StringVar(&p.note, "note", "", "Note attached to the record.")
	f.StringVar(&p.date, "d", networth.Today().String(), "Date of the record (YYYY-MM-DD).")
}

func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	if p.add > 0 {
		on, err := networth.ParseDate(p.date)
		if err != nil {
			return fail(err)
		}
		id, err := db.AddIncome(cfg.User, on, networth.TWD(p.add), p.note)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Recorded income (id %s)\n", id)
	}

	incomes, err := db.Incomes(cfg.User)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.IncomesMarkdown(incomes))
	return subcommands.ExitSuccess
}
