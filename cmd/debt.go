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

type debtCmd struct {
	set      string
	category string
	amount   float64
	rm       string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "manage outstanding liabilities" }
func (*debtCmd) Usage() string {
	return `nwa debt [-set <name> -amount <twd> [-cat <category>]] [-rm <name>]

  Without flags, lists liabilities and their total. Liabilities reduce
  net assets in 'nwa summary'.

Usage Examples:
$ nwa debt -set mortgage -amount 3200000 -cat housing
$ nwa debt -rm car-loan
`
}

func (p *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "Liability to create or update.")
	f.StringVar(&p.category, "cat", "", "Category for -set, e.g. housing.")
	f.Float64Var(&p.amount, "amount", 0, "Outstanding amount in TWD for -set.")
	f.StringVar(&p.rm, "rm", "", "Liability to delete.")
}

func (p *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	switch {
	case p.set != "" && p.rm != "":
		return fail(fmt.Errorf("-set and -rm cannot be used together"))
	case p.set != "":
		l := store.Liability{Name: p.set, Category: p.category, Amount: networth.TWD(p.amount)}
		if err := db.SetLiability(cfg.User, l); err != nil {
			return fail(err)
		}
		fmt.Printf("Set %s to %s\n", l.Name, l.Amount)
	case p.rm != "":
		if err := db.DeleteLiability(cfg.User, p.rm); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted %s\n", p.rm)
	}

	debts, err := db.Liabilities(cfg.User)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.LiabilitiesMarkdown(debts))
	return subcommands.ExitSuccess
}
