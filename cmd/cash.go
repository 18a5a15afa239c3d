package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/renderer"
)

type cashCmd struct {
	set    string
	amount float64
	rm     string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "manage liquid cash accounts" }
func (*cashCmd) Usage() string {
	return `nwa cash [-set <account> -amount <twd>] [-rm <account>]

  Without flags, lists cash accounts and their total. Setting an account
  that already exists overwrites its balance.

Usage Examples:
$ nwa cash -set bank -amount 120000
$ nwa cash -rm broker
$ nwa cash
`
}

func (p *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "Account to create or update.")
	f.Float64Var(&p.amount, "amount", 0, "Balance in TWD for -set.")
	f.StringVar(&p.rm, "rm", "", "Account to delete.")
}

func (p *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		if err := db.SetLiquidity(cfg.User, p.set, networth.TWD(p.amount)); err != nil {
			return fail(err)
		}
		fmt.Printf("Set %s to %s\n", p.set, networth.TWD(p.amount))
	case p.rm != "":
		if err := db.DeleteLiquidity(cfg.User, p.rm); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted %s\n", p.rm)
	}

	accounts, err := db.Liquidity(cfg.User)
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.AccountsMarkdown(accounts))
	return subcommands.ExitSuccess
}
