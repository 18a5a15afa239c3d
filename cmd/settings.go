package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
)

type settingsCmd struct {
	expense float64
	mode    string
	target  float64
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change retirement planning settings" }
func (*settingsCmd) Usage() string {
	return `nwa settings [-expense <twd>] [-mode 25x|custom] [-target <twd>]

  Without flags, shows the current settings. The FIRE target is either
  monthly expense x 12 x 25 (mode 25x) or a fixed amount (mode custom).

Usage Examples:
$ nwa settings -expense 65000
$ nwa settings -mode custom -target 30000000
`
}

func (p *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.expense, "expense", 0, "Monthly expense in TWD.")
	f.StringVar(&p.mode, "mode", "", "Target mode: 25x or custom.")
	f.Float64Var(&p.target, "target", 0, "Custom target in TWD (implies -mode custom).")
}

func (p *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	set, err := db.Settings(cfg.User)
	if err != nil {
		return fail(err)
	}

	changed := false
	if p.expense > 0 {
		set.MonthlyExpense = networth.TWD(p.expense)
		changed = true
	}
	if p.target > 0 {
		set.Target = networth.TWD(p.target)
		set.Mode = networth.CustomTarget
		changed = true
	}
	if p.mode != "" {
		mode, err := networth.ParseFireMode(p.mode)
		if err != nil {
			return fail(err)
		}
		set.Mode = mode
		changed = true
	}

	if changed {
		if err := db.SaveSettings(cfg.User, set); err != nil {
			return fail(err)
		}
	}

	fmt.Printf("Monthly expense: %s\n", set.MonthlyExpense)
	fmt.Printf("Mode:            %s\n", set.Mode)
	fmt.Printf("FIRE target:     %s\n", set.FireTarget())
	return subcommands.ExitSuccess
}
