package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/cafa101001/my-asset-app/renderer"
)

type historyCmd struct {
	last int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show saved net-worth snapshots" }
func (*historyCmd) Usage() string {
	return `nwa history [-n <count>]

  Lists saved snapshots, most recent first, with the day-over-day change
  in net assets.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.last, "n", 0, "Show only the most recent N snapshots.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	snaps, err := db.Snapshots(cfg.User)
	if err != nil {
		return fail(err)
	}
	if p.last > 0 && len(snaps) > p.last {
		snaps = snaps[:p.last]
	}

	printMarkdown(renderer.HistoryMarkdown(snaps))
	return subcommands.ExitSuccess
}
