package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as JSONL" }
func (*exportCmd) Usage() string {
	return `nwa export [-o <file>]

  Writes the ledger in JSONL form, one transaction per line, to stdout or
  to a file. The output round-trips through 'nwa import'.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Write to this file instead of stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	w := os.Stdout
	if p.output != "" {
		w, err = os.Create(p.output)
		if err != nil {
			return fail(err)
		}
		defer w.Close()
	}
	if err := networth.EncodeLedger(w, ledger); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a JSONL ledger" }
func (*importCmd) Usage() string {
	return `nwa import [<file>]

  Reads transactions in JSONL form from a file (or stdin) and appends
  them to the ledger. Malformed lines abort the import before anything
  is written.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := os.Stdin
	if f.NArg() > 0 {
		var err error
		r, err = os.Open(f.Arg(0))
		if err != nil {
			return fail(err)
		}
		defer r.Close()
	}

	ledger, err := networth.DecodeLedger(r)
	if err != nil {
		return fail(err)
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

	count := 0
	for _, tx := range ledger.Transactions() {
		tx.ID = "" // imported rows get fresh ids
		if _, err := db.AddTransaction(cfg.User, tx); err != nil {
			return fail(err)
		}
		count++
	}
	fmt.Printf("Imported %d transactions\n", count)
	return subcommands.ExitSuccess
}
