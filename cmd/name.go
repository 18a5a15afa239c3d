package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/cafa101001/my-asset-app/twse"
)

type nameCmd struct{}

func (*nameCmd) Name() string     { return "name" }
func (*nameCmd) Synopsis() string { return "look up the listed name of a Taiwan stock code" }
func (*nameCmd) Usage() string {
	return `nwa name <code>...

  Resolves stock codes through the TWSE suggestion endpoint.

Usage Examples:
$ nwa name 2330 0050
`
}

func (*nameCmd) SetFlags(f *flag.FlagSet) {}

func (c *nameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return fail(fmt.Errorf("expected at least one stock code"))
	}

	client := twse.New()
	status := subcommands.ExitSuccess
	for _, code := range f.Args() {
		name, err := client.Name(code)
		if err != nil {
			fmt.Printf("%s: %v\n", code, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Println(twse.DisplayName(name, code))
	}
	return status
}
