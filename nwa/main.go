// Command nwa tracks a personal net worth: a ledger of trades, cash and
// debt, valued in TWD, with progress toward financial independence.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/cafa101001/my-asset-app/cmd"
)

// completions declares the command tree for shell completion.
func completions() *complete.Command {
	trade := &complete.Command{
		Flags: map[string]complete.Predictor{
			"q": predict.Something, "p": predict.Something,
			"d": predict.Something, "c": predict.Set{"domestic-equity", "foreign-equity", "crypto"},
			"memo": predict.Nothing,
		},
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"buy":      trade,
			"sell":     trade,
			"tx":       {Flags: map[string]complete.Predictor{"t": predict.Something, "head": predict.Something, "tail": predict.Something}},
			"rm":       {},
			"holdings": {Flags: map[string]complete.Predictor{"no-names": predict.Nothing}},
			"summary":  {Flags: map[string]complete.Predictor{"save": predict.Nothing}},
			"history":  {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"cash":     {Flags: map[string]complete.Predictor{"set": predict.Something, "amount": predict.Something, "rm": predict.Something}},
			"debt":     {Flags: map[string]complete.Predictor{"set": predict.Something, "amount": predict.Something, "cat": predict.Something, "rm": predict.Something}},
			"income":   {Flags: map[string]complete.Predictor{"add": predict.Something, "note": predict.Nothing, "d": predict.Something}},
			"settings": {Flags: map[string]complete.Predictor{"expense": predict.Something, "mode": predict.Set{"25x", "custom"}, "target": predict.Something}},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"import":   {Args: predict.Files("*.jsonl")},
			"name":     {},
			"assist":   {},
			"topic":    {Args: predict.Set{"ledger", "holdings", "valuation", "quotes", "fire", "readme"}},
		},
	}
}

func main() {
	completions().Complete("nwa")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "help")
	commander.Register(subcommands.FlagsCommand(), "help")
	commander.Register(subcommands.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
