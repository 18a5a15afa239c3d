package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/agent"
	"github.com/cafa101001/my-asset-app/renderer"
	"github.com/cafa101001/my-asset-app/store"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `nwa assist [<question>]

  Starts a chat with an advisor primed with your current holdings and net
  worth. Requires a Gemini API key, from the config file or the
  GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
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

	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(
		renderer.HoldingsMarkdown(v, networth.Today()),
		renderer.SummaryMarkdown(networth.Today(), net, v, set),
	)
	a := agent.New(os.Stdout, os.Stdin, advisor)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
