package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/renderer"
)

// tradeFlags are the fields shared by the buy and sell commands.
type tradeFlags struct {
	date     string
	class    string
	quantity float64
	price    float64
	memo     string
}

func (t *tradeFlags) set(f *flag.FlagSet) {
	f.StringVar(&t.date, "d", networth.Today().String(), "Trade date (YYYY-MM-DD).")
	f.StringVar(&t.class, "c", "", "Asset class: domestic-equity, foreign-equity or crypto. Guessed from the ticker when omitted.")
	f.Float64Var(&t.quantity, "q", 0, "Quantity of shares or coins.")
	f.Float64Var(&t.price, "p", 0, "Unit price in the asset's native currency.")
	f.StringVar(&t.memo, "memo", "", "Free-form note attached to the trade.")
}

// guessClass infers the asset class from the ticker's shape: all-digit
// codes are Taiwan-listed, well-known coin symbols are crypto, the rest
// is treated as a US listing.
func guessClass(ticker string) networth.AssetClass {
	t := networth.NormalizeTicker(ticker)
	allDigits := t != ""
	for _, r := range t {
		if r < '0' || r > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return networth.DomesticEquity
	}
	switch t {
	case "BTC", "ETH", "SOL", "USDT", "BTC-USD", "ETH-USD", "SOL-USD", "USDT-USD":
		return networth.Crypto
	}
	return networth.ForeignEquity
}

func (t *tradeFlags) record(f *flag.FlagSet, action networth.Action) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return fail(fmt.Errorf("expected exactly one ticker argument, got %d", f.NArg()))
	}
	ticker := f.Arg(0)

	on, err := networth.ParseDate(t.date)
	if err != nil {
		return fail(err)
	}
	class := guessClass(ticker)
	if t.class != "" {
		class, err = networth.ParseAssetClass(t.class)
		if err != nil {
			return fail(err)
		}
	}

	tx, err := networth.NewTransaction(on, ticker, class, action, networth.Q(t.quantity), networth.Q(t.price))
	if err != nil {
		return fail(err)
	}
	tx.Memo = t.memo

	cfg, err := LoadConfig()
	if err != nil {
		return fail(err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	id, err := db.AddTransaction(cfg.User, tx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s (id %s)\n", renderer.Transaction(tx), id)
	return subcommands.ExitSuccess
}

type buyCmd struct{ tradeFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy in the ledger" }
func (*buyCmd) Usage() string {
	return `nwa buy -q <quantity> -p <price> [-d <date>] [-c <class>] <ticker>

  Records a purchase. The weighted-average cost basis of the position is
  recomputed from the new lot.

Usage Examples:
$ nwa buy -q 1000 -p 612 2330
$ nwa buy -q 0.05 -p 43000 BTC
`
}
func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.set(f) }
func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, networth.Buy)
}

type sellCmd struct{ tradeFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell in the ledger" }
func (*sellCmd) Usage() string {
	return `nwa sell -q <quantity> -p <price> [-d <date>] [-c <class>] <ticker>

  Records a sale. The realized profit or loss against the average cost is
  reported by 'nwa tx'; the cost basis of the remaining shares is unchanged.

Usage Examples:
$ nwa sell -q 500 -p 650 2330
`
}
func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.set(f) }
func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(f, networth.Sell)
}
