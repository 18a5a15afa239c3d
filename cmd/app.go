// Package cmd implements the CLI application to track a personal net worth.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"

	networth "github.com/cafa101001/my-asset-app"
	"github.com/cafa101001/my-asset-app/config"
	"github.com/cafa101001/my-asset-app/store"
	"github.com/cafa101001/my-asset-app/twse"
	"github.com/cafa101001/my-asset-app/yahoo"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&nameCmd{}, "reports")

	c.Register(&cashCmd{}, "balance sheet")
	c.Register(&debtCmd{}, "balance sheet")
	c.Register(&incomeCmd{}, "balance sheet")
	c.Register(&settingsCmd{}, "balance sheet")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the config file (defaults to ~/.networth/config.yaml)")

// LoadConfig reads the app configuration and applies its overrides.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if cfg.FallbackUSDTWD > 0 {
		networth.FallbackUSDTWD = networth.Q(cfg.FallbackUSDTWD)
	}
	return cfg, nil
}

// OpenStore is the central function to open the database, creating its
// folder on first use.
func OpenStore(cfg *config.Config) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create database folder: %w", err)
	}
	return store.Open(cfg.DBPath)
}

// Quotes builds the market-data client from the configured TTL.
func Quotes(cfg *config.Config) *yahoo.Client {
	ttl, err := cfg.ParseQuoteTTL()
	if err != nil {
		ttl = time.Minute
	}
	return yahoo.New(ttl)
}

// Names resolves display names for domestic tickers, leaving everything
// else untouched. Lookup failures degrade to the bare ticker.
func Names(holdings []networth.Holding) {
	client := twse.New()
	for i, h := range holdings {
		if h.Class != networth.DomesticEquity {
			continue
		}
		name, err := client.Name(h.Ticker)
		if err != nil {
			continue
		}
		holdings[i].DisplayName = name
	}
}

// fail prints an error and returns the failure status, the common exit
// path of every command.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
