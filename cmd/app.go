// Package cmd implements the CLI application: a terminal stand-in for the
// dashboard's web presentation layer.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"finboard"
	"finboard/quote"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Environment variables overriding the global flag defaults.
const (
	EnvLedgerFile = "FINBOARD_LEDGER_FILE"
	EnvCurrency   = "FINBOARD_CURRENCY"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the app-wide flags.

var ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "portfolio.json"), "Path to the ledger document (JSON)")
var currency = flag.String("currency", envOr(EnvCurrency, finboard.DefaultCurrency), "Reporting currency, 3-letter code")
var allowNegative = flag.Bool("allow-negative", true, "Accept sells exceeding the held quantity (negative positions)")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openDashboard loads the ledger and wires the pricing oracle. With live
// set, stock and crypto assets are valued at the latest market quote,
// everything else at the last recorded transaction price.
func openDashboard(live bool) (*finboard.Dashboard, error) {
	store := finboard.NewStore(*ledgerFile)
	ledger, err := store.Load()
	if err != nil {
		return nil, err
	}

	var oracle finboard.PriceOracle = finboard.LastTransactionPrices(ledger)
	if live {
		liveOracle := quote.NewOracle(quote.NewClient(), oracle)
		liveOracle.MarkQuotable(ledger)
		oracle = liveOracle
	}

	d, err := finboard.NewDashboard(store, oracle, *currency)
	if err != nil {
		return nil, err
	}
	d.AllowNegativePositions = *allowNegative
	return d, nil
}

// printMarkdown renders a markdown report for the terminal. When rendering
// fails (odd TERM, no tty) the raw markdown is still perfectly readable.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
