package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard"

	"github.com/google/subcommands"
)

// submit records one transaction through the dashboard entry point and
// reports the outcome like a form submission would.
func submit(form finboard.TransactionForm) subcommands.ExitStatus {
	d, err := openDashboard(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	tx, err := d.SubmitTransaction(form)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s\n", tx)
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	date      string
	name      string
	assetType string
	quantity  string
	price     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of an asset" }
func (*buyCmd) Usage() string {
	return `buy -n <asset> -t <type> -q <quantity> -p <price> [-d <date>]

  Records a buy transaction and rewrites the ledger document.
  Asset types: stock, crypto, cash, bond, real_estate, other.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.name, "n", "", "Asset name")
	f.StringVar(&c.assetType, "t", "stock", "Asset type")
	f.StringVar(&c.quantity, "q", "", "Quantity bought")
	f.StringVar(&c.price, "p", "", "Price per unit")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.quantity == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return submit(finboard.TransactionForm{
		AssetName: c.name,
		AssetType: c.assetType,
		Action:    "buy",
		Quantity:  c.quantity,
		Price:     c.price,
		Date:      c.date,
	})
}

// --- Sell Command ---

type sellCmd struct {
	date      string
	name      string
	assetType string
	quantity  string
	price     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an asset" }
func (*sellCmd) Usage() string {
	return `sell -n <asset> -t <type> -q <quantity> -p <price> [-d <date>]

  Records a sell transaction and rewrites the ledger document. By default a
  sell may exceed the held quantity; see -allow-negative.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.name, "n", "", "Asset name")
	f.StringVar(&c.assetType, "t", "stock", "Asset type")
	f.StringVar(&c.quantity, "q", "", "Quantity sold")
	f.StringVar(&c.price, "p", "", "Price per unit")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.quantity == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return submit(finboard.TransactionForm{
		AssetName: c.name,
		AssetType: c.assetType,
		Action:    "sell",
		Quantity:  c.quantity,
		Price:     c.price,
		Date:      c.date,
	})
}
