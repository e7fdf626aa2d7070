package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard/renderer"

	"github.com/google/subcommands"
)

type holdingsCmd struct {
	live bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display current holdings and their value" }
func (*holdingsCmd) Usage() string {
	return `holdings [-live]

  Displays net quantity, average cost and current value per asset. Closed
  positions are listed last with a zero quantity.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.live, "live", false, "value stock and crypto assets at the latest market quote")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := openDashboard(c.live)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	s, err := d.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Holdings(s))
	return subcommands.ExitSuccess
}
