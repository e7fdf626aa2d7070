package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard/renderer"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	live bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total value, return and concentration" }
func (*summaryCmd) Usage() string {
	return `summary [-live]

  Displays the overview headline numbers: total value and cost, unrealized
  gain/loss, and concentration metrics.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.live, "live", false, "value stock and crypto assets at the latest market quote")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := openDashboard(c.live)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	view, err := d.Summary()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(view))
	return subcommands.ExitSuccess
}
