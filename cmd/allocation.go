package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"finboard/renderer"

	"github.com/google/subcommands"
)

type allocationCmd struct {
	by   string
	live bool
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the portfolio allocation breakdown" }
func (*allocationCmd) Usage() string {
	return `allocation [-by asset|type] [-live]

  Displays each open position's share of total portfolio value, grouped by
  individual asset or by asset type.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "asset", "Grouping: asset or type")
	f.BoolVar(&c.live, "live", false, "value stock and crypto assets at the latest market quote")
}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var report *renderer.AllocationReport
	switch c.by {
	case "asset":
		report = renderer.NewAllocationReport(s)
	case "type":
		report = renderer.NewAllocationByTypeReport(s)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown grouping %q, want asset or type\n", c.by)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.Allocation(report))
	return subcommands.ExitSuccess
}
