package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("FINBOARD_TEST_KEY", "from-env")
	if got := envOr("FINBOARD_TEST_KEY", "fallback"); got != "from-env" {
		t.Errorf("envOr() = %q, want from-env", got)
	}
	if got := envOr("FINBOARD_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("envOr() = %q, want fallback", got)
	}
}

func TestRegister(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("fbd", flag.ContinueOnError), "fbd")
	Register(commander)

	want := []string{"buy", "sell", "tx", "holdings", "allocation", "summary", "fmt", "topic"}
	registered := make(map[string]bool)
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		registered[c.Name()] = true
	})
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q is not registered", name)
		}
	}
}

func TestDashboardFlags(t *testing.T) {
	// The globals are plain flags: usable defaults out of the box.
	if *ledgerFile == "" {
		t.Error("ledger-file default should not be empty")
	}
	if *currency == "" {
		t.Error("currency default should not be empty")
	}
	if !*allowNegative {
		t.Error("allow-negative should default to true")
	}
}
