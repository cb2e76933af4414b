package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tourops/tourledger"
	"github.com/tourops/tourledger/renderer"
)

type alertsCmd struct{}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "scan the ledger for anomalies" }
func (*alertsCmd) Usage() string {
	return `tlg alerts

  Scans the ledger for anomalies: payment methods landing on the wrong kind
  of holder, negative balances, pending movements past their deadline, and
  idle cash.
`
}

func (*alertsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *alertsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	reg, err := DecodeHolders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holders: %v\n", err)
		return subcommands.ExitFailure
	}
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	alerts := tourledger.ScanAlerts(ledger, reg, tourledger.Today(), settings.AlertConfig())
	printMarkdown(renderer.AlertsMarkdown(alerts))
	return subcommands.ExitSuccess
}
