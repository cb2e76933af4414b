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

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show per-holder cash positions" }
func (*balancesCmd) Usage() string {
	return `tlg balances

  Shows every active holder with its confirmed balance per currency, the
  pending amounts, an indicative total in EUR and the last activity date.
`
}

func (*balancesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *balancesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	balances := tourledger.AllBalances(ledger, reg)
	printMarkdown(renderer.BalancesMarkdown(reg, balances, LoadRate()))
	return subcommands.ExitSuccess
}
