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

type bookingsCmd struct{}

func (*bookingsCmd) Name() string     { return "bookings" }
func (*bookingsCmd) Synopsis() string { return "show the per-booking reconciliation" }
func (*bookingsCmd) Usage() string {
	return `tlg bookings

  Shows one row per booking: revenue, received so far, remaining, expenses,
  computed meals, net and payment status. Figures are in EUR at the current
  rate.
`
}

func (*bookingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *bookingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	bookings, err := DecodeBookings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bookings: %v\n", err)
		return subcommands.ExitFailure
	}
	expenses, err := DecodeExpenses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rows := tourledger.RollupAll(ledger, bookings, expenses, LoadRate(), settings.MealPlan())
	printMarkdown(renderer.BookingsMarkdown(rows))
	return subcommands.ExitSuccess
}
