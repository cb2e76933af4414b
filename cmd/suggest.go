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

type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest bookings for loose payments" }
func (*suggestCmd) Usage() string {
	return `tlg suggest

  Lists the confirmed incoming payments recorded without a booking and, for
  each, the best matching booking with a confidence score. Attach one with
  'tlg attach'.
`
}

func (*suggestCmd) SetFlags(_ *flag.FlagSet) {}

func (c *suggestCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	suggestions := tourledger.SuggestAll(ledger, bookings)
	printMarkdown(renderer.SuggestionsMarkdown(ledger, suggestions))
	return subcommands.ExitSuccess
}
