package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tourops/tourledger"
)

type attachCmd struct {
	id      string
	booking string
}

func (*attachCmd) Name() string     { return "attach" }
func (*attachCmd) Synopsis() string { return "attach a loose payment to a booking" }
func (*attachCmd) Usage() string {
	return `tlg attach -t <transaction> -b <booking>

  Attaches a booking reference to a payment recorded without one, usually
  following a 'tlg suggest' report.
`
}

func (c *attachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "t", "", "Transaction id")
	f.StringVar(&c.booking, "b", "", "Booking reference")
}

func (c *attachCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || c.booking == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.Update(c.id, func(tx tourledger.Transaction) tourledger.Transaction {
		return tx.WithBooking(c.booking)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := rewriteLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Transaction %s is now attached to booking %s\n", c.id, c.booking)
	return subcommands.ExitSuccess
}
