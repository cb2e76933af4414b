package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tourops/tourledger"
)

type mealsCmd struct {
	dryRun bool
}

func (*mealsCmd) Name() string     { return "meals" }
func (*mealsCmd) Synopsis() string { return "generate breakfast expenses for bookings" }
func (*mealsCmd) Usage() string {
	return `tlg meals [-n]

  Applies the meals rule to every booking: for nights spent in one of the
  configured hotels, appends a breakfast expense unless the booking already
  carries one. Running it twice adds nothing.
`
}

func (c *mealsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Compute the expenses without writing them")
}

func (c *mealsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	settings, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var sink tourledger.TransactionWriter
	if c.dryRun {
		sink = tourledger.NewLedger()
	} else {
		f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		sink = fileSink{f}
	}

	gen := tourledger.NewGenerator(ledger, sink, settings.MealsHolder, settings.MealPlan())
	generated, err := gen.GenerateAll(bookings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating meals: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, tx := range generated {
		fmt.Printf("%s %s %s booking %s\n", tx.When(), tx.Ref(), tx.Value(), tx.BookingRef())
	}
	if c.dryRun {
		fmt.Printf("Would append %d meals expenses (dry run)\n", len(generated))
	} else {
		fmt.Printf("Appended %d meals expenses to %s\n", len(generated), *ledgerFile)
	}
	return subcommands.ExitSuccess
}

// fileSink appends generated transactions straight to the ledger file.
type fileSink struct {
	f *os.File
}

func (s fileSink) AppendTransaction(tx tourledger.Transaction) error {
	return tourledger.EncodeTransaction(s.f, tx)
}
