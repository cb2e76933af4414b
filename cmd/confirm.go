package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tourops/tourledger"
)

type confirmCmd struct {
	id   string
	void bool
}

func (*confirmCmd) Name() string     { return "confirm" }
func (*confirmCmd) Synopsis() string { return "confirm or void a pending transaction" }
func (*confirmCmd) Usage() string {
	return `tlg confirm -t <transaction> [-void]

  Flips a transaction to confirmed, or to void with -void. A void
  transaction stays in the file but leaves every total and report.
`
}

func (c *confirmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "t", "", "Transaction id")
	f.BoolVar(&c.void, "void", false, "Void the transaction instead of confirming it")
}

func (c *confirmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	status := tourledger.Confirmed
	if c.void {
		status = tourledger.Void
	}

	if err := ledger.Update(c.id, func(tx tourledger.Transaction) tourledger.Transaction {
		return tx.WithState(status)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := rewriteLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Transaction %s is now %s\n", c.id, status)
	return subcommands.ExitSuccess
}
