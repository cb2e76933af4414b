package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tourops/tourledger"
)

type rateCmd struct {
	set   float64
	fetch bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show, set or fetch the EUR/USD rate" }
func (*rateCmd) Usage() string {
	return `tlg rate [-set <rate> | -fetch]

  Without flags, shows the current EUR/USD display rate. With -set, stores
  the given rate. With -fetch, retrieves the daily reference rate from the
  Frankfurter service and stores it.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.set, "set", 0, "Store this rate as USD per EUR")
	f.BoolVar(&c.fetch, "fetch", false, "Fetch and store the daily reference rate")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch {
	case c.fetch:
		rate, err := tourledger.FetchRate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching rate: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := SaveRate(rate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Fetched and stored %s\n", rate)

	case c.set > 0:
		rate := tourledger.NewRateFloat(c.set)
		if err := SaveRate(rate); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Stored %s\n", rate)

	case c.set < 0:
		f.Usage()
		return subcommands.ExitUsageError

	default:
		rate := LoadRate()
		if rate.IsZero() {
			fmt.Println("No rate stored yet. Set one with 'tlg rate -set <rate>' or 'tlg rate -fetch'.")
			return subcommands.ExitSuccess
		}
		fmt.Println(rate)
	}
	return subcommands.ExitSuccess
}
