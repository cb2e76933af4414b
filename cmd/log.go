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

type logCmd struct {
	from    string
	to      string
	booking string
	holder  string
	kind    string
	status  string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list recorded transactions" }
func (*logCmd) Usage() string {
	return `tlg log [-from <date>] [-to <date>] [-b <booking>] [-H <holder>] [-k <kind>] [-s <status>]

  Lists transactions in chronological order. All filters combine; void
  transactions never show.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date, inclusive (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "End date, inclusive (YYYY-MM-DD)")
	f.StringVar(&c.booking, "b", "", "Booking reference")
	f.StringVar(&c.holder, "H", "", "Holder referenced in any role")
	f.StringVar(&c.kind, "k", "", "Transaction kind (in, out, transfer or exchange)")
	f.StringVar(&c.status, "s", "", "Transaction status (pending or confirmed)")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := tourledger.Filter{
		Booking: c.booking,
		Holder:  c.holder,
		Kind:    tourledger.Kind(c.kind),
		Status:  tourledger.Status(c.status),
	}
	var err error
	if c.from != "" {
		if filter.From, err = tourledger.ParseDate(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if filter.To, err = tourledger.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(ledger.Select(filter)))
	return subcommands.ExitSuccess
}
