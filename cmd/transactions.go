package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/tourops/tourledger"
)

// --- In Command ---

type inCmd struct {
	date     string
	holder   string
	amount   float64
	currency string
	booking  string
	category string
	method   string
	pending  bool
	note     string
}

func (*inCmd) Name() string     { return "in" }
func (*inCmd) Synopsis() string { return "record money received by a holder" }
func (*inCmd) Usage() string {
	return `tlg in -H <holder> -a <amount> [-c <currency>] [-b <booking>] [-g <category>] [-m <method>] [-pending] [-n <note>]

  Records an incoming payment. The amount is credited to the responsible
  holder once confirmed.
`
}

func (c *inCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tourledger.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.holder, "H", "", "Responsible holder id")
	f.Float64Var(&c.amount, "a", 0, "Amount, non-negative")
	f.StringVar(&c.currency, "c", tourledger.BaseCurrency, "Currency (EUR or USD)")
	f.StringVar(&c.booking, "b", "", "Booking reference")
	f.StringVar(&c.category, "g", "", "Category tag")
	f.StringVar(&c.method, "m", "", "Payment method (cash, card or bank)")
	f.BoolVar(&c.pending, "pending", false, "Record as pending instead of confirmed")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
}

func (c *inCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holder == "" || c.amount < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tourledger.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := tourledger.NewCashIn(day, c.holder, tourledger.M(c.amount, c.currency),
		c.booking, c.category, tourledger.Method(c.method), c.note)
	if c.pending {
		return appendTransaction(tx.WithState(tourledger.Pending))
	}
	return appendTransaction(tx)
}

// --- Out Command ---

type outCmd struct {
	date     string
	holder   string
	amount   float64
	currency string
	booking  string
	category string
	method   string
	pending  bool
	note     string
}

func (*outCmd) Name() string     { return "out" }
func (*outCmd) Synopsis() string { return "record money spent by a holder" }
func (*outCmd) Usage() string {
	return `tlg out -H <holder> -a <amount> [-c <currency>] [-b <booking>] [-g <category>] [-m <method>] [-pending] [-n <note>]

  Records an expense. The amount is debited from the responsible holder once
  confirmed.
`
}

func (c *outCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tourledger.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.holder, "H", "", "Responsible holder id")
	f.Float64Var(&c.amount, "a", 0, "Amount, non-negative")
	f.StringVar(&c.currency, "c", tourledger.BaseCurrency, "Currency (EUR or USD)")
	f.StringVar(&c.booking, "b", "", "Booking reference")
	f.StringVar(&c.category, "g", "", "Category tag")
	f.StringVar(&c.method, "m", "", "Payment method (cash, card or bank)")
	f.BoolVar(&c.pending, "pending", false, "Record as pending instead of confirmed")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
}

func (c *outCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holder == "" || c.amount < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tourledger.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := tourledger.NewCashOut(day, c.holder, tourledger.M(c.amount, c.currency),
		c.booking, c.category, tourledger.Method(c.method), c.note)
	if c.pending {
		return appendTransaction(tx.WithState(tourledger.Pending))
	}
	return appendTransaction(tx)
}

// --- Transfer Command ---

type transferCmd struct {
	date     string
	from     string
	to       string
	amount   float64
	currency string
	note     string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two holders" }
func (*transferCmd) Usage() string {
	return `tlg transfer -f <from> -t <to> -a <amount> [-c <currency>] [-n <note>]

  Moves money between two holders: same currency, same amount on both sides.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tourledger.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.from, "f", "", "Source holder id")
	f.StringVar(&c.to, "t", "", "Destination holder id")
	f.Float64Var(&c.amount, "a", 0, "Amount, non-negative")
	f.StringVar(&c.currency, "c", tourledger.BaseCurrency, "Currency (EUR or USD)")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tourledger.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := tourledger.NewTransfer(day, c.from, c.to, tourledger.M(c.amount, c.currency), c.note)
	return appendTransaction(tx)
}

// --- Exchange Command ---

type exchangeCmd struct {
	date     string
	holder   string
	amount   float64
	currency string
	rate     float64
	note     string
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "convert money between EUR and USD within a holder" }
func (*exchangeCmd) Usage() string {
	return `tlg exchange -H <holder> -a <amount> -c <currency> -r <rate> [-n <note>]

  Converts money within one holder: debits the amount in its currency and
  credits amount × rate in the other currency.
`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", tourledger.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.holder, "H", "", "Responsible holder id")
	f.Float64Var(&c.amount, "a", 0, "Amount to convert, non-negative")
	f.StringVar(&c.currency, "c", tourledger.BaseCurrency, "Currency of the debited amount (EUR or USD)")
	f.Float64Var(&c.rate, "r", 0, "Conversion rate applied to the amount")
	f.StringVar(&c.note, "n", "", "An optional note for the transaction")
}

func (c *exchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holder == "" || c.amount < 0 || c.rate <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := tourledger.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := tourledger.NewExchange(day, c.holder, tourledger.M(c.amount, c.currency),
		decimal.NewFromFloat(c.rate), c.note)
	return appendTransaction(tx)
}
