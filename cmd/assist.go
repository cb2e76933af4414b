package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/tourops/tourledger"
	"github.com/tourops/tourledger/agent"
	"github.com/tourops/tourledger/renderer"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `tlg assist [<initial question>]

  Starts an interactive session with the AI assistant. The assistant reads
  the same reports as the balances, bookings, alerts and suggest commands.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	bookkeeper := agent.NewBookkeeper(fileReports{})
	a := agent.New(os.Stdout, os.Stdin, bookkeeper)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// fileReports wires the agent's reports to the app default data files. Each
// call reloads from disk so the assistant always sees the current state.
type fileReports struct{}

func (fileReports) Balances() (string, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return "", err
	}
	reg, err := DecodeHolders()
	if err != nil {
		return "", err
	}
	return renderer.BalancesMarkdown(reg, tourledger.AllBalances(ledger, reg), LoadRate()), nil
}

func (fileReports) Bookings() (string, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return "", err
	}
	bookings, err := DecodeBookings()
	if err != nil {
		return "", err
	}
	expenses, err := DecodeExpenses()
	if err != nil {
		return "", err
	}
	settings, err := LoadSettings()
	if err != nil {
		return "", err
	}
	rows := tourledger.RollupAll(ledger, bookings, expenses, LoadRate(), settings.MealPlan())
	return renderer.BookingsMarkdown(rows), nil
}

func (fileReports) Alerts() (string, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return "", err
	}
	reg, err := DecodeHolders()
	if err != nil {
		return "", err
	}
	settings, err := LoadSettings()
	if err != nil {
		return "", err
	}
	alerts := tourledger.ScanAlerts(ledger, reg, tourledger.Today(), settings.AlertConfig())
	return renderer.AlertsMarkdown(alerts), nil
}

func (fileReports) Suggestions() (string, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return "", err
	}
	bookings, err := DecodeBookings()
	if err != nil {
		return "", err
	}
	return renderer.SuggestionsMarkdown(ledger, tourledger.SuggestAll(ledger, bookings)), nil
}
