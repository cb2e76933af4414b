// Package cmd implements the CLI application to manage the tour operator
// ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/spf13/viper"
	"github.com/tourops/tourledger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&inCmd{}, "transactions")
	c.Register(&outCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&exchangeCmd{}, "transactions")
	c.Register(&confirmCmd{}, "transactions")
	c.Register(&attachCmd{}, "transactions")

	c.Register(&balancesCmd{}, "reports")
	c.Register(&bookingsCmd{}, "reports")
	c.Register(&suggestCmd{}, "reports")
	c.Register(&alertsCmd{}, "reports")
	c.Register(&logCmd{}, "reports")

	c.Register(&mealsCmd{}, "maintenance")
	c.Register(&rateCmd{}, "maintenance")
	c.Register(&fmtCmd{}, "maintenance")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file (JSONL format)")
var holdersFile = flag.String("holders-file", "holders.jsonl", "Path to the holder registry file (JSONL format)")
var bookingsFile = flag.String("bookings-file", "bookings.jsonl", "Path to the bookings file (JSONL format)")
var expensesFile = flag.String("expenses-file", "expenses.jsonl", "Path to the standalone expenses file (JSONL format)")
var rateFile = flag.String("rate-file", "rates.json", "Path to the current exchange rate file")

// Settings are the durable engine settings, read from tourledger.yaml with
// TLG_* environment overrides. Paths and dates stay on flags.
type Settings struct {
	MealPairRate  float64  // per pair of adults per night, in EUR
	MealHotels    []string // hotel allow-list for the meals rule
	MealsHolder   string   // holder the generated meals expense is booked against
	StaleDays     int
	IdleDays      int
	IdleThreshold float64 // in EUR
}

// LoadSettings reads the configuration file if present and applies defaults
// otherwise.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetConfigName("tourledger")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TLG")
	v.AutomaticEnv()

	v.SetDefault("meals.pair_rate", 15.0)
	v.SetDefault("meals.hotels", []string{})
	v.SetDefault("meals.holder", "safe")
	v.SetDefault("alerts.stale_days", 7)
	v.SetDefault("alerts.idle_days", 7)
	v.SetDefault("alerts.idle_threshold", 1000.0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("could not read configuration: %w", err)
		}
	}

	return Settings{
		MealPairRate:  v.GetFloat64("meals.pair_rate"),
		MealHotels:    v.GetStringSlice("meals.hotels"),
		MealsHolder:   v.GetString("meals.holder"),
		StaleDays:     v.GetInt("alerts.stale_days"),
		IdleDays:      v.GetInt("alerts.idle_days"),
		IdleThreshold: v.GetFloat64("alerts.idle_threshold"),
	}, nil
}

// MealPlan builds the meals rule from the settings.
func (s Settings) MealPlan() tourledger.MealPlan {
	return tourledger.MealPlan{
		PairRate: tourledger.M(s.MealPairRate, tourledger.BaseCurrency),
		Hotels:   s.MealHotels,
	}
}

// AlertConfig builds the scan thresholds from the settings.
func (s Settings) AlertConfig() tourledger.AlertConfig {
	return tourledger.AlertConfig{
		StaleAfterDays: s.StaleDays,
		IdleAfterDays:  s.IdleDays,
		IdleThreshold:  tourledger.M(s.IdleThreshold, tourledger.BaseCurrency),
	}
}

// DecodeLedger decodes the ledger from the app default ledger file. A
// missing file is an empty ledger.
func DecodeLedger() (*tourledger.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return tourledger.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return tourledger.DecodeLedger(f)
}

// DecodeHolders decodes the holder registry from the app default file. A
// missing file is an empty registry.
func DecodeHolders() (*tourledger.Registry, error) {
	f, err := os.Open(*holdersFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, holders file does not exist, using an empty registry")
		return tourledger.NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open holders file %q: %w", *holdersFile, err)
	}
	defer f.Close()
	return tourledger.DecodeHolders(f)
}

// DecodeBookings decodes the bookings from the app default file. A missing
// file is an empty list.
func DecodeBookings() ([]tourledger.Booking, error) {
	f, err := os.Open(*bookingsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open bookings file %q: %w", *bookingsFile, err)
	}
	defer f.Close()
	return tourledger.DecodeBookings(f)
}

// DecodeExpenses decodes the standalone expenses from the app default file.
// A missing file is an empty list.
func DecodeExpenses() ([]tourledger.Expense, error) {
	f, err := os.Open(*expensesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open expenses file %q: %w", *expensesFile, err)
	}
	defer f.Close()
	return tourledger.DecodeExpenses(f)
}

// LoadRate reads the current exchange rate from the app default rate file.
// A missing file is a zero rate: conversions come out as zero until a rate
// is set.
func LoadRate() tourledger.Rate {
	f, err := os.Open(*rateFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning, could not open rate file %q: %v", *rateFile, err)
		}
		return tourledger.Rate{}
	}
	defer f.Close()
	rate, err := tourledger.DecodeRate(f)
	if err != nil {
		log.Printf("warning, could not decode rate file %q: %v", *rateFile, err)
		return tourledger.Rate{}
	}
	return rate
}

// SaveRate writes the current exchange rate to the app default rate file.
func SaveRate(rate tourledger.Rate) error {
	f, err := os.Create(*rateFile)
	if err != nil {
		return fmt.Errorf("could not create rate file %q: %w", *rateFile, err)
	}
	defer f.Close()
	return tourledger.EncodeRate(f, rate, tourledger.Today())
}

// appendTransaction validates and appends a transaction to the app default
// ledger file.
func appendTransaction(tx tourledger.Transaction) subcommands.ExitStatus {
	reg, err := DecodeHolders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holders: %v\n", err)
		return subcommands.ExitFailure
	}

	validated, err := tx.Validate(reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tourledger.EncodeTransaction(f, validated); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s transaction %s to %s\n", validated.What(), validated.Ref(), *ledgerFile)
	return subcommands.ExitSuccess
}

// rewriteLedger writes the whole ledger back in canonical form.
func rewriteLedger(l *tourledger.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not rewrite ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return tourledger.EncodeLedger(f, l)
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
