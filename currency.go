package tourledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The two currencies the dashboard operates in. Every holder balance and
// booking rollup is computed per currency; BaseCurrency is only used when a
// single comparable figure is required (received vs. revenue).
const (
	EUR = "EUR"
	USD = "USD"
)

// BaseCurrency is the currency booking revenue is quoted in.
const BaseCurrency = EUR

// SupportedCurrencies lists the currency codes a transaction may carry.
var SupportedCurrencies = []string{EUR, USD}

// ValidateCurrency returns an error if the code is not one of the supported
// currencies.
func ValidateCurrency(code string) error {
	for _, c := range SupportedCurrencies {
		if c == code {
			return nil
		}
	}
	return fmt.Errorf("unsupported currency %q, want one of %v", code, SupportedCurrencies)
}

// OtherCurrency returns the counter currency of the given code.
func OtherCurrency(code string) string {
	if code == EUR {
		return USD
	}
	return EUR
}

// Rate is the current bidirectional EUR/USD conversion rate. It is consumed
// read-only at aggregation time and always injected explicitly, so the folds
// stay pure. The zero Rate converts everything to zero, matching the
// documented behavior for a missing rate.
type Rate struct {
	eurUSD decimal.Decimal // USD per 1 EUR
}

// NewRate builds a Rate from the amount of USD one EUR buys.
func NewRate(usdPerEUR decimal.Decimal) Rate {
	return Rate{eurUSD: usdPerEUR}
}

// NewRateFloat is a convenience constructor for tests and CLI flags.
func NewRateFloat(usdPerEUR float64) Rate {
	return NewRate(decimal.NewFromFloat(usdPerEUR))
}

// IsZero reports whether the rate is unset.
func (r Rate) IsZero() bool { return r.eurUSD.IsZero() }

// USDPerEUR returns the raw quote.
func (r Rate) USDPerEUR() decimal.Decimal { return r.eurUSD }

// Convert returns m expressed in the target currency. Converting to the
// money's own currency is the identity. With an unset rate the converted
// value is zero, never an error.
func (r Rate) Convert(m Money, target string) Money {
	if m.Currency() == target || m.Currency() == "" {
		return M(m.Decimal(), target)
	}
	switch target {
	case USD:
		return M(m.Decimal().Mul(r.eurUSD), USD)
	case EUR:
		if r.eurUSD.IsZero() {
			return M(0, EUR)
		}
		return M(m.Decimal().Div(r.eurUSD), EUR)
	}
	return M(0, target)
}

// String renders the quote the way the rate file stores it.
func (r Rate) String() string {
	return fmt.Sprintf("1 EUR = %s USD", r.eurUSD.String())
}
