package renderer

import (
	"strings"
	"testing"

	"github.com/tourops/tourledger"
)

func testRegistry() *tourledger.Registry {
	return tourledger.NewRegistry(
		tourledger.Holder{ID: "safe", Name: "Office Safe", Type: tourledger.HolderCash, Currency: "EUR", Active: true},
		tourledger.Holder{ID: "bank", Name: "Company Account", Type: tourledger.HolderBank, Currency: "EUR", Active: true},
	)
}

func TestBalancesMarkdown(t *testing.T) {
	l := tourledger.NewLedger()
	l.Append(
		tourledger.NewCashIn(tourledger.MustParseDate("2026-08-10"), "safe", tourledger.M(1200, "EUR"), "", "", "", ""),
		tourledger.NewCashIn(tourledger.MustParseDate("2026-08-11"), "bank", tourledger.M(300, "USD"), "", "", "", ""),
	)
	reg := testRegistry()

	md := BalancesMarkdown(reg, tourledger.AllBalances(l, reg), tourledger.NewRateFloat(1.10))

	for _, want := range []string{
		"## Holder Balances",
		"Office Safe",
		"Company Account",
		"€1200",
		"$300",
		"2026-08-10",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report misses %q:\n%s", want, md)
		}
	}
}

func TestBookingsMarkdown(t *testing.T) {
	rows := []tourledger.BookingRow{
		{
			Booking:  "BK-1041",
			Code:     "MAR-41",
			Client:   "Dupont",
			Arrival:  tourledger.MustParseDate("2026-08-12"),
			Revenue:  tourledger.M(2400, "EUR"),
			Received: tourledger.M(1000, "EUR"),
			Status:   tourledger.StatusPartial,
		},
	}
	md := BookingsMarkdown(rows)
	for _, want := range []string{"MAR-41", "Dupont", "🟡 partial", "€2400"} {
		if !strings.Contains(md, want) {
			t.Errorf("report misses %q:\n%s", want, md)
		}
	}

	if got := BookingsMarkdown(nil); !strings.Contains(got, "No priced bookings.") {
		t.Errorf("empty report = %q", got)
	}
}

func TestAlertsMarkdown(t *testing.T) {
	alerts := []tourledger.Alert{
		{Type: tourledger.AlertNegativeBalance, Severity: tourledger.SeverityCritical, Holder: "safe", Message: "balance is negative"},
	}
	md := AlertsMarkdown(alerts)
	for _, want := range []string{"🔴 critical", "negative-balance", "safe"} {
		if !strings.Contains(md, want) {
			t.Errorf("report misses %q:\n%s", want, md)
		}
	}

	if got := AlertsMarkdown(nil); !strings.Contains(got, "Nothing to report.") {
		t.Errorf("empty report = %q", got)
	}
}

func TestSuggestionsMarkdown(t *testing.T) {
	tx := tourledger.NewCashIn(tourledger.MustParseDate("2026-08-10"), "safe", tourledger.M(1000, "EUR"), "", "", "", "")
	tx.ID = "4f5e6d7c-0000-0000-0000-000000000000"
	l := tourledger.NewLedger()
	l.Append(tx)

	suggestions := []tourledger.Suggestion{
		{TxID: tx.ID, BookingID: "BK-1041", Code: "MAR-41", Confidence: 92},
	}
	md := SuggestionsMarkdown(l, suggestions)
	for _, want := range []string{"4f5e6d7c", "MAR-41", "92%", "tlg attach"} {
		if !strings.Contains(md, want) {
			t.Errorf("report misses %q:\n%s", want, md)
		}
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	txs := []tourledger.Transaction{
		tourledger.NewCashOut(tourledger.MustParseDate("2026-08-10"), "safe", tourledger.M(90, "USD"), "BK-1", "guide", "", ""),
		tourledger.NewTransfer(tourledger.MustParseDate("2026-08-11"), "safe", "bank", tourledger.M(500, "EUR"), ""),
	}
	md := TransactionsMarkdown(txs)
	for _, want := range []string{"safe (guide)", "safe → bank", "$90", "BK-1"} {
		if !strings.Contains(md, want) {
			t.Errorf("report misses %q:\n%s", want, md)
		}
	}
}
