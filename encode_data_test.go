package tourledger

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeHolders(t *testing.T) {
	jsonl := `
{"id":"safe","name":"Office Safe","type":"cash","currency":"EUR","active":true}
{"id":"bank","name":"Company Account","type":"bank","currency":"EUR","active":true}
`
	reg, err := DecodeHolders(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := reg.Holder("safe"); got == nil || got.Type != HolderCash {
		t.Errorf("Holder(safe) = %v, want a cash holder", got)
	}
	if len(reg.All()) != 2 {
		t.Errorf("declared %d holders, want 2", len(reg.All()))
	}

	if _, err := DecodeHolders(strings.NewReader(`{"id":"x","type":"wallet","currency":"EUR"}`)); err == nil {
		t.Error("an invalid holder type must fail decoding")
	}
}

func TestDecodeBookings(t *testing.T) {
	jsonl := `
{"id":"BK-1041","code":"MAR-41","client":"Dupont","arrival":"2026-08-12","days":8,"price":2400,"itinerary":[{"hotel":"Riad Dar Salam","adults":3}]}
{"id":"BK-1042","code":"MAR-42","client":"Smith","arrival":"2026-08-15","days":5,"price":1500,"currency":"USD"}
`
	bookings, err := DecodeBookings(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("decoded %d bookings, want 2", len(bookings))
	}

	b := bookings[0]
	if b.ID != "BK-1041" || b.Code != "MAR-41" || b.Arrival != MustParseDate("2026-08-12") {
		t.Errorf("unexpected booking: %+v", b)
	}
	// Price currency defaults to the base currency.
	if !b.Price.Equal(eur(2400)) {
		t.Errorf("price = %s, want %s", b.Price, eur(2400))
	}
	if b.Adults() != 3 {
		t.Errorf("adults = %d, want 3", b.Adults())
	}

	if !bookings[1].Price.Equal(usd(1500)) {
		t.Errorf("price = %s, want %s", bookings[1].Price, usd(1500))
	}
	// No itinerary guest counts: the default applies.
	if bookings[1].Adults() != 2 {
		t.Errorf("adults = %d, want 2", bookings[1].Adults())
	}
}

func TestDecodeExpenses(t *testing.T) {
	jsonl := `{"id":"e-1","booking":"BK-1041","date":"2026-08-14","amount":120,"label":"camel trek"}`
	expenses, err := DecodeExpenses(strings.NewReader(jsonl))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("decoded %d expenses, want 1", len(expenses))
	}
	e := expenses[0]
	if e.Booking != "BK-1041" || !e.Amount.Equal(eur(120)) || e.Label != "camel trek" {
		t.Errorf("unexpected expense: %+v", e)
	}
}

func TestRate_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeRate(&buf, NewRateFloat(1.0923), MustParseDate("2026-08-28")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := DecodeRate(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.USDPerEUR().Equal(NewRateFloat(1.0923).USDPerEUR()) {
		t.Errorf("rate = %s, want 1.0923", got.USDPerEUR())
	}
}
