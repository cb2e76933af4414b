package tourledger

import (
	"sync"
	"testing"
)

func mealsBooking(id string) Booking {
	return Booking{
		ID:    id,
		Code:  "MAR-41",
		Price: eur(1000),
		Itinerary: []ItineraryDay{
			{Hotel: "Riad Dar Salam", Adults: 3},
			{Hotel: "Riad Dar Salam"},
		},
	}
}

func TestGenerator_Generate(t *testing.T) {
	l := NewLedger()
	sink := NewLedger()
	g := NewGenerator(l, sink, "safe", standardMeals())

	tx, err := g.Generate(mealsBooking("BK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx == nil {
		t.Fatal("expected a generated transaction")
	}

	out, ok := tx.(CashOut)
	if !ok {
		t.Fatalf("generated a %T, want CashOut", tx)
	}
	// 2 pairs × 15 × 2 nights.
	if !out.Amount.Equal(eur(60)) {
		t.Errorf("amount = %s, want %s", out.Amount, eur(60))
	}
	if out.Holder != "safe" || out.Booking != "BK-1" || out.Category != CategoryBreakfast {
		t.Errorf("unexpected fields: %+v", out)
	}
	if !out.Auto {
		t.Error("generated transaction must be marked auto")
	}
	if out.State() != Confirmed {
		t.Errorf("status = %s, want confirmed", out.State())
	}
	if out.Ref() == "" {
		t.Error("generated transaction must carry an id")
	}
	if sink.Len() != 1 {
		t.Errorf("sink holds %d transactions, want 1", sink.Len())
	}
}

func TestGenerator_SecondRunAddsNothing(t *testing.T) {
	l := NewLedger()
	sink := NewLedger()
	g := NewGenerator(l, sink, "safe", standardMeals())

	if _, err := g.Generate(mealsBooking("BK-1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tx, err := g.Generate(mealsBooking("BK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx != nil {
		t.Errorf("second run generated %v, want nothing", tx)
	}
	if sink.Len() != 1 {
		t.Errorf("sink holds %d transactions, want 1", sink.Len())
	}
}

func TestGenerator_SkipsExistingBreakfast(t *testing.T) {
	l := NewLedger()
	l.Append(NewCashOut(MustParseDate("2026-08-01"), "safe", eur(42), "BK-1", CategoryBreakfast, "", ""))
	sink := NewLedger()
	g := NewGenerator(l, sink, "safe", standardMeals())

	tx, err := g.Generate(mealsBooking("BK-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx != nil || sink.Len() != 0 {
		t.Error("an existing breakfast movement must suppress generation")
	}
}

func TestGenerator_SkipsZeroMeals(t *testing.T) {
	l := NewLedger()
	sink := NewLedger()
	g := NewGenerator(l, sink, "safe", standardMeals())

	b := Booking{ID: "BK-1", Price: eur(1000), Itinerary: []ItineraryDay{{Hotel: "Desert Camp"}}}
	tx, err := g.Generate(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx != nil || sink.Len() != 0 {
		t.Error("a zero meals amount must not generate a transaction")
	}
}

func TestGenerator_ConcurrentSameBooking(t *testing.T) {
	l := NewLedger()
	sink := NewLedger()
	g := NewGenerator(l, sink, "safe", standardMeals())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Generate(mealsBooking("BK-1")); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if sink.Len() != 1 {
		t.Errorf("sink holds %d transactions, want exactly 1", sink.Len())
	}
}

func TestGenerator_GenerateAll(t *testing.T) {
	l := NewLedger()
	sink := NewLedger()
	g := NewGenerator(l, sink, "safe", standardMeals())

	bookings := []Booking{
		mealsBooking("BK-1"),
		{ID: "BK-2", Price: eur(500)}, // no itinerary, nothing to generate
		mealsBooking("BK-3"),
	}
	created, err := g.GenerateAll(bookings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d transactions, want 2", len(created))
	}
	if created[0].BookingRef() != "BK-1" || created[1].BookingRef() != "BK-3" {
		t.Errorf("created for %s and %s, want BK-1 and BK-3", created[0].BookingRef(), created[1].BookingRef())
	}
}
