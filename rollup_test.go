package tourledger

import "testing"

func standardMeals() MealPlan {
	return MealPlan{PairRate: eur(15), Hotels: []string{"Riad Dar", "Kasbah"}}
}

func TestMealPlan_Expense(t *testing.T) {
	testCases := []struct {
		name    string
		booking Booking
		want    Money
	}{
		{
			name: "three adults two nights",
			booking: Booking{Itinerary: []ItineraryDay{
				{Hotel: "Riad Dar Salam", Adults: 3},
				{Hotel: "Riad Dar Salam"},
			}},
			// ceil(3/2) pairs × 15 × 2 nights.
			want: eur(60),
		},
		{
			name: "default two adults",
			booking: Booking{Itinerary: []ItineraryDay{
				{Hotel: "Kasbah du Toubkal"},
			}},
			want: eur(15),
		},
		{
			name: "hotel match is case insensitive",
			booking: Booking{Itinerary: []ItineraryDay{
				{Hotel: "KASBAH DU TOUBKAL", Adults: 2},
			}},
			want: eur(15),
		},
		{
			name: "no qualifying hotel",
			booking: Booking{Itinerary: []ItineraryDay{
				{Hotel: "Desert Camp", Adults: 2},
			}},
			want: eur(0),
		},
		{
			name:    "no itinerary",
			booking: Booking{},
			want:    eur(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := standardMeals().Expense(tc.booking); !got.Equal(tc.want) {
				t.Errorf("Expense = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRollupBooking_Status(t *testing.T) {
	b := Booking{ID: "BK-1", Code: "MAR-41", Price: eur(1000)}

	testCases := []struct {
		name     string
		received float64
		want     BookingStatus
	}{
		{name: "unpaid", received: 0, want: StatusUnpaid},
		{name: "partial", received: 400, want: StatusPartial},
		{name: "paid", received: 1000, want: StatusPaid},
		{name: "overpaid is paid", received: 1200, want: StatusPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var txs []Transaction
			if tc.received > 0 {
				txs = append(txs, NewCashIn(MustParseDate("2026-08-01"), "safe", eur(tc.received), "BK-1", "", "", ""))
			}
			row, ok := RollupBooking(b, txs, nil, Rate{}, MealPlan{})
			if !ok {
				t.Fatal("priced booking must produce a row")
			}
			if row.Status != tc.want {
				t.Errorf("status = %s, want %s", row.Status, tc.want)
			}
			if want := eur(1000 - tc.received); !row.Remaining.Equal(want) {
				t.Errorf("remaining = %s, want %s", row.Remaining, want)
			}
		})
	}
}

func TestRollupBooking_NonPositivePrice(t *testing.T) {
	if _, ok := RollupBooking(Booking{ID: "BK-1"}, nil, nil, Rate{}, MealPlan{}); ok {
		t.Error("a booking without a price must not produce a row")
	}
	if _, ok := RollupBooking(Booking{ID: "BK-1", Price: eur(-10)}, nil, nil, Rate{}, MealPlan{}); ok {
		t.Error("a booking with a negative price must not produce a row")
	}
}

func TestRollupBooking_MealsJoinExpenses(t *testing.T) {
	b := Booking{
		ID:    "BK-1",
		Price: eur(1000),
		Itinerary: []ItineraryDay{
			{Hotel: "Riad Dar Salam", Adults: 2},
			{Hotel: "Riad Dar Salam"},
		},
	}
	row, ok := RollupBooking(b, nil, nil, Rate{}, standardMeals())
	if !ok {
		t.Fatal("expected a row")
	}
	if !row.Meals.Equal(eur(30)) {
		t.Errorf("meals = %s, want %s", row.Meals, eur(30))
	}
	if !row.Expenses.Equal(eur(30)) {
		t.Errorf("expenses = %s, want %s", row.Expenses, eur(30))
	}
	if !row.Net.Equal(eur(970)) {
		t.Errorf("net = %s, want %s", row.Net, eur(970))
	}
}

func TestRollupBooking_BreakfastSupersedesComputedMeals(t *testing.T) {
	b := Booking{
		ID:    "BK-1",
		Price: eur(1000),
		Itinerary: []ItineraryDay{
			{Hotel: "Riad Dar Salam", Adults: 2},
		},
	}
	breakfast := NewCashOut(MustParseDate("2026-08-02"), "safe", eur(42), "BK-1", CategoryBreakfast, "", "")
	row, ok := RollupBooking(b, []Transaction{breakfast}, nil, Rate{}, standardMeals())
	if !ok {
		t.Fatal("expected a row")
	}
	// The recorded movement replaces the rule's 15: no double count.
	if !row.Meals.Equal(eur(42)) {
		t.Errorf("meals = %s, want %s", row.Meals, eur(42))
	}
	if !row.Expenses.Equal(eur(42)) {
		t.Errorf("expenses = %s, want %s", row.Expenses, eur(42))
	}
}

func TestRollupBooking_CurrencyConversionAndFlags(t *testing.T) {
	b := Booking{ID: "BK-1", Price: eur(1000)}
	rate := NewRateFloat(1.10)
	pendingOut := NewCashOut(MustParseDate("2026-08-03"), "safe", eur(10), "BK-1", "", "", "")
	txs := []Transaction{
		NewCashIn(MustParseDate("2026-08-01"), "safe", usd(220), "BK-1", "", "", ""),
		NewCashOut(MustParseDate("2026-08-02"), "safe", usd(1650), "BK-1", "", "", ""),
		pendingOut.WithState(Pending),
	}
	expenses := []Expense{{ID: "e-1", Booking: "BK-1", Amount: eur(100)}}

	row, ok := RollupBooking(b, txs, expenses, rate, MealPlan{})
	if !ok {
		t.Fatal("expected a row")
	}
	// 220 USD at 1.10 is 200 EUR.
	if !row.Received.Equal(eur(200)) {
		t.Errorf("received = %s, want %s", row.Received, eur(200))
	}
	// 1650 USD is 1500 EUR, plus the standalone 100 EUR invoice. The pending
	// out is flagged, not counted.
	if !row.Expenses.Equal(eur(1600)) {
		t.Errorf("expenses = %s, want %s", row.Expenses, eur(1600))
	}
	if !row.Net.Equal(eur(-600)) {
		t.Errorf("net = %s, want %s", row.Net, eur(-600))
	}
	if !row.HasNegativeNet {
		t.Error("negative net must be flagged")
	}
	if !row.HasPending {
		t.Error("pending movement must be flagged")
	}
}

func TestRollupAll_SortedByArrival(t *testing.T) {
	l := NewLedger()
	bookings := []Booking{
		{ID: "BK-2", Price: eur(100), Arrival: MustParseDate("2026-08-20")},
		{ID: "BK-3"}, // unpriced, excluded
		{ID: "BK-1", Price: eur(100), Arrival: MustParseDate("2026-08-10")},
	}
	rows := RollupAll(l, bookings, nil, Rate{}, MealPlan{})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Booking != "BK-1" || rows[1].Booking != "BK-2" {
		t.Errorf("rows out of order: %s, %s", rows[0].Booking, rows[1].Booking)
	}
}
