package tourledger

import (
	"slices"
	"strings"
)

// MealPlan is the rule for the derived breakfast expense: a flat rate billed
// per started pair of adults, per night spent in one of the allow-listed
// hotels.
type MealPlan struct {
	PairRate Money    // per pair of adults, per night, in the base currency
	Hotels   []string // case-insensitive substrings of qualifying hotel names
}

// Nights counts the itinerary days spent in a qualifying hotel.
func (p MealPlan) Nights(b Booking) int {
	nights := 0
	for _, day := range b.Itinerary {
		hotel := strings.ToLower(day.Hotel)
		for _, allowed := range p.Hotels {
			if allowed != "" && strings.Contains(hotel, strings.ToLower(allowed)) {
				nights++
				break
			}
		}
	}
	return nights
}

// Expense computes the meals expense: ceil(adults/2) × rate × nights.
func (p MealPlan) Expense(b Booking) Money {
	nights := p.Nights(b)
	if nights == 0 {
		return M(0, p.PairRate.Currency())
	}
	pairs := (b.Adults() + 1) / 2
	return p.PairRate.MulInt(pairs).MulInt(nights)
}

// BookingStatus is the payment classification of a booking.
type BookingStatus string

const (
	StatusPaid    BookingStatus = "paid"
	StatusPartial BookingStatus = "partial"
	StatusUnpaid  BookingStatus = "unpaid"
)

// BookingRow is the derived financial view of one booking. It is recomputed
// on every query and never stored.
type BookingRow struct {
	Booking   string
	Code      string
	Client    string
	Arrival   Date
	Revenue   Money // expected, in the base currency
	Received  Money
	Expenses  Money
	Remaining Money // Revenue - Received
	Net       Money // Revenue - Expenses
	Meals     Money // the meals figure that entered Expenses
	Status    BookingStatus
	HasPending     bool
	HasNegativeNet bool
}

// RollupBooking folds a booking's transactions and standalone expense
// records into a financial row. It returns false for bookings with a
// non-positive price, which are excluded from rollup output entirely.
//
// All sums are carried in the base currency, converted with the injected
// rate; classification happens on those sums, never on a merged per-currency
// figure.
func RollupBooking(b Booking, txs []Transaction, expenses []Expense, rate Rate, meals MealPlan) (BookingRow, bool) {
	if !b.Price.IsPositive() {
		return BookingRow{}, false
	}

	row := BookingRow{
		Booking: b.ID,
		Code:    b.Code,
		Client:  b.Client,
		Arrival: b.Arrival,
		Revenue: rate.Convert(b.Price, BaseCurrency),
	}

	received := M(0, BaseCurrency)
	spent := M(0, BaseCurrency)
	var breakfast *CashOut

	for _, tx := range txs {
		if tx.State() == Void {
			continue
		}
		if tx.State() == Pending {
			row.HasPending = true
		}
		switch v := tx.(type) {
		case CashIn:
			if v.State() == Confirmed {
				received = received.Add(rate.Convert(v.Amount, BaseCurrency))
			}
		case CashOut:
			if v.State() != Confirmed {
				continue
			}
			spent = spent.Add(rate.Convert(v.Amount, BaseCurrency))
			if v.Category == CategoryBreakfast && breakfast == nil {
				breakfast = &v
			}
		}
	}

	for _, e := range expenses {
		spent = spent.Add(rate.Convert(e.Amount, BaseCurrency))
	}

	// A recorded breakfast movement supersedes the computed meals value: it
	// is already part of the confirmed outs, so nothing is added. Otherwise
	// the rule-based figure joins the expenses.
	if breakfast != nil {
		row.Meals = rate.Convert(breakfast.Amount, BaseCurrency)
	} else {
		row.Meals = meals.Expense(b)
		spent = spent.Add(row.Meals)
	}

	row.Received = received
	row.Expenses = spent
	row.Remaining = row.Revenue.Sub(received)
	row.Net = row.Revenue.Sub(spent)
	row.HasNegativeNet = row.Net.IsNegative()

	switch {
	case row.Remaining.LessThanOrEqual(M(0, BaseCurrency)):
		row.Status = StatusPaid
	case received.IsPositive():
		row.Status = StatusPartial
	default:
		row.Status = StatusUnpaid
	}
	return row, true
}

// RollupAll computes the financial row of every priced booking, sorted by
// arrival date.
func RollupAll(l *Ledger, bookings []Booking, expenses []Expense, rate Rate, meals MealPlan) []BookingRow {
	byBooking := make(map[string][]Expense)
	for _, e := range expenses {
		byBooking[e.Booking] = append(byBooking[e.Booking], e)
	}

	var rows []BookingRow
	for _, b := range bookings {
		txs := l.Select(Filter{Booking: b.ID})
		if row, ok := RollupBooking(b, txs, byBooking[b.ID], rate, meals); ok {
			rows = append(rows, row)
		}
	}
	slices.SortStableFunc(rows, func(a, b BookingRow) int {
		switch {
		case a.Arrival.Before(b.Arrival):
			return -1
		case a.Arrival.After(b.Arrival):
			return 1
		}
		return 0
	})
	return rows
}
