package tourledger

import (
	"fmt"
	"sync"
)

// TransactionWriter persists a new transaction to the transaction store.
type TransactionWriter interface {
	AppendTransaction(Transaction) error
}

// Generator materializes the rule-based meals expense as a real ledger
// transaction: one confirmed, auto-generated breakfast CashOut per
// qualifying booking.
//
// It is safe under concurrent invocation for the same booking: an in-process
// marker and a store existence check both guard the insert, and an already
// existing breakfast movement is success, not an error.
type Generator struct {
	ledger *Ledger
	sink   TransactionWriter
	holder string // holder the generated expense is booked against
	meals  MealPlan

	mu   sync.Mutex
	done map[string]bool // booking ids handled in this process
}

// NewGenerator creates a Generator writing through sink. The ledger is the
// snapshot used for the existence check.
func NewGenerator(ledger *Ledger, sink TransactionWriter, holder string, meals MealPlan) *Generator {
	return &Generator{
		ledger: ledger,
		sink:   sink,
		holder: holder,
		meals:  meals,
		done:   make(map[string]bool),
	}
}

// Generate creates the breakfast transaction for the booking if the computed
// meals amount is positive and no breakfast movement exists yet. It returns
// the created transaction, or nil when there was nothing to do.
func (g *Generator) Generate(b Booking) (Transaction, error) {
	amount := g.meals.Expense(b)
	if !amount.IsPositive() {
		return nil, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done[b.ID] {
		return nil, nil
	}
	if _, ok := g.ledger.HasBreakfast(b.ID); ok {
		g.done[b.ID] = true
		return nil, nil
	}

	tx := NewCashOut(Today(), g.holder, amount, b.ID, CategoryBreakfast, "", fmt.Sprintf("meals for %s", b.Code))
	tx.Auto = true
	validated, err := tx.Validate(nil)
	if err != nil {
		return nil, err
	}
	// Write failures surface to the caller and are not retried here; the
	// next recompute cycle runs the same check again.
	if err := g.sink.AppendTransaction(validated); err != nil {
		return nil, fmt.Errorf("could not append meals transaction for booking %q: %w", b.ID, err)
	}
	g.done[b.ID] = true
	g.ledger.Append(validated)
	return validated, nil
}

// GenerateAll runs Generate over every booking and returns the created
// transactions. The first write error stops the pass.
func (g *Generator) GenerateAll(bookings []Booking) ([]Transaction, error) {
	var created []Transaction
	for _, b := range bookings {
		tx, err := g.Generate(b)
		if err != nil {
			return created, err
		}
		if tx != nil {
			created = append(created, tx)
		}
	}
	return created, nil
}
