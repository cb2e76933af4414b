package tourledger

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger represents the full set of recorded transactions.
//
// In a Ledger transactions are always in chronological order. All aggregation
// is a pure fold over this snapshot; nothing incremental is maintained.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds a transaction keeping chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.sort()
}

func (l *Ledger) sort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		switch {
		case a.When().Before(b.When()):
			return -1
		case a.When().After(b.When()):
			return 1
		}
		return 0
	})
}

// Len returns the number of recorded transactions, void included.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over all transactions in chronological order,
// including void ones. Aggregates must go through Select.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Get returns the transaction with the given id, or nil.
func (l *Ledger) Get(id string) Transaction {
	for _, tx := range l.transactions {
		if tx.Ref() == id {
			return tx
		}
	}
	return nil
}

// Update replaces the transaction with the given id by f's result. It is the
// only mutation besides Append: status flips and booking attachment.
func (l *Ledger) Update(id string, f func(Transaction) Transaction) error {
	for i, tx := range l.transactions {
		if tx.Ref() == id {
			l.transactions[i] = f(tx)
			return nil
		}
	}
	return fmt.Errorf("transaction %q not found", id)
}

// Filter narrows a Select query. Zero fields match everything.
type Filter struct {
	From, To Date   // inclusive date range
	Booking  string // booking reference
	Holder   string // any holder reference (responsible, from or to)
	Kind     Kind
	Status   Status
}

// Select returns the transactions matching the filter, in chronological
// order. Void transactions never match, whatever the filter says. When a
// date bound is set, transactions without a usable date fall out of the view.
func (l *Ledger) Select(f Filter) []Transaction {
	var out []Transaction
	for _, tx := range l.transactions {
		if tx.State() == Void {
			continue
		}
		if !f.From.IsZero() || !f.To.IsZero() {
			if tx.When().IsZero() {
				continue
			}
			if !f.From.IsZero() && tx.When().Before(f.From) {
				continue
			}
			if !f.To.IsZero() && tx.When().After(f.To) {
				continue
			}
		}
		if f.Booking != "" && tx.BookingRef() != f.Booking {
			continue
		}
		if f.Holder != "" && !touches(tx, f.Holder) {
			continue
		}
		if f.Kind != "" && tx.What() != f.Kind {
			continue
		}
		if f.Status != "" && tx.State() != f.Status {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// touches reports whether the transaction references the holder in any role.
func touches(tx Transaction, holder string) bool {
	switch v := tx.(type) {
	case CashIn:
		return v.Holder == holder || v.From == holder
	case CashOut:
		return v.Holder == holder || v.From == holder
	case Transfer:
		return v.From == holder || v.To == holder
	case Exchange:
		return v.Holder == holder
	}
	return false
}

// Loose returns the confirmed incoming payments with no booking attached,
// the matcher's input.
func (l *Ledger) Loose() []Transaction {
	var out []Transaction
	for _, tx := range l.Select(Filter{Kind: KindIn, Status: Confirmed}) {
		if tx.BookingRef() == "" {
			out = append(out, tx)
		}
	}
	return out
}

// HasBreakfast reports whether a non-void breakfast-category movement already
// exists for the booking, and returns it when found.
func (l *Ledger) HasBreakfast(booking string) (CashOut, bool) {
	for _, tx := range l.Select(Filter{Booking: booking, Kind: KindOut}) {
		if out, ok := tx.(CashOut); ok && out.Category == CategoryBreakfast {
			return out, true
		}
	}
	return CashOut{}, false
}

// AppendTransaction implements the TransactionWriter interface for an
// in-memory ledger.
func (l *Ledger) AppendTransaction(tx Transaction) error {
	l.Append(tx)
	return nil
}
