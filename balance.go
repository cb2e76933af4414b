package tourledger

// HolderBalance is the cash position of one holder: per-currency confirmed
// balances and pending totals, plus the last day the holder saw any activity.
//
// Per-currency figures are never merged for any classification; Combined
// exists for coarse display only.
type HolderBalance struct {
	Holder       string
	Confirmed    map[string]Money
	PendingIn    map[string]Money
	PendingOut   map[string]Money
	LastActivity Date
}

func newHolderBalance(holder string) HolderBalance {
	return HolderBalance{
		Holder:     holder,
		Confirmed:  make(map[string]Money),
		PendingIn:  make(map[string]Money),
		PendingOut: make(map[string]Money),
	}
}

// ConfirmedIn returns the confirmed balance in the given currency, zero when
// the holder never moved money in it.
func (b HolderBalance) ConfirmedIn(currency string) Money {
	if m, ok := b.Confirmed[currency]; ok {
		return m
	}
	return M(0, currency)
}

// Combined converts all confirmed balances to the base currency and sums
// them. Display only: no classification may rely on this figure.
func (b HolderBalance) Combined(rate Rate) Money {
	total := M(0, BaseCurrency)
	for _, m := range b.Confirmed {
		total = total.Add(rate.Convert(m, BaseCurrency))
	}
	return total
}

func credit(acc map[string]Money, m Money) {
	cur := m.Currency()
	if prev, ok := acc[cur]; ok {
		acc[cur] = prev.Add(m)
		return
	}
	acc[cur] = m
}

func debit(acc map[string]Money, m Money) {
	credit(acc, m.Neg())
}

// BalanceOf folds the transaction set into the holder's position. The fold
// is pure and order-independent; void transactions are inert whatever the
// input contains.
func BalanceOf(txs []Transaction, holder string) HolderBalance {
	b := newHolderBalance(holder)

	for _, tx := range txs {
		if tx.State() == Void {
			continue
		}
		if touches(tx, holder) {
			if b.LastActivity.IsZero() || tx.When().After(b.LastActivity) {
				b.LastActivity = tx.When()
			}
		}

		switch v := tx.(type) {
		case CashIn:
			if !v.ResponsibleIs(holder) {
				continue
			}
			switch v.State() {
			case Confirmed:
				credit(b.Confirmed, v.Amount)
			case Pending:
				credit(b.PendingIn, v.Amount)
			}
		case CashOut:
			if !v.ResponsibleIs(holder) {
				continue
			}
			switch v.State() {
			case Confirmed:
				debit(b.Confirmed, v.Amount)
			case Pending:
				credit(b.PendingOut, v.Amount)
			}
		case Transfer:
			// Pending transfers have no balance effect.
			if v.State() != Confirmed {
				continue
			}
			if v.From == holder {
				debit(b.Confirmed, v.Amount)
			}
			if v.To == holder {
				credit(b.Confirmed, v.Amount)
			}
		case Exchange:
			if v.Holder != holder || v.State() != Confirmed {
				continue
			}
			debit(b.Confirmed, v.Amount)
			credit(b.Confirmed, v.Credited())
		}
	}
	return b
}

// AllBalances computes the position of every declared holder, in registry
// order.
func AllBalances(l *Ledger, reg *Registry) []HolderBalance {
	txs := l.Select(Filter{})
	var out []HolderBalance
	for _, h := range reg.All() {
		out = append(out, BalanceOf(txs, h.ID))
	}
	return out
}
