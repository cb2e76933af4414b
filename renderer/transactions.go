package renderer

import (
	"github.com/tourops/tourledger"
)

// TransactionsMarkdown generates a markdown listing of transactions, most
// useful behind the log subcommand.
func TransactionsMarkdown(txs []tourledger.Transaction) string {
	w := newTableWriter()
	w.Printf("## Transactions\n\n")
	if len(txs) == 0 {
		w.Printf("No transactions.\n")
		return w.String()
	}
	w.Printf("| Date | Kind | Status | Amount | Detail | Booking |\n")
	w.Printf("|:---|:---|:---|---:|:---|:---|\n")
	for _, tx := range txs {
		booking := tx.BookingRef()
		if booking == "" {
			booking = "-"
		}
		w.Printf("| %s | %s | %s | %s | %s | %s |\n",
			tx.When(), tx.What(), tx.State(), tx.Value().DisplayString(), detailCell(tx), booking)
	}
	w.Printf("\n")
	return w.String()
}

func detailCell(tx tourledger.Transaction) string {
	switch v := tx.(type) {
	case tourledger.CashIn:
		return holderOf(v.Holder, v.From)
	case tourledger.CashOut:
		detail := holderOf(v.Holder, v.From)
		if v.Category != "" {
			detail += " (" + v.Category + ")"
		}
		return detail
	case tourledger.Transfer:
		return v.From + " → " + v.To
	case tourledger.Exchange:
		return v.Holder + " @ " + v.Rate.String()
	}
	return "-"
}

func holderOf(holder, from string) string {
	if holder != "" {
		return holder
	}
	if from != "" {
		return from
	}
	return "-"
}
