package renderer

import (
	"github.com/tourops/tourledger"
)

// SuggestionsMarkdown generates a markdown report of the loose-transaction
// matching pass.
func SuggestionsMarkdown(l *tourledger.Ledger, suggestions []tourledger.Suggestion) string {
	w := newTableWriter()
	w.Printf("## Loose Payment Suggestions\n\n")
	if len(suggestions) == 0 {
		w.Printf("No loose payments matched a booking.\n")
		return w.String()
	}
	w.Printf("| Payment | Date | Amount | Booking | Confidence |\n")
	w.Printf("|:---|:---|---:|:---|---:|\n")
	for _, s := range suggestions {
		date, amount := "?", "?"
		if tx := l.Get(s.TxID); tx != nil {
			date = tx.When().String()
			amount = tx.Value().DisplayString()
		}
		w.Printf("| %s | %s | %s | %s | %d%% |\n", short(s.TxID), date, amount, s.Code, s.Confidence)
	}
	w.Printf("\nAttach a payment with `tlg attach -t <payment> -b <booking>`.\n")
	return w.String()
}
