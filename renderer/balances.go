package renderer

import (
	"github.com/tourops/tourledger"
)

// BalancesMarkdown generates a markdown report of every holder's position.
// Per-currency columns stay separate; the combined column is a display
// convenience converted with the given rate.
func BalancesMarkdown(reg *tourledger.Registry, balances []tourledger.HolderBalance, rate tourledger.Rate) string {
	byHolder := make(map[string]tourledger.HolderBalance, len(balances))
	for _, b := range balances {
		byHolder[b.Holder] = b
	}

	w := newTableWriter()
	w.Printf("## Holder Balances\n\n")
	w.Printf("| Holder | Type | EUR | USD | Pending In | Pending Out | ~Total | Last Activity |\n")
	w.Printf("|:---|:---|---:|---:|---:|---:|---:|:---|\n")
	for _, h := range reg.All() {
		b, ok := byHolder[h.ID]
		if !ok {
			continue
		}
		name := h.Name
		if !h.Active {
			name += " (inactive)"
		}
		w.Printf("| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			name, h.Type,
			b.ConfirmedIn(tourledger.EUR).DisplayString(),
			b.ConfirmedIn(tourledger.USD).DisplayString(),
			pendingCell(b.PendingIn),
			pendingCell(b.PendingOut),
			b.Combined(rate).DisplayString(),
			activityCell(b.LastActivity),
		)
	}
	w.Printf("\n")
	return w.String()
}

func pendingCell(pending map[string]tourledger.Money) string {
	total := ""
	for _, c := range tourledger.SupportedCurrencies {
		if m, ok := pending[c]; ok && !m.IsZero() {
			if total != "" {
				total += " + "
			}
			total += m.DisplayString()
		}
	}
	if total == "" {
		return "-"
	}
	return total
}

func activityCell(d tourledger.Date) string {
	if d.IsZero() {
		return "never"
	}
	return d.String()
}
