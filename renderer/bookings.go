package renderer

import (
	"github.com/tourops/tourledger"
)

// BookingsMarkdown generates a markdown report of the booking financial rows.
func BookingsMarkdown(rows []tourledger.BookingRow) string {
	w := newTableWriter()
	w.Printf("## Booking Reconciliation\n\n")
	if len(rows) == 0 {
		w.Printf("No priced bookings.\n")
		return w.String()
	}
	w.Printf("| Code | Client | Arrival | Revenue | Received | Remaining | Expenses | Net | Status | Flags |\n")
	w.Printf("|:---|:---|:---|---:|---:|---:|---:|---:|:---|:---|\n")
	for _, row := range rows {
		w.Printf("| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Code, row.Client, row.Arrival,
			row.Revenue.DisplayString(),
			row.Received.DisplayString(),
			row.Remaining.DisplayString(),
			row.Expenses.DisplayString(),
			row.Net.SignedString(),
			statusCell(row.Status),
			flagsCell(row),
		)
	}
	w.Printf("\n")
	return w.String()
}

func statusCell(s tourledger.BookingStatus) string {
	switch s {
	case tourledger.StatusPaid:
		return "✅ paid"
	case tourledger.StatusPartial:
		return "🟡 partial"
	default:
		return "🔴 unpaid"
	}
}

func flagsCell(row tourledger.BookingRow) string {
	var flags []string
	if row.HasPending {
		flags = append(flags, "pending")
	}
	if row.HasNegativeNet {
		flags = append(flags, "negative net")
	}
	if len(flags) == 0 {
		return "-"
	}
	out := flags[0]
	for _, f := range flags[1:] {
		out += ", " + f
	}
	return out
}
