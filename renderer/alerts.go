package renderer

import (
	"github.com/tourops/tourledger"
)

// AlertsMarkdown generates a markdown report of the anomaly scan.
func AlertsMarkdown(alerts []tourledger.Alert) string {
	w := newTableWriter()
	w.Printf("## Alerts\n\n")
	if len(alerts) == 0 {
		w.Printf("Nothing to report.\n")
		return w.String()
	}
	w.Printf("| Severity | Type | Ref | Message |\n")
	w.Printf("|:---|:---|:---|:---|\n")
	for _, a := range alerts {
		w.Printf("| %s | %s | %s | %s |\n", severityCell(a.Severity), a.Type, alertRef(a), a.Message)
	}
	w.Printf("\n")
	return w.String()
}

func severityCell(s tourledger.Severity) string {
	switch s {
	case tourledger.SeverityCritical:
		return "🔴 critical"
	case tourledger.SeverityWarning:
		return "🟡 warning"
	default:
		return "ℹ️ info"
	}
}

func alertRef(a tourledger.Alert) string {
	switch {
	case a.Holder != "" && a.Tx != "":
		return a.Holder + "/" + short(a.Tx)
	case a.Holder != "":
		return a.Holder
	case a.Tx != "":
		return short(a.Tx)
	}
	return "-"
}

// short abbreviates a uuid for table display.
func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
