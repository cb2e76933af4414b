package tourledger

import "fmt"

// AlertType identifies an anomaly rule.
type AlertType string

const (
	AlertMethodMismatch  AlertType = "method-mismatch"
	AlertNegativeBalance AlertType = "negative-balance"
	AlertStalePending    AlertType = "stale-pending"
	AlertIdleCash        AlertType = "idle-cash"
)

// Severity tags how urgent an alert is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert describes one anomaly, referencing the holder and/or transaction it
// was raised for.
type Alert struct {
	Type     AlertType
	Severity Severity
	Holder   string // holder id, when the alert targets a holder
	Tx       string // transaction id, when the alert targets a transaction
	Message  string
}

// AlertConfig holds the scan thresholds.
type AlertConfig struct {
	StaleAfterDays int   // pending transactions older than this are stale
	IdleAfterDays  int   // cash holders silent for this long are idle
	IdleThreshold  Money // idle is only flagged above this confirmed balance
}

// DefaultAlertConfig returns the thresholds the dashboard ships with.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		StaleAfterDays: 7,
		IdleAfterDays:  7,
		IdleThreshold:  M(1000, BaseCurrency),
	}
}

// expectedHolderTypes maps a payment method to the holder types it should be
// recorded against.
var expectedHolderTypes = map[Method][]HolderType{
	MethodCash: {HolderCash},
	MethodCard: {HolderCard},
	MethodBank: {HolderBank, HolderCard},
}

// ScanAlerts runs every anomaly rule over the ledger and the holder
// registry. The rules are independent and order-insensitive; now is the
// evaluation time, injected so the scan stays pure.
func ScanAlerts(l *Ledger, reg *Registry, now Date, cfg AlertConfig) []Alert {
	var alerts []Alert
	txs := l.Select(Filter{})

	// Transaction rules.
	for _, tx := range txs {
		if a, ok := methodMismatch(tx, reg); ok {
			alerts = append(alerts, a)
		}
		if tx.State() == Pending && now.Sub(tx.When()) > cfg.StaleAfterDays {
			alerts = append(alerts, Alert{
				Type:     AlertStalePending,
				Severity: SeverityWarning,
				Tx:       tx.Ref(),
				Message:  fmt.Sprintf("pending since %s: %s %s", tx.When(), tx.What(), tx.Value().DisplayString()),
			})
		}
	}

	// Holder rules.
	for _, h := range reg.All() {
		b := BalanceOf(txs, h.ID)
		for currency, m := range b.Confirmed {
			if m.IsNegative() {
				alerts = append(alerts, Alert{
					Type:     AlertNegativeBalance,
					Severity: SeverityCritical,
					Holder:   h.ID,
					Message:  fmt.Sprintf("%s balance is negative in %s: %s", h.Name, currency, m.DisplayString()),
				})
			}
		}
		if h.Type != HolderCash {
			continue
		}
		idle := b.LastActivity.IsZero() || now.Sub(b.LastActivity) > cfg.IdleAfterDays
		if idle && b.ConfirmedIn(cfg.IdleThreshold.Currency()).GreaterThan(cfg.IdleThreshold) {
			alerts = append(alerts, Alert{
				Type:     AlertIdleCash,
				Severity: SeverityInfo,
				Holder:   h.ID,
				Message:  fmt.Sprintf("%s holds %s with no activity since %s", h.Name, b.ConfirmedIn(cfg.IdleThreshold.Currency()).DisplayString(), b.LastActivity),
			})
		}
	}
	return alerts
}

// methodMismatch flags a cash movement recorded against a holder whose type
// does not fit the payment method. Transfers and exchanges carry no method.
func methodMismatch(tx Transaction, reg *Registry) (Alert, bool) {
	var flow flowTx
	switch v := tx.(type) {
	case CashIn:
		flow = v.flowTx
	case CashOut:
		flow = v.flowTx
	default:
		return Alert{}, false
	}
	if flow.Method == "" {
		return Alert{}, false
	}
	holderID := flow.Holder
	if holderID == "" {
		holderID = flow.From
	}
	h := reg.Holder(holderID)
	if h == nil {
		return Alert{}, false
	}
	for _, want := range expectedHolderTypes[flow.Method] {
		if h.Type == want {
			return Alert{}, false
		}
	}
	return Alert{
		Type:     AlertMethodMismatch,
		Severity: SeverityWarning,
		Holder:   h.ID,
		Tx:       tx.Ref(),
		Message:  fmt.Sprintf("%s payment recorded against %s holder %q", flow.Method, h.Type, h.Name),
	}, true
}
