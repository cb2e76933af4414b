package tourledger

import "testing"

func testRegistry() *Registry {
	return NewRegistry(
		Holder{ID: "safe", Name: "Office Safe", Type: HolderCash, Currency: "EUR", Active: true},
		Holder{ID: "bank", Name: "Company Account", Type: HolderBank, Currency: "EUR", Active: true},
		Holder{ID: "card", Name: "Company Card", Type: HolderCard, Currency: "EUR", Active: true},
	)
}

func alertsOf(alerts []Alert, typ AlertType) []Alert {
	var out []Alert
	for _, a := range alerts {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

func TestScanAlerts_MethodMismatch(t *testing.T) {
	now := MustParseDate("2026-08-31")

	testCases := []struct {
		name      string
		holder    string
		method    Method
		wantAlert bool
	}{
		{name: "cash on cash holder", holder: "safe", method: MethodCash, wantAlert: false},
		{name: "cash on bank holder", holder: "bank", method: MethodCash, wantAlert: true},
		{name: "card on card holder", holder: "card", method: MethodCard, wantAlert: false},
		{name: "card on cash holder", holder: "safe", method: MethodCard, wantAlert: true},
		{name: "bank transfer on bank holder", holder: "bank", method: MethodBank, wantAlert: false},
		{name: "bank transfer on card holder", holder: "card", method: MethodBank, wantAlert: false},
		{name: "bank transfer on cash holder", holder: "safe", method: MethodBank, wantAlert: true},
		{name: "no method no alert", holder: "bank", method: "", wantAlert: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			l.Append(NewCashIn(now, tc.holder, eur(100), "", "", tc.method, ""))

			got := alertsOf(ScanAlerts(l, testRegistry(), now, DefaultAlertConfig()), AlertMethodMismatch)
			if tc.wantAlert && len(got) != 1 {
				t.Fatalf("got %v, want one method mismatch alert", got)
			}
			if !tc.wantAlert && len(got) != 0 {
				t.Fatalf("got %v, want no alert", got)
			}
			if tc.wantAlert && got[0].Holder != tc.holder {
				t.Errorf("alert targets %q, want %q", got[0].Holder, tc.holder)
			}
		})
	}
}

func TestScanAlerts_NegativeBalance(t *testing.T) {
	now := MustParseDate("2026-08-31")
	l := NewLedger()
	l.Append(
		NewCashIn(now, "safe", eur(100), "", "", "", ""),
		NewCashOut(now, "safe", eur(300), "", "", "", ""),
		NewCashIn(now, "safe", usd(50), "", "", "", ""),
	)

	got := alertsOf(ScanAlerts(l, testRegistry(), now, DefaultAlertConfig()), AlertNegativeBalance)
	if len(got) != 1 {
		t.Fatalf("got %v, want exactly one negative balance alert", got)
	}
	if got[0].Holder != "safe" || got[0].Severity != SeverityCritical {
		t.Errorf("got %+v, want critical alert on safe", got[0])
	}
}

func TestScanAlerts_StalePending(t *testing.T) {
	now := MustParseDate("2026-08-31")
	cfg := DefaultAlertConfig()

	stale := NewCashIn(now.Add(-8), "safe", eur(100), "", "", "", "")
	stale.ID = "t-stale"
	fresh := NewCashIn(now.Add(-7), "safe", eur(100), "", "", "", "")
	fresh.ID = "t-fresh"

	l := NewLedger()
	l.Append(stale.WithState(Pending), fresh.WithState(Pending))

	got := alertsOf(ScanAlerts(l, testRegistry(), now, cfg), AlertStalePending)
	if len(got) != 1 {
		t.Fatalf("got %v, want exactly one stale pending alert", got)
	}
	if got[0].Tx != "t-stale" {
		t.Errorf("alert targets %q, want t-stale", got[0].Tx)
	}
}

func TestScanAlerts_IdleCash(t *testing.T) {
	cfg := DefaultAlertConfig()

	testCases := []struct {
		name      string
		holder    string
		amount    Money
		daysAgo   int
		wantAlert bool
	}{
		{name: "large idle cash", holder: "safe", amount: eur(1500), daysAgo: 10, wantAlert: true},
		{name: "recent activity", holder: "safe", amount: eur(1500), daysAgo: 3, wantAlert: false},
		{name: "below threshold", holder: "safe", amount: eur(900), daysAgo: 10, wantAlert: false},
		{name: "at threshold", holder: "safe", amount: eur(1000), daysAgo: 10, wantAlert: false},
		{name: "bank holders never idle", holder: "bank", amount: eur(5000), daysAgo: 30, wantAlert: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			now := MustParseDate("2026-08-31")
			l := NewLedger()
			l.Append(NewCashIn(now.Add(-tc.daysAgo), tc.holder, tc.amount, "", "", "", ""))

			got := alertsOf(ScanAlerts(l, testRegistry(), now, cfg), AlertIdleCash)
			if tc.wantAlert != (len(got) == 1) {
				t.Fatalf("got %v, wantAlert=%v", got, tc.wantAlert)
			}
			if tc.wantAlert && got[0].Severity != SeverityInfo {
				t.Errorf("severity = %s, want info", got[0].Severity)
			}
		})
	}
}

func TestScanAlerts_CleanLedgerIsQuiet(t *testing.T) {
	now := MustParseDate("2026-08-31")
	l := NewLedger()
	l.Append(
		NewCashIn(now.Add(-1), "safe", eur(500), "BK-1", "", MethodCash, ""),
		NewTransfer(now, "safe", "bank", eur(400), ""),
	)

	if got := ScanAlerts(l, testRegistry(), now, DefaultAlertConfig()); len(got) != 0 {
		t.Errorf("got %v, want no alerts", got)
	}
}
