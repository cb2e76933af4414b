package tourledger

import "testing"

func TestRegistry_Declare(t *testing.T) {
	r := NewRegistry()

	h := Holder{ID: "safe", Name: "Office Safe", Type: HolderCash, Currency: "EUR", Active: true}
	if err := r.Declare(h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Holder("safe"); got == nil || got.Name != "Office Safe" {
		t.Errorf("Holder(safe) = %v, want the declared holder", got)
	}

	// Redeclaring replaces.
	h.Name = "Main Safe"
	if err := r.Declare(h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Holder("safe"); got.Name != "Main Safe" {
		t.Errorf("Holder(safe).Name = %q, want Main Safe", got.Name)
	}

	testCases := []struct {
		name string
		h    Holder
	}{
		{name: "missing id", h: Holder{Type: HolderCash, Currency: "EUR"}},
		{name: "unknown type", h: Holder{ID: "x", Type: "wallet", Currency: "EUR"}},
		{name: "unsupported currency", h: Holder{ID: "x", Type: HolderCash, Currency: "GBP"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := r.Declare(tc.h); err == nil {
				t.Error("expected a declaration error")
			}
		})
	}
}

func TestRegistry_Deactivate(t *testing.T) {
	r := NewRegistry(
		Holder{ID: "safe", Type: HolderCash, Currency: "EUR", Active: true},
		Holder{ID: "bank", Type: HolderBank, Currency: "EUR", Active: true},
	)

	if err := r.Deactivate("safe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Deactivate("ghost"); err == nil {
		t.Error("deactivating an unknown holder must fail")
	}

	// Deactivated holders leave Active but stay in All: history still counts.
	active := r.Active()
	if len(active) != 1 || active[0].ID != "bank" {
		t.Errorf("Active() = %v, want only bank", active)
	}
	all := r.All()
	if len(all) != 2 {
		t.Errorf("All() = %v, want both holders", all)
	}
	if all[0].ID != "bank" || all[1].ID != "safe" {
		t.Errorf("All() not sorted by id: %v", all)
	}
}
