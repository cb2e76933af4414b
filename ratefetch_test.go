package tourledger

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amount":1.0,"base":"EUR","date":"2026-08-28","rates":{"USD":1.0923}}`))
	}))
	defer srv.Close()

	rate, err := fetchRate(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rate.USDPerEUR().InexactFloat64(); got != 1.0923 {
		t.Errorf("rate = %v, want 1.0923", got)
	}
}

func TestFetchRate_MissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amount":1.0,"base":"EUR","rates":{}}`))
	}))
	defer srv.Close()

	if _, err := fetchRate(srv.Client(), srv.URL); err == nil {
		t.Error("a response without the quote must fail")
	}
}
