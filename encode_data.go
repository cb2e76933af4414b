package tourledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file decodes the reference data the engine consumes from the
// surrounding dashboard: the holder registry, the booking list, standalone
// expense records, and the current exchange rate. All list files are JSONL,
// one record per line, human-readable and git-friendly.

// DecodeHolders parses the holder registry file.
func DecodeHolders(r io.Reader) (*Registry, error) {
	reg := NewRegistry()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var h Holder
		if err := json.Unmarshal(line, &h); err != nil {
			return nil, fmt.Errorf("format error in holders on line %q: %w", string(line), err)
		}
		if err := reg.Declare(h); err != nil {
			return nil, fmt.Errorf("invalid holder on line %q: %w", string(line), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holders: %w", err)
	}
	return reg, nil
}

// DecodeBookings parses the booking list file.
func DecodeBookings(r io.Reader) ([]Booking, error) {
	// to parse a json, we use a dedicated local struct with tag annotation.
	type jbooking struct {
		ID        string          `json:"id"`
		Code      string          `json:"code"`
		Client    string          `json:"client"`
		Arrival   Date            `json:"arrival"`
		Days      int             `json:"days"`
		Price     decimal.Decimal `json:"price"`
		Currency  string          `json:"currency"`
		Itinerary []ItineraryDay  `json:"itinerary"`
	}

	var bookings []Booking
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jb jbooking
		if err := json.Unmarshal(line, &jb); err != nil {
			return nil, fmt.Errorf("format error in bookings on line %q: %w", string(line), err)
		}
		currency := jb.Currency
		if currency == "" {
			currency = BaseCurrency
		}
		bookings = append(bookings, Booking{
			ID:        jb.ID,
			Code:      jb.Code,
			Client:    jb.Client,
			Arrival:   jb.Arrival,
			Days:      jb.Days,
			Price:     M(jb.Price, currency),
			Itinerary: jb.Itinerary,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading bookings: %w", err)
	}
	return bookings, nil
}

// DecodeExpenses parses the standalone expense records file.
func DecodeExpenses(r io.Reader) ([]Expense, error) {
	type jexpense struct {
		ID       string          `json:"id"`
		Booking  string          `json:"booking"`
		Date     Date            `json:"date"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Label    string          `json:"label"`
	}

	var expenses []Expense
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var je jexpense
		if err := json.Unmarshal(line, &je); err != nil {
			return nil, fmt.Errorf("format error in expenses on line %q: %w", string(line), err)
		}
		currency := je.Currency
		if currency == "" {
			currency = BaseCurrency
		}
		expenses = append(expenses, Expense{
			ID:      je.ID,
			Booking: je.Booking,
			Date:    je.Date,
			Amount:  M(je.Amount, currency),
			Label:   je.Label,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading expenses: %w", err)
	}
	return expenses, nil
}

// jrate is the on-disk shape of the current rate.
type jrate struct {
	USDPerEUR decimal.Decimal `json:"usd_per_eur"`
	On        Date            `json:"on,omitempty"`
}

// DecodeRate parses the current rate file.
func DecodeRate(r io.Reader) (Rate, error) {
	var jr jrate
	if err := json.NewDecoder(r).Decode(&jr); err != nil {
		return Rate{}, fmt.Errorf("could not decode rate: %w", err)
	}
	return NewRate(jr.USDPerEUR), nil
}

// EncodeRate writes the current rate file.
func EncodeRate(w io.Writer, rate Rate, on Date) error {
	data, err := json.Marshal(jrate{USDPerEUR: rate.USDPerEUR(), On: on})
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
