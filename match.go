package tourledger

import "math"

// matchWindowDays is the half-width of the arrival window, inclusive.
const matchWindowDays = 3

// minConfidence is the score a suggestion must exceed to be emitted.
const minConfidence = 50

// Suggestion proposes a booking for a loose transaction with a confidence
// score in [0, 100].
type Suggestion struct {
	TxID       string
	BookingID  string
	Code       string
	Confidence int
}

// SuggestBooking scores every priced booking whose arrival is within three
// days of the transaction date and keeps the best one. The score weighs
// price proximity at 70% and date proximity at 30%. It returns false when no
// candidate clears the confidence bar.
//
// On an exact confidence tie the first candidate encountered wins. That is a
// compatibility behavior, not a business rule.
func SuggestBooking(tx Transaction, bookings []Booking) (Suggestion, bool) {
	best := Suggestion{TxID: tx.Ref(), Confidence: -1}

	for _, b := range bookings {
		if !b.Price.IsPositive() {
			continue
		}
		daysDiff := tx.When().Sub(b.Arrival)
		if daysDiff < 0 {
			daysDiff = -daysDiff
		}
		if daysDiff > matchWindowDays {
			continue
		}

		priceMatch := math.Abs(b.Price.AsFloat()-tx.Value().AsFloat()) / b.Price.AsFloat()
		confidence := math.Round((1-priceMatch)*70 + (1-float64(daysDiff)/matchWindowDays)*30)
		score := int(confidence)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		if score > best.Confidence {
			best = Suggestion{TxID: tx.Ref(), BookingID: b.ID, Code: b.Code, Confidence: score}
		}
	}

	if best.Confidence <= minConfidence {
		return Suggestion{}, false
	}
	return best, true
}

// SuggestAll maps every loose incoming payment to its best booking, keeping
// only suggestions that clear the confidence bar.
func SuggestAll(l *Ledger, bookings []Booking) []Suggestion {
	var out []Suggestion
	for _, tx := range l.Loose() {
		if s, ok := SuggestBooking(tx, bookings); ok {
			out = append(out, s)
		}
	}
	return out
}
