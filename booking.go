package tourledger

// ItineraryDay is one entry of a booking's ordered itinerary.
type ItineraryDay struct {
	Hotel    string `json:"hotel"`
	Adults   int    `json:"adults,omitempty"`
	Children int    `json:"children,omitempty"`
}

// Booking is a confirmed tour reservation. Price is the expected revenue in
// the base currency; bookings with a non-positive price are ignored by the
// rollup and the matcher.
type Booking struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Client    string         `json:"client"`
	Arrival   Date           `json:"arrival"`
	Days      int            `json:"days"`
	Price     Money          `json:"price"`
	Itinerary []ItineraryDay `json:"itinerary,omitempty"`
}

// Adults returns the guest count the meals rule bills for. When the
// itinerary carries no guest counts the documented default of 2 applies.
func (b Booking) Adults() int {
	for _, day := range b.Itinerary {
		if day.Adults > 0 {
			return day.Adults
		}
	}
	return 2
}

// Expense is a standalone expense record attached to a booking, entered
// outside the ledger (e.g., an activity invoice).
type Expense struct {
	ID      string `json:"id"`
	Booking string `json:"booking"`
	Date    Date   `json:"date"`
	Amount  Money  `json:"amount"`
	Label   string `json:"label,omitempty"`
}
