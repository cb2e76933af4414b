package tourledger

// eur is a helper for test to create euro money from const
func eur(v float64) Money { return M(v, "EUR") }

// usd is a helper for test to create usd money from const
func usd(v float64) Money { return M(v, "USD") }
