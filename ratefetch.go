package tourledger

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "amount": 1.0,
	    "base": "EUR",
	    "date": "2026-08-28",
	    "rates": {
	        "USD": 1.0923
	    }
	}
*/
const rateServiceURL = "https://api.frankfurter.app/latest?from=EUR&to=USD"

// FetchRate pulls the latest EUR/USD quote from the public rate service.
// Responses are cached on disk for the day, so repeated recompute cycles do
// not hammer the service.
func FetchRate() (Rate, error) {
	return fetchRate(daily(), rateServiceURL)
}

func fetchRate(client *http.Client, addr string) (Rate, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return Rate{}, fmt.Errorf("error in wget %q: %w", "EUR/USD", err)
	}

	path := "$.rates.USD"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Rate{}, fmt.Errorf("error parsing %q: %q %w", "EUR/USD", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Rate{}, fmt.Errorf("error parsing %q: %q %s %v", "EUR/USD", path, "not a float", jval)
	}
	return NewRate(decimal.NewFromFloat(val)), nil
}
