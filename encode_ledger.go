package tourledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountTx is a specialized struct to read a ledger amount in two fields.
type amountTx struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountTx) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeLedger decodes transactions from a stream of JSONL data, one JSON
// object per line, dispatching on the kind field, and returns a sorted
// Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Kind Kind `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify kind in line %q: %w", string(lineBytes), err)
		}

		var decodedTx Transaction

		switch identifier.Kind {
		case KindIn:
			var temp struct {
				flowTx
				amountTx
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = CashIn{flowTx: temp.flowTx, Amount: temp.Money()}
		case KindOut:
			var temp struct {
				flowTx
				amountTx
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = CashOut{flowTx: temp.flowTx, Amount: temp.Money()}
		case KindTransfer:
			var temp struct {
				baseTx
				amountTx
				From string `json:"from"`
				To   string `json:"to"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			decodedTx = Transfer{baseTx: temp.baseTx, From: temp.From, To: temp.To, Amount: temp.Money()}
		case KindExchange:
			var temp struct {
				baseTx
				amountTx
				Holder string          `json:"holder"`
				Rate   decimal.Decimal `json:"rate"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, err
			}
			// A record predating the structured rate field decodes with a
			// zero rate: its credit leg is zero.
			decodedTx = Exchange{baseTx: temp.baseTx, Holder: temp.Holder, Amount: temp.Money(), Rate: temp.Rate}
		default:
			return nil, fmt.Errorf("unknown transaction kind %q in line %q", identifier.Kind, string(lineBytes))
		}

		ledger.Append(decodedTx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction writes a single transaction as one JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not marshal transaction: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// EncodeLedger writes the whole ledger in canonical JSONL form: one line per
// transaction, chronological order, fixed field order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
