package tourledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is a typed string identifying the balance effect of a transaction.
type Kind string

// Transaction kinds. Direction is encoded by the kind, never by the sign of
// the amount.
const (
	KindIn       Kind = "in"
	KindOut      Kind = "out"
	KindTransfer Kind = "transfer"
	KindExchange Kind = "exchange"
)

// Status is the lifecycle state of a transaction.
type Status string

const (
	Pending   Status = "pending"
	Confirmed Status = "confirmed"
	// Void transactions are excluded from every aggregate, unconditionally
	// and permanently.
	Void Status = "void"
)

// Method is the payment method used for a cash movement. It is informational
// except for the holder/method mismatch alert.
type Method string

const (
	MethodCash Method = "cash"
	MethodCard Method = "card"
	MethodBank Method = "bank"
)

// CategoryBreakfast tags the derived meals expense; its presence on a booking
// suppresses the computed value.
const CategoryBreakfast = "breakfast"

// Transaction defines the common interface for all ledger events.
type Transaction interface {
	What() Kind   // What returns the kind of the transaction (e.g., "in", "transfer").
	When() Date   // When returns the date on which the transaction occurred.
	Ref() string  // Ref returns the transaction identifier.
	State() Status
	Value() Money
	BookingRef() string
	// WithBooking returns a copy with the booking reference attached. Kinds
	// that never reference a booking return the receiver unchanged.
	WithBooking(id string) Transaction
	// WithState returns a copy in the given status.
	WithState(s Status) Transaction
	Equal(Transaction) bool
	Validate(reg *Registry) (Transaction, error)
}

type baseTx struct {
	Kind   Kind   `json:"kind"`             // Kind specifies the type of transaction.
	ID     string `json:"id"`               // ID is a unique transaction identifier.
	Date   Date   `json:"date"`             // Date is the day the transaction took place.
	Status Status `json:"status"`           // Status is pending, confirmed or void.
	Note   string `json:"note,omitempty"`   // Note provides optional free-text context.
}

// What returns the kind of the transaction.
func (t baseTx) What() Kind { return t.Kind }

// When returns the date of the transaction.
func (t baseTx) When() Date { return t.Date }

// Ref returns the transaction identifier.
func (t baseTx) Ref() string { return t.ID }

// State returns the lifecycle status of the transaction.
func (t baseTx) State() Status { return t.Status }

// Rationale returns the note associated with the transaction.
func (t baseTx) Rationale() string { return t.Note }

// MarshalJSON implements the json.Marshaler interface for baseTx.
func (t baseTx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", t.Kind)
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("status", t.Status)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

// Validate checks the base fields and applies quick fixes: a zero date
// becomes today, a missing id is generated, a missing status defaults to
// confirmed.
func (t *baseTx) Validate() error {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	switch t.Status {
	case "":
		t.Status = Confirmed
	case Pending, Confirmed, Void:
	default:
		return fmt.Errorf("unknown transaction status %q", t.Status)
	}
	return nil
}

// flowTx is a component for booking-facing cash movements (in, out).
type flowTx struct {
	baseTx
	Holder   string `json:"holder,omitempty"`   // Holder is the responsible holder id.
	From     string `json:"from,omitempty"`     // From is a legacy source holder, used when Holder is unset.
	Booking  string `json:"booking,omitempty"`  // Booking is an optional booking reference.
	Category string `json:"category,omitempty"` // Category is a free expense/income tag.
	Method   Method `json:"method,omitempty"`   // Method is the payment method used.
	Auto     bool   `json:"auto,omitempty"`     // Auto marks rule-generated transactions.
}

// BookingRef returns the booking the movement belongs to, or "".
func (t flowTx) BookingRef() string { return t.Booking }

// ResponsibleIs reports whether the given holder is responsible for this
// movement: either the explicit responsible holder, or the legacy from-holder
// when no responsible holder is set.
func (t flowTx) ResponsibleIs(holder string) bool {
	if t.Holder != "" {
		return t.Holder == holder
	}
	return t.From == holder
}

// Validate checks the flow component fields.
func (t *flowTx) Validate(reg *Registry) error {
	if err := t.baseTx.Validate(); err != nil {
		return err
	}
	if t.Holder == "" && t.From == "" {
		return errors.New("responsible holder is missing")
	}
	switch t.Method {
	case "", MethodCash, MethodCard, MethodBank:
	default:
		return fmt.Errorf("unknown payment method %q", t.Method)
	}
	if reg != nil && t.Holder != "" && reg.Holder(t.Holder) == nil {
		return fmt.Errorf("holder %q not declared in registry", t.Holder)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for flowTx.
func (t flowTx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.Optional("holder", t.Holder)
	w.Optional("from", t.From)
	w.Optional("booking", t.Booking)
	w.Optional("category", t.Category)
	w.Optional("method", t.Method)
	w.Optional("auto", t.Auto)
	return w.MarshalJSON()
}

// CashIn represents money received: a client payment, a deposit, an advance.
type CashIn struct {
	flowTx
	Amount Money // Amount is the non-negative value received.
}

// NewCashIn creates a new CashIn transaction.
func NewCashIn(day Date, holder string, amount Money, booking, category string, method Method, note string) CashIn {
	return CashIn{
		flowTx: flowTx{
			baseTx:   baseTx{Kind: KindIn, Date: day, Status: Confirmed, Note: note},
			Holder:   holder,
			Booking:  booking,
			Category: category,
			Method:   method,
		},
		Amount: amount,
	}
}

func (t CashIn) Value() Money { return t.Amount }

// WithBooking returns a copy attached to the given booking.
func (t CashIn) WithBooking(id string) Transaction { t.Booking = id; return t }

// WithState returns a copy in the given status.
func (t CashIn) WithState(s Status) Transaction { t.Status = s; return t }

// MarshalJSON implements the json.Marshaler interface for CashIn.
func (t CashIn) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.flowTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t CashIn) Equal(other Transaction) bool {
	o, ok := other.(CashIn)
	return ok && t.flowTx == o.flowTx && t.Amount.Equal(o.Amount)
}

// Validate checks the CashIn fields: supported currency, non-negative amount.
func (t CashIn) Validate(reg *Registry) (Transaction, error) {
	if err := t.flowTx.Validate(reg); err != nil {
		return t, err
	}
	if err := validateAmount(t.Amount); err != nil {
		return t, err
	}
	return t, nil
}

// CashOut represents money spent: a hotel bill, a guide fee, a refund.
type CashOut struct {
	flowTx
	Amount Money // Amount is the non-negative value spent.
}

// NewCashOut creates a new CashOut transaction.
func NewCashOut(day Date, holder string, amount Money, booking, category string, method Method, note string) CashOut {
	return CashOut{
		flowTx: flowTx{
			baseTx:   baseTx{Kind: KindOut, Date: day, Status: Confirmed, Note: note},
			Holder:   holder,
			Booking:  booking,
			Category: category,
			Method:   method,
		},
		Amount: amount,
	}
}

func (t CashOut) Value() Money { return t.Amount }

// WithBooking returns a copy attached to the given booking.
func (t CashOut) WithBooking(id string) Transaction { t.Booking = id; return t }

// WithState returns a copy in the given status.
func (t CashOut) WithState(s Status) Transaction { t.Status = s; return t }

// MarshalJSON implements the json.Marshaler interface for CashOut.
func (t CashOut) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.flowTx)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t CashOut) Equal(other Transaction) bool {
	o, ok := other.(CashOut)
	return ok && t.flowTx == o.flowTx && t.Amount.Equal(o.Amount)
}

// Validate checks the CashOut fields.
func (t CashOut) Validate(reg *Registry) (Transaction, error) {
	if err := t.flowTx.Validate(reg); err != nil {
		return t, err
	}
	if err := validateAmount(t.Amount); err != nil {
		return t, err
	}
	return t, nil
}

// Transfer moves money between two holders in the same currency. It has no
// external cash-flow effect: confirmed transfers debit the source holder and
// credit the destination holder with the same amount.
type Transfer struct {
	baseTx
	From   string // From is the source holder id.
	To     string // To is the destination holder id.
	Amount Money
}

// NewTransfer creates a new Transfer transaction.
func NewTransfer(day Date, from, to string, amount Money, note string) Transfer {
	return Transfer{
		baseTx: baseTx{Kind: KindTransfer, Date: day, Status: Confirmed, Note: note},
		From:   from,
		To:     to,
		Amount: amount,
	}
}

func (t Transfer) Value() Money        { return t.Amount }
func (t Transfer) BookingRef() string  { return "" }

// WithBooking is a no-op: transfers never reference a booking.
func (t Transfer) WithBooking(string) Transaction { return t }

// WithState returns a copy in the given status.
func (t Transfer) WithState(s Status) Transaction { t.Status = s; return t }

// MarshalJSON implements the json.Marshaler interface for Transfer.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.Append("from", t.From)
	w.Append("to", t.To)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Transfer) Equal(other Transaction) bool {
	o, ok := other.(Transfer)
	return ok && t.baseTx == o.baseTx && t.From == o.From && t.To == o.To && t.Amount.Equal(o.Amount)
}

// Validate checks the Transfer fields. From and to holders are required
// together and must differ.
func (t Transfer) Validate(reg *Registry) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	if t.From == "" || t.To == "" {
		return t, errors.New("transfer requires both from and to holders")
	}
	if t.From == t.To {
		return t, fmt.Errorf("transfer from and to holders are the same: %q", t.From)
	}
	if err := validateAmount(t.Amount); err != nil {
		return t, err
	}
	if reg != nil {
		if reg.Holder(t.From) == nil {
			return t, fmt.Errorf("holder %q not declared in registry", t.From)
		}
		if reg.Holder(t.To) == nil {
			return t, fmt.Errorf("holder %q not declared in registry", t.To)
		}
	}
	return t, nil
}

// Exchange converts money between the two supported currencies within one
// holder: it debits the amount from the transaction's currency and credits
// amount × rate in the counter currency.
//
// The rate is a structured field. Earlier entry flows embedded it in the
// free-text note; those records decode with a zero rate and produce a zero
// credit leg.
type Exchange struct {
	baseTx
	Holder string          // Holder is the responsible holder id.
	Amount Money           // Amount is the debited value, in its own currency.
	Rate   decimal.Decimal // Rate converts Amount into the counter currency.
}

// NewExchange creates a new Exchange transaction.
func NewExchange(day Date, holder string, amount Money, rate decimal.Decimal, note string) Exchange {
	return Exchange{
		baseTx: baseTx{Kind: KindExchange, Date: day, Status: Confirmed, Note: note},
		Holder: holder,
		Amount: amount,
		Rate:   rate,
	}
}

func (t Exchange) Value() Money       { return t.Amount }
func (t Exchange) BookingRef() string { return "" }

// Credited returns the credit leg: amount × rate in the counter currency.
func (t Exchange) Credited() Money {
	return M(t.Amount.Decimal().Mul(t.Rate), OtherCurrency(t.Amount.Currency()))
}

// WithBooking is a no-op: exchanges never reference a booking.
func (t Exchange) WithBooking(string) Transaction { return t }

// WithState returns a copy in the given status.
func (t Exchange) WithState(s Status) Transaction { t.Status = s; return t }

// MarshalJSON implements the json.Marshaler interface for Exchange.
func (t Exchange) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.Append("holder", t.Holder)
	w.EmbedFrom(t.Amount)
	w.Append("rate", t.Rate)
	return w.MarshalJSON()
}

func (t Exchange) Equal(other Transaction) bool {
	o, ok := other.(Exchange)
	return ok && t.baseTx == o.baseTx && t.Holder == o.Holder &&
		t.Amount.Equal(o.Amount) && t.Rate.Equal(o.Rate)
}

// Validate checks the Exchange fields. A zero rate is accepted: the credit
// leg is simply zero.
func (t Exchange) Validate(reg *Registry) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	if t.Holder == "" {
		return t, errors.New("responsible holder is missing")
	}
	if err := validateAmount(t.Amount); err != nil {
		return t, err
	}
	if t.Rate.IsNegative() {
		return t, fmt.Errorf("exchange rate must not be negative, got %s", t.Rate)
	}
	if reg != nil && reg.Holder(t.Holder) == nil {
		return t, fmt.Errorf("holder %q not declared in registry", t.Holder)
	}
	return t, nil
}

func validateAmount(m Money) error {
	if err := ValidateCurrency(m.Currency()); err != nil {
		return err
	}
	if m.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative, got %s", m.String())
	}
	return nil
}
