package tourledger

import (
	"fmt"
	"slices"
	"strings"
)

// HolderType classifies a money-responsible entity.
type HolderType string

const (
	HolderCash HolderType = "cash" // a physical cash box or a person carrying cash
	HolderBank HolderType = "bank" // a bank account
	HolderCard HolderType = "card" // a company card
)

// Holder is an entity responsible for a pool of money. Holders are never
// deleted, only deactivated.
type Holder struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     HolderType `json:"type"`
	Currency string     `json:"currency"` // default currency for new movements
	Active   bool       `json:"active"`
}

// Registry is the set of declared holders, indexed by id.
type Registry struct {
	holders map[string]Holder
}

// NewRegistry creates an empty holder registry.
func NewRegistry(holders ...Holder) *Registry {
	r := &Registry{holders: make(map[string]Holder)}
	for _, h := range holders {
		r.holders[h.ID] = h
	}
	return r
}

// Holder returns the holder declared with this id, or nil if unknown.
func (r *Registry) Holder(id string) *Holder {
	h, ok := r.holders[id]
	if !ok {
		return nil
	}
	return &h
}

// Declare adds or replaces a holder in the registry.
func (r *Registry) Declare(h Holder) error {
	if h.ID == "" {
		return fmt.Errorf("holder id is missing")
	}
	switch h.Type {
	case HolderCash, HolderBank, HolderCard:
	default:
		return fmt.Errorf("unknown holder type %q", h.Type)
	}
	if err := ValidateCurrency(h.Currency); err != nil {
		return err
	}
	r.holders[h.ID] = h
	return nil
}

// Deactivate marks a holder inactive. The holder record is kept: its history
// still contributes to balances.
func (r *Registry) Deactivate(id string) error {
	h, ok := r.holders[id]
	if !ok {
		return fmt.Errorf("holder %q not declared in registry", id)
	}
	h.Active = false
	r.holders[id] = h
	return nil
}

// Active returns the active holders sorted by id.
func (r *Registry) Active() []Holder {
	var out []Holder
	for _, h := range r.holders {
		if h.Active {
			out = append(out, h)
		}
	}
	slices.SortFunc(out, func(a, b Holder) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// All returns every declared holder sorted by id, active or not.
func (r *Registry) All() []Holder {
	var out []Holder
	for _, h := range r.holders {
		out = append(out, h)
	}
	slices.SortFunc(out, func(a, b Holder) int { return strings.Compare(a.ID, b.ID) })
	return out
}
