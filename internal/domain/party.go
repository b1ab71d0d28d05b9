package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind identifies which wallet-holding population a party belongs to.
// Each kind maps to its own storage collection.
type PartyKind string

const (
	PartyKindAdmin PartyKind = "admin"
	PartyKindUser  PartyKind = "user"
	PartyKindRider PartyKind = "rider"
)

// Valid reports whether k is a known party kind.
func (k PartyKind) Valid() bool {
	switch k {
	case PartyKindAdmin, PartyKindUser, PartyKindRider:
		return true
	}
	return false
}

// ParsePartyKind parses a party kind from its string form.
func ParsePartyKind(s string) (PartyKind, error) {
	k := PartyKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPartyKind, s)
	}
	return k, nil
}

// PartyRef names a single party: the kind picks the collection, the ID the
// document within it. All lookups dispatch on Kind through one place instead
// of branching on collection names at call sites.
type PartyRef struct {
	Kind PartyKind
	ID   string
}

// Validate checks that the reference is well formed.
func (r PartyRef) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPartyKind, string(r.Kind))
	}
	return ValidatePartyID(r.ID)
}

// Equal reports whether two references name the same party. The same ID can
// exist in two kinds, so both fields must match.
func (r PartyRef) Equal(other PartyRef) bool {
	return r.Kind == other.Kind && r.ID == other.ID
}

// Less defines a stable total order over references, used for lock ordering.
func (r PartyRef) Less(other PartyRef) bool {
	if r.Kind != other.Kind {
		return r.Kind < other.Kind
	}
	return r.ID < other.ID
}

func (r PartyRef) String() string {
	return string(r.Kind) + "/" + r.ID
}

// Party is a wallet-holding entity: an admin, a customer, or a courier.
type Party struct {
	Ref       PartyRef
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks that the party can be debited by amount.
func (p *Party) ValidateDebit(amount decimal.Decimal) error {
	if p.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (p *Party) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return p.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (p *Party) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return p.Balance.Add(amount)
}
