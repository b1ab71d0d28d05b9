package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells which side of a transfer a record describes.
type Direction string

const (
	DirectionCredit Direction = "Credit"
	DirectionDebit  Direction = "Debit"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// ParseDirection parses a direction from its stored form.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown direction: %q", s)
	}
	return d, nil
}

// TransactionStatus is the canonical status of a transaction record. The
// synchronous transfer path always writes Successful; the other values exist
// for records produced by slower financial flows around the wallet.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "Pending"
	StatusSuccessful TransactionStatus = "Successful"
	StatusFailed     TransactionStatus = "Failed"
	StatusReversed   TransactionStatus = "Reversed"
)

// Valid reports whether s is a known status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSuccessful, StatusFailed, StatusReversed:
		return true
	}
	return false
}

// legacyStatusCodes maps the numeric encodings older dashboard records used
// for status. Decoding happens once, at the storage boundary; nothing
// downstream re-interprets raw status values.
var legacyStatusCodes = map[string]TransactionStatus{
	"0": StatusPending,
	"1": StatusSuccessful,
	"2": StatusFailed,
	"3": StatusReversed,
}

// ParseTransactionStatus decodes a stored status value, accepting both the
// canonical strings and the legacy numeric codes.
func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	if s := TransactionStatus(raw); s.Valid() {
		return s, nil
	}
	if s, ok := legacyStatusCodes[raw]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// TransactionRecord is one immutable side of a transfer: a Debit owned by the
// sender or a Credit owned by the recipient. The two records of a transfer
// share Reference and Timestamp and cross-reference each other through
// Counterparty. Records are never mutated or deleted after creation.
type TransactionRecord struct {
	ID           string
	Owner        PartyRef
	Amount       decimal.Decimal
	Note         string
	Status       TransactionStatus
	Direction    Direction
	Counterparty PartyRef
	Reference    Reference
	Timestamp    time.Time
}
