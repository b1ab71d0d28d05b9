package domain

import (
	"errors"
	"fmt"
)

var (
	// Party errors
	ErrPartyNotFound     = errors.New("party not found")
	ErrSenderNotFound    = fmt.Errorf("sender: %w", ErrPartyNotFound)
	ErrRecipientNotFound = fmt.Errorf("recipient: %w", ErrPartyNotFound)
	ErrPartyExists       = errors.New("party already exists")
	ErrUnknownPartyKind  = errors.New("unknown party kind")

	// Transfer errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrSelfTransfer      = errors.New("cannot transfer to the same party")
	ErrTransientConflict = errors.New("concurrent transfer conflict")

	// Record errors
	ErrRecordNotFound = errors.New("transaction record not found")
	ErrUnknownStatus  = errors.New("unknown transaction status")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// TransferFailedError reports a failed transfer together with the reference
// that was computed for the attempt, so callers can correlate the failure
// even though no record was written.
type TransferFailedError struct {
	Reference Reference
	Err       error
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("transfer %s failed: %v", e.Reference, e.Err)
}

func (e *TransferFailedError) Unwrap() error {
	return e.Err
}
