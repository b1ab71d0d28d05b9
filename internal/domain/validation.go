package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidPartyID = errors.New("invalid party id")
	ErrInvalidName    = errors.New("invalid party name")
	ErrNoteTooLong    = errors.New("note exceeds maximum length")
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxPartyIDLength   = 64
	MaxPartyNameLength = 255
	MaxNoteLength      = 500
	MaxTransferAmount  = "1000000000" // 1 billion
)

var partyIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidatePartyID validates a party document id.
func ValidatePartyID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: id cannot be empty", ErrInvalidPartyID)
	}

	if len(id) > MaxPartyIDLength {
		return fmt.Errorf("%w: id exceeds %d characters", ErrInvalidPartyID, MaxPartyIDLength)
	}

	if !partyIDRegex.MatchString(id) {
		return fmt.Errorf("%w: id contains forbidden characters", ErrInvalidPartyID)
	}

	return nil
}

// ValidatePartyName validates a party display name.
func ValidatePartyName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxPartyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxPartyNameLength)
	}

	return nil
}

// ValidateNote validates a transfer narration.
func ValidateNote(note string) error {
	if len(note) > MaxNoteLength {
		return fmt.Errorf("%w: %d characters", ErrNoteTooLong, MaxNoteLength)
	}
	return nil
}

// ValidateAmount validates the upper bound on a transfer amount. Positivity
// is checked by TransferRequest.Validate.
func ValidateAmount(amount decimal.Decimal) error {
	max, _ := decimal.NewFromString(MaxTransferAmount)
	if amount.GreaterThan(max) {
		return fmt.Errorf("%w: maximum is %s", ErrAmountTooLarge, MaxTransferAmount)
	}
	return nil
}
