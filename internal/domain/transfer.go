package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest describes a money movement between two parties.
type TransferRequest struct {
	Sender    PartyRef
	Recipient PartyRef
	Amount    decimal.Decimal
	Note      string
}

// Validate validates the transfer request. It runs before any storage work,
// so a rejected request touches no state.
func (t *TransferRequest) Validate() error {
	if err := t.Sender.Validate(); err != nil {
		return fmt.Errorf("sender: %w", err)
	}

	if err := t.Recipient.Validate(); err != nil {
		return fmt.Errorf("recipient: %w", err)
	}

	if t.Sender.Equal(t.Recipient) {
		return ErrSelfTransfer
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	return ValidateNote(t.Note)
}

// TransferReceipt reports the committed outcome of a transfer.
type TransferReceipt struct {
	Reference        Reference
	Sender           PartyRef
	Recipient        PartyRef
	Amount           decimal.Decimal
	SenderBalance    decimal.Decimal
	RecipientBalance decimal.Decimal
	Timestamp        time.Time
}
