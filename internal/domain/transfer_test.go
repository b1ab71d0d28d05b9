package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransferRequestValidate(t *testing.T) {
	sender := PartyRef{Kind: PartyKindAdmin, ID: "admin-1"}
	recipient := PartyRef{Kind: PartyKindRider, ID: "rider-1"}

	tests := []struct {
		name    string
		req     TransferRequest
		wantErr error
	}{
		{
			name:    "valid request",
			req:     TransferRequest{Sender: sender, Recipient: recipient, Amount: decimal.NewFromInt(150), Note: "bonus"},
			wantErr: nil,
		},
		{
			name:    "zero amount",
			req:     TransferRequest{Sender: sender, Recipient: recipient, Amount: decimal.Zero},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     TransferRequest{Sender: sender, Recipient: recipient, Amount: decimal.NewFromInt(-5)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "self transfer",
			req:     TransferRequest{Sender: sender, Recipient: sender, Amount: decimal.NewFromInt(10)},
			wantErr: ErrSelfTransfer,
		},
		{
			name: "same id different kind is not a self transfer",
			req: TransferRequest{
				Sender:    PartyRef{Kind: PartyKindAdmin, ID: "x1"},
				Recipient: PartyRef{Kind: PartyKindUser, ID: "x1"},
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: nil,
		},
		{
			name:    "unknown sender kind",
			req:     TransferRequest{Sender: PartyRef{Kind: "vendor", ID: "v-1"}, Recipient: recipient, Amount: decimal.NewFromInt(10)},
			wantErr: ErrUnknownPartyKind,
		},
		{
			name:    "empty recipient id",
			req:     TransferRequest{Sender: sender, Recipient: PartyRef{Kind: PartyKindUser}, Amount: decimal.NewFromInt(10)},
			wantErr: ErrInvalidPartyID,
		},
		{
			name: "amount above cap",
			req: TransferRequest{
				Sender:    sender,
				Recipient: recipient,
				Amount:    decimal.RequireFromString("1000000001"),
			},
			wantErr: ErrAmountTooLarge,
		},
		{
			name: "note too long",
			req: TransferRequest{
				Sender:    sender,
				Recipient: recipient,
				Amount:    decimal.NewFromInt(10),
				Note:      strings.Repeat("x", MaxNoteLength+1),
			},
			wantErr: ErrNoteTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
