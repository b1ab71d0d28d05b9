package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
)

// PartyRefPayload names a party in request bodies.
type PartyRefPayload struct {
	Kind string `json:"kind" validate:"required,oneof=admin user rider"`
	ID   string `json:"id" validate:"required,max=64"`
}

// ToDomain converts the payload to a domain reference.
func (p *PartyRefPayload) ToDomain() (domain.PartyRef, error) {
	kind, err := domain.ParsePartyKind(p.Kind)
	if err != nil {
		return domain.PartyRef{}, err
	}
	return domain.PartyRef{Kind: kind, ID: p.ID}, nil
}

// CreateTransferRequest represents a request to move funds between two
// parties.
type CreateTransferRequest struct {
	Sender    PartyRefPayload `json:"sender" validate:"required"`
	Recipient PartyRefPayload `json:"recipient" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Note      string          `json:"note,omitempty" validate:"max=500"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() (usecase.TransferInput, error) {
	sender, err := r.Sender.ToDomain()
	if err != nil {
		return usecase.TransferInput{}, err
	}

	recipient, err := r.Recipient.ToDomain()
	if err != nil {
		return usecase.TransferInput{}, err
	}

	return usecase.TransferInput{
		Sender:    sender,
		Recipient: recipient,
		Amount:    r.Amount,
		Note:      r.Note,
	}, nil
}

// CreatePartyRequest represents a request to create a party. ID is optional;
// when absent the service generates one.
type CreatePartyRequest struct {
	ID             string          `json:"id,omitempty" validate:"omitempty,max=64"`
	Name           string          `json:"name" validate:"required,max=128"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input for the given kind.
func (r *CreatePartyRequest) ToUseCaseInput(kind domain.PartyKind) usecase.CreatePartyInput {
	return usecase.CreatePartyInput{
		Kind:           kind,
		ID:             r.ID,
		Name:           r.Name,
		OpeningBalance: r.OpeningBalance,
	}
}
