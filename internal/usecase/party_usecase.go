package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
)

// PartyUseCase handles party management around the transfer engine. Balance
// mutation is only reachable through TransferUseCase.
type PartyUseCase struct {
	partyRepo PartyRepository
	idGen     IDGenerator
}

// NewPartyUseCase creates a new PartyUseCase.
func NewPartyUseCase(partyRepo PartyRepository, idGen IDGenerator) *PartyUseCase {
	return &PartyUseCase{
		partyRepo: partyRepo,
		idGen:     idGen,
	}
}

// CreatePartyInput represents input for creating a party. ID is optional:
// parties provisioned by the surrounding platform carry their own document
// ids, locally created ones get a generated id.
type CreatePartyInput struct {
	Kind           domain.PartyKind
	ID             string
	Name           string
	OpeningBalance decimal.Decimal
}

// CreateParty creates a new party with a zero or seeded balance.
func (uc *PartyUseCase) CreateParty(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	id := input.ID
	if id == "" {
		id = uc.idGen.Generate()
	}

	ref := domain.PartyRef{Kind: input.Kind, ID: id}
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	if err := domain.ValidatePartyName(input.Name); err != nil {
		return nil, err
	}

	if input.OpeningBalance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}

	now := time.Now().UTC()

	party := &domain.Party{
		Ref:       ref,
		Name:      input.Name,
		Balance:   input.OpeningBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a party by reference.
func (uc *PartyUseCase) GetParty(ctx context.Context, ref domain.PartyRef) (*domain.Party, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return uc.partyRepo.GetByRef(ctx, ref)
}

// ListPartiesInput represents input for listing parties of one kind.
type ListPartiesInput struct {
	Kind   domain.PartyKind
	Limit  int
	Offset int
}

// ListParties lists parties of one kind with pagination.
func (uc *PartyUseCase) ListParties(ctx context.Context, input ListPartiesInput) ([]*domain.Party, error) {
	if !input.Kind.Valid() {
		return nil, domain.ErrUnknownPartyKind
	}

	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}

	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}

	return uc.partyRepo.List(ctx, input.Kind, input.Limit, input.Offset)
}
