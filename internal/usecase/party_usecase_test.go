package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
	"github.com/pickndrop/walletd/internal/usecase/mocks"
)

func TestCreateParty(t *testing.T) {
	partyRepo := mocks.NewMockPartyRepository()
	uc := usecase.NewPartyUseCase(partyRepo, mocks.NewMockIDGenerator())

	party, err := uc.CreateParty(context.Background(), usecase.CreatePartyInput{
		Kind:           domain.PartyKindRider,
		ID:             "rider-7",
		Name:           "Dayo A",
		OpeningBalance: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PartyRef{Kind: domain.PartyKindRider, ID: "rider-7"}, party.Ref)
	assert.True(t, party.Balance.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, party.CreatedAt, party.UpdatedAt)
}

func TestCreatePartyGeneratesID(t *testing.T) {
	uc := usecase.NewPartyUseCase(mocks.NewMockPartyRepository(), mocks.NewMockIDGenerator())

	party, err := uc.CreateParty(context.Background(), usecase.CreatePartyInput{
		Kind: domain.PartyKindUser,
		Name: "Ada O",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, party.Ref.ID)
	assert.True(t, party.Balance.IsZero())
}

func TestCreatePartyRejectsBadInput(t *testing.T) {
	uc := usecase.NewPartyUseCase(mocks.NewMockPartyRepository(), mocks.NewMockIDGenerator())

	tests := []struct {
		name    string
		input   usecase.CreatePartyInput
		wantErr error
	}{
		{
			name:    "unknown kind",
			input:   usecase.CreatePartyInput{Kind: "vendor", Name: "x"},
			wantErr: domain.ErrUnknownPartyKind,
		},
		{
			name:    "empty name",
			input:   usecase.CreatePartyInput{Kind: domain.PartyKindUser},
			wantErr: domain.ErrInvalidName,
		},
		{
			name: "negative opening balance",
			input: usecase.CreatePartyInput{
				Kind:           domain.PartyKindUser,
				Name:           "x",
				OpeningBalance: decimal.NewFromInt(-1),
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateParty(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreatePartyDuplicate(t *testing.T) {
	partyRepo := mocks.NewMockPartyRepository()
	uc := usecase.NewPartyUseCase(partyRepo, mocks.NewMockIDGenerator())

	input := usecase.CreatePartyInput{Kind: domain.PartyKindAdmin, ID: "admin-1", Name: "Ops"}

	_, err := uc.CreateParty(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.CreateParty(context.Background(), input)
	require.ErrorIs(t, err, domain.ErrPartyExists)
}

func TestGetParty(t *testing.T) {
	partyRepo := mocks.NewMockPartyRepository()
	ref := domain.PartyRef{Kind: domain.PartyKindUser, ID: "user-9"}
	partyRepo.Seed(&domain.Party{Ref: ref, Name: "Chidi", Balance: decimal.NewFromInt(40)})

	uc := usecase.NewPartyUseCase(partyRepo, mocks.NewMockIDGenerator())

	party, err := uc.GetParty(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "Chidi", party.Name)

	_, err = uc.GetParty(context.Background(), domain.PartyRef{Kind: domain.PartyKindUser, ID: "ghost"})
	require.ErrorIs(t, err, domain.ErrPartyNotFound)
}

func TestListPartiesPagination(t *testing.T) {
	partyRepo := mocks.NewMockPartyRepository()

	var gotLimit int
	partyRepo.ListFunc = func(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error) {
		gotLimit = limit
		return nil, nil
	}

	uc := usecase.NewPartyUseCase(partyRepo, mocks.NewMockIDGenerator())

	_, err := uc.ListParties(context.Background(), usecase.ListPartiesInput{Kind: domain.PartyKindRider})
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultPageSize, gotLimit)

	_, err = uc.ListParties(context.Background(), usecase.ListPartiesInput{Kind: domain.PartyKindRider, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, usecase.MaxPageSize, gotLimit)

	_, err = uc.ListParties(context.Background(), usecase.ListPartiesInput{Kind: "vendor"})
	require.ErrorIs(t, err, domain.ErrUnknownPartyKind)
}
