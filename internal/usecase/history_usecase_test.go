package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
	"github.com/pickndrop/walletd/internal/usecase/mocks"
)

func pairFor(reference domain.Reference) []*domain.TransactionRecord {
	return []*domain.TransactionRecord{
		{
			ID:           "rec-1",
			Owner:        adminRef,
			Amount:       decimal.NewFromInt(150),
			Status:       domain.StatusSuccessful,
			Direction:    domain.DirectionDebit,
			Counterparty: riderRef,
			Reference:    reference,
		},
		{
			ID:           "rec-2",
			Owner:        riderRef,
			Amount:       decimal.NewFromInt(150),
			Status:       domain.StatusSuccessful,
			Direction:    domain.DirectionCredit,
			Counterparty: adminRef,
			Reference:    reference,
		},
	}
}

func TestListByPartyDefaults(t *testing.T) {
	recordRepo := mocks.NewMockRecordRepository()

	var gotLimit int
	recordRepo.ListByPartyFunc = func(ctx context.Context, ref domain.PartyRef, limit, offset int) ([]*domain.TransactionRecord, error) {
		gotLimit = limit
		return nil, nil
	}

	uc := usecase.NewHistoryUseCase(recordRepo, nil)

	_, err := uc.ListByParty(context.Background(), usecase.ListByPartyInput{Ref: adminRef})
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultPageSize, gotLimit)

	_, err = uc.ListByParty(context.Background(), usecase.ListByPartyInput{Ref: adminRef, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, usecase.MaxPageSize, gotLimit)

	_, err = uc.ListByParty(context.Background(), usecase.ListByPartyInput{Ref: domain.PartyRef{Kind: "vendor", ID: "x"}})
	require.ErrorIs(t, err, domain.ErrUnknownPartyKind)
}

func TestGetByReferenceCachesCompletePairs(t *testing.T) {
	ctrl := gomock.NewController(t)

	reference := domain.Reference("PnD-admin--1700000000000")
	pair := pairFor(reference)

	recordRepo := mocks.NewMockRecordRepository()
	recordRepo.GetByReferenceFunc = func(ctx context.Context, ref domain.Reference) ([]*domain.TransactionRecord, error) {
		return pair, nil
	}

	cache := mocks.NewMockCache(ctrl)
	key := "records:" + reference.String()
	cache.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), usecase.RecordCacheTTL).Return(nil)

	uc := usecase.NewHistoryUseCase(recordRepo, cache)

	records, err := uc.GetByReference(context.Background(), reference)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestGetByReferenceCacheHitSkipsStore(t *testing.T) {
	ctrl := gomock.NewController(t)

	reference := domain.Reference("PnD-admin--1700000000000")
	encoded, err := json.Marshal(pairFor(reference))
	require.NoError(t, err)

	recordRepo := mocks.NewMockRecordRepository()
	recordRepo.GetByReferenceFunc = func(ctx context.Context, ref domain.Reference) ([]*domain.TransactionRecord, error) {
		t.Fatal("store must not be hit on cache hit")
		return nil, nil
	}

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), "records:"+reference.String()).Return(encoded, nil)

	uc := usecase.NewHistoryUseCase(recordRepo, cache)

	records, err := uc.GetByReference(context.Background(), reference)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, reference, records[0].Reference)
}

func TestGetByReferenceLonePairNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	reference := domain.Reference("PnD-admin--1700000000000")

	recordRepo := mocks.NewMockRecordRepository()
	recordRepo.GetByReferenceFunc = func(ctx context.Context, ref domain.Reference) ([]*domain.TransactionRecord, error) {
		return pairFor(reference)[:1], nil
	}

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	// no Set expected for an incomplete pair

	uc := usecase.NewHistoryUseCase(recordRepo, cache)

	records, err := uc.GetByReference(context.Background(), reference)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestGetByReferenceNotFound(t *testing.T) {
	recordRepo := mocks.NewMockRecordRepository()

	uc := usecase.NewHistoryUseCase(recordRepo, nil)

	_, err := uc.GetByReference(context.Background(), domain.Reference("PnD-ghost-1"))
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}
