package usecase

import (
	"context"
	"encoding/json"

	"github.com/pickndrop/walletd/internal/domain"
)

// HistoryUseCase serves a party's transaction history and record-pair
// lookups. Record pairs are cached once complete: records never change after
// creation, so the cache can never go stale. Balances are never cached.
type HistoryUseCase struct {
	recordRepo RecordRepository
	cache      Cache
}

// NewHistoryUseCase creates a new HistoryUseCase. cache may be nil.
func NewHistoryUseCase(recordRepo RecordRepository, cache Cache) *HistoryUseCase {
	return &HistoryUseCase{
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// ListByPartyInput represents input for listing a party's records.
type ListByPartyInput struct {
	Ref    domain.PartyRef
	Limit  int
	Offset int
}

// ListByParty lists a party's transaction records, newest first.
func (uc *HistoryUseCase) ListByParty(ctx context.Context, input ListByPartyInput) ([]*domain.TransactionRecord, error) {
	if err := input.Ref.Validate(); err != nil {
		return nil, err
	}

	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}

	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}

	return uc.recordRepo.ListByParty(ctx, input.Ref, input.Limit, input.Offset)
}

// GetByReference returns the matched debit/credit pair of one transfer.
func (uc *HistoryUseCase) GetByReference(ctx context.Context, reference domain.Reference) ([]*domain.TransactionRecord, error) {
	key := "records:" + reference.String()

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil && len(cached) > 0 {
			var records []*domain.TransactionRecord
			if err := json.Unmarshal(cached, &records); err == nil {
				return records, nil
			}
		}
	}

	records, err := uc.recordRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	// Only complete pairs are cached; a lone record means the lookup raced a
	// commit and should not be pinned.
	if uc.cache != nil && len(records) == 2 {
		if encoded, err := json.Marshal(records); err == nil {
			_ = uc.cache.Set(ctx, key, encoded, RecordCacheTTL)
		}
	}

	return records, nil
}
