package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
)

// PartyRepository defines data access for wallet-holding parties. Lookups
// dispatch on the ref's kind to the matching collection.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByRef(ctx context.Context, ref domain.PartyRef) (*domain.Party, error)
	GetByRefForUpdate(ctx context.Context, tx Transaction, ref domain.PartyRef) (*domain.Party, error)
	UpdateBalance(ctx context.Context, tx Transaction, ref domain.PartyRef, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error)
}

// RecordRepository defines data access for transaction records. Records are
// append-only; there is no update or delete.
type RecordRepository interface {
	Append(ctx context.Context, tx Transaction, record *domain.TransactionRecord) error
	ListByParty(ctx context.Context, ref domain.PartyRef, limit, offset int) ([]*domain.TransactionRecord, error)
	GetByReference(ctx context.Context, reference domain.Reference) ([]*domain.TransactionRecord, error)
}

// Transaction represents one atomic unit of work against the backing store.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation when the store reports a transient conflict.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique record IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations. Only immutable data may be cached;
// balances are re-read inside every transfer attempt.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
