package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
)

// MockPartyRepository is a map-backed mock implementation of PartyRepository.
type MockPartyRepository struct {
	mu      sync.RWMutex
	parties map[domain.PartyRef]*domain.Party

	CreateFunc            func(ctx context.Context, party *domain.Party) error
	GetByRefFunc          func(ctx context.Context, ref domain.PartyRef) (*domain.Party, error)
	GetByRefForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ref domain.PartyRef) (*domain.Party, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, ref domain.PartyRef, balance decimal.Decimal, updatedAt time.Time) error
	ListFunc              func(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error)
}

func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{
		parties: make(map[domain.PartyRef]*domain.Party),
	}
}

// Seed stores a party directly, bypassing any mock funcs.
func (m *MockPartyRepository) Seed(party *domain.Party) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.Ref] = party
}

// Snapshot returns a copy of all stored parties, for pre/post comparisons.
func (m *MockPartyRepository) Snapshot() map[domain.PartyRef]domain.Party {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := make(map[domain.PartyRef]domain.Party, len(m.parties))
	for ref, p := range m.parties {
		snap[ref] = *p
	}
	return snap
}

func (m *MockPartyRepository) Create(ctx context.Context, party *domain.Party) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.parties[party.Ref]; ok {
		return domain.ErrPartyExists
	}
	m.parties[party.Ref] = party
	return nil
}

func (m *MockPartyRepository) GetByRef(ctx context.Context, ref domain.PartyRef) (*domain.Party, error) {
	if m.GetByRefFunc != nil {
		return m.GetByRefFunc(ctx, ref)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.parties[ref]; ok {
		return p, nil
	}
	return nil, domain.ErrPartyNotFound
}

func (m *MockPartyRepository) GetByRefForUpdate(ctx context.Context, tx usecase.Transaction, ref domain.PartyRef) (*domain.Party, error) {
	if m.GetByRefForUpdateFunc != nil {
		return m.GetByRefForUpdateFunc(ctx, tx, ref)
	}
	return m.GetByRef(ctx, ref)
}

func (m *MockPartyRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, ref domain.PartyRef, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, ref, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.parties[ref]; ok {
		p.Balance = balance
		p.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrPartyNotFound
}

func (m *MockPartyRepository) List(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, kind, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var parties []*domain.Party
	for ref, p := range m.parties {
		if ref.Kind == kind {
			parties = append(parties, p)
		}
	}
	return parties, nil
}

// MockRecordRepository is a slice-backed mock implementation of
// RecordRepository.
type MockRecordRepository struct {
	mu      sync.RWMutex
	records []*domain.TransactionRecord

	AppendFunc         func(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error
	ListByPartyFunc    func(ctx context.Context, ref domain.PartyRef, limit, offset int) ([]*domain.TransactionRecord, error)
	GetByReferenceFunc func(ctx context.Context, reference domain.Reference) ([]*domain.TransactionRecord, error)
}

func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{}
}

// Records returns all appended records.
func (m *MockRecordRepository) Records() []*domain.TransactionRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.TransactionRecord(nil), m.records...)
}

func (m *MockRecordRepository) Append(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockRecordRepository) ListByParty(ctx context.Context, ref domain.PartyRef, limit, offset int) ([]*domain.TransactionRecord, error) {
	if m.ListByPartyFunc != nil {
		return m.ListByPartyFunc(ctx, ref, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.TransactionRecord
	for _, r := range m.records {
		if r.Owner.Equal(ref) {
			records = append(records, r)
		}
	}
	return records, nil
}

func (m *MockRecordRepository) GetByReference(ctx context.Context, reference domain.Reference) ([]*domain.TransactionRecord, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.TransactionRecord
	for _, r := range m.records {
		if r.Reference == reference {
			records = append(records, r)
		}
	}
	return records, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu    sync.Mutex
	Began []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Began = append(m.Began, tx)
	return tx, nil
}

// MockRetrier is a mock implementation of Retrier. By default it runs the
// operation exactly once with no retry.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string

	mu      sync.Mutex
	counter int
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%03d", m.counter)
}
