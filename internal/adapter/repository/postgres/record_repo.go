package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
)

// RecordRepository implements usecase.RecordRepository over the append-only
// wallet_transactions table. There is no update or delete path: records are
// immutable once written.
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

const appendRecord = `
INSERT INTO wallet_transactions
	(id, owner_kind, owner_id, amount, note, status, direction, counterparty_kind, counterparty_id, reference, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// Append writes one record inside the given transaction.
func (r *RecordRepository) Append(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, appendRecord,
		record.ID,
		string(record.Owner.Kind),
		record.Owner.ID,
		decimalToNumeric(record.Amount),
		record.Note,
		string(record.Status),
		string(record.Direction),
		string(record.Counterparty.Kind),
		record.Counterparty.ID,
		record.Reference.String(),
		timeToPgTimestamptz(record.Timestamp),
	)

	return err
}

const listRecordsByParty = `
SELECT id, owner_kind, owner_id, amount, note, status, direction, counterparty_kind, counterparty_id, reference, created_at
FROM wallet_transactions
WHERE owner_kind = $1 AND owner_id = $2
ORDER BY created_at DESC, id DESC
LIMIT $3 OFFSET $4
`

// ListByParty lists a party's records, newest first.
func (r *RecordRepository) ListByParty(ctx context.Context, ref domain.PartyRef, limit, offset int) ([]*domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx, listRecordsByParty, string(ref.Kind), ref.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	return collectRecords(rows)
}

const getRecordsByReference = `
SELECT id, owner_kind, owner_id, amount, note, status, direction, counterparty_kind, counterparty_id, reference, created_at
FROM wallet_transactions
WHERE reference = $1
ORDER BY direction DESC
`

// GetByReference returns the records sharing one reference, debit first.
func (r *RecordRepository) GetByReference(ctx context.Context, reference domain.Reference) ([]*domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx, getRecordsByReference, reference.String())
	if err != nil {
		return nil, err
	}

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]*domain.TransactionRecord, error) {
	defer rows.Close()

	var records []*domain.TransactionRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

// scanRecord decodes one row. Status and direction are decoded here, once, at
// the storage boundary; downstream code only ever sees the canonical enums.
func scanRecord(row pgx.Row) (*domain.TransactionRecord, error) {
	var (
		id               string
		ownerKind        string
		ownerID          string
		amount           pgtype.Numeric
		note             string
		rawStatus        string
		rawDirection     string
		counterpartyKind string
		counterpartyID   string
		reference        string
		createdAt        pgtype.Timestamptz
	)

	err := row.Scan(&id, &ownerKind, &ownerID, &amount, &note, &rawStatus, &rawDirection, &counterpartyKind, &counterpartyID, &reference, &createdAt)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseTransactionStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	direction, err := domain.ParseDirection(rawDirection)
	if err != nil {
		return nil, err
	}

	return &domain.TransactionRecord{
		ID:           id,
		Owner:        domain.PartyRef{Kind: domain.PartyKind(ownerKind), ID: ownerID},
		Amount:       numericToDecimal(amount),
		Note:         note,
		Status:       status,
		Direction:    direction,
		Counterparty: domain.PartyRef{Kind: domain.PartyKind(counterpartyKind), ID: counterpartyID},
		Reference:    domain.Reference(reference),
		Timestamp:    createdAt.Time,
	}, nil
}
