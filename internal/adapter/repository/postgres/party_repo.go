package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
)

// PartyRepository implements usecase.PartyRepository. Each party kind lives in
// its own table; tableForKind is the single place that mapping exists.
type PartyRepository struct {
	pool *pgxpool.Pool
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{pool: pool}
}

func tableForKind(kind domain.PartyKind) (string, error) {
	switch kind {
	case domain.PartyKindAdmin:
		return "admins", nil
	case domain.PartyKindUser:
		return "users", nil
	case domain.PartyKindRider:
		return "riders", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownPartyKind, string(kind))
	}
}

// Create creates a new party.
func (r *PartyRepository) Create(ctx context.Context, party *domain.Party) error {
	table, err := tableForKind(party.Ref.Kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
	INSERT INTO %s (id, name, balance, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	`, table)

	_, err = r.pool.Exec(ctx, query,
		party.Ref.ID,
		party.Name,
		decimalToNumeric(party.Balance),
		timeToPgTimestamptz(party.CreatedAt),
		timeToPgTimestamptz(party.UpdatedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrPartyExists, party.Ref)
		}

		return err
	}

	return nil
}

// GetByRef retrieves a party by reference.
func (r *PartyRepository) GetByRef(ctx context.Context, ref domain.PartyRef) (*domain.Party, error) {
	table, err := tableForKind(ref.Kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
	SELECT id, name, balance, created_at, updated_at FROM %s
	WHERE id = $1
	`, table)

	return r.scanParty(r.pool.QueryRow(ctx, query, ref.ID), ref.Kind)
}

// GetByRefForUpdate retrieves a party with a FOR UPDATE row lock inside the
// given transaction. Callers acquire locks in sorted ref order.
func (r *PartyRepository) GetByRefForUpdate(ctx context.Context, tx usecase.Transaction, ref domain.PartyRef) (*domain.Party, error) {
	table, err := tableForKind(ref.Kind)
	if err != nil {
		return nil, err
	}

	pgxTx := tx.(*Tx).PgxTx()

	query := fmt.Sprintf(`
	SELECT id, name, balance, created_at, updated_at FROM %s
	WHERE id = $1
	FOR UPDATE
	`, table)

	return r.scanParty(pgxTx.QueryRow(ctx, query, ref.ID), ref.Kind)
}

// UpdateBalance updates the balance of a party inside the given transaction.
func (r *PartyRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, ref domain.PartyRef, balance decimal.Decimal, updatedAt time.Time) error {
	table, err := tableForKind(ref.Kind)
	if err != nil {
		return err
	}

	pgxTx := tx.(*Tx).PgxTx()

	query := fmt.Sprintf(`
	UPDATE %s SET balance = $2, updated_at = $3
	WHERE id = $1
	`, table)

	tag, err := pgxTx.Exec(ctx, query, ref.ID, decimalToNumeric(balance), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}

	return nil
}

// List lists parties of one kind with pagination.
func (r *PartyRepository) List(ctx context.Context, kind domain.PartyKind, limit, offset int) ([]*domain.Party, error) {
	table, err := tableForKind(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
	SELECT id, name, balance, created_at, updated_at FROM %s
	ORDER BY created_at DESC, id
	LIMIT $1 OFFSET $2
	`, table)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parties []*domain.Party
	for rows.Next() {
		party, err := r.scanParty(rows, kind)
		if err != nil {
			return nil, err
		}

		parties = append(parties, party)
	}

	return parties, rows.Err()
}

func (r *PartyRepository) scanParty(row pgx.Row, kind domain.PartyKind) (*domain.Party, error) {
	var (
		id        string
		name      string
		balance   pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &name, &balance, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	return &domain.Party{
		Ref:       domain.PartyRef{Kind: kind, ID: id},
		Name:      name,
		Balance:   numericToDecimal(balance),
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
