package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/infrastructure/metrics"
)

// TransferUseCase is the wallet transfer engine. It moves funds between two
// parties atomically: debit the sender, credit the recipient, and append one
// matched pair of transaction records, or change nothing at all.
type TransferUseCase struct {
	txManager  TransactionManager
	partyRepo  PartyRepository
	recordRepo RecordRepository
	retrier    Retrier
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase. metrics may be nil.
func NewTransferUseCase(
	txManager TransactionManager,
	partyRepo PartyRepository,
	recordRepo RecordRepository,
	retrier Retrier,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:  txManager,
		partyRepo:  partyRepo,
		recordRepo: recordRepo,
		retrier:    retrier,
		idGen:      idGen,
		metrics:    metrics,
	}
}

// TransferInput represents input for a transfer.
type TransferInput struct {
	Sender    domain.PartyRef
	Recipient domain.PartyRef
	Amount    decimal.Decimal
	Note      string
}

// Transfer executes one atomic transfer. Validation failures return before
// any storage work. Each attempt re-reads both balances inside the store
// transaction; transient commit conflicts are retried with the same
// reference. Any failure after the reference was computed is returned as a
// *domain.TransferFailedError carrying it.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.TransferReceipt, error) {
	req := domain.TransferRequest{
		Sender:    input.Sender,
		Recipient: input.Recipient,
		Amount:    input.Amount,
		Note:      input.Note,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Computed once per call. Retries below reuse it, so a transfer that
	// succeeds on a later attempt keeps the reference of the first.
	reference := domain.NewReference(req.Sender.ID, time.Now().UTC())

	start := time.Now()

	var receipt *domain.TransferReceipt

	err := uc.retrier.Retry(ctx, func() error {
		r, err := uc.attempt(ctx, req, reference)
		if err != nil {
			return err
		}

		receipt = r

		return nil
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferErrors.WithLabelValues(transferErrorType(err)).Inc()
		}

		return nil, &domain.TransferFailedError{Reference: reference, Err: err}
	}

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(req.Amount.InexactFloat64())
	}

	return receipt, nil
}

// transferErrorType labels a failed transfer for metrics.
func transferErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrPartyNotFound):
		return "party_not_found"
	case errors.Is(err, domain.ErrTransientConflict):
		return "conflict"
	default:
		return "unknown"
	}
}

// attempt runs one read-validate-write cycle inside a single store
// transaction.
func (uc *TransferUseCase) attempt(ctx context.Context, req domain.TransferRequest, reference domain.Reference) (*domain.TransferReceipt, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock both party rows in a stable order so two opposing transfers
	// cannot deadlock on each other.
	first, second := req.Sender, req.Recipient
	if second.Less(first) {
		first, second = second, first
	}

	parties := make(map[domain.PartyRef]*domain.Party, 2)

	for _, ref := range []domain.PartyRef{first, second} {
		party, err := uc.partyRepo.GetByRefForUpdate(ctx, tx, ref)
		if err != nil {
			if errors.Is(err, domain.ErrPartyNotFound) {
				if ref.Equal(req.Sender) {
					return nil, domain.ErrSenderNotFound
				}

				return nil, domain.ErrRecipientNotFound
			}

			return nil, err
		}

		parties[ref] = party
	}

	sender := parties[req.Sender]
	recipient := parties[req.Recipient]

	if err := sender.ValidateDebit(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	senderBalance := sender.ApplyDebit(req.Amount)
	recipientBalance := recipient.ApplyCredit(req.Amount)

	if err := uc.partyRepo.UpdateBalance(ctx, tx, sender.Ref, senderBalance, now); err != nil {
		return nil, err
	}

	if err := uc.partyRepo.UpdateBalance(ctx, tx, recipient.Ref, recipientBalance, now); err != nil {
		return nil, err
	}

	debit := &domain.TransactionRecord{
		ID:           uc.idGen.Generate(),
		Owner:        sender.Ref,
		Amount:       req.Amount,
		Note:         req.Note,
		Status:       domain.StatusSuccessful,
		Direction:    domain.DirectionDebit,
		Counterparty: recipient.Ref,
		Reference:    reference,
		Timestamp:    now,
	}

	if err := uc.recordRepo.Append(ctx, tx, debit); err != nil {
		return nil, err
	}

	credit := &domain.TransactionRecord{
		ID:           uc.idGen.Generate(),
		Owner:        recipient.Ref,
		Amount:       req.Amount,
		Note:         req.Note,
		Status:       domain.StatusSuccessful,
		Direction:    domain.DirectionCredit,
		Counterparty: sender.Ref,
		Reference:    reference,
		Timestamp:    now,
	}

	if err := uc.recordRepo.Append(ctx, tx, credit); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &domain.TransferReceipt{
		Reference:        reference,
		Sender:           sender.Ref,
		Recipient:        recipient.Ref,
		Amount:           req.Amount,
		SenderBalance:    senderBalance,
		RecipientBalance: recipientBalance,
		Timestamp:        now,
	}, nil
}
