package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pickndrop/walletd/internal/domain"
)

// PartyResponse represents a party in API responses.
type PartyResponse struct {
	Kind      string          `json:"kind"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PartyFromDomain converts a domain party to a response.
func PartyFromDomain(p *domain.Party) *PartyResponse {
	return &PartyResponse{
		Kind:      string(p.Ref.Kind),
		ID:        p.Ref.ID,
		Name:      p.Name,
		Balance:   p.Balance,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PartiesFromDomain converts domain parties to responses.
func PartiesFromDomain(parties []*domain.Party) []*PartyResponse {
	result := make([]*PartyResponse, len(parties))
	for i, p := range parties {
		result[i] = PartyFromDomain(p)
	}
	return result
}

// TransferReceiptResponse represents a committed transfer in API responses.
type TransferReceiptResponse struct {
	Reference        string          `json:"reference"`
	SenderKind       string          `json:"sender_kind"`
	SenderID         string          `json:"sender_id"`
	RecipientKind    string          `json:"recipient_kind"`
	RecipientID      string          `json:"recipient_id"`
	Amount           decimal.Decimal `json:"amount"`
	SenderBalance    decimal.Decimal `json:"sender_balance"`
	RecipientBalance decimal.Decimal `json:"recipient_balance"`
	Timestamp        time.Time       `json:"timestamp"`
}

// ReceiptFromDomain converts a domain transfer receipt to a response.
func ReceiptFromDomain(r *domain.TransferReceipt) *TransferReceiptResponse {
	return &TransferReceiptResponse{
		Reference:        r.Reference.String(),
		SenderKind:       string(r.Sender.Kind),
		SenderID:         r.Sender.ID,
		RecipientKind:    string(r.Recipient.Kind),
		RecipientID:      r.Recipient.ID,
		Amount:           r.Amount,
		SenderBalance:    r.SenderBalance,
		RecipientBalance: r.RecipientBalance,
		Timestamp:        r.Timestamp,
	}
}

// RecordResponse represents a transaction record in API responses.
type RecordResponse struct {
	ID               string          `json:"id"`
	OwnerKind        string          `json:"owner_kind"`
	OwnerID          string          `json:"owner_id"`
	Amount           decimal.Decimal `json:"amount"`
	Note             string          `json:"note,omitempty"`
	Status           string          `json:"status"`
	Direction        string          `json:"direction"`
	CounterpartyKind string          `json:"counterparty_kind"`
	CounterpartyID   string          `json:"counterparty_id"`
	Reference        string          `json:"reference"`
	Timestamp        time.Time       `json:"timestamp"`
}

// RecordFromDomain converts a domain transaction record to a response.
func RecordFromDomain(rec *domain.TransactionRecord) *RecordResponse {
	return &RecordResponse{
		ID:               rec.ID,
		OwnerKind:        string(rec.Owner.Kind),
		OwnerID:          rec.Owner.ID,
		Amount:           rec.Amount,
		Note:             rec.Note,
		Status:           string(rec.Status),
		Direction:        string(rec.Direction),
		CounterpartyKind: string(rec.Counterparty.Kind),
		CounterpartyID:   rec.Counterparty.ID,
		Reference:        rec.Reference.String(),
		Timestamp:        rec.Timestamp,
	}
}

// RecordsFromDomain converts domain transaction records to responses.
func RecordsFromDomain(records []*domain.TransactionRecord) []*RecordResponse {
	result := make([]*RecordResponse, len(records))
	for i, rec := range records {
		result[i] = RecordFromDomain(rec)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Reference string            `json:"reference,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}
