package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pickndrop/walletd/internal/adapter/http/dto"
	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
)

// TransferService executes wallet transfers.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.TransferReceipt, error)
}

// HistoryService serves transaction record lookups.
type HistoryService interface {
	ListByParty(ctx context.Context, input usecase.ListByPartyInput) ([]*domain.TransactionRecord, error)
	GetByReference(ctx context.Context, reference domain.Reference) ([]*domain.TransactionRecord, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC TransferService
	historyUC  HistoryService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService, historyUC HistoryService) *TransferHandler {
	return &TransferHandler{
		transferUC: transferUC,
		historyUC:  historyUC,
	}
}

// Create executes a new transfer.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := dto.Validate(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation failed",
			Message: err.Error(),
			Fields:  dto.ValidationFields(err),
		})
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party reference", err.Error())
		return
	}

	receipt, err := h.transferUC.Transfer(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to create transfer", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}

// Get retrieves the matched record pair of a transfer by reference.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		writeError(w, http.StatusBadRequest, "missing transfer reference", "")
		return
	}

	records, err := h.historyUC.GetByReference(r.Context(), domain.Reference(reference))
	if err != nil {
		writeDomainError(w, "failed to get transfer", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordsFromDomain(records))
}
