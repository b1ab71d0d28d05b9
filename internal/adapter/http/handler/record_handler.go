package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pickndrop/walletd/internal/adapter/http/dto"
	"github.com/pickndrop/walletd/internal/domain"
	"github.com/pickndrop/walletd/internal/usecase"
)

// RecordHandler handles transaction history HTTP requests.
type RecordHandler struct {
	historyUC HistoryService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(historyUC HistoryService) *RecordHandler {
	return &RecordHandler{historyUC: historyUC}
}

// ListByParty lists a party's transaction records, newest first.
func (h *RecordHandler) ListByParty(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParsePartyKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party kind", err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", usecase.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	records, err := h.historyUC.ListByParty(r.Context(), usecase.ListByPartyInput{
		Ref:    domain.PartyRef{Kind: kind, ID: id},
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(w, "failed to list transactions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordsFromDomain(records))
}
