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

// PartyService manages wallet-holding parties.
type PartyService interface {
	CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	GetParty(ctx context.Context, ref domain.PartyRef) (*domain.Party, error)
	ListParties(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error)
}

// PartyHandler handles party-related HTTP requests.
type PartyHandler struct {
	partyUC PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyUC PartyService) *PartyHandler {
	return &PartyHandler{partyUC: partyUC}
}

// Create creates a new party of the kind named in the URL.
func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromURL(w, r)
	if !ok {
		return
	}

	var req dto.CreatePartyRequest
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

	party, err := h.partyUC.CreateParty(r.Context(), req.ToUseCaseInput(kind))
	if err != nil {
		writeDomainError(w, "failed to create party", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PartyFromDomain(party))
}

// Get retrieves a party by kind and ID.
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromURL(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	party, err := h.partyUC.GetParty(r.Context(), domain.PartyRef{Kind: kind, ID: id})
	if err != nil {
		writeDomainError(w, "failed to get party", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// List lists parties of one kind.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromURL(w, r)
	if !ok {
		return
	}

	limit := parseIntQuery(r, "limit", usecase.DefaultPageSize)
	offset := parseIntQuery(r, "offset", 0)

	parties, err := h.partyUC.ListParties(r.Context(), usecase.ListPartiesInput{
		Kind:   kind,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(w, "failed to list parties", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PartiesFromDomain(parties))
}

// kindFromURL parses the {kind} URL segment, writing a 400 on failure.
func kindFromURL(w http.ResponseWriter, r *http.Request) (domain.PartyKind, bool) {
	kind, err := domain.ParsePartyKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party kind", err.Error())
		return "", false
	}
	return kind, true
}
