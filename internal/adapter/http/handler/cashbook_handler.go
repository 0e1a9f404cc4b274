package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// CashbookHandler handles cashbook-related HTTP requests.
type CashbookHandler struct {
	cashbookUC *usecase.CashbookUseCase
}

// NewCashbookHandler creates a new CashbookHandler.
func NewCashbookHandler(cashbookUC *usecase.CashbookUseCase) *CashbookHandler {
	return &CashbookHandler{cashbookUC: cashbookUC}
}

// Create records an income or expense line.
func (h *CashbookHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateCashbookEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.cashbookUC.CreateEntry(r.Context(), req.ToUseCaseInput(owner))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CashbookEntryFromDomain(entry))
}

// List lists cashbook lines, optionally restricted to an inclusive
// from/to date window.
func (h *CashbookHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	entries, err := h.cashbookUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		OwnerID: owner,
		From:    parseDateQuery(r, "from"),
		To:      parseDateQuery(r, "to"),
		Limit:   parseIntQuery(r, "limit", 0),
		Offset:  parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashbookEntriesFromDomain(entries))
}

// Update updates a cashbook line in place.
func (h *CashbookHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.UpdateCashbookEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.cashbookUC.UpdateEntry(r.Context(), req.ToUseCaseInput(owner, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashbookEntryFromDomain(entry))
}

// Delete removes a cashbook line.
func (h *CashbookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.cashbookUC.DeleteEntry(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary aggregates the cashbook over an optional inclusive date window.
func (h *CashbookHandler) Summary(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	summary, err := h.cashbookUC.Summary(r.Context(), owner, parseDateQuery(r, "from"), parseDateQuery(r, "to"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to summarize cashbook", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashbookSummaryFromUseCase(summary))
}
