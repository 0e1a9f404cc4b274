package handler

import (
	"net/http"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// AnalyticsHandler handles dashboard and ranking HTTP requests.
type AnalyticsHandler struct {
	analyticsUC *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// Dashboard returns the owner's home-screen overview.
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	stats, err := h.analyticsUC.Dashboard(r.Context(), owner)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Top ranks customers by signed balance. direction=highest returns the
// customers the owner owes most; direction=lowest the reverse.
func (h *AnalyticsHandler) Top(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	dir := ledger.Direction(r.URL.Query().Get("direction"))
	if dir != ledger.Highest && dir != ledger.Lowest {
		writeError(w, http.StatusBadRequest, "invalid direction", "direction must be highest or lowest")
		return
	}

	ranked, err := h.analyticsUC.TopCustomers(r.Context(), owner, dir, parseIntQuery(r, "limit", 0))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to rank customers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RankedCustomersFromUseCase(ranked))
}
