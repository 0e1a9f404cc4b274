package handler

import (
	"net/http"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// AdminHandler handles admin-only HTTP requests.
type AdminHandler struct {
	userUC *usecase.UserUseCase
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userUC *usecase.UserUseCase) *AdminHandler {
	return &AdminHandler{userUC: userUC}
}

// ListOwners lists registered owner accounts.
func (h *AdminHandler) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners, err := h.userUC.ListOwners(r.Context(), parseIntQuery(r, "limit", 0), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list owners", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UsersFromDomain(owners))
}
