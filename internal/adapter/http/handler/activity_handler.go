package handler

import (
	"net/http"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// ActivityHandler exposes the owner's activity trail.
type ActivityHandler struct {
	activityUC *usecase.ActivityUseCase
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityUC *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{activityUC: activityUC}
}

// List returns recent activity for the owner, newest first. Supports
// action and resource_type filters.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	activities, err := h.activityUC.List(r.Context(), domain.ActivityFilter{
		OwnerID:      owner,
		Action:       domain.ActivityAction(r.URL.Query().Get("action")),
		ResourceType: r.URL.Query().Get("resource_type"),
		Limit:        parseIntQuery(r, "limit", 0),
		Offset:       parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list activity", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ActivitiesFromDomain(activities))
}
