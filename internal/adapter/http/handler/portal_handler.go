package handler

import (
	"encoding/json"
	"net/http"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/middleware"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/auth"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// PortalHandler handles the customer self-service portal. The customer
// identity always comes from the portal token, never from the request.
type PortalHandler struct {
	txnUC     *usecase.TransactionUseCase
	messageUC *usecase.MessageUseCase
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(txnUC *usecase.TransactionUseCase, messageUC *usecase.MessageUseCase) *PortalHandler {
	return &PortalHandler{txnUC: txnUC, messageUC: messageUC}
}

func portalClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok || claims.Role != domain.RoleCustomer || claims.CustomerID == "" {
		return nil, false
	}
	return claims, true
}

// Statement returns the authenticated customer's own statement.
func (h *PortalHandler) Statement(w http.ResponseWriter, r *http.Request) {
	claims, ok := portalClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	statement, err := h.txnUC.StatementForPortal(r.Context(), claims.CustomerID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// Messages lists the customer's thread with the owner, oldest first.
func (h *PortalHandler) Messages(w http.ResponseWriter, r *http.Request) {
	claims, ok := portalClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	messages, err := h.messageUC.Thread(r.Context(), usecase.ThreadInput{
		OwnerID:    claims.OwnerID,
		CustomerID: claims.CustomerID,
		Limit:      parseIntQuery(r, "limit", 0),
		Offset:     parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list messages", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MessagesFromDomain(messages))
}

// SendMessage posts a message to the customer's thread with the owner.
func (h *PortalHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := portalClaims(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	msg, err := h.messageUC.SendMessage(r.Context(), usecase.SendMessageInput{
		OwnerID:    claims.OwnerID,
		CustomerID: claims.CustomerID,
		Sender:     domain.RoleCustomer,
		Body:       req.Body,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to send message", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MessageFromDomain(msg))
}
