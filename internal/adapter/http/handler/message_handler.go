package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/middleware"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/auth"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// MessageHandler handles owner-side messaging HTTP requests.
type MessageHandler struct {
	messageUC *usecase.MessageUseCase
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageUC *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

// Send appends a message to a thread. customer_id empty targets the
// owner-admin support thread.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok || claims.UserID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	msg, err := h.messageUC.SendMessage(r.Context(), usecase.SendMessageInput{
		OwnerID:    threadOwnerID(claims, req.OwnerID),
		CustomerID: req.CustomerID,
		Sender:     claims.Role,
		Body:       req.Body,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to send message", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.MessageFromDomain(msg))
}

// Thread lists a conversation, oldest first.
func (h *MessageHandler) Thread(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok || claims.UserID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	messages, err := h.messageUC.Thread(r.Context(), usecase.ThreadInput{
		OwnerID:    threadOwnerID(claims, r.URL.Query().Get("owner_id")),
		CustomerID: r.URL.Query().Get("customer_id"),
		Limit:      parseIntQuery(r, "limit", 0),
		Offset:     parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list messages", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.MessagesFromDomain(messages))
}

// MarkRead flags a message as read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok || claims.UserID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	owner := threadOwnerID(claims, r.URL.Query().Get("owner_id"))
	if err := h.messageUC.MarkRead(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to mark message read", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// threadOwnerID resolves which owner's thread an operation targets.
// Admins answer support threads of any owner; everyone else stays
// scoped to their own ID.
func threadOwnerID(claims *auth.Claims, requested string) string {
	if claims.Role == domain.RoleAdmin && requested != "" {
		return requested
	}
	return claims.UserID
}
