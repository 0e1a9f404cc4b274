package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/middleware"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	customerUC *usecase.CustomerUseCase
	txnUC      *usecase.TransactionUseCase
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerUC *usecase.CustomerUseCase, txnUC *usecase.TransactionUseCase) *CustomerHandler {
	return &CustomerHandler{customerUC: customerUC, txnUC: txnUC}
}

// ownerID extracts the authenticated owner from the request context.
func ownerID(r *http.Request) (string, bool) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

// Create creates a new customer.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.CreateCustomer(r.Context(), req.ToUseCaseInput(owner))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create customer", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CustomerFromDomain(customer))
}

// List lists the owner's customers with balances. Supports a free-text
// name/phone query.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	customers, err := h.customerUC.ListCustomersWithBalances(r.Context(), usecase.ListCustomersInput{
		OwnerID: owner,
		Query:   r.URL.Query().Get("q"),
		Limit:   parseIntQuery(r, "limit", 0),
		Offset:  parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list customers", err.Error())
		return
	}

	result := make([]*dto.CustomerWithBalanceResponse, len(customers))
	for i, c := range customers {
		result[i] = dto.CustomerWithBalanceFromUseCase(c)
	}

	writeJSON(w, http.StatusOK, dto.ListCustomersResponse{
		Customers: result,
		Total:     len(result),
	})
}

// Get retrieves a customer with its balance.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	cb, err := h.customerUC.GetCustomerWithBalance(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerWithBalanceFromUseCase(cb))
}

// Update updates customer details.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.UpdateCustomer(r.Context(), req.ToUseCaseInput(owner, chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update customer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CustomerFromDomain(customer))
}

// Delete removes a customer and all of its transactions.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	if err := h.customerUC.DeleteCustomer(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete customer", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Statement returns the customer's transaction history, newest first,
// with running balances.
func (h *CustomerHandler) Statement(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	statement, err := h.txnUC.StatementForCustomer(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to build statement", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(statement))
}

// SetPortalCode issues or rotates the customer's portal access code.
func (h *CustomerHandler) SetPortalCode(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.SetPortalCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.customerUC.SetPortalCode(r.Context(), owner, chi.URLParam(r, "id"), req.Code); err != nil {
		writeError(w, mapDomainError(err), "failed to set portal code", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
