package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/middleware"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/auth"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase/mocks"
)

// identityAs fakes an authenticated request for handler tests.
func identityAs(req *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.IdentityContextKey, claims)
	return req.WithContext(ctx)
}

func newCustomerRouter(t *testing.T) (chi.Router, *mocks.MockCustomerRepository) {
	t.Helper()
	customerRepo := mocks.NewMockCustomerRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	activityRepo := mocks.NewMockActivityRepository()
	idGen := &mocks.MockIDGenerator{Prefix: "cust"}

	customerUC := usecase.NewCustomerUseCase(
		mocks.NewMockTransactionManager(), &mocks.MockRetrier{},
		customerRepo, txnRepo, activityRepo, nil, idGen,
	)
	txnUC := usecase.NewTransactionUseCase(txnRepo, customerRepo, activityRepo, nil, idGen)
	h := NewCustomerHandler(customerUC, txnUC)

	r := chi.NewRouter()
	r.Post("/customers", h.Create)
	r.Get("/customers/{id}", h.Get)
	r.Delete("/customers/{id}", h.Delete)
	return r, customerRepo
}

func TestCustomerHandler_Create(t *testing.T) {
	router, _ := newCustomerRouter(t)

	body := `{"name":"Anita","phone":"9876543210","address":"Market Road"}`
	req := identityAs(
		httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString(body)),
		&auth.Claims{UserID: "owner-1", Role: domain.RoleOwner},
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		PortalAccess bool   `json:"portal_access"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Name != "Anita" {
		t.Errorf("expected name Anita, got %s", resp.Name)
	}
	if resp.PortalAccess {
		t.Error("new customer should not have portal access")
	}
}

func TestCustomerHandler_Create_InvalidBody(t *testing.T) {
	router, _ := newCustomerRouter(t)

	req := identityAs(
		httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString(`{"name":`)),
		&auth.Claims{UserID: "owner-1", Role: domain.RoleOwner},
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCustomerHandler_Get_WrongOwnerIsForbidden(t *testing.T) {
	router, customerRepo := newCustomerRouter(t)

	if err := customerRepo.Create(context.Background(), &domain.Customer{
		ID: "c-1", OwnerID: "owner-1", Name: "Anita",
	}); err != nil {
		t.Fatal(err)
	}

	req := identityAs(
		httptest.NewRequest(http.MethodGet, "/customers/c-1", nil),
		&auth.Claims{UserID: "owner-2", Role: domain.RoleOwner},
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCustomerHandler_Delete(t *testing.T) {
	router, customerRepo := newCustomerRouter(t)
	ctx := context.Background()

	if err := customerRepo.Create(ctx, &domain.Customer{
		ID: "c-1", OwnerID: "owner-1", Name: "Anita",
	}); err != nil {
		t.Fatal(err)
	}

	req := identityAs(
		httptest.NewRequest(http.MethodDelete, "/customers/c-1", nil),
		&auth.Claims{UserID: "owner-1", Role: domain.RoleOwner},
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, err := customerRepo.GetByID(ctx, "c-1"); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected customer to be gone, got %v", err)
	}
}
