package handler

import (
	"encoding/json"
	"net/http"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/dto"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/adapter/http/middleware"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/auth"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// AuthHandler handles account registration, login and profile endpoints.
type AuthHandler struct {
	userUC     *usecase.UserUseCase
	customerUC *usecase.CustomerUseCase
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC *usecase.UserUseCase, customerUC *usecase.CustomerUseCase, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		customerUC: customerUC,
		jwtManager: jwtManager,
	}
}

// Register creates an owner account and returns a token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register", err.Error())
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Login authenticates an owner or admin account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// PortalLogin authenticates a customer by phone and portal access code.
func (h *AuthHandler) PortalLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.PortalLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	customer, err := h.customerUC.AuthenticatePortal(r.Context(), req.Phone, req.Code)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := h.jwtManager.GeneratePortal(customer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PortalAuthResponse{
		Token:    token,
		Customer: dto.CustomerFromDomain(customer),
	})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok || claims.UserID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get user", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// UpdateProfile updates the authenticated account's profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.IdentityFromContext(r.Context())
	if !ok || claims.UserID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.UpdateUser(r.Context(), usecase.UpdateUserInput{
		ID:           claims.UserID,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Password:     req.Password,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update profile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
