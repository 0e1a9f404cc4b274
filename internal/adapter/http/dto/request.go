package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// RegisterRequest represents a request to register an owner account.
type RegisterRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Password     string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:        r.Email,
		Name:         r.Name,
		BusinessName: r.BusinessName,
		Password:     r.Password,
	}
}

// LoginRequest represents an owner or admin login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PortalLoginRequest represents a customer portal login request.
type PortalLoginRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// UpdateProfileRequest represents a profile update. Omitted fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	BusinessName *string `json:"business_name,omitempty"`
	Password     *string `json:"password,omitempty"`
}

// CreateCustomerRequest represents a request to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCustomerRequest) ToUseCaseInput(ownerID string) usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		OwnerID: ownerID,
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
	}
}

// UpdateCustomerRequest represents a customer update. Omitted fields are
// left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCustomerRequest) ToUseCaseInput(ownerID, customerID string) usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		OwnerID:    ownerID,
		CustomerID: customerID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
	}
}

// SetPortalCodeRequest represents a request to issue or rotate a
// customer's portal access code.
type SetPortalCodeRequest struct {
	Code string `json:"code"`
}

// CreateTransactionRequest represents a request to record a debit or
// credit against a customer. OccurredOn is the business date.
type CreateTransactionRequest struct {
	CustomerID  string          `json:"customer_id"`
	Kind        ledger.Kind     `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	OccurredOn  time.Time       `json:"occurred_on"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput(ownerID string) usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		OwnerID:     ownerID,
		CustomerID:  r.CustomerID,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Description: r.Description,
		OccurredOn:  r.OccurredOn,
	}
}

// UpdateTransactionRequest represents a transaction update. Omitted
// fields are left unchanged.
type UpdateTransactionRequest struct {
	Kind        *ledger.Kind     `json:"kind,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	OccurredOn  *time.Time       `json:"occurred_on,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput(ownerID, transactionID string) usecase.UpdateTransactionInput {
	return usecase.UpdateTransactionInput{
		OwnerID:       ownerID,
		TransactionID: transactionID,
		Kind:          r.Kind,
		Amount:        r.Amount,
		Description:   r.Description,
		OccurredOn:    r.OccurredOn,
	}
}

// CreateCashbookEntryRequest represents a request to record an income or
// expense line.
type CreateCashbookEntryRequest struct {
	Kind        ledger.Kind     `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OccurredOn  time.Time       `json:"occurred_on"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCashbookEntryRequest) ToUseCaseInput(ownerID string) usecase.CreateCashbookEntryInput {
	return usecase.CreateCashbookEntryInput{
		OwnerID:     ownerID,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Description: r.Description,
		OccurredOn:  r.OccurredOn,
	}
}

// UpdateCashbookEntryRequest represents a cashbook line update. Omitted
// fields are left unchanged.
type UpdateCashbookEntryRequest struct {
	Kind        *ledger.Kind     `json:"kind,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	OccurredOn  *time.Time       `json:"occurred_on,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCashbookEntryRequest) ToUseCaseInput(ownerID, entryID string) usecase.UpdateCashbookEntryInput {
	return usecase.UpdateCashbookEntryInput{
		OwnerID:     ownerID,
		EntryID:     entryID,
		Kind:        r.Kind,
		Amount:      r.Amount,
		Description: r.Description,
		OccurredOn:  r.OccurredOn,
	}
}

// SendMessageRequest represents a request to send a message. CustomerID
// empty targets the owner-admin support thread. OwnerID selects the
// thread's owner and is honored for admin callers only; owners always
// post to their own threads.
type SendMessageRequest struct {
	OwnerID    string `json:"owner_id,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	Body       string `json:"body"`
}
