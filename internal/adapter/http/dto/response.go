package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// UserResponse represents an account in API responses.
type UserResponse struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	BusinessName string      `json:"business_name,omitempty"`
	Role         domain.Role `json:"role"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		BusinessName: u.BusinessName,
		Role:         u.Role,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// AuthResponse represents a successful owner or admin login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// PortalAuthResponse represents a successful customer portal login.
type PortalAuthResponse struct {
	Token    string            `json:"token"`
	Customer *CustomerResponse `json:"customer"`
}

// CustomerResponse represents a customer in API responses.
type CustomerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Address      string    `json:"address,omitempty"`
	PortalAccess bool      `json:"portal_access"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CustomerFromDomain converts a domain customer to a response.
func CustomerFromDomain(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		PortalAccess: c.HasPortalAccess(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CustomerWithBalanceResponse pairs a customer with its ledger balance.
// Positive means the owner will give; negative means the owner will get.
type CustomerWithBalanceResponse struct {
	*CustomerResponse
	Balance decimal.Decimal `json:"balance"`
}

// CustomerWithBalanceFromUseCase converts a use case result to a response.
func CustomerWithBalanceFromUseCase(cb *usecase.CustomerWithBalance) *CustomerWithBalanceResponse {
	return &CustomerWithBalanceResponse{
		CustomerResponse: CustomerFromDomain(cb.Customer),
		Balance:          cb.Balance,
	}
}

// ListCustomersResponse wraps a customer listing.
type ListCustomersResponse struct {
	Customers []*CustomerWithBalanceResponse `json:"customers"`
	Total     int                            `json:"total"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Kind        ledger.Kind     `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OccurredOn  time.Time       `json:"occurred_on"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		Kind:        t.Kind,
		Amount:      t.Amount,
		Description: t.Description,
		OccurredOn:  t.OccurredOn,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// StatementLineResponse is a transaction annotated with the running
// balance as of that transaction in chronological order.
type StatementLineResponse struct {
	*TransactionResponse
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// StatementResponse is a customer's history, newest first.
type StatementResponse struct {
	Lines   []*StatementLineResponse `json:"lines"`
	Balance decimal.Decimal          `json:"balance"`
}

// StatementFromUseCase converts a use case statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	lines := make([]*StatementLineResponse, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = &StatementLineResponse{
			TransactionResponse: TransactionFromDomain(line.Transaction),
			RunningBalance:      line.RunningBalance,
		}
	}
	return &StatementResponse{Lines: lines, Balance: s.Balance}
}

// CashbookEntryResponse represents a cashbook line in API responses.
type CashbookEntryResponse struct {
	ID          string          `json:"id"`
	Kind        ledger.Kind     `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OccurredOn  time.Time       `json:"occurred_on"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CashbookEntryFromDomain converts a domain cashbook entry to a response.
func CashbookEntryFromDomain(e *domain.CashbookEntry) *CashbookEntryResponse {
	return &CashbookEntryResponse{
		ID:          e.ID,
		Kind:        e.Kind,
		Amount:      e.Amount,
		Description: e.Description,
		OccurredOn:  e.OccurredOn,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// CashbookEntriesFromDomain converts domain cashbook entries to responses.
func CashbookEntriesFromDomain(entries []*domain.CashbookEntry) []*CashbookEntryResponse {
	result := make([]*CashbookEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = CashbookEntryFromDomain(e)
	}
	return result
}

// CashbookSummaryResponse is the income/expense overview for a period.
type CashbookSummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetBalance   decimal.Decimal `json:"net_balance"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
	TotalEntries int             `json:"total_entries"`
}

// CashbookSummaryFromUseCase converts a use case summary to a response.
func CashbookSummaryFromUseCase(s *usecase.CashbookSummary) *CashbookSummaryResponse {
	return &CashbookSummaryResponse{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		NetBalance:   s.NetBalance,
		IncomeCount:  s.IncomeCount,
		ExpenseCount: s.ExpenseCount,
		TotalEntries: s.TotalEntries,
	}
}

// RankedCustomerResponse pairs a customer with its balance in a ranking.
type RankedCustomerResponse struct {
	Customer *CustomerResponse `json:"customer"`
	Balance  decimal.Decimal   `json:"balance"`
}

// RankedCustomersFromUseCase converts a use case ranking to responses.
func RankedCustomersFromUseCase(ranked []*usecase.RankedCustomer) []*RankedCustomerResponse {
	result := make([]*RankedCustomerResponse, len(ranked))
	for i, r := range ranked {
		result[i] = &RankedCustomerResponse{
			Customer: CustomerFromDomain(r.Customer),
			Balance:  r.Balance,
		}
	}
	return result
}

// MessageResponse represents a message in API responses.
type MessageResponse struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id,omitempty"`
	Sender     domain.Role `json:"sender"`
	Body       string      `json:"body"`
	Read       bool        `json:"read"`
	CreatedAt  time.Time   `json:"created_at"`
}

// MessageFromDomain converts a domain message to a response.
func MessageFromDomain(m *domain.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Sender:     m.Sender,
		Body:       m.Body,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}

// MessagesFromDomain converts domain messages to responses.
func MessagesFromDomain(messages []*domain.Message) []*MessageResponse {
	result := make([]*MessageResponse, len(messages))
	for i, m := range messages {
		result[i] = MessageFromDomain(m)
	}
	return result
}

// ActivityResponse represents an activity line in API responses.
type ActivityResponse struct {
	ID           string                `json:"id"`
	ActorRole    domain.Role           `json:"actor_role"`
	Action       domain.ActivityAction `json:"action"`
	ResourceType string                `json:"resource_type"`
	ResourceID   string                `json:"resource_id"`
	CreatedAt    time.Time             `json:"created_at"`
}

// ActivitiesFromDomain converts domain activities to responses.
func ActivitiesFromDomain(activities []*domain.Activity) []*ActivityResponse {
	result := make([]*ActivityResponse, len(activities))
	for i, a := range activities {
		result[i] = &ActivityResponse{
			ID:           a.ID,
			ActorRole:    a.ActorRole,
			Action:       a.Action,
			ResourceType: a.ResourceType,
			ResourceID:   a.ResourceID,
			CreatedAt:    a.CreatedAt,
		}
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
