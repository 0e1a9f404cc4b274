package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/metrics"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

// TransactionUseCase handles customer transaction business logic.
type TransactionUseCase struct {
	txnRepo      TransactionRepository
	customerRepo CustomerRepository
	activityRepo ActivityRepository
	cache        Cache
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txnRepo TransactionRepository,
	customerRepo CustomerRepository,
	activityRepo ActivityRepository,
	cache Cache,
	idGen IDGenerator,
) *TransactionUseCase {
	return &TransactionUseCase{
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
		activityRepo: activityRepo,
		cache:        cache,
		idGen:        idGen,
	}
}

// WithMetrics attaches business metrics recording.
func (uc *TransactionUseCase) WithMetrics(m *metrics.Metrics) *TransactionUseCase {
	uc.metrics = m
	return uc
}

// CreateTransactionInput represents input for recording a transaction.
type CreateTransactionInput struct {
	OwnerID     string
	CustomerID  string
	Kind        ledger.Kind
	Amount      decimal.Decimal
	Description string
	OccurredOn  time.Time
}

// CreateTransaction records a debit or credit against a customer.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if !domain.IsTransactionKind(input.Kind) {
		return nil, domain.ErrInvalidKind
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if input.OccurredOn.IsZero() {
		return nil, domain.ErrMissingOccurredOn
	}

	if _, err := uc.getOwnedCustomer(ctx, input.OwnerID, input.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:          uc.idGen.Generate(),
		OwnerID:     input.OwnerID,
		CustomerID:  input.CustomerID,
		Kind:        input.Kind,
		Amount:      input.Amount,
		Description: domain.NormalizeDescription(input.Description),
		OccurredOn:  ledger.DateOf(input.OccurredOn),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	uc.invalidateDashboard(ctx, input.OwnerID)

	if uc.metrics != nil {
		uc.metrics.TransactionsRecorded.WithLabelValues(string(txn.Kind)).Inc()
		uc.metrics.TransactionAmount.WithLabelValues(string(txn.Kind)).Observe(txn.Amount.InexactFloat64())
	}

	if err := uc.recordActivity(ctx, input.OwnerID, domain.ActivityTransactionCreate, txn.ID); err != nil {
		return nil, err
	}

	return txn, nil
}

// UpdateTransactionInput represents input for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	OwnerID       string
	TransactionID string
	Kind          *ledger.Kind
	Amount        *decimal.Decimal
	Description   *string
	OccurredOn    *time.Time
}

// UpdateTransaction updates a transaction in place.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error) {
	txn, err := uc.getOwnedTransaction(ctx, input.OwnerID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if input.Kind != nil {
		if !domain.IsTransactionKind(*input.Kind) {
			return nil, domain.ErrInvalidKind
		}
		txn.Kind = *input.Kind
	}
	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *input.Amount
	}
	if input.Description != nil {
		txn.Description = domain.NormalizeDescription(*input.Description)
	}
	if input.OccurredOn != nil {
		if input.OccurredOn.IsZero() {
			return nil, domain.ErrMissingOccurredOn
		}
		txn.OccurredOn = ledger.DateOf(*input.OccurredOn)
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.txnRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	uc.invalidateDashboard(ctx, input.OwnerID)

	if err := uc.recordActivity(ctx, input.OwnerID, domain.ActivityTransactionUpdate, txn.ID); err != nil {
		return nil, err
	}

	return txn, nil
}

// DeleteTransaction hard-deletes a transaction.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	if _, err := uc.getOwnedTransaction(ctx, ownerID, transactionID); err != nil {
		return err
	}

	if err := uc.txnRepo.Delete(ctx, transactionID); err != nil {
		return err
	}

	uc.invalidateDashboard(ctx, ownerID)

	return uc.recordActivity(ctx, ownerID, domain.ActivityTransactionDelete, transactionID)
}

// StatementLine is a transaction annotated with the running balance as
// of (and including) that transaction in chronological order.
type StatementLine struct {
	Transaction    *domain.Transaction
	RunningBalance decimal.Decimal
}

// Statement is a customer's transaction history, newest first, with the
// final balance. Running balances are computed chronologically before
// the list is reversed for display.
type Statement struct {
	Lines   []StatementLine
	Balance decimal.Decimal
}

// StatementForCustomer builds the owner-facing statement for a customer.
func (uc *TransactionUseCase) StatementForCustomer(ctx context.Context, ownerID, customerID string) (*Statement, error) {
	if _, err := uc.getOwnedCustomer(ctx, ownerID, customerID); err != nil {
		return nil, err
	}
	return uc.statement(ctx, customerID)
}

// StatementForPortal builds the statement for the customer self-service
// portal. The customer identity comes from the portal token.
func (uc *TransactionUseCase) StatementForPortal(ctx context.Context, customerID string) (*Statement, error) {
	if _, err := uc.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return uc.statement(ctx, customerID)
}

func (uc *TransactionUseCase) statement(ctx context.Context, customerID string) (*Statement, error) {
	txns, err := uc.txnRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	positions, total, err := ledger.RunningBalances(domain.LedgerEntries(txns))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Transaction, len(txns))
	for _, t := range txns {
		byID[t.ID] = t
	}

	// Newest first for display; the computed values stay chronological.
	lines := make([]StatementLine, len(positions))
	for i, p := range positions {
		lines[len(positions)-1-i] = StatementLine{
			Transaction:    byID[p.Entry.ID],
			RunningBalance: p.Balance,
		}
	}

	return &Statement{Lines: lines, Balance: total}, nil
}

func (uc *TransactionUseCase) getOwnedCustomer(ctx context.Context, ownerID, customerID string) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.OwnerID != ownerID {
		return nil, domain.ErrCustomerNotOwned
	}
	return customer, nil
}

func (uc *TransactionUseCase) getOwnedTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	txn, err := uc.txnRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.OwnerID != ownerID {
		return nil, domain.ErrTransactionNotFound
	}
	return txn, nil
}

func (uc *TransactionUseCase) recordActivity(ctx context.Context, ownerID string, action domain.ActivityAction, resourceID string) error {
	if uc.metrics != nil {
		uc.metrics.ActivitiesRecorded.WithLabelValues(string(action)).Inc()
	}

	return uc.activityRepo.Create(ctx, &domain.Activity{
		ID:           uc.idGen.Generate(),
		OwnerID:      ownerID,
		ActorRole:    domain.RoleOwner,
		Action:       action,
		ResourceType: "transaction",
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	})
}

func (uc *TransactionUseCase) invalidateDashboard(ctx context.Context, ownerID string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, dashboardCacheKey(ownerID))
	}
}
