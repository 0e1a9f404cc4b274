package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/metrics"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

// CustomerUseCase handles customer business logic.
type CustomerUseCase struct {
	txManager    TransactionManager
	retrier      Retrier
	customerRepo CustomerRepository
	txnRepo      TransactionRepository
	activityRepo ActivityRepository
	cache        Cache
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewCustomerUseCase creates a new CustomerUseCase.
func NewCustomerUseCase(
	txManager TransactionManager,
	retrier Retrier,
	customerRepo CustomerRepository,
	txnRepo TransactionRepository,
	activityRepo ActivityRepository,
	cache Cache,
	idGen IDGenerator,
) *CustomerUseCase {
	return &CustomerUseCase{
		txManager:    txManager,
		retrier:      retrier,
		customerRepo: customerRepo,
		txnRepo:      txnRepo,
		activityRepo: activityRepo,
		cache:        cache,
		idGen:        idGen,
	}
}

// WithMetrics attaches business metrics recording.
func (uc *CustomerUseCase) WithMetrics(m *metrics.Metrics) *CustomerUseCase {
	uc.metrics = m
	return uc
}

// CreateCustomerInput represents input for creating a customer.
type CreateCustomerInput struct {
	OwnerID string
	Name    string
	Phone   string
	Email   string
	Address string
}

// CreateCustomer creates a new customer for the owner.
func (uc *CustomerUseCase) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(input.Phone); err != nil {
		return nil, err
	}
	if input.Email != "" {
		if err := domain.ValidateEmail(input.Email); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		ID:        uc.idGen.Generate(),
		OwnerID:   input.OwnerID,
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		Address:   strings.TrimSpace(input.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	if err := uc.recordActivity(ctx, input.OwnerID, domain.ActivityCustomerCreate, customer.ID); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.CustomersCreated.Inc()
	}

	return customer, nil
}

// UpdateCustomerInput represents input for updating a customer. Nil
// fields are left unchanged.
type UpdateCustomerInput struct {
	OwnerID    string
	CustomerID string
	Name       *string
	Phone      *string
	Email      *string
	Address    *string
}

// UpdateCustomer updates customer details.
func (uc *CustomerUseCase) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := uc.getOwned(ctx, input.OwnerID, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		customer.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		if err := domain.ValidatePhone(*input.Phone); err != nil {
			return nil, err
		}
		customer.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		if *input.Email != "" {
			if err := domain.ValidateEmail(*input.Email); err != nil {
				return nil, err
			}
		}
		customer.Email = strings.TrimSpace(*input.Email)
	}
	if input.Address != nil {
		customer.Address = strings.TrimSpace(*input.Address)
	}

	customer.UpdatedAt = time.Now().UTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	if err := uc.recordActivity(ctx, input.OwnerID, domain.ActivityCustomerUpdate, customer.ID); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer hard-deletes a customer and cascades to all of its
// transactions inside one database transaction. The whole operation is
// retried on deadlock or serialization failure.
func (uc *CustomerUseCase) DeleteCustomer(ctx context.Context, ownerID, customerID string) error {
	if _, err := uc.getOwned(ctx, ownerID, customerID); err != nil {
		return err
	}

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.txnRepo.DeleteByCustomerTx(ctx, tx, customerID); err != nil {
			return err
		}
		if err := uc.customerRepo.DeleteTx(ctx, tx, customerID); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return err
	}

	uc.invalidateDashboard(ctx, ownerID)

	if uc.metrics != nil {
		uc.metrics.CustomersDeleted.Inc()
	}

	return uc.recordActivity(ctx, ownerID, domain.ActivityCustomerDelete, customerID)
}

// CustomerWithBalance pairs a customer with its computed ledger balance.
type CustomerWithBalance struct {
	Customer *domain.Customer
	Balance  decimal.Decimal
}

// GetCustomerWithBalance fetches a customer and computes its balance
// from the full transaction set.
func (uc *CustomerUseCase) GetCustomerWithBalance(ctx context.Context, ownerID, customerID string) (*CustomerWithBalance, error) {
	customer, err := uc.getOwned(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txnRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	balance, err := ledger.Balance(domain.LedgerEntries(txns))
	if err != nil {
		return nil, err
	}

	return &CustomerWithBalance{Customer: customer, Balance: balance}, nil
}

// ListCustomersInput represents input for listing customers.
type ListCustomersInput struct {
	OwnerID string
	Query   string
	Limit   int
	Offset  int
}

// ListCustomersWithBalances lists the owner's customers, each with its
// computed balance. Transactions are fetched once for the whole owner
// and grouped in memory.
func (uc *CustomerUseCase) ListCustomersWithBalances(ctx context.Context, input ListCustomersInput) ([]*CustomerWithBalance, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	customers, err := uc.customerRepo.ListByOwner(ctx, input.OwnerID, input.Query, limit, offset)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txnRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	byCustomer := make(map[string][]*domain.Transaction)
	for _, t := range txns {
		byCustomer[t.CustomerID] = append(byCustomer[t.CustomerID], t)
	}

	result := make([]*CustomerWithBalance, 0, len(customers))
	for _, c := range customers {
		balance, err := ledger.Balance(domain.LedgerEntries(byCustomer[c.ID]))
		if err != nil {
			return nil, err
		}
		result = append(result, &CustomerWithBalance{Customer: c, Balance: balance})
	}

	return result, nil
}

// SetPortalCode issues or rotates the customer's portal access code.
func (uc *CustomerUseCase) SetPortalCode(ctx context.Context, ownerID, customerID, code string) error {
	if len(strings.TrimSpace(code)) < domain.MinPortalCodeLength {
		return domain.ErrPasswordTooWeak
	}

	customer, err := uc.getOwned(ctx, ownerID, customerID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	customer.PortalCodeHash = string(hash)
	customer.UpdatedAt = time.Now().UTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	return uc.recordActivity(ctx, ownerID, domain.ActivityPortalCodeSet, customerID)
}

// AuthenticatePortal verifies a customer's phone and portal access code.
func (uc *CustomerUseCase) AuthenticatePortal(ctx context.Context, phone, code string) (*domain.Customer, error) {
	candidates, err := uc.customerRepo.FindByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if !c.HasPortalAccess() {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PortalCodeHash), []byte(code)) == nil {
			uc.countPortalLogin("success")
			return c, nil
		}
	}

	uc.countPortalLogin("failure")

	return nil, domain.ErrUnauthorized
}

func (uc *CustomerUseCase) countPortalLogin(outcome string) {
	if uc.metrics != nil {
		uc.metrics.PortalLogins.WithLabelValues(outcome).Inc()
	}
}

// getOwned fetches a customer and enforces ownership scoping.
func (uc *CustomerUseCase) getOwned(ctx context.Context, ownerID, customerID string) (*domain.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.OwnerID != ownerID {
		return nil, domain.ErrCustomerNotOwned
	}
	return customer, nil
}

func (uc *CustomerUseCase) recordActivity(ctx context.Context, ownerID string, action domain.ActivityAction, resourceID string) error {
	if uc.metrics != nil {
		uc.metrics.ActivitiesRecorded.WithLabelValues(string(action)).Inc()
	}

	return uc.activityRepo.Create(ctx, &domain.Activity{
		ID:           uc.idGen.Generate(),
		OwnerID:      ownerID,
		ActorRole:    domain.RoleOwner,
		Action:       action,
		ResourceType: "customer",
		ResourceID:   resourceID,
		CreatedAt:    time.Now().UTC(),
	})
}

func (uc *CustomerUseCase) invalidateDashboard(ctx context.Context, ownerID string) {
	if uc.cache != nil {
		// Best effort: a stale dashboard expires on its own TTL.
		_ = uc.cache.Delete(ctx, dashboardCacheKey(ownerID))
	}
}
