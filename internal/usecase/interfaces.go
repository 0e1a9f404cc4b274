package usecase

import (
	"context"
	"time"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	FindByPhone(ctx context.Context, phone string) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	ListByOwner(ctx context.Context, ownerID, query string, limit, offset int) ([]*domain.Customer, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

// TransactionRepository defines data access for customer transactions.
type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, txn *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Transaction, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Transaction, error)
	DeleteByCustomerTx(ctx context.Context, tx Transaction, customerID string) error
}

// CashbookRepository defines data access for cashbook entries.
type CashbookRepository interface {
	Create(ctx context.Context, entry *domain.CashbookEntry) error
	GetByID(ctx context.Context, id string) (*domain.CashbookEntry, error)
	Update(ctx context.Context, entry *domain.CashbookEntry) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string, from, to *time.Time, limit, offset int) ([]*domain.CashbookEntry, error)
	ListAllByOwner(ctx context.Context, ownerID string) ([]*domain.CashbookEntry, error)
}

// MessageRepository defines data access for support messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	ListThread(ctx context.Context, ownerID, customerID string, limit, offset int) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id string) error
}

// UserRepository defines data access for owner and admin accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, role domain.Role, limit, offset int) ([]*domain.User, error)
}

// ActivityRepository defines data access for the activity trail.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient database failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
