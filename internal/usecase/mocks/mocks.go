// Package mocks provides in-memory test doubles for the usecase
// repository interfaces. Behavior can be overridden per test via the
// *Func fields; without an override each mock acts as a small in-memory
// store.
package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// MockCustomerRepository is a mock implementation of CustomerRepository.
type MockCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer

	CreateFunc      func(ctx context.Context, customer *domain.Customer) error
	GetByIDFunc     func(ctx context.Context, id string) (*domain.Customer, error)
	FindByPhoneFunc func(ctx context.Context, phone string) ([]*domain.Customer, error)
	UpdateFunc      func(ctx context.Context, customer *domain.Customer) error
	DeleteTxFunc    func(ctx context.Context, tx usecase.Transaction, id string) error
	ListByOwnerFunc func(ctx context.Context, ownerID, query string, limit, offset int) ([]*domain.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[string]*domain.Customer)}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.customers[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCustomerNotFound
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) ([]*domain.Customer, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Customer
	for _, c := range m.customers {
		if c.Phone == phone {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, customer)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[customer.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *MockCustomerRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(m.customers, id)
	return nil
}

func (m *MockCustomerRepository) ListByOwner(ctx context.Context, ownerID, query string, limit, offset int) ([]*domain.Customer, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, query, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Customer
	for _, c := range m.customers {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCustomerRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, c := range m.customers {
		if c.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu   sync.RWMutex
	txns map[string]*domain.Transaction

	CreateFunc             func(ctx context.Context, txn *domain.Transaction) error
	GetByIDFunc            func(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateFunc             func(ctx context.Context, txn *domain.Transaction) error
	DeleteFunc             func(ctx context.Context, id string) error
	ListByCustomerFunc     func(ctx context.Context, customerID string) ([]*domain.Transaction, error)
	ListByOwnerFunc        func(ctx context.Context, ownerID string) ([]*domain.Transaction, error)
	DeleteByCustomerTxFunc func(ctx context.Context, tx usecase.Transaction, customerID string) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{txns: make(map[string]*domain.Transaction)}
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txns[txn.ID] = txn
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.txns[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(ctx context.Context, txn *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.txns[txn.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.txns[txn.ID] = txn
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.txns[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.txns, id)
	return nil
}

func (m *MockTransactionRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Transaction, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, t := range m.txns {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockTransactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Transaction, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, t := range m.txns {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockTransactionRepository) DeleteByCustomerTx(ctx context.Context, tx usecase.Transaction, customerID string) error {
	if m.DeleteByCustomerTxFunc != nil {
		return m.DeleteByCustomerTxFunc(ctx, tx, customerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.txns {
		if t.CustomerID == customerID {
			delete(m.txns, id)
		}
	}
	return nil
}

// MockCashbookRepository is a mock implementation of CashbookRepository.
type MockCashbookRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.CashbookEntry

	CreateFunc  func(ctx context.Context, entry *domain.CashbookEntry) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.CashbookEntry, error)
	UpdateFunc  func(ctx context.Context, entry *domain.CashbookEntry) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func NewMockCashbookRepository() *MockCashbookRepository {
	return &MockCashbookRepository{entries: make(map[string]*domain.CashbookEntry)}
}

func (m *MockCashbookRepository) Create(ctx context.Context, entry *domain.CashbookEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockCashbookRepository) GetByID(ctx context.Context, id string) (*domain.CashbookEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrCashbookEntryNotFound
}

func (m *MockCashbookRepository) Update(ctx context.Context, entry *domain.CashbookEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrCashbookEntryNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockCashbookRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrCashbookEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockCashbookRepository) ListByOwner(ctx context.Context, ownerID string, from, to *time.Time, limit, offset int) ([]*domain.CashbookEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.CashbookEntry
	for _, e := range m.entries {
		if e.OwnerID != ownerID {
			continue
		}
		if from != nil && e.OccurredOn.Before(*from) {
			continue
		}
		if to != nil && e.OccurredOn.After(*to) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCashbookRepository) ListAllByOwner(ctx context.Context, ownerID string) ([]*domain.CashbookEntry, error) {
	return m.ListByOwner(ctx, ownerID, nil, nil, 0, 0)
}

// MockMessageRepository is a mock implementation of MessageRepository.
type MockMessageRepository struct {
	mu       sync.RWMutex
	messages map[string]*domain.Message

	CreateFunc func(ctx context.Context, msg *domain.Message) error
}

func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{messages: make(map[string]*domain.Message)}
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[msg.ID] = msg
	return nil
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if msg, ok := m.messages[id]; ok {
		return msg, nil
	}
	return nil, domain.ErrMessageNotFound
}

func (m *MockMessageRepository) ListThread(ctx context.Context, ownerID, customerID string, limit, offset int) ([]*domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Message
	for _, msg := range m.messages {
		if msg.OwnerID == ownerID && msg.CustomerID == customerID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[id]
	if !ok {
		return domain.ErrMessageNotFound
	}
	msg.Read = true
	return nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, role domain.Role, limit, offset int) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.User
	for _, u := range m.users {
		if u.Role == role {
			copied := *u
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mu         sync.RWMutex
	Activities []*domain.Activity

	CreateFunc func(ctx context.Context, activity *domain.Activity) error
}

func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Activities = append(m.Activities, activity)
	return nil
}

func (m *MockActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Activity
	for _, a := range m.Activities {
		if filter.OwnerID != "" && a.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Action != "" && a.Action != filter.Action {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// MockTransaction is a no-op database transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	mu    sync.Mutex
	Began []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Began = append(m.Began, tx)
	return tx, nil
}

// MockRetrier runs the operation once without retrying.
type MockRetrier struct{}

func (MockRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockIDGenerator returns sequential IDs.
type MockIDGenerator struct {
	mu sync.Mutex
	n  int

	Prefix string
}

func (g *MockIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return prefix + "-" + itoa(g.n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
