package usecase

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/infrastructure/metrics"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

// AnalyticsUseCase computes dashboard statistics and rankings.
type AnalyticsUseCase struct {
	customerRepo CustomerRepository
	txnRepo      TransactionRepository
	cashbookRepo CashbookRepository
	cache        Cache
	metrics      *metrics.Metrics
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase.
func NewAnalyticsUseCase(
	customerRepo CustomerRepository,
	txnRepo TransactionRepository,
	cashbookRepo CashbookRepository,
	cache Cache,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		customerRepo: customerRepo,
		txnRepo:      txnRepo,
		cashbookRepo: cashbookRepo,
		cache:        cache,
	}
}

// WithMetrics attaches business metrics recording.
func (uc *AnalyticsUseCase) WithMetrics(m *metrics.Metrics) *AnalyticsUseCase {
	uc.metrics = m
	return uc
}

// DashboardStats is the owner's home-screen overview. ToGive is the sum
// of strictly positive customer balances (owner owes customers); ToGet
// is the magnitude of strictly negative ones. NetPosition = ToGive - ToGet.
type DashboardStats struct {
	TotalCustomers    int             `json:"total_customers"`
	TotalTransactions int             `json:"total_transactions"`
	TotalCredit       decimal.Decimal `json:"total_credit"`
	TotalDebit        decimal.Decimal `json:"total_debit"`
	NetPosition       decimal.Decimal `json:"net_position"`
	ToGive            decimal.Decimal `json:"to_give"`
	ToGet             decimal.Decimal `json:"to_get"`
	CashbookIncome    decimal.Decimal `json:"cashbook_income"`
	CashbookExpense   decimal.Decimal `json:"cashbook_expense"`
	CashbookNet       decimal.Decimal `json:"cashbook_net"`
}

// Dashboard computes (or serves from cache) the owner's dashboard stats.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context, ownerID string) (*DashboardStats, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, dashboardCacheKey(ownerID)); err == nil && len(raw) > 0 {
			var cached DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				if uc.metrics != nil {
					uc.metrics.DashboardCacheHits.Inc()
				}
				return &cached, nil
			}
		}
	}

	if uc.metrics != nil {
		uc.metrics.DashboardCacheMisses.Inc()
	}

	stats, err := uc.computeDashboard(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			_ = uc.cache.Set(ctx, dashboardCacheKey(ownerID), raw, DashboardCacheTTL)
		}
	}

	return stats, nil
}

func (uc *AnalyticsUseCase) computeDashboard(ctx context.Context, ownerID string) (*DashboardStats, error) {
	customerCount, err := uc.customerRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txnRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entries := domain.LedgerEntries(txns)
	summary, err := ledger.Summarize(entries, ledger.Window{})
	if err != nil {
		return nil, err
	}

	balances, err := uc.customerBalances(txns)
	if err != nil {
		return nil, err
	}

	toGive, toGet := decimal.Zero, decimal.Zero
	for _, b := range balances {
		switch {
		case b.Balance.IsPositive():
			toGive = toGive.Add(b.Balance)
		case b.Balance.IsNegative():
			toGet = toGet.Add(b.Balance.Neg())
		}
	}

	cashbook, err := uc.cashbookRepo.ListAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	cbSummary, err := ledger.Summarize(domain.CashbookLedgerEntries(cashbook), ledger.Window{})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalCustomers:    customerCount,
		TotalTransactions: summary.Count,
		TotalCredit:       summary.Total(ledger.KindCredit),
		TotalDebit:        summary.Total(ledger.KindDebit),
		NetPosition:       summary.Net,
		ToGive:            toGive,
		ToGet:             toGet,
		CashbookIncome:    cbSummary.Total(ledger.KindIncome),
		CashbookExpense:   cbSummary.Total(ledger.KindExpense),
		CashbookNet:       cbSummary.Net,
	}, nil
}

// RankedCustomer pairs a customer with its balance in a ranking.
type RankedCustomer struct {
	Customer *domain.Customer
	Balance  decimal.Decimal
}

// TopCustomers ranks customers by signed balance. Highest returns the
// customers the owner owes most; Lowest the customers owing the owner
// most. Zero balances never rank.
func (uc *AnalyticsUseCase) TopCustomers(ctx context.Context, ownerID string, dir ledger.Direction, limit int) ([]*RankedCustomer, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	txns, err := uc.txnRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	balances, err := uc.customerBalances(txns)
	if err != nil {
		return nil, err
	}

	top := ledger.TopBySignedBalance(balances, dir, limit)

	ranked := make([]*RankedCustomer, 0, len(top))
	for _, sb := range top {
		customer, err := uc.customerRepo.GetByID(ctx, sb.SubjectID)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, &RankedCustomer{Customer: customer, Balance: sb.Balance})
	}

	return ranked, nil
}

// customerBalances groups transactions by customer and computes each
// customer's balance.
func (uc *AnalyticsUseCase) customerBalances(txns []*domain.Transaction) ([]ledger.SubjectBalance, error) {
	byCustomer := make(map[string][]*domain.Transaction)
	for _, t := range txns {
		byCustomer[t.CustomerID] = append(byCustomer[t.CustomerID], t)
	}

	balances := make([]ledger.SubjectBalance, 0, len(byCustomer))
	for customerID, group := range byCustomer {
		balance, err := ledger.Balance(domain.LedgerEntries(group))
		if err != nil {
			return nil, err
		}
		balances = append(balances, ledger.SubjectBalance{SubjectID: customerID, Balance: balance})
	}

	return balances, nil
}

func dashboardCacheKey(ownerID string) string {
	return "dashboard:" + ownerID
}
