package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase/mocks"
)

type analyticsFixture struct {
	customerRepo *mocks.MockCustomerRepository
	txnRepo      *mocks.MockTransactionRepository
	cashbookRepo *mocks.MockCashbookRepository
}

func seedAnalytics(t *testing.T) *analyticsFixture {
	t.Helper()
	f := &analyticsFixture{
		customerRepo: mocks.NewMockCustomerRepository(),
		txnRepo:      mocks.NewMockTransactionRepository(),
		cashbookRepo: mocks.NewMockCashbookRepository(),
	}
	ctx := context.Background()

	for _, c := range []struct{ id, name string }{
		{"cust-a", "Anita"}, {"cust-b", "Bashir"}, {"cust-c", "Chirag"},
	} {
		require.NoError(t, f.customerRepo.Create(ctx, &domain.Customer{
			ID: c.id, OwnerID: "owner-1", Name: c.name, Phone: "9876500000",
		}))
	}

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, txn := range []struct {
		customer string
		kind     ledger.Kind
		amount   string
	}{
		{"cust-a", ledger.KindCredit, "500"},  // owed to cust-a: +500
		{"cust-b", ledger.KindDebit, "200"},   // cust-b owes: -200
		{"cust-c", ledger.KindCredit, "1000"}, // +1000 - 300 = +700
		{"cust-c", ledger.KindDebit, "300"},
	} {
		require.NoError(t, f.txnRepo.Create(ctx, &domain.Transaction{
			ID: "t-" + string(rune('0'+i)), OwnerID: "owner-1", CustomerID: txn.customer,
			Kind: txn.kind, Amount: decimal.RequireFromString(txn.amount),
			Description: domain.DescriptionNone,
			OccurredOn:  day.AddDate(0, 0, i), CreatedAt: day.AddDate(0, 0, i),
		}))
	}

	require.NoError(t, f.cashbookRepo.Create(ctx, &domain.CashbookEntry{
		ID: "cb-1", OwnerID: "owner-1", Kind: ledger.KindIncome,
		Amount: decimal.NewFromInt(900), Description: "sales",
		OccurredOn: day, CreatedAt: day,
	}))
	require.NoError(t, f.cashbookRepo.Create(ctx, &domain.CashbookEntry{
		ID: "cb-2", OwnerID: "owner-1", Kind: ledger.KindExpense,
		Amount: decimal.NewFromInt(400), Description: "rent",
		OccurredOn: day, CreatedAt: day,
	}))

	return f
}

func TestAnalyticsUseCase_Dashboard(t *testing.T) {
	f := seedAnalytics(t)
	uc := usecase.NewAnalyticsUseCase(f.customerRepo, f.txnRepo, f.cashbookRepo, nil)

	stats, err := uc.Dashboard(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Equal(t, 4, stats.TotalTransactions)
	assert.True(t, stats.TotalCredit.Equal(decimal.NewFromInt(1500)))
	assert.True(t, stats.TotalDebit.Equal(decimal.NewFromInt(500)))
	assert.True(t, stats.NetPosition.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stats.ToGive.Equal(decimal.NewFromInt(1200)), "positive balances: 500+700")
	assert.True(t, stats.ToGet.Equal(decimal.NewFromInt(200)), "magnitude of negative balances")
	assert.True(t, stats.CashbookIncome.Equal(decimal.NewFromInt(900)))
	assert.True(t, stats.CashbookExpense.Equal(decimal.NewFromInt(400)))
	assert.True(t, stats.CashbookNet.Equal(decimal.NewFromInt(500)))
}

func TestAnalyticsUseCase_Dashboard_CacheMissThenStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := seedAnalytics(t)

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().
		Get(gomock.Any(), "dashboard:owner-1").
		Return(nil, errors.New("redis: nil"))
	cache.EXPECT().
		Set(gomock.Any(), "dashboard:owner-1", gomock.Any(), usecase.DashboardCacheTTL).
		Return(nil)

	uc := usecase.NewAnalyticsUseCase(f.customerRepo, f.txnRepo, f.cashbookRepo, cache)

	stats, err := uc.Dashboard(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCustomers)
}

func TestAnalyticsUseCase_Dashboard_CacheHitSkipsRepos(t *testing.T) {
	ctrl := gomock.NewController(t)

	cached := &usecase.DashboardStats{TotalCustomers: 7, NetPosition: decimal.NewFromInt(42)}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().
		Get(gomock.Any(), "dashboard:owner-1").
		Return(raw, nil)

	// Empty repositories: a repo hit would change the counts below.
	uc := usecase.NewAnalyticsUseCase(
		mocks.NewMockCustomerRepository(),
		mocks.NewMockTransactionRepository(),
		mocks.NewMockCashbookRepository(),
		cache,
	)

	stats, err := uc.Dashboard(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalCustomers)
	assert.True(t, stats.NetPosition.Equal(decimal.NewFromInt(42)))
}

func TestAnalyticsUseCase_TopCustomers(t *testing.T) {
	f := seedAnalytics(t)
	uc := usecase.NewAnalyticsUseCase(f.customerRepo, f.txnRepo, f.cashbookRepo, nil)
	ctx := context.Background()

	highest, err := uc.TopCustomers(ctx, "owner-1", ledger.Highest, 5)
	require.NoError(t, err)
	require.Len(t, highest, 2)
	assert.Equal(t, "cust-c", highest[0].Customer.ID)
	assert.True(t, highest[0].Balance.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, "cust-a", highest[1].Customer.ID)

	lowest, err := uc.TopCustomers(ctx, "owner-1", ledger.Lowest, 5)
	require.NoError(t, err)
	require.Len(t, lowest, 1)
	assert.Equal(t, "cust-b", lowest[0].Customer.ID)
	assert.True(t, lowest[0].Balance.Equal(decimal.NewFromInt(-200)))

	limited, err := uc.TopCustomers(ctx, "owner-1", ledger.Highest, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "cust-c", limited[0].Customer.ID)
}

func TestAnalyticsUseCase_TopCustomers_Empty(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(
		mocks.NewMockCustomerRepository(),
		mocks.NewMockTransactionRepository(),
		mocks.NewMockCashbookRepository(),
		nil,
	)

	ranked, err := uc.TopCustomers(context.Background(), "owner-1", ledger.Highest, 0)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
