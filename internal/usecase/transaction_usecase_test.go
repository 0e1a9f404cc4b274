package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase/mocks"
)

func newTransactionUC(t *testing.T) (*usecase.TransactionUseCase, *mocks.MockTransactionRepository, *mocks.MockCustomerRepository) {
	t.Helper()
	txnRepo := mocks.NewMockTransactionRepository()
	customerRepo := mocks.NewMockCustomerRepository()

	uc := usecase.NewTransactionUseCase(
		txnRepo,
		customerRepo,
		mocks.NewMockActivityRepository(),
		nil,
		&mocks.MockIDGenerator{Prefix: "txn"},
	)
	return uc, txnRepo, customerRepo
}

func TestTransactionUseCase_CreateTransaction(t *testing.T) {
	uc, _, customerRepo := newTransactionUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "c1", OwnerID: "owner-1"}))

	txn, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		OwnerID:     "owner-1",
		CustomerID:  "c1",
		Kind:        ledger.KindCredit,
		Amount:      decimal.RequireFromString("150.75"),
		Description: "  advance  ",
		OccurredOn:  time.Date(2024, 4, 2, 15, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "advance", txn.Description)
	// occurredOn is stored at day granularity.
	assert.Equal(t, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), txn.OccurredOn)
	assert.False(t, txn.CreatedAt.IsZero())
}

func TestTransactionUseCase_CreateTransaction_BlankDescriptionBecomesNone(t *testing.T) {
	uc, _, customerRepo := newTransactionUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "c1", OwnerID: "owner-1"}))

	txn, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		OwnerID:    "owner-1",
		CustomerID: "c1",
		Kind:       ledger.KindDebit,
		Amount:     decimal.NewFromInt(10),
		OccurredOn: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DescriptionNone, txn.Description)
}

func TestTransactionUseCase_CreateTransaction_Rejections(t *testing.T) {
	uc, _, customerRepo := newTransactionUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "c1", OwnerID: "owner-1"}))
	occurred := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	_, err := uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		OwnerID: "owner-1", CustomerID: "c1",
		Kind: ledger.KindIncome, Amount: decimal.NewFromInt(10), OccurredOn: occurred,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidKind, "cashbook kind on a transaction")

	_, err = uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		OwnerID: "owner-1", CustomerID: "c1",
		Kind: ledger.KindDebit, Amount: decimal.Zero, OccurredOn: occurred,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		OwnerID: "owner-1", CustomerID: "c1",
		Kind: ledger.KindDebit, Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrMissingOccurredOn)

	_, err = uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		OwnerID: "owner-2", CustomerID: "c1",
		Kind: ledger.KindDebit, Amount: decimal.NewFromInt(10), OccurredOn: occurred,
	})
	assert.ErrorIs(t, err, domain.ErrCustomerNotOwned)
}

func TestTransactionUseCase_UpdateTransaction(t *testing.T) {
	uc, txnRepo, customerRepo := newTransactionUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "c1", OwnerID: "owner-1"}))
	occurred := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, txnRepo.Create(ctx, &domain.Transaction{
		ID: "t1", OwnerID: "owner-1", CustomerID: "c1",
		Kind: ledger.KindDebit, Amount: decimal.NewFromInt(10),
		Description: "old", OccurredOn: occurred, CreatedAt: occurred,
	}))

	newKind := ledger.KindCredit
	newAmount := decimal.NewFromInt(25)
	blank := "   "
	updated, err := uc.UpdateTransaction(ctx, usecase.UpdateTransactionInput{
		OwnerID:       "owner-1",
		TransactionID: "t1",
		Kind:          &newKind,
		Amount:        &newAmount,
		Description:   &blank,
	})
	require.NoError(t, err)

	assert.Equal(t, ledger.KindCredit, updated.Kind)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, domain.DescriptionNone, updated.Description)
}

func TestTransactionUseCase_DeleteTransaction_WrongOwner(t *testing.T) {
	uc, txnRepo, _ := newTransactionUC(t)
	ctx := context.Background()

	require.NoError(t, txnRepo.Create(ctx, &domain.Transaction{ID: "t1", OwnerID: "owner-1", CustomerID: "c1"}))

	err := uc.DeleteTransaction(ctx, "owner-2", "t1")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestTransactionUseCase_Statement(t *testing.T) {
	uc, txnRepo, customerRepo := newTransactionUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "c1", OwnerID: "owner-1"}))

	rec := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	for _, spec := range []struct {
		id     string
		kind   ledger.Kind
		amount int64
		on     time.Time
	}{
		{"t-jan05", ledger.KindDebit, 100, day(5)},
		{"t-jan10", ledger.KindCredit, 300, day(10)},
		{"t-jan01", ledger.KindDebit, 50, day(1)},
	} {
		require.NoError(t, txnRepo.Create(ctx, &domain.Transaction{
			ID: spec.id, OwnerID: "owner-1", CustomerID: "c1",
			Kind: spec.kind, Amount: decimal.NewFromInt(spec.amount),
			OccurredOn: spec.on, CreatedAt: rec,
		}))
	}

	statement, err := uc.StatementForCustomer(ctx, "owner-1", "c1")
	require.NoError(t, err)
	require.Len(t, statement.Lines, 3)

	// Newest first for display.
	assert.Equal(t, "t-jan10", statement.Lines[0].Transaction.ID)
	assert.Equal(t, "t-jan05", statement.Lines[1].Transaction.ID)
	assert.Equal(t, "t-jan01", statement.Lines[2].Transaction.ID)

	// Running balances stay chronological regardless of display order.
	assert.True(t, statement.Lines[2].RunningBalance.Equal(decimal.NewFromInt(-50)))
	assert.True(t, statement.Lines[1].RunningBalance.Equal(decimal.NewFromInt(-150)))
	assert.True(t, statement.Lines[0].RunningBalance.Equal(decimal.NewFromInt(150)))

	assert.True(t, statement.Balance.Equal(decimal.NewFromInt(150)))
}

func TestTransactionUseCase_StatementForPortal(t *testing.T) {
	uc, txnRepo, customerRepo := newTransactionUC(t)
	ctx := context.Background()

	require.NoError(t, customerRepo.Create(ctx, &domain.Customer{ID: "c1", OwnerID: "owner-1"}))
	occurred := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, txnRepo.Create(ctx, &domain.Transaction{
		ID: "t1", OwnerID: "owner-1", CustomerID: "c1",
		Kind: ledger.KindCredit, Amount: decimal.NewFromInt(75),
		OccurredOn: occurred, CreatedAt: occurred,
	}))

	statement, err := uc.StatementForPortal(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, statement.Balance.Equal(decimal.NewFromInt(75)))

	_, err = uc.StatementForPortal(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
