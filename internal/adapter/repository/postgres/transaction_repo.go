package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, owner_id, customer_id, kind, amount, description, occurred_on, created_at, updated_at`

// Create creates a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO transactions (id, owner_id, customer_id, kind, amount, description, occurred_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		txn.ID,
		txn.OwnerID,
		txn.CustomerID,
		string(txn.Kind),
		decimalToNumeric(txn.Amount),
		txn.Description,
		timeToPgDate(txn.OccurredOn),
		timeToPgTimestamptz(txn.CreatedAt),
		timeToPgTimestamptz(txn.UpdatedAt),
	)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1`, id)

	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// Update updates a transaction.
func (r *TransactionRepository) Update(ctx context.Context, txn *domain.Transaction) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET kind = $2, amount = $3, description = $4, occurred_on = $5, updated_at = $6
		WHERE id = $1`,
		txn.ID,
		string(txn.Kind),
		decimalToNumeric(txn.Amount),
		txn.Description,
		timeToPgDate(txn.OccurredOn),
		timeToPgTimestamptz(txn.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// Delete deletes a transaction.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// ListByCustomer lists all transactions recorded against a customer.
func (r *TransactionRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE customer_id = $1
		ORDER BY occurred_on, created_at`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListByOwner lists all of an owner's transactions across customers.
func (r *TransactionRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE owner_id = $1
		ORDER BY occurred_on, created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// DeleteByCustomerTx deletes all of a customer's transactions inside an
// open transaction. Deleting zero rows is not an error.
func (r *TransactionRepository) DeleteByCustomerTx(ctx context.Context, tx usecase.Transaction, customerID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM transactions WHERE customer_id = $1`, customerID)

	return err
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t          domain.Transaction
		kind       string
		amount     pgtype.Numeric
		occurredOn pgtype.Date
	)

	err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.CustomerID,
		&kind,
		&amount,
		&t.Description,
		&occurredOn,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Kind = ledger.Kind(kind)
	t.Amount = numericToDecimal(amount)
	t.OccurredOn = occurredOn.Time

	return &t, nil
}

func scanTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	txns := make([]*domain.Transaction, 0)

	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		txns = append(txns, txn)
	}

	return txns, rows.Err()
}
