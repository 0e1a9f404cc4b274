package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/usecase"
)

// CustomerRepository implements usecase.CustomerRepository.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const customerColumns = `id, owner_id, name, phone, email, address, portal_code_hash, created_at, updated_at`

// Create creates a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, owner_id, name, phone, email, address, portal_code_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		customer.ID,
		customer.OwnerID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.PortalCodeHash,
		timeToPgTimestamptz(customer.CreatedAt),
		timeToPgTimestamptz(customer.UpdatedAt),
	)

	return err
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1`, id)

	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}

		return nil, err
	}

	return customer, nil
}

// FindByPhone retrieves all customers sharing a phone number, across owners.
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE phone = $1
		ORDER BY created_at`, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Update updates a customer.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, portal_code_hash = $6, updated_at = $7
		WHERE id = $1`,
		customer.ID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.Address,
		customer.PortalCodeHash,
		timeToPgTimestamptz(customer.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

// DeleteTx deletes a customer inside an open transaction.
func (r *CustomerRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

// ListByOwner lists an owner's customers, optionally filtered by a
// case-insensitive name or phone prefix.
func (r *CustomerRepository) ListByOwner(ctx context.Context, ownerID, query string, limit, offset int) ([]*domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE owner_id = $1
		  AND ($2 = '' OR name ILIKE $2 || '%' OR phone LIKE $2 || '%')
		ORDER BY name, id
		LIMIT $3 OFFSET $4`,
		ownerID, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// CountByOwner counts an owner's customers.
func (r *CustomerRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int

	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM customers WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer

	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.Address,
		&c.PortalCodeHash,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func scanCustomers(rows pgx.Rows) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0)

	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}

		customers = append(customers, customer)
	}

	return customers, rows.Err()
}
