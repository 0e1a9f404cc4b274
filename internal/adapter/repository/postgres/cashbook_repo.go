package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

// CashbookRepository implements usecase.CashbookRepository.
type CashbookRepository struct {
	pool *pgxpool.Pool
}

// NewCashbookRepository creates a new CashbookRepository.
func NewCashbookRepository(pool *pgxpool.Pool) *CashbookRepository {
	return &CashbookRepository{pool: pool}
}

const cashbookColumns = `id, owner_id, kind, amount, description, occurred_on, created_at, updated_at`

// Create creates a new cashbook entry.
func (r *CashbookRepository) Create(ctx context.Context, entry *domain.CashbookEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cashbook_entries (id, owner_id, kind, amount, description, occurred_on, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		entry.OwnerID,
		string(entry.Kind),
		decimalToNumeric(entry.Amount),
		entry.Description,
		timeToPgDate(entry.OccurredOn),
		timeToPgTimestamptz(entry.CreatedAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	)

	return err
}

// GetByID retrieves a cashbook entry by ID.
func (r *CashbookRepository) GetByID(ctx context.Context, id string) (*domain.CashbookEntry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+cashbookColumns+`
		FROM cashbook_entries
		WHERE id = $1`, id)

	entry, err := scanCashbookEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCashbookEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

// Update updates a cashbook entry.
func (r *CashbookRepository) Update(ctx context.Context, entry *domain.CashbookEntry) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cashbook_entries
		SET kind = $2, amount = $3, description = $4, occurred_on = $5, updated_at = $6
		WHERE id = $1`,
		entry.ID,
		string(entry.Kind),
		decimalToNumeric(entry.Amount),
		entry.Description,
		timeToPgDate(entry.OccurredOn),
		timeToPgTimestamptz(entry.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCashbookEntryNotFound
	}

	return nil
}

// Delete deletes a cashbook entry.
func (r *CashbookRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cashbook_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCashbookEntryNotFound
	}

	return nil
}

// ListByOwner lists an owner's cashbook entries, optionally bounded by an
// inclusive date window.
func (r *CashbookRepository) ListByOwner(ctx context.Context, ownerID string, from, to *time.Time, limit, offset int) ([]*domain.CashbookEntry, error) {
	var fromDate, toDate pgtype.Date
	if from != nil {
		fromDate = timeToPgDate(*from)
	}

	if to != nil {
		toDate = timeToPgDate(*to)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+cashbookColumns+`
		FROM cashbook_entries
		WHERE owner_id = $1
		  AND ($2::date IS NULL OR occurred_on >= $2)
		  AND ($3::date IS NULL OR occurred_on <= $3)
		ORDER BY occurred_on DESC, created_at DESC
		LIMIT $4 OFFSET $5`,
		ownerID, fromDate, toDate, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCashbookEntries(rows)
}

// ListAllByOwner lists every cashbook entry for an owner, for aggregation.
func (r *CashbookRepository) ListAllByOwner(ctx context.Context, ownerID string) ([]*domain.CashbookEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+cashbookColumns+`
		FROM cashbook_entries
		WHERE owner_id = $1
		ORDER BY occurred_on, created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCashbookEntries(rows)
}

func scanCashbookEntry(row pgx.Row) (*domain.CashbookEntry, error) {
	var (
		e          domain.CashbookEntry
		kind       string
		amount     pgtype.Numeric
		occurredOn pgtype.Date
	)

	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&kind,
		&amount,
		&e.Description,
		&occurredOn,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Kind = ledger.Kind(kind)
	e.Amount = numericToDecimal(amount)
	e.OccurredOn = occurredOn.Time

	return &e, nil
}

func scanCashbookEntries(rows pgx.Rows) ([]*domain.CashbookEntry, error) {
	entries := make([]*domain.CashbookEntry, 0)

	for rows.Next() {
		entry, err := scanCashbookEntry(rows)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
