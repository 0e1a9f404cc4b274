package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
)

// MessageRepository implements usecase.MessageRepository.
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

const messageColumns = `id, owner_id, customer_id, sender, body, read, created_at`

// Create creates a new message.
func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO messages (id, owner_id, customer_id, sender, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID,
		msg.OwnerID,
		msg.CustomerID,
		string(msg.Sender),
		msg.Body,
		msg.Read,
		timeToPgTimestamptz(msg.CreatedAt),
	)

	return err
}

// GetByID retrieves a message by ID.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE id = $1`, id)

	msg, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}

		return nil, err
	}

	return msg, nil
}

// ListThread lists one conversation oldest first. An empty customerID
// selects the owner's support thread.
func (r *MessageRepository) ListThread(ctx context.Context, ownerID, customerID string, limit, offset int) ([]*domain.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE owner_id = $1 AND customer_id = $2
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4`,
		ownerID, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := make([]*domain.Message, 0)

	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}

		msgs = append(msgs, msg)
	}

	return msgs, rows.Err()
}

// MarkRead marks a message as read.
func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE messages SET read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}

	return nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var (
		m      domain.Message
		sender string
	)

	err := row.Scan(
		&m.ID,
		&m.OwnerID,
		&m.CustomerID,
		&sender,
		&m.Body,
		&m.Read,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Sender = domain.Role(sender)

	return &m, nil
}
