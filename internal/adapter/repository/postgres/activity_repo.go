package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/domain"
)

// ActivityRepository implements usecase.ActivityRepository.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Create appends one activity line.
func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activities (id, owner_id, actor_role, action, resource_type, resource_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		activity.ID,
		activity.OwnerID,
		string(activity.ActorRole),
		string(activity.Action),
		activity.ResourceType,
		activity.ResourceID,
		timeToPgTimestamptz(activity.CreatedAt),
	)

	return err
}

// List queries the activity trail newest first.
func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]*domain.Activity, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, actor_role, action, resource_type, resource_id, created_at
		FROM activities
		WHERE owner_id = $1
		  AND ($2 = '' OR action = $2)
		  AND ($3 = '' OR resource_type = $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4 OFFSET $5`,
		filter.OwnerID,
		string(filter.Action),
		filter.ResourceType,
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)

	for rows.Next() {
		var (
			a         domain.Activity
			actorRole string
			action    string
		)

		err := rows.Scan(
			&a.ID,
			&a.OwnerID,
			&actorRole,
			&action,
			&a.ResourceType,
			&a.ResourceID,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		a.ActorRole = domain.Role(actorRole)
		a.Action = domain.ActivityAction(action)

		activities = append(activities, &a)
	}

	return activities, rows.Err()
}
