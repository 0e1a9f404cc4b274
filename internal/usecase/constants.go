package usecase

import "time"

const (
	// DashboardCacheTTL is how long computed dashboard stats stay cached.
	// Writes invalidate eagerly; the TTL only bounds staleness after a
	// missed invalidation.
	DashboardCacheTTL = 60 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// DefaultTopLimit is the ranking size when the caller does not ask
	// for one.
	DefaultTopLimit = 5
)
