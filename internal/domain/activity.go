package domain

import "time"

// Activity is one line of the owner's activity trail: who changed what
// and when. Kept for the account screen and support debugging.
type Activity struct {
	ID           string
	OwnerID      string
	ActorRole    Role
	Action       ActivityAction
	ResourceType string
	ResourceID   string
	CreatedAt    time.Time
}

// ActivityAction identifies an auditable mutation.
type ActivityAction string

const (
	ActivityCustomerCreate    ActivityAction = "customer.create"
	ActivityCustomerUpdate    ActivityAction = "customer.update"
	ActivityCustomerDelete    ActivityAction = "customer.delete"
	ActivityTransactionCreate ActivityAction = "transaction.create"
	ActivityTransactionUpdate ActivityAction = "transaction.update"
	ActivityTransactionDelete ActivityAction = "transaction.delete"
	ActivityCashbookCreate    ActivityAction = "cashbook.create"
	ActivityCashbookUpdate    ActivityAction = "cashbook.update"
	ActivityCashbookDelete    ActivityAction = "cashbook.delete"
	ActivityPortalCodeSet     ActivityAction = "customer.portal_code"
)

// ActivityFilter defines filters for querying the activity trail.
type ActivityFilter struct {
	OwnerID      string
	Action       ActivityAction
	ResourceType string
	Limit        int
	Offset       int
}
