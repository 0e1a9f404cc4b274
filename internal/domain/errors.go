package domain

import "errors"

var (
	// Lookup errors
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrCashbookEntryNotFound = errors.New("cashbook entry not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrUserNotFound          = errors.New("user not found")

	// Write-boundary errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidKind         = errors.New("invalid entry kind for this domain")
	ErrDescriptionRequired = errors.New("description is required")
	ErrEmailAlreadyInUse   = errors.New("email already in use")
	ErrCustomerNotOwned    = errors.New("customer belongs to a different owner")
	ErrPortalCodeNotSet    = errors.New("portal access code not set")
	ErrMissingOccurredOn   = errors.New("entry date is required")
)
