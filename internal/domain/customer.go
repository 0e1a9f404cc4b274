package domain

import "time"

// Customer is a party the owner keeps a ledger for. Deleting a customer
// hard-deletes all of its transactions in the same database transaction.
type Customer struct {
	ID             string
	OwnerID        string
	Name           string
	Phone          string
	Email          string
	Address        string
	PortalCodeHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasPortalAccess reports whether the owner has issued a portal access
// code for this customer.
func (c *Customer) HasPortalAccess() bool {
	return c.PortalCodeHash != ""
}
