package domain

import (
	"errors"
	"time"
)

// User represents a business-owner or admin account.
type User struct {
	ID             string
	Email          string
	Name           string
	BusinessName   string
	HashedPassword string
	Role           Role
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a user's access level.
type Role string

const (
	// RoleOwner is a business owner: full access to their own customers,
	// transactions, cashbook and messages.
	RoleOwner Role = "owner"

	// RoleAdmin can view all owners and answers support messages.
	RoleAdmin Role = "admin"

	// RoleCustomer is a portal identity: read-only access to its own
	// statement and messaging with its owner. Customers are not Users;
	// the role only appears in tokens and message sender fields.
	RoleCustomer Role = "customer"
)

var validRoles = map[Role]bool{
	RoleOwner:    true,
	RoleAdmin:    true,
	RoleCustomer: true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanManageOwners checks if the role can list and inspect owner accounts.
func (r Role) CanManageOwners() bool {
	return r == RoleAdmin
}

// CanWriteBooks checks if the role can mutate customers, transactions and
// cashbook entries.
func (r Role) CanWriteBooks() bool {
	return r == RoleOwner
}

// Authentication errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrForbidden    = errors.New("insufficient role for this operation")
)
