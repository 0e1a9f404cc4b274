package domain

import "time"

// Message is one line in a support conversation. CustomerID empty means
// the owner's support thread with the admin; set, it is the thread
// between the owner and that customer.
type Message struct {
	ID         string
	OwnerID    string
	CustomerID string
	Sender     Role
	Body       string
	Read       bool
	CreatedAt  time.Time
}

// IsSupportThread reports whether the message belongs to the owner-admin
// support thread.
func (m *Message) IsSupportThread() bool {
	return m.CustomerID == ""
}
