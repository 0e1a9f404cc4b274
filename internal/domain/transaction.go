package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

// DescriptionNone is the sentinel stored for transactions submitted with
// a blank description.
const DescriptionNone = "NONE"

// Transaction is one debit or credit recorded against a customer.
// Positive customer balance means the owner will give money to the
// customer; negative means the owner will get money.
type Transaction struct {
	ID          string
	OwnerID     string
	CustomerID  string
	Kind        ledger.Kind
	Amount      decimal.Decimal
	Description string
	OccurredOn  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTransactionKind reports whether k belongs to the customer-transaction
// domain.
func IsTransactionKind(k ledger.Kind) bool {
	return k == ledger.KindDebit || k == ledger.KindCredit
}

// LedgerEntry projects the transaction onto the aggregator's entry shape.
// CreatedAt serves as the recording timestamp for tie-breaking.
func (t *Transaction) LedgerEntry() ledger.Entry {
	return ledger.Entry{
		ID:         t.ID,
		Kind:       t.Kind,
		Amount:     t.Amount,
		OccurredOn: t.OccurredOn,
		RecordedAt: t.CreatedAt,
	}
}

// LedgerEntries projects a transaction list for aggregation.
func LedgerEntries(txns []*Transaction) []ledger.Entry {
	entries := make([]ledger.Entry, len(txns))
	for i, t := range txns {
		entries[i] = t.LedgerEntry()
	}
	return entries
}
