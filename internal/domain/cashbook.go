package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

// CashbookEntry is one income or expense line in the owner's cashbook.
// Cashbook entries are owner-scoped only: they carry no customer.
type CashbookEntry struct {
	ID          string
	OwnerID     string
	Kind        ledger.Kind
	Amount      decimal.Decimal
	Description string
	OccurredOn  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCashbookKind reports whether k belongs to the cashbook domain.
func IsCashbookKind(k ledger.Kind) bool {
	return k == ledger.KindIncome || k == ledger.KindExpense
}

// LedgerEntry projects the cashbook entry onto the aggregator's entry shape.
func (c *CashbookEntry) LedgerEntry() ledger.Entry {
	return ledger.Entry{
		ID:         c.ID,
		Kind:       c.Kind,
		Amount:     c.Amount,
		OccurredOn: c.OccurredOn,
		RecordedAt: c.CreatedAt,
	}
}

// CashbookLedgerEntries projects a cashbook list for aggregation.
func CashbookLedgerEntries(entries []*CashbookEntry) []ledger.Entry {
	out := make([]ledger.Entry, len(entries))
	for i, e := range entries {
		out[i] = e.LedgerEntry()
	}
	return out
}
