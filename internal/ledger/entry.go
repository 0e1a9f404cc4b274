package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the signed category of a monetary entry. Transactions use
// debit/credit, cashbook entries use income/expense. Credit and income
// increase a balance, debit and expense decrease it.
type Kind string

const (
	KindDebit   Kind = "debit"
	KindCredit  Kind = "credit"
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Contract violations. An entry that trips one of these reached the
// aggregator without boundary validation; aggregation stops rather than
// silently skipping, since a skipped entry corrupts a financial total.
var (
	ErrUnknownKind       = errors.New("unknown entry kind")
	ErrNonPositiveAmount = errors.New("entry amount must be positive")
	ErrMissingDate       = errors.New("entry date is missing")
)

// Sign returns +1 for kinds that increase a balance and -1 for kinds
// that decrease it.
func (k Kind) Sign() (int, error) {
	switch k {
	case KindCredit, KindIncome:
		return 1, nil
	case KindDebit, KindExpense:
		return -1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}

// IsValid reports whether k is one of the four known kinds.
func (k Kind) IsValid() bool {
	_, err := k.Sign()
	return err == nil
}

// Entry is the aggregator's view of a monetary event. Both customer
// transactions and cashbook entries project onto it.
type Entry struct {
	ID         string
	Kind       Kind
	Amount     decimal.Decimal
	OccurredOn time.Time
	RecordedAt time.Time
}

// signedAmount validates the entry and returns its amount with the sign
// implied by the kind applied.
func (e Entry) signedAmount() (decimal.Decimal, error) {
	sign, err := e.Kind.Sign()
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !e.Amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: entry %s has amount %s", ErrNonPositiveAmount, e.ID, e.Amount)
	}
	if e.OccurredOn.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: entry %s", ErrMissingDate, e.ID)
	}
	if sign < 0 {
		return e.Amount.Neg(), nil
	}
	return e.Amount, nil
}

// DateOf truncates t to its calendar day in UTC. Entries are compared at
// day granularity: occurredOn carries no meaningful time component.
func DateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
