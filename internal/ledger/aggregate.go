// Package ledger implements the balance aggregation rules shared by every
// screen of the application: signed balances, chronological running
// balances, per-kind period summaries and top-N rankings. All arithmetic
// is decimal; entries are aggregated in memory after a consistent read.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Balance sums entries with the sign implied by each kind. The result is
// order-independent. Positive means the owner will give money (customer
// transactions) or net profit (cashbook); negative the opposite.
func Balance(entries []Entry) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range entries {
		signed, err := e.signedAmount()
		if err != nil {
			return decimal.Decimal{}, err
		}
		total = total.Add(signed)
	}
	return total, nil
}

// Position is an entry annotated with the cumulative balance through and
// including that entry, in chronological order.
type Position struct {
	Entry   Entry
	Balance decimal.Decimal
}

// RunningBalances sorts entries ascending by occurredOn, ties broken by
// recordedAt ascending, then walks the sequence once carrying a running
// balance. It returns the chronological positions and the final total,
// which equals Balance over the same set. Presentation order (for example
// newest first) is the caller's concern and must not alter the computed
// values.
func RunningBalances(entries []Entry) ([]Position, decimal.Decimal, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := DateOf(sorted[i].OccurredOn), DateOf(sorted[j].OccurredOn)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})

	positions := make([]Position, len(sorted))
	running := decimal.Zero
	for i, e := range sorted {
		signed, err := e.signedAmount()
		if err != nil {
			return nil, decimal.Decimal{}, err
		}
		running = running.Add(signed)
		positions[i] = Position{Entry: e, Balance: running}
	}

	return positions, running, nil
}

// Window is an optional inclusive date range over occurredOn. A nil bound
// imposes no constraint on that side.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether the calendar day of t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	day := DateOf(t)
	if w.From != nil && day.Before(DateOf(*w.From)) {
		return false
	}
	if w.To != nil && day.After(DateOf(*w.To)) {
		return false
	}
	return true
}

// Summary holds per-kind totals and counts for a filtered entry set.
// Net is the positive-kind sum minus the negative-kind sum; over an
// unfiltered set it equals Balance.
type Summary struct {
	Totals map[Kind]decimal.Decimal
	Counts map[Kind]int
	Net    decimal.Decimal
	Count  int
}

// Total returns the summed amount for a kind, zero if none were seen.
func (s Summary) Total(k Kind) decimal.Decimal {
	if t, ok := s.Totals[k]; ok {
		return t
	}
	return decimal.Zero
}

// Summarize partitions entries by kind within the window and sums each
// partition. Every entry is validated, including entries the window
// excludes: a malformed entry is a contract violation regardless of date.
func Summarize(entries []Entry, w Window) (Summary, error) {
	s := Summary{
		Totals: make(map[Kind]decimal.Decimal),
		Counts: make(map[Kind]int),
		Net:    decimal.Zero,
	}

	for _, e := range entries {
		signed, err := e.signedAmount()
		if err != nil {
			return Summary{}, err
		}
		if !w.Contains(e.OccurredOn) {
			continue
		}
		s.Totals[e.Kind] = s.Total(e.Kind).Add(e.Amount)
		s.Counts[e.Kind]++
		s.Net = s.Net.Add(signed)
		s.Count++
	}

	return s, nil
}

// Direction selects which side of zero a ranking considers.
type Direction string

const (
	// Highest ranks strictly positive balances, largest first.
	Highest Direction = "highest"
	// Lowest ranks strictly negative balances, most negative first.
	Lowest Direction = "lowest"
)

// SubjectBalance pairs a subject (customer) with its computed balance.
type SubjectBalance struct {
	SubjectID string
	Balance   decimal.Decimal
}

// TopBySignedBalance filters to strictly positive (Highest) or strictly
// negative (Lowest) balances, orders by magnitude, and returns at most
// limit pairs. Zero balances match neither direction. Ties are broken by
// subject ID ascending so the ranking is deterministic.
func TopBySignedBalance(items []SubjectBalance, dir Direction, limit int) []SubjectBalance {
	filtered := make([]SubjectBalance, 0, len(items))
	for _, it := range items {
		switch dir {
		case Highest:
			if it.Balance.IsPositive() {
				filtered = append(filtered, it)
			}
		case Lowest:
			if it.Balance.IsNegative() {
				filtered = append(filtered, it)
			}
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		cmp := filtered[i].Balance.Cmp(filtered[j].Balance)
		if cmp == 0 {
			return filtered[i].SubjectID < filtered[j].SubjectID
		}
		if dir == Highest {
			return cmp > 0
		}
		return cmp < 0
	})

	if limit >= 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
