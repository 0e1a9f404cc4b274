package ledger_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omDesai-1905/SmartHisab-sub000/internal/ledger"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(id string, kind ledger.Kind, amount string, occurred time.Time, recorded time.Time) ledger.Entry {
	return ledger.Entry{
		ID:         id,
		Kind:       kind,
		Amount:     decimal.RequireFromString(amount),
		OccurredOn: occurred,
		RecordedAt: recorded,
	}
}

func TestBalance_Transactions(t *testing.T) {
	base := day(2024, 3, 1)
	entries := []ledger.Entry{
		entry("t1", ledger.KindCredit, "500", base, base),
		entry("t2", ledger.KindDebit, "200", base, base.Add(time.Minute)),
		entry("t3", ledger.KindCredit, "100", base, base.Add(2*time.Minute)),
	}

	balance, err := ledger.Balance(entries)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(400)), "got %s", balance)
}

func TestBalance_CashbookNetProfit(t *testing.T) {
	base := day(2024, 3, 1)
	entries := []ledger.Entry{
		entry("c1", ledger.KindIncome, "1000", base, base),
		entry("c2", ledger.KindExpense, "300", base, base),
		entry("c3", ledger.KindExpense, "200", base, base),
	}

	balance, err := ledger.Balance(entries)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(500)), "got %s", balance)
}

func TestBalance_Empty(t *testing.T) {
	balance, err := ledger.Balance(nil)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

// Order must not affect the total: addition over decimals is exact and
// commutative.
func TestBalance_OrderIndependent(t *testing.T) {
	base := day(2024, 1, 1)
	entries := make([]ledger.Entry, 0, 40)
	for i := 0; i < 40; i++ {
		kind := ledger.KindCredit
		if i%3 == 0 {
			kind = ledger.KindDebit
		}
		entries = append(entries, entry("e", kind, "0.01", base.AddDate(0, 0, i), base))
	}

	want, err := ledger.Balance(entries)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 10; round++ {
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		got, err := ledger.Balance(entries)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "permutation changed total: %s != %s", got, want)
	}
}

// Many small decimal amounts must sum without drift. 0.1 added three
// hundred times is exactly 30.
func TestBalance_NoFloatDrift(t *testing.T) {
	base := day(2024, 1, 1)
	entries := make([]ledger.Entry, 300)
	for i := range entries {
		entries[i] = entry("e", ledger.KindIncome, "0.1", base, base)
	}

	balance, err := ledger.Balance(entries)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(30)), "got %s", balance)
}

func TestBalance_UnknownKindFailsFast(t *testing.T) {
	base := day(2024, 1, 1)
	entries := []ledger.Entry{
		entry("ok", ledger.KindCredit, "10", base, base),
		entry("bad", ledger.Kind("deposit"), "10", base, base),
	}

	_, err := ledger.Balance(entries)
	assert.ErrorIs(t, err, ledger.ErrUnknownKind)
}

func TestBalance_NonPositiveAmountFailsFast(t *testing.T) {
	base := day(2024, 1, 1)
	entries := []ledger.Entry{
		entry("zero", ledger.KindDebit, "0", base, base),
	}

	_, err := ledger.Balance(entries)
	assert.ErrorIs(t, err, ledger.ErrNonPositiveAmount)
}

func TestRunningBalances_Chronological(t *testing.T) {
	rec := day(2024, 2, 1)
	// Deliberately out of order: 01-05 debit 100, 01-10 credit 300, 01-01 debit 50.
	entries := []ledger.Entry{
		entry("b", ledger.KindDebit, "100", day(2024, 1, 5), rec),
		entry("c", ledger.KindCredit, "300", day(2024, 1, 10), rec),
		entry("a", ledger.KindDebit, "50", day(2024, 1, 1), rec),
	}

	positions, total, err := ledger.RunningBalances(entries)
	require.NoError(t, err)
	require.Len(t, positions, 3)

	assert.Equal(t, "a", positions[0].Entry.ID)
	assert.True(t, positions[0].Balance.Equal(decimal.NewFromInt(-50)))
	assert.Equal(t, "b", positions[1].Entry.ID)
	assert.True(t, positions[1].Balance.Equal(decimal.NewFromInt(-150)))
	assert.Equal(t, "c", positions[2].Entry.ID)
	assert.True(t, positions[2].Balance.Equal(decimal.NewFromInt(150)))

	// Final running balance equals the order-independent total.
	flat, err := ledger.Balance(entries)
	require.NoError(t, err)
	assert.True(t, total.Equal(flat))
	assert.True(t, positions[len(positions)-1].Balance.Equal(flat))
}

func TestRunningBalances_TieBrokenByRecordedAt(t *testing.T) {
	d := day(2024, 5, 5)
	entries := []ledger.Entry{
		entry("later", ledger.KindCredit, "10", d, d.Add(2*time.Hour)),
		entry("earlier", ledger.KindDebit, "10", d, d.Add(time.Hour)),
	}

	positions, _, err := ledger.RunningBalances(entries)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "earlier", positions[0].Entry.ID)
	assert.Equal(t, "later", positions[1].Entry.ID)
}

func TestRunningBalances_MonotonicForSingleSign(t *testing.T) {
	base := day(2024, 1, 1)
	credits := make([]ledger.Entry, 20)
	for i := range credits {
		credits[i] = entry("c", ledger.KindCredit, "7.25", base.AddDate(0, 0, i), base)
	}

	positions, _, err := ledger.RunningBalances(credits)
	require.NoError(t, err)
	for i := 1; i < len(positions); i++ {
		assert.True(t, positions[i].Balance.GreaterThanOrEqual(positions[i-1].Balance))
	}

	debits := make([]ledger.Entry, 20)
	for i := range debits {
		debits[i] = entry("d", ledger.KindDebit, "3.50", base.AddDate(0, 0, i), base)
	}

	positions, _, err = ledger.RunningBalances(debits)
	require.NoError(t, err)
	for i := 1; i < len(positions); i++ {
		assert.True(t, positions[i].Balance.LessThanOrEqual(positions[i-1].Balance))
	}
}

func TestRunningBalances_Empty(t *testing.T) {
	positions, total, err := ledger.RunningBalances(nil)
	require.NoError(t, err)
	assert.Empty(t, positions)
	assert.True(t, total.IsZero())
}

func TestSummarize_InclusiveWindow(t *testing.T) {
	rec := day(2024, 2, 1)
	entries := []ledger.Entry{
		entry("b", ledger.KindDebit, "100", day(2024, 1, 5), rec),
		entry("c", ledger.KindCredit, "300", day(2024, 1, 10), rec),
		entry("a", ledger.KindDebit, "50", day(2024, 1, 1), rec),
	}

	from := day(2024, 1, 5)
	to := day(2024, 1, 10)
	summary, err := ledger.Summarize(entries, ledger.Window{From: &from, To: &to})
	require.NoError(t, err)

	// Entries dated exactly on the bounds are included.
	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.Total(ledger.KindDebit).Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.Total(ledger.KindCredit).Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 1, summary.Counts[ledger.KindDebit])
	assert.Equal(t, 1, summary.Counts[ledger.KindCredit])
}

func TestSummarize_OpenBounds(t *testing.T) {
	rec := day(2024, 2, 1)
	entries := []ledger.Entry{
		entry("a", ledger.KindIncome, "10", day(2024, 1, 1), rec),
		entry("b", ledger.KindIncome, "20", day(2024, 6, 1), rec),
	}

	from := day(2024, 3, 1)
	summary, err := ledger.Summarize(entries, ledger.Window{From: &from})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.True(t, summary.Total(ledger.KindIncome).Equal(decimal.NewFromInt(20)))

	to := day(2024, 3, 1)
	summary, err = ledger.Summarize(entries, ledger.Window{To: &to})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.True(t, summary.Total(ledger.KindIncome).Equal(decimal.NewFromInt(10)))
}

func TestSummarize_Empty(t *testing.T) {
	summary, err := ledger.Summarize(nil, ledger.Window{})
	require.NoError(t, err)
	assert.True(t, summary.Net.IsZero())
	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.Total(ledger.KindIncome).IsZero())
	assert.True(t, summary.Total(ledger.KindExpense).IsZero())
}

// Unfiltered Summarize decomposes Balance: net equals the signed total.
func TestSummarize_NetMatchesBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	kinds := []ledger.Kind{ledger.KindDebit, ledger.KindCredit}
	base := day(2023, 11, 1)

	entries := make([]ledger.Entry, 100)
	for i := range entries {
		amount := decimal.NewFromInt(rng.Int63n(99999) + 1).Shift(-2)
		entries[i] = ledger.Entry{
			ID:         "e",
			Kind:       kinds[rng.Intn(len(kinds))],
			Amount:     amount,
			OccurredOn: base.AddDate(0, 0, rng.Intn(120)),
			RecordedAt: base.Add(time.Duration(i) * time.Second),
		}
	}

	summary, err := ledger.Summarize(entries, ledger.Window{})
	require.NoError(t, err)
	balance, err := ledger.Balance(entries)
	require.NoError(t, err)
	assert.True(t, summary.Net.Equal(balance), "net %s != balance %s", summary.Net, balance)
}

func TestSummarize_ValidatesFilteredOutEntries(t *testing.T) {
	from := day(2024, 6, 1)
	entries := []ledger.Entry{
		entry("bad", ledger.Kind("transfer"), "10", day(2024, 1, 1), day(2024, 1, 1)),
	}

	_, err := ledger.Summarize(entries, ledger.Window{From: &from})
	assert.ErrorIs(t, err, ledger.ErrUnknownKind)
}

func TestTopBySignedBalance(t *testing.T) {
	items := []ledger.SubjectBalance{
		{SubjectID: "A", Balance: decimal.NewFromInt(500)},
		{SubjectID: "B", Balance: decimal.NewFromInt(-300)},
		{SubjectID: "C", Balance: decimal.Zero},
		{SubjectID: "D", Balance: decimal.NewFromInt(700)},
	}

	highest := ledger.TopBySignedBalance(items, ledger.Highest, 5)
	require.Len(t, highest, 2)
	assert.Equal(t, "D", highest[0].SubjectID)
	assert.Equal(t, "A", highest[1].SubjectID)

	lowest := ledger.TopBySignedBalance(items, ledger.Lowest, 5)
	require.Len(t, lowest, 1)
	assert.Equal(t, "B", lowest[0].SubjectID)
}

func TestTopBySignedBalance_LimitAndTies(t *testing.T) {
	items := []ledger.SubjectBalance{
		{SubjectID: "z", Balance: decimal.NewFromInt(100)},
		{SubjectID: "a", Balance: decimal.NewFromInt(100)},
		{SubjectID: "m", Balance: decimal.NewFromInt(250)},
	}

	top := ledger.TopBySignedBalance(items, ledger.Highest, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "m", top[0].SubjectID)
	// Equal balances order by subject ID ascending.
	assert.Equal(t, "a", top[1].SubjectID)
}

func TestTopBySignedBalance_Empty(t *testing.T) {
	assert.Empty(t, ledger.TopBySignedBalance(nil, ledger.Highest, 10))

	onlyZero := []ledger.SubjectBalance{{SubjectID: "C", Balance: decimal.Zero}}
	assert.Empty(t, ledger.TopBySignedBalance(onlyZero, ledger.Lowest, 10))
}

func TestWindowContains_DayGranularity(t *testing.T) {
	from := day(2024, 1, 5)
	to := day(2024, 1, 10)
	w := ledger.Window{From: &from, To: &to}

	// A timestamp late on the last day still falls inside the window.
	assert.True(t, w.Contains(time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)))
	assert.True(t, w.Contains(day(2024, 1, 5)))
	assert.False(t, w.Contains(day(2024, 1, 4)))
	assert.False(t, w.Contains(day(2024, 1, 11)))
}
