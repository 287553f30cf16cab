package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shr1ramN/expense-calculator/internal/expense"
	"github.com/Shr1ramN/expense-calculator/internal/expense/split"
	"github.com/Shr1ramN/expense-calculator/internal/ledger"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// The two expenses from which most assertions below follow: alice fronts a
// 90 equal three-way split, then a 100 expense billed entirely to bob.
func fixtureExpenses() []expense.Expense {
	return []expense.Expense{
		{
			ID:           "e1",
			PayerID:      "alice",
			Amount:       d("90"),
			Participants: []string{"alice", "bob", "carol"},
			SplitMethod:  split.MethodEqual,
		},
		{
			ID:           "e2",
			PayerID:      "alice",
			Amount:       d("100"),
			Participants: []string{"alice", "bob"},
			SplitMethod:  split.MethodPercentage,
			Splits:       map[string]decimal.Decimal{"bob": d("100")},
		},
	}
}

func TestAggregate(t *testing.T) {
	l, err := ledger.Aggregate(fixtureExpenses())
	require.NoError(t, err)

	assert.True(t, l.Entry("alice", "bob").Equal(d("130")), "bob owes alice 130, got %s", l.Entry("alice", "bob"))
	assert.True(t, l.Entry("alice", "carol").Equal(d("30")), "carol owes alice 30, got %s", l.Entry("alice", "carol"))
	assert.True(t, l.Entry("bob", "carol").IsZero())
}

func TestAggregateSymmetry(t *testing.T) {
	expenses := append(fixtureExpenses(), expense.Expense{
		ID:           "e3",
		PayerID:      "carol",
		Amount:       d("47.53"),
		Participants: []string{"alice", "bob", "carol"},
		SplitMethod:  split.MethodExact,
		Splits: map[string]decimal.Decimal{
			"alice": d("10.03"),
			"bob":   d("17.50"),
			"carol": d("20.00"),
		},
	})

	l, err := ledger.Aggregate(expenses)
	require.NoError(t, err)

	for a, row := range l {
		for b, amount := range row {
			assert.True(t, amount.Equal(l.Entry(b, a).Neg()),
				"ledger[%s][%s]=%s is not the negation of ledger[%s][%s]=%s",
				a, b, amount, b, a, l.Entry(b, a))
		}
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	expenses := append(fixtureExpenses(), expense.Expense{
		ID:           "e3",
		PayerID:      "bob",
		Amount:       d("60"),
		Participants: []string{"alice", "bob", "carol"},
		SplitMethod:  split.MethodEqual,
	})

	orders := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 2, 0},
		{2, 0, 1},
	}

	var first ledger.Ledger
	for _, order := range orders {
		permuted := make([]expense.Expense, 0, len(expenses))
		for _, i := range order {
			permuted = append(permuted, expenses[i])
		}

		l, err := ledger.Aggregate(permuted)
		require.NoError(t, err)

		if first == nil {
			first = l
			continue
		}

		require.Len(t, l, len(first))
		for a, row := range first {
			require.Len(t, l[a], len(row))
			for b, amount := range row {
				assert.True(t, amount.Equal(l.Entry(a, b)),
					"order %v: ledger[%s][%s]=%s, want %s", order, a, b, l.Entry(a, b), amount)
			}
		}
	}
}

func TestNetBalance(t *testing.T) {
	l, err := ledger.Aggregate(fixtureExpenses())
	require.NoError(t, err)

	assert.True(t, l.NetBalance("alice").Equal(d("160")), "alice net, got %s", l.NetBalance("alice"))
	assert.True(t, l.NetBalance("bob").Equal(d("-130")), "bob net, got %s", l.NetBalance("bob"))
	assert.True(t, l.NetBalance("carol").Equal(d("-30")), "carol net, got %s", l.NetBalance("carol"))
	assert.True(t, l.NetBalance("nobody").IsZero())
}

// A user's balance over only the expenses they took part in must agree with
// the full aggregate restricted to that user.
func TestRestrictedAggregateConsistency(t *testing.T) {
	expenses := append(fixtureExpenses(),
		expense.Expense{
			ID:           "e3",
			PayerID:      "bob",
			Amount:       d("40"),
			Participants: []string{"bob", "carol"},
			SplitMethod:  split.MethodEqual,
		},
		expense.Expense{
			ID:           "e4",
			PayerID:      "carol",
			Amount:       d("12.30"),
			Participants: []string{"carol", "dave"},
			SplitMethod:  split.MethodEqual,
		},
	)

	full, err := ledger.Aggregate(expenses)
	require.NoError(t, err)

	for _, userID := range []string{"alice", "bob", "carol", "dave"} {
		var restricted []expense.Expense
		for _, e := range expenses {
			for _, p := range e.Participants {
				if p == userID {
					restricted = append(restricted, e)
					break
				}
			}
		}

		l, err := ledger.Aggregate(restricted)
		require.NoError(t, err)

		assert.True(t, l.NetBalance(userID).Equal(full.NetBalance(userID)),
			"user %s: restricted net %s, full net %s", userID, l.NetBalance(userID), full.NetBalance(userID))
	}
}

func TestAggregateRejectsBadExpense(t *testing.T) {
	_, err := ledger.Aggregate([]expense.Expense{{
		ID:           "bad",
		PayerID:      "alice",
		Amount:       d("100"),
		Participants: []string{"alice", "bob"},
		SplitMethod:  split.MethodPercentage,
		Splits:       map[string]decimal.Decimal{"alice": d("50"), "bob": d("40")},
	}})
	assert.ErrorIs(t, err, split.ErrInvalidPercentageSum)
}

func TestAggregateEmptySnapshot(t *testing.T) {
	l, err := ledger.Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, l)
	assert.True(t, l.NetBalance("alice").IsZero())
}
