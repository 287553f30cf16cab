// Package ledger computes pairwise debts and net balances from expense
// records. All computation is pure and operates on an in-memory snapshot;
// nothing here persists or caches state between queries.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/Shr1ramN/expense-calculator/internal/expense"
	"github.com/Shr1ramN/expense-calculator/internal/expense/split"
)

// Ledger maps user id -> counterparty id -> signed net amount.
// ledger[A][B] > 0 means B owes A that amount net.
// Invariant: ledger[A][B] == -ledger[B][A] for every pair, exactly.
type Ledger map[string]map[string]decimal.Decimal

// Aggregate folds a snapshot of expenses into a fresh ledger. Each expense
// is run through its split strategy; every debt is applied to both sides of
// the pair with the same value negated, so symmetry holds by construction.
// The fold is a sum, so expense order does not affect the result.
func Aggregate(expenses []expense.Expense) (Ledger, error) {
	l := Ledger{}
	factory := split.NewFactory()

	for i := range expenses {
		e := &expenses[i]

		strategy, err := factory.Create(e.SplitMethod)
		if err != nil {
			return nil, err
		}

		owed, err := strategy.Compute(e.Amount, e.PayerID, e.Participants, e.Splits)
		if err != nil {
			return nil, err
		}

		for debtor, amount := range owed {
			if amount.Sign() == 0 {
				continue
			}
			l.add(e.PayerID, debtor, amount)
			l.add(debtor, e.PayerID, amount.Neg())
		}
	}

	return l, nil
}

// Entry returns the signed net amount counterparty b owes user a
func (l Ledger) Entry(a, b string) decimal.Decimal {
	return l[a][b]
}

// NetBalance sums a user's row: positive means the user is owed net,
// negative means the user owes net.
func (l Ledger) NetBalance(userID string) decimal.Decimal {
	net := decimal.Zero
	for _, amount := range l[userID] {
		net = net.Add(amount)
	}
	return net
}

func (l Ledger) add(a, b string, amount decimal.Decimal) {
	row, ok := l[a]
	if !ok {
		row = make(map[string]decimal.Decimal)
		l[a] = row
	}
	row[b] = row[b].Add(amount)
}
