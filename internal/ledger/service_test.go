package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shr1ramN/expense-calculator/internal/expense"
	"github.com/Shr1ramN/expense-calculator/internal/ledger"
	"github.com/Shr1ramN/expense-calculator/internal/user"
)

func setupService(t *testing.T) *ledger.Service {
	t.Helper()
	ctx := context.Background()

	users := user.NewMemStore()
	for _, u := range []user.User{
		{ID: "alice", Name: "Alice", Email: "alice@example.com", Mobile: "111"},
		{ID: "bob", Name: "Bob", Email: "bob@example.com", Mobile: "222"},
		{ID: "carol", Name: "Carol", Email: "carol@example.com", Mobile: "333"},
	} {
		u := u
		require.NoError(t, users.Create(ctx, &u))
	}

	expenses := expense.NewMemStore()
	for _, e := range fixtureExpenses() {
		e := e
		require.NoError(t, expenses.Insert(ctx, &e))
	}

	return ledger.NewService(expenses, users)
}

func TestServiceUserBalance(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	net, err := svc.UserBalance(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, net.Equal(d("160")), "alice net, got %s", net)

	net, err = svc.UserBalance(ctx, "carol")
	require.NoError(t, err)
	assert.True(t, net.Equal(d("-30")), "carol net, got %s", net)
}

func TestServiceUserBalanceUnknownUser(t *testing.T) {
	svc := setupService(t)

	_, err := svc.UserBalance(context.Background(), "mallory")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestServiceAllBalances(t *testing.T) {
	svc := setupService(t)

	l, err := svc.AllBalances(context.Background())
	require.NoError(t, err)

	assert.True(t, l.Entry("alice", "bob").Equal(d("130")))
	assert.True(t, l.Entry("bob", "alice").Equal(d("-130")))
	assert.True(t, l.Entry("alice", "carol").Equal(d("30")))
}

func TestServiceReportRows(t *testing.T) {
	svc := setupService(t)

	rows, err := svc.ReportRows(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "bob", rows[0].User)
	assert.Equal(t, "carol", rows[1].User)
}
