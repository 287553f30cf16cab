package ledger_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shr1ramN/expense-calculator/internal/ledger"
)

func TestReport(t *testing.T) {
	l := ledger.Ledger{
		"alice": {"bob": d("60"), "carol": d("30")},
		"bob":   {"alice": d("-60")},
		"carol": {"alice": d("-30")},
	}

	rows := ledger.Report(l)

	require.Len(t, rows, 2)
	assert.Equal(t, "bob", rows[0].User)
	assert.Equal(t, "alice", rows[0].OwesTo)
	assert.True(t, rows[0].Amount.Equal(d("60")))
	assert.Equal(t, "carol", rows[1].User)
	assert.Equal(t, "alice", rows[1].OwesTo)
	assert.True(t, rows[1].Amount.Equal(d("30")))
}

func TestReportSortedAndDebtorFirst(t *testing.T) {
	l, err := ledger.Aggregate(fixtureExpenses())
	require.NoError(t, err)

	rows := ledger.Report(l)

	// Exactly the debtor side of every non-zero pair, debtors sorted first
	require.Len(t, rows, 2)
	assert.Equal(t, ledger.Row{User: "bob", OwesTo: "alice", Amount: rows[0].Amount}, rows[0])
	assert.True(t, rows[0].Amount.Equal(d("130")))
	assert.Equal(t, "carol", rows[1].User)
	assert.True(t, rows[1].Amount.Equal(d("30")))

	for _, row := range rows {
		assert.True(t, row.Amount.Sign() > 0, "report rows carry positive amounts only")
	}
}

func TestReportSkipsSettledPairs(t *testing.T) {
	l := ledger.Ledger{
		"alice": {"bob": decimal.Zero},
		"bob":   {"alice": decimal.Zero},
	}

	assert.Empty(t, ledger.Report(l))
}

func TestWriteCSV(t *testing.T) {
	rows := []ledger.Row{
		{User: "bob", OwesTo: "alice", Amount: d("130")},
		{User: "carol", OwesTo: "alice", Amount: d("30")},
	}

	var buf bytes.Buffer
	require.NoError(t, ledger.WriteCSV(&buf, rows))

	want := "User,Owes To,Amount\n" +
		"bob,alice,130.00\n" +
		"carol,alice,30.00\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ledger.WriteCSV(&buf, nil))
	assert.Equal(t, "User,Owes To,Amount\n", buf.String())
}
