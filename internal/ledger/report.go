package ledger

import (
	"encoding/csv"
	"io"
	"sort"

	"github.com/shopspring/decimal"
)

// Row is one line of the settlement report: User owes OwesTo Amount.
type Row struct {
	User   string          `json:"user"`
	OwesTo string          `json:"owes_to"`
	Amount decimal.Decimal `json:"amount"`
}

// Report flattens a ledger into rows. One row is emitted per ordered pair
// where the first user is the net debtor, sorted by user id then
// counterparty id for reproducible output.
func Report(l Ledger) []Row {
	users := make([]string, 0, len(l))
	for u := range l {
		users = append(users, u)
	}
	sort.Strings(users)

	var rows []Row
	for _, u := range users {
		counterparties := make([]string, 0, len(l[u]))
		for c := range l[u] {
			counterparties = append(counterparties, c)
		}
		sort.Strings(counterparties)

		for _, c := range counterparties {
			// l[u][c] < 0 means u owes c
			if amount := l[u][c]; amount.Sign() < 0 {
				rows = append(rows, Row{User: u, OwesTo: c, Amount: amount.Neg()})
			}
		}
	}

	return rows
}

// WriteCSV renders report rows as tabular text with the header
// User,Owes To,Amount. Amounts carry two decimal places.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"User", "Owes To", "Amount"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.User, row.OwesTo, row.Amount.StringFixed(2)}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
