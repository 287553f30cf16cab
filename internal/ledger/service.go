package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Shr1ramN/expense-calculator/internal/expense"
	"github.com/Shr1ramN/expense-calculator/internal/user"
)

// Service answers balance and report queries. Every query fetches a single
// snapshot from the expense store and aggregates it fresh; there is no
// cached ledger to invalidate.
type Service struct {
	expenses expense.Store
	users    user.Store
}

// NewService creates a new ledger service with dependencies injected
func NewService(expenses expense.Store, users user.Store) *Service {
	return &Service{expenses: expenses, users: users}
}

// UserBalance returns the net balance of one user, computed from the
// expenses that user took part in. Positive means the user is owed net.
func (s *Service) UserBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	if u == nil {
		return decimal.Zero, user.ErrNotFound
	}

	snapshot, err := s.expenses.ListByParticipant(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	l, err := Aggregate(snapshot)
	if err != nil {
		return decimal.Zero, err
	}

	return l.NetBalance(userID), nil
}

// AllBalances aggregates every stored expense into a full ledger
func (s *Service) AllBalances(ctx context.Context) (Ledger, error) {
	snapshot, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(snapshot)
}

// ReportRows produces the settlement report for the full ledger
func (s *Service) ReportRows(ctx context.Context) ([]Row, error) {
	l, err := s.AllBalances(ctx)
	if err != nil {
		return nil, err
	}
	return Report(l), nil
}
