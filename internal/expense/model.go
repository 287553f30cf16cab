package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Shr1ramN/expense-calculator/internal/expense/split"
)

// Expense represents a shared expense. It is immutable once created.
// Splits holds the raw user-supplied values (exact amounts or percentages);
// owed amounts are always recomputed from them, never stored.
type Expense struct {
	ID           string                     `json:"id"`
	PayerID      string                     `json:"payer"`
	Amount       decimal.Decimal            `json:"amount"`
	Participants []string                   `json:"participants"`
	SplitMethod  split.Method               `json:"split_method"`
	Splits       map[string]decimal.Decimal `json:"splits,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
}

// Store is the persistence collaborator for expenses. Insert must be atomic
// with respect to id uniqueness; GetByID returns (nil, nil) when absent.
type Store interface {
	Insert(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id string) (*Expense, error)
	ListAll(ctx context.Context) ([]Expense, error)
	ListByParticipant(ctx context.Context, userID string) ([]Expense, error)
}
