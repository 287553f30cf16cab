package expense

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// MemStore is an in-memory Store implementation, used in tests and anywhere
// a database is not available. Insert-if-absent is atomic under the lock,
// matching the uniqueness guarantee of the Postgres repository.
type MemStore struct {
	mu      sync.RWMutex
	byID    map[string]*Expense
	ordered []string
}

// NewMemStore creates an empty in-memory expense store
func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[string]*Expense)}
}

// Insert stores a copy of the expense, failing on id collision
func (m *MemStore) Insert(_ context.Context, e *Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[e.ID]; exists {
		return ErrDuplicateID
	}

	m.byID[e.ID] = copyExpense(e)
	m.ordered = append(m.ordered, e.ID)
	return nil
}

// GetByID returns the expense with the given id, or (nil, nil) if absent
func (m *MemStore) GetByID(_ context.Context, id string) (*Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return copyExpense(e), nil
}

// ListAll returns every expense in insertion order
func (m *MemStore) ListAll(_ context.Context) ([]Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	expenses := make([]Expense, 0, len(m.ordered))
	for _, id := range m.ordered {
		expenses = append(expenses, *copyExpense(m.byID[id]))
	}
	return expenses, nil
}

// ListByParticipant returns the expenses where the user is payer or participant
func (m *MemStore) ListByParticipant(_ context.Context, userID string) ([]Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var expenses []Expense
	for _, id := range m.ordered {
		e := m.byID[id]
		if e.PayerID == userID || contains(e.Participants, userID) {
			expenses = append(expenses, *copyExpense(e))
		}
	}
	return expenses, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func copyExpense(e *Expense) *Expense {
	cp := *e
	cp.Participants = append([]string(nil), e.Participants...)
	if e.Splits != nil {
		cp.Splits = make(map[string]decimal.Decimal, len(e.Splits))
		for k, v := range e.Splits {
			cp.Splits[k] = v
		}
	}
	return &cp
}
