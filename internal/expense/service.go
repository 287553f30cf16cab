package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Shr1ramN/expense-calculator/internal/expense/split"
	"github.com/Shr1ramN/expense-calculator/internal/user"
)

// Common errors
var (
	ErrNotFound            = errors.New("expense not found")
	ErrDuplicateID         = errors.New("expense id already exists")
	ErrPayerNotParticipant = errors.New("payer must be included in participants")
	ErrUnknownUser         = errors.New("unknown user")
)

// Service handles expense business logic
type Service struct {
	store        Store
	users        user.Store
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(store Store, users user.Store, splitFactory *split.Factory) *Service {
	return &Service{
		store:        store,
		users:        users,
		splitFactory: splitFactory,
	}
}

// Create validates and persists a new expense. Validation runs before any
// write, so a rejected create leaves no partial state.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	strategy, err := s.splitFactory.CreateFromString(req.SplitMethod)
	if err != nil {
		return nil, err
	}

	participants := dedupe(req.Participants)

	payerListed := false
	for _, p := range participants {
		if p == req.PayerID {
			payerListed = true
			break
		}
	}
	if req.PayerID == "" || !payerListed {
		return nil, ErrPayerNotParticipant
	}

	for _, p := range participants {
		u, err := s.users.GetByID(ctx, p)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUser, p)
		}
	}

	if err := strategy.Validate(req.Amount, participants, req.Splits); err != nil {
		return nil, err
	}

	e := &Expense{
		ID:           req.ID,
		PayerID:      req.PayerID,
		Amount:       req.Amount,
		Participants: participants,
		SplitMethod:  strategy.Method(),
		CreatedAt:    time.Now().UTC(),
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if strategy.Method() != split.MethodEqual {
		e.Splits = req.Splits
	}

	if err := s.store.Insert(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// GetByID retrieves an expense by its id
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

// ListAll retrieves every stored expense
func (s *Service) ListAll(ctx context.Context) ([]Expense, error) {
	return s.store.ListAll(ctx)
}

// ListByParticipant retrieves the expenses a user took part in,
// either as payer or as participant
func (s *Service) ListByParticipant(ctx context.Context, userID string) ([]Expense, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, userID)
	}

	return s.store.ListByParticipant(ctx, userID)
}

// dedupe treats the participant list as a set, keeping first occurrences
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
