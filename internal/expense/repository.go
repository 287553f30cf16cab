package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/Shr1ramN/expense-calculator/internal/expense/split"
)

// Repository is the Postgres-backed Store implementation. An expense spans
// three tables (expenses, expense_participants, expense_splits) and is
// written in a single transaction.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes the expense, its participant set and its raw splits atomically.
// Returns ErrDuplicateID on id collision.
func (r *Repository) Insert(ctx context.Context, e *Expense) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO expenses (id, payer_id, amount, split_method, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, e.ID, e.PayerID, e.Amount, string(e.SplitMethod), e.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for _, p := range e.Participants {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO expense_participants (expense_id, user_id)
			VALUES ($1, $2)
		`, e.ID, p); err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for userID, value := range e.Splits {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO expense_splits (expense_id, user_id, value)
			VALUES ($1, $2, $3)
		`, e.ID, userID, value); err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense: %w", err)
	}

	return nil
}

// GetByID retrieves a single expense with its participants and splits
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	e := &Expense{}
	var method string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, payer_id, amount, split_method, created_at
		FROM expenses
		WHERE id = $1
	`, id).Scan(&e.ID, &e.PayerID, &e.Amount, &method, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	e.SplitMethod = split.Method(method)

	if err := r.loadDetails(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// ListAll retrieves every expense
func (r *Repository) ListAll(ctx context.Context) ([]Expense, error) {
	return r.list(ctx, `
		SELECT id, payer_id, amount, split_method, created_at
		FROM expenses
		ORDER BY created_at
	`)
}

// ListByParticipant retrieves the expenses a user is a participant of
func (r *Repository) ListByParticipant(ctx context.Context, userID string) ([]Expense, error) {
	return r.list(ctx, `
		SELECT e.id, e.payer_id, e.amount, e.split_method, e.created_at
		FROM expenses e
		JOIN expense_participants ep ON ep.expense_id = e.id
		WHERE ep.user_id = $1
		ORDER BY e.created_at
	`, userID)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		var method string
		if err := rows.Scan(&e.ID, &e.PayerID, &e.Amount, &method, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.SplitMethod = split.Method(method)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range expenses {
		if err := r.loadDetails(ctx, &expenses[i]); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

// loadDetails fills the participant set and raw splits of an expense
func (r *Repository) loadDetails(ctx context.Context, e *Expense) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id FROM expense_participants WHERE expense_id = $1 ORDER BY user_id
	`, e.ID)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}
	defer rows.Close()

	e.Participants = nil
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		e.Participants = append(e.Participants, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	splitRows, err := r.db.QueryContext(ctx, `
		SELECT user_id, value FROM expense_splits WHERE expense_id = $1
	`, e.ID)
	if err != nil {
		return fmt.Errorf("failed to load splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var id string
		var value decimal.Decimal
		if err := splitRows.Scan(&id, &value); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		if e.Splits == nil {
			e.Splits = make(map[string]decimal.Decimal)
		}
		e.Splits[id] = value
	}

	return splitRows.Err()
}
