package expense

import "github.com/shopspring/decimal"

// CreateExpenseRequest represents the request to create an expense.
// ID is optional; one is generated when omitted. Splits is required for
// the exact and percentage methods and ignored for equal.
type CreateExpenseRequest struct {
	ID           string                     `json:"id,omitempty"`
	PayerID      string                     `json:"payer"`
	Amount       decimal.Decimal            `json:"amount"`
	Participants []string                   `json:"participants"`
	SplitMethod  string                     `json:"split_method"`
	Splits       map[string]decimal.Decimal `json:"splits,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID           string                     `json:"id"`
	PayerID      string                     `json:"payer"`
	Amount       decimal.Decimal            `json:"amount"`
	Participants []string                   `json:"participants"`
	SplitMethod  string                     `json:"split_method"`
	Splits       map[string]decimal.Decimal `json:"splits,omitempty"`
	CreatedAt    string                     `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:           e.ID,
		PayerID:      e.PayerID,
		Amount:       e.Amount,
		Participants: e.Participants,
		SplitMethod:  string(e.SplitMethod),
		Splits:       e.Splits,
		CreatedAt:    e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
