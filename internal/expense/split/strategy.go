package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Method identifies a split strategy
type Method string

const (
	MethodEqual      Method = "equal"
	MethodExact      Method = "exact"
	MethodPercentage Method = "percentage"
)

// Strategy is the interface that all split strategies implement.
// Compute returns the amount each non-payer participant owes the payer.
// The payer never appears in the result. All strategies are pure; amounts
// are rounded to 2 decimal places with banker's rounding.
type Strategy interface {
	// Method returns the method identifier for this strategy
	Method() Method

	// Validate checks if the inputs are valid for this strategy
	Validate(amount decimal.Decimal, participants []string, splits map[string]decimal.Decimal) error

	// Compute calculates what each participant owes the payer
	Compute(amount decimal.Decimal, payerID string, participants []string, splits map[string]decimal.Decimal) (map[string]decimal.Decimal, error)
}

// Factory creates split strategies based on the requested method
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given method
func (f *Factory) Create(method Method) (Strategy, error) {
	switch method {
	case MethodEqual:
		return &EqualStrategy{}, nil
	case MethodExact:
		return &ExactStrategy{}, nil
	case MethodPercentage:
		return &PercentageStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split method: %s", method)
	}
}

// CreateFromString creates a strategy from a raw string method (useful for API requests)
func (f *Factory) CreateFromString(method string) (Strategy, error) {
	return f.Create(Method(method))
}

var (
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrNonPositiveAmount    = errors.New("amount must be greater than zero")
	ErrMissingSplits        = errors.New("splits are required for this split method")
	ErrInvalidPercentageSum = errors.New("percentages must sum to exactly 100")
	ErrPercentageOutOfRange = errors.New("percentage must be between 0 and 100")
	ErrExactSumMismatch     = errors.New("exact split amounts must sum to the expense amount")
	ErrNegativeSplit        = errors.New("split amounts cannot be negative")
	ErrUnknownParticipant   = errors.New("splits entry does not match any participant")
)

var hundred = decimal.NewFromInt(100)

// validateBase holds the checks shared by every strategy
func validateBase(amount decimal.Decimal, participants []string) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// validateSplitKeys rejects splits entries for users outside the participant set
func validateSplitKeys(participants []string, splits map[string]decimal.Decimal) error {
	set := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		set[p] = struct{}{}
	}
	for id := range splits {
		if _, ok := set[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownParticipant, id)
		}
	}
	return nil
}
