package split

import "github.com/shopspring/decimal"

// EqualStrategy divides the expense equally among all participants.
// The divisor includes the payer; the payer's own share is simply not billed.
type EqualStrategy struct{}

// Method returns the split method identifier
func (s *EqualStrategy) Method() Method {
	return MethodEqual
}

// Validate checks if the inputs are valid for an equal split.
// User-supplied splits are ignored for this method.
func (s *EqualStrategy) Validate(amount decimal.Decimal, participants []string, _ map[string]decimal.Decimal) error {
	return validateBase(amount, participants)
}

// Compute gives every non-payer participant a per-capita share of the amount
func (s *EqualStrategy) Compute(amount decimal.Decimal, payerID string, participants []string, splits map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	if err := s.Validate(amount, participants, splits); err != nil {
		return nil, err
	}

	share := amount.
		Div(decimal.NewFromInt(int64(len(participants)))).
		RoundBank(2)

	owed := make(map[string]decimal.Decimal)
	for _, p := range participants {
		if p == payerID {
			continue
		}
		owed[p] = share
	}

	return owed, nil
}
