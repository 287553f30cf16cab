package split

import "github.com/shopspring/decimal"

// PercentageStrategy divides the expense according to per-participant
// percentages. Percentages must sum to exactly 100; a participant absent
// from splits owes nothing.
type PercentageStrategy struct{}

// Method returns the split method identifier
func (s *PercentageStrategy) Method() Method {
	return MethodPercentage
}

// Validate checks if the inputs are valid for a percentage split
func (s *PercentageStrategy) Validate(amount decimal.Decimal, participants []string, splits map[string]decimal.Decimal) error {
	if err := validateBase(amount, participants); err != nil {
		return err
	}
	if splits == nil {
		return ErrMissingSplits
	}
	if err := validateSplitKeys(participants, splits); err != nil {
		return err
	}

	total := decimal.Zero
	for _, pct := range splits {
		if pct.Sign() < 0 || pct.GreaterThan(hundred) {
			return ErrPercentageOutOfRange
		}
		total = total.Add(pct)
	}
	if !total.Equal(hundred) {
		return ErrInvalidPercentageSum
	}

	return nil
}

// Compute charges each non-payer participant their percentage of the amount
func (s *PercentageStrategy) Compute(amount decimal.Decimal, payerID string, participants []string, splits map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	if err := s.Validate(amount, participants, splits); err != nil {
		return nil, err
	}

	owed := make(map[string]decimal.Decimal)
	for _, p := range participants {
		if p == payerID {
			continue
		}
		pct, ok := splits[p]
		if !ok || pct.Sign() == 0 {
			continue
		}
		owed[p] = amount.Mul(pct).Div(hundred).RoundBank(2)
	}

	return owed, nil
}
