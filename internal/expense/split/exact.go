package split

import "github.com/shopspring/decimal"

// ExactStrategy takes each participant's owed amount verbatim from the splits
// mapping. A participant absent from splits owes nothing, but the splits
// values must sum to the expense amount exactly.
type ExactStrategy struct{}

// Method returns the split method identifier
func (s *ExactStrategy) Method() Method {
	return MethodExact
}

// Validate checks if the inputs are valid for an exact split
func (s *ExactStrategy) Validate(amount decimal.Decimal, participants []string, splits map[string]decimal.Decimal) error {
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
	for _, v := range splits {
		if v.Sign() < 0 {
			return ErrNegativeSplit
		}
		total = total.Add(v)
	}
	if !total.Equal(amount) {
		return ErrExactSumMismatch
	}

	return nil
}

// Compute returns the specified amounts for each non-payer participant
func (s *ExactStrategy) Compute(amount decimal.Decimal, payerID string, participants []string, splits map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	if err := s.Validate(amount, participants, splits); err != nil {
		return nil, err
	}

	owed := make(map[string]decimal.Decimal)
	for _, p := range participants {
		if p == payerID {
			continue
		}
		if v, ok := splits[p]; ok && v.Sign() > 0 {
			owed[p] = v.RoundBank(2)
		}
	}

	return owed, nil
}
