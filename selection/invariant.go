package selection

import "fmt"

// InvariantStatus is the outcome of checkInvariant: either the selection
// holds every invariant, or exactly one violation is reported (the first
// encountered, in invariant-number order). It is for tests and diagnostics
// only — never returned to end users, and a non-holding status indicates a
// bug in this package, not a user error.
type InvariantStatus struct {
	Holds     bool
	Violation string
}

// Holds is the canonical "all invariants satisfied" status.
var Holds = InvariantStatus{Holds: true}

func violation(format string, args ...any) InvariantStatus {
	return InvariantStatus{Holds: false, Violation: fmt.Sprintf(format, args...)}
}

// CheckInvariant verifies every invariant spec.md §3 places on a Selection:
//
//  1. coin conservation: Σinputs.coin + rewardWithdrawal = Σoutputs.coin + totalFee + feeExcess
//  2. every output satisfies the size and minimum-ada rules
//  3. total selection size is within the configured maximum
//  4. multi-asset token conservation: Σinputs.tokens = Σoutputs.tokens
//  5. feeExcess is minimal: assigning it to any output would cost more than it is worth
func CheckInvariant(params Params, s Selection) InvariantStatus {
	if len(s.Inputs) == 0 {
		return violation("selection has no inputs")
	}
	if len(s.Outputs) == 0 {
		return violation("selection has no outputs")
	}

	totalIn := s.TotalInputValue()
	totalOut := s.TotalOutputValue()
	totalFee := params.totalFee(len(s.Inputs), s.Outputs, s.RewardWithdrawal)

	suppliedCoin := totalIn.Coin.Add(s.RewardWithdrawal)
	requiredCoin := totalOut.Coin.Add(totalFee).Add(s.FeeExcess)
	if suppliedCoin != requiredCoin {
		return violation(
			"coin conservation violated: supplied %d != outputs+fee+excess %d",
			suppliedCoin, requiredCoin,
		)
	}

	for i, o := range s.Outputs {
		if !params.outputSizeWithinLimit(o) {
			return violation("output %d exceeds the per-output size or token-quantity limit", i)
		}
		if !params.outputSatisfiesMinimumAdaQuantity(o) {
			return violation("output %d carries less ada than its minimum-ada requirement", i)
		}
	}

	actualSize := params.totalSize(len(s.Inputs), s.Outputs, s.RewardWithdrawal)
	if actualSize > params.MaximumSizeOfSelection {
		return violation("selection size %d exceeds maximum %d", actualSize, params.MaximumSizeOfSelection)
	}
	if s.Size != actualSize {
		return violation("cached size %d does not match recomputed size %d", s.Size, actualSize)
	}

	if !totalIn.Tokens.Equal(totalOut.Tokens) {
		return violation("token balance violated: Σinputs.tokens != Σoutputs.tokens")
	}

	if s.FeeExcess > 0 {
		for i, o := range s.Outputs {
			marginal := params.costOfOutputCoin(o.Tokens, o.Coin+1).Distance(params.costOfOutputCoin(o.Tokens, o.Coin))
			if marginal < s.FeeExcess {
				return violation(
					"output %d has unassigned fee excess %d available below its marginal cost %d",
					i, s.FeeExcess, marginal,
				)
			}
		}
	}

	return Holds
}
