// Package selection implements the greedy migration-selection engine: it
// packs wallet inputs into transaction outputs under size, minimum-ada, and
// fee constraints while minimizing the ada left over as unassigned fee
// excess.
package selection

import "github.com/Juneo-io/juneo-wallet-core/token"

// Params is the opaque, immutable configuration a selection is built under.
// None of its fields are mutated during a selection; callers derive it once
// from protocol parameters supplied by the host and reuse it across calls.
type Params struct {
	CostOfEmptySelection token.Coin
	SizeOfEmptySelection token.Size

	CostOfInput token.Coin
	SizeOfInput token.Size

	CostOfOutput func(token.TokenBundle) token.Coin
	SizeOfOutput func(token.TokenBundle) token.Size

	CostOfRewardWithdrawal func(token.Coin) token.Coin
	SizeOfRewardWithdrawal func(token.Coin) token.Size

	MaximumSizeOfOutput    token.Size
	MaximumSizeOfSelection token.Size
	MaximumTokenQuantity   token.TokenQuantity

	// MinimumAdaQuantityForOutput is the protocol rule mapping an output's
	// held assets to the minimum ada that output must carry.
	MinimumAdaQuantityForOutput func(token.TokenMap) token.Coin
}

// costOfOutputCoin evaluates CostOfOutput holding tokens fixed and varying
// only the coin field, the shape MinimizeFeeExcessForOutput and
// CheckInvariant's fee-excess minimality check both need.
func (p Params) costOfOutputCoin(tokens token.TokenMap, coin token.Coin) token.Coin {
	return p.CostOfOutput(token.Bundle(coin, tokens))
}

// outputSizeWithinLimit reports whether o could legally appear as a
// selection output on size grounds alone: its own size fits the per-output
// ceiling and no asset quantity exceeds the per-output cap.
func (p Params) outputSizeWithinLimit(o token.TokenBundle) bool {
	return p.SizeOfOutput(o) <= p.MaximumSizeOfOutput && !o.ExceedsQuantityCap(p.MaximumTokenQuantity)
}

// outputSatisfiesMinimumAdaQuantity reports whether o carries at least the
// ada the protocol requires for the assets it holds.
func (p Params) outputSatisfiesMinimumAdaQuantity(o token.TokenBundle) bool {
	return o.Coin >= p.MinimumAdaQuantityForOutput(o.Tokens)
}

// totalFee returns the total fee a selection with the given shape incurs:
// the empty-selection base cost, one costOfInput per input, one
// costOfOutput per output, and the reward-withdrawal cost.
func (p Params) totalFee(inputCount int, outputs []token.TokenBundle, rewardWithdrawal token.Coin) token.Coin {
	fee := p.CostOfEmptySelection
	fee = fee.Add(token.Coin(inputCount) * p.CostOfInput)
	for _, o := range outputs {
		fee = fee.Add(p.CostOfOutput(o))
	}
	fee = fee.Add(p.CostOfRewardWithdrawal(rewardWithdrawal))
	return fee
}

// totalSize returns the total size a selection with the given shape
// occupies.
func (p Params) totalSize(inputCount int, outputs []token.TokenBundle, rewardWithdrawal token.Coin) token.Size {
	size := p.SizeOfEmptySelection
	size = size.Add(token.Size(inputCount) * p.SizeOfInput)
	for _, o := range outputs {
		size = size.Add(p.SizeOfOutput(o))
	}
	size = size.Add(p.SizeOfRewardWithdrawal(rewardWithdrawal))
	return size
}
