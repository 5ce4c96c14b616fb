package selection

import "github.com/Juneo-io/juneo-wallet-core/token"

// Create packs inputs, together with an optional reward withdrawal, into a
// fresh Selection. inputs must be non-empty: an empty slice is treated as a
// programmer error and panics rather than returning a SelectionError. The
// walletcore facade passes its caller's inputs through without checking.
func Create(params Params, rewardWithdrawal token.Coin, inputs []InputEntry) (Selection, error) {
	if len(inputs) == 0 {
		panic("selection: Create requires a non-empty set of inputs")
	}

	total := sumEntries(inputs)
	outputs := initialOutputSplit(params, total.Tokens)
	outputs = raiseToMinimum(params, outputs)

	requiredSize := params.totalSize(len(inputs), outputs, rewardWithdrawal)
	if requiredSize > params.MaximumSizeOfSelection {
		return Selection{}, errSelectionFull(params.MaximumSizeOfSelection, requiredSize)
	}

	suppliedCoin := total.Coin.Add(rewardWithdrawal)
	requiredCoin := sumCoin(outputs).Add(params.totalFee(len(inputs), outputs, rewardWithdrawal))
	if suppliedCoin < requiredCoin {
		return Selection{}, errAdaInsufficient()
	}
	leftover := suppliedCoin - requiredCoin

	lastIdx := len(outputs) - 1
	excess, adjusted := MinimizeFeeExcessForOutput(params, leftover, outputs[lastIdx])
	outputs[lastIdx] = adjusted

	sel := Selection{
		Inputs:           cloneEntries(inputs),
		Outputs:          outputs,
		FeeExcess:        excess,
		RewardWithdrawal: rewardWithdrawal,
	}
	sel.Size = params.totalSize(len(sel.Inputs), sel.Outputs, sel.RewardWithdrawal)
	return sel, nil
}

// AddInputToExistingOutput merges entry into whichever of s's existing
// outputs can absorb it: the first, in output order, whose post-merge size
// stays within the per-output limit and whose per-asset quantity cap is
// not violated. It fails with KindSelectionFull if no output qualifies.
//
// Like AddInputToNewOutputWithoutReclaimingAda, the new input funds its own
// marginal cost: merging adds one more input (CostOfInput) and grows the
// target output's cost by CostOfOutput(merged)-CostOfOutput(original),
// and that growth is deducted from entry's own coin before the remainder
// is folded into the output — the selection's pre-existing fee excess is
// left untouched by the merge itself, then re-minimized against the new,
// larger output in case it can now absorb a little more. Fails with
// KindAdaInsufficient if entry's coin cannot cover its own marginal cost,
// or if the merged output would then violate minimum ada.
func AddInputToExistingOutput(params Params, s Selection, entry InputEntry) (Selection, error) {
	if s.hasInput(entry.ID) {
		panic("selection: input already present in selection")
	}

	targetIdx := -1
	var candidate token.TokenBundle
	for i, output := range s.Outputs {
		merged := output.Add(entry.Bundle)
		if params.outputSizeWithinLimit(merged) {
			targetIdx = i
			candidate = merged
			break
		}
	}
	if targetIdx == -1 {
		smallest := s.Outputs[0].Add(entry.Bundle)
		return Selection{}, errSelectionFull(params.MaximumSizeOfOutput, params.SizeOfOutput(smallest))
	}

	costDelta := params.CostOfOutput(candidate) - params.CostOfOutput(s.Outputs[targetIdx])
	requiredDelta := params.CostOfInput + costDelta
	if entry.Bundle.Coin < requiredDelta {
		return Selection{}, errAdaInsufficient()
	}
	merged := candidate.WithCoin(candidate.Coin - requiredDelta)

	newExcess, merged := MinimizeFeeExcessForOutput(params, s.FeeExcess, merged)
	if !params.outputSatisfiesMinimumAdaQuantity(merged) {
		return Selection{}, errAdaInsufficient()
	}

	next := s.clone()
	next.Outputs[targetIdx] = merged
	next.Inputs = append(next.Inputs, entry)
	next.FeeExcess = newExcess
	next.Size = params.totalSize(len(next.Inputs), next.Outputs, next.RewardWithdrawal)
	return next, nil
}

// AddInputToNewOutputWithoutReclaimingAda appends a new output holding
// entry's tokens. It never draws ada from existing outputs: entry's own coin
// is the only source covering its output's minimum-ada requirement, and
// entry's coin together with the selection's existing fee excess covers the
// new input and output costs. Whatever remains is assigned to the new
// output's coin by MinimizeFeeExcessForOutput. Fails with
// KindAdaInsufficient if either of those falls short.
func AddInputToNewOutputWithoutReclaimingAda(params Params, s Selection, entry InputEntry) (Selection, error) {
	if s.hasInput(entry.ID) {
		panic("selection: input already present in selection")
	}

	minAda := params.MinimumAdaQuantityForOutput(entry.Bundle.Tokens)
	if entry.Bundle.Coin < minAda {
		return Selection{}, errAdaInsufficient()
	}
	output := entry.Bundle.WithCoin(minAda)
	available := s.FeeExcess.Add(entry.Bundle.Coin)
	required := minAda.Add(params.CostOfInput).Add(params.CostOfOutput(output))
	if available < required {
		return Selection{}, errAdaInsufficient()
	}
	excess, output := MinimizeFeeExcessForOutput(params, available-required, output)
	if !params.outputSizeWithinLimit(output) {
		return Selection{}, errSelectionFull(params.MaximumSizeOfOutput, params.SizeOfOutput(output))
	}

	next := s.clone()
	next.Outputs = append(next.Outputs, output)
	next.Inputs = append(next.Inputs, entry)
	next.FeeExcess = excess
	next.Size = params.totalSize(len(next.Inputs), next.Outputs, next.RewardWithdrawal)

	requiredSize := next.Size
	if requiredSize > params.MaximumSizeOfSelection {
		return Selection{}, errSelectionFull(params.MaximumSizeOfSelection, requiredSize)
	}
	return next, nil
}

func sumEntries(entries []InputEntry) token.TokenBundle {
	bundles := make([]token.TokenBundle, len(entries))
	for i, e := range entries {
		bundles[i] = e.Bundle
	}
	return token.Sum(bundles)
}

func cloneEntries(entries []InputEntry) []InputEntry {
	out := make([]InputEntry, len(entries))
	copy(out, entries)
	return out
}

// initialOutputSplit breaks tokens into per-output bundles no single one of
// which exceeds the per-output asset-quantity cap, then coalesces those
// pieces down to as few outputs as possible.
func initialOutputSplit(params Params, tokens token.TokenMap) []token.TokenBundle {
	assetIDs := tokens.AssetIds()
	if len(assetIDs) == 0 {
		return []token.TokenBundle{token.CoinOnly(0)}
	}

	pieces := make([]token.TokenBundle, 0, len(assetIDs))
	for _, id := range assetIDs {
		remaining := tokens.Get(id)
		for remaining > 0 {
			chunk := remaining
			if chunk > params.MaximumTokenQuantity {
				chunk = params.MaximumTokenQuantity
			}
			pieces = append(pieces, token.Bundle(0, token.TokenMap{id: chunk}))
			remaining -= chunk
		}
	}
	return CoalesceOutputs(params, pieces)
}

// raiseToMinimum returns a copy of outputs with every coin field set to at
// least its minimum-ada requirement.
func raiseToMinimum(params Params, outputs []token.TokenBundle) []token.TokenBundle {
	out := cloneBundles(outputs)
	for i, o := range out {
		floor := params.MinimumAdaQuantityForOutput(o.Tokens)
		if o.Coin < floor {
			out[i] = o.WithCoin(floor)
		}
	}
	return out
}
