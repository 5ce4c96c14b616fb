package selection

import "github.com/Juneo-io/juneo-wallet-core/token"

// ReclaimAdaResult is the outcome of a successful reclaimAda call.
type ReclaimAdaResult struct {
	ReducedOutputs []token.TokenBundle
	CostReduction  token.Coin
	SizeReduction  token.Size
}

// ReclaimAda attempts to free at least target ada from outputs by reducing
// each output's coin field down to (but not below) its minimum-ada floor,
// then, if that alone is insufficient, additionally coalescing the reduced
// outputs and re-flooring the result. It reports failure rather than a
// partial reclaim: on failure the caller's outputs are returned untouched
// by the caller (this function never mutates its input slice).
//
// On success, token balance is preserved exactly, the output count can
// only decrease, and:
//
//	(target == 0) is trivially satisfied with no reduction performed.
//	(Σ original.Coin - Σ reduced.Coin) + CostReduction >= target
func ReclaimAda(params Params, target token.Coin, outputs []token.TokenBundle) (ReclaimAdaResult, bool) {
	if target == 0 {
		return ReclaimAdaResult{ReducedOutputs: cloneBundles(outputs)}, true
	}

	originalCoin := sumCoin(outputs)
	originalCost := sumCost(params, outputs)
	originalSize := sumSize(params, outputs)

	floored := floorReduce(params, outputs)
	if reclaimed(originalCoin, originalCost, params, floored) >= target {
		return ReclaimAdaResult{
			ReducedOutputs: floored,
			CostReduction:  originalCost - sumCost(params, floored),
			SizeReduction:  originalSize - sumSize(params, floored),
		}, true
	}

	merged := CoalesceOutputs(params, floored)
	if len(merged) < len(floored) {
		merged = floorReduce(params, merged)
		if reclaimed(originalCoin, originalCost, params, merged) >= target {
			return ReclaimAdaResult{
				ReducedOutputs: merged,
				CostReduction:  originalCost - sumCost(params, merged),
				SizeReduction:  originalSize - sumSize(params, merged),
			}, true
		}
	}

	return ReclaimAdaResult{}, false
}

// floorReduce returns a copy of outputs with each coin field lowered to
// (never below) the minimum-ada quantity its held assets require. Token
// holdings are never touched.
func floorReduce(params Params, outputs []token.TokenBundle) []token.TokenBundle {
	out := cloneBundles(outputs)
	for i, o := range out {
		floor := params.MinimumAdaQuantityForOutput(o.Tokens)
		if o.Coin > floor {
			out[i] = o.WithCoin(floor)
		}
	}
	return out
}

func reclaimed(originalCoin token.Coin, originalCost token.Coin, params Params, reduced []token.TokenBundle) token.Coin {
	coinFreed := originalCoin - sumCoin(reduced)
	costFreed := originalCost - sumCost(params, reduced)
	return coinFreed + costFreed
}

func cloneBundles(bundles []token.TokenBundle) []token.TokenBundle {
	out := make([]token.TokenBundle, len(bundles))
	copy(out, bundles)
	return out
}

func sumCoin(bundles []token.TokenBundle) token.Coin {
	var total token.Coin
	for _, b := range bundles {
		total = total.Add(b.Coin)
	}
	return total
}

func sumCost(params Params, bundles []token.TokenBundle) token.Coin {
	var total token.Coin
	for _, b := range bundles {
		total = total.Add(params.CostOfOutput(b))
	}
	return total
}

func sumSize(params Params, bundles []token.TokenBundle) token.Size {
	var total token.Size
	for _, b := range bundles {
		total = total.Add(params.SizeOfOutput(b))
	}
	return total
}
