package selection

import "github.com/Juneo-io/juneo-wallet-core/token"

// CoalesceOutputs packs a non-empty sequence of bundles into the smallest
// number of outputs that each individually satisfy outputSizeWithinLimit,
// via a single greedy left fold: it accumulates into the current output
// while the merge still fits, otherwise starts a new output. Input order
// breaks ties between equally good splits. Total value is preserved
// exactly (monoid-equal to the input sequence).
func CoalesceOutputs(params Params, bundles []token.TokenBundle) []token.TokenBundle {
	if len(bundles) == 0 {
		return nil
	}

	out := make([]token.TokenBundle, 0, len(bundles))
	current := bundles[0]
	for _, next := range bundles[1:] {
		merged := current.Add(next)
		if params.outputSizeWithinLimit(merged) {
			current = merged
			continue
		}
		out = append(out, current)
		current = next
	}
	out = append(out, current)
	return out
}
