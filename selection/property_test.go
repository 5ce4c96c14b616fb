package selection

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Juneo-io/juneo-wallet-core/token"
)

func genTokenBundle() gopter.Gen {
	return gen.UInt64Range(0, 500).Map(func(c uint64) token.TokenBundle {
		return token.Bundle(token.Coin(c), token.TokenMap{asset(1): token.TokenQuantity(c%7 + 1)})
	})
}

// TestPropertyCoalescePreservesValue is property 3 from the specification:
// coalesceOutputs never changes total value, never grows the output count,
// and every output it returns fits the per-output size limit.
func TestPropertyCoalescePreservesValue(t *testing.T) {
	properties := gopter.NewProperties(nil)
	params := toyParams()
	params.MaximumSizeOfOutput = 30 // every generated bundle holds only asset(1), so merged outputs stay within this limit

	properties.Property("coalesce preserves value and shrinks or holds cardinality", prop.ForAll(
		func(bundles []token.TokenBundle) bool {
			if len(bundles) == 0 {
				return true
			}
			out := CoalesceOutputs(params, bundles)
			if !token.Sum(out).Equal(token.Sum(bundles)) {
				return false
			}
			if len(out) > len(bundles) {
				return false
			}
			for _, o := range out {
				if !params.outputSizeWithinLimit(o) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(6, genTokenBundle()),
	))

	properties.TestingRun(t)
}

// TestPropertyMinimizeFeeExcessContract is property 5: the conservation law
// and termination condition minimizeFeeExcessForOutput must satisfy.
func TestPropertyMinimizeFeeExcessContract(t *testing.T) {
	properties := gopter.NewProperties(nil)
	params := toyParams()

	properties.Property("minimize fee excess conserves value and terminates correctly", prop.ForAll(
		func(excess uint64, output token.TokenBundle) bool {
			e := token.Coin(excess)
			finalExcess, finalOutput := MinimizeFeeExcessForOutput(params, e, output)

			if finalExcess > e {
				return false
			}
			if finalOutput.Coin < output.Coin {
				return false
			}

			coinIncrease := finalOutput.Coin - output.Coin
			costIncrease := params.costOfOutputCoin(output.Tokens, finalOutput.Coin) - params.costOfOutputCoin(output.Tokens, output.Coin)
			if coinIncrease+costIncrease+finalExcess != e {
				return false
			}

			if finalExcess > 0 {
				marginal := params.costOfOutputCoin(output.Tokens, finalOutput.Coin+1).Distance(params.costOfOutputCoin(output.Tokens, finalOutput.Coin))
				if marginal < finalExcess {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(0, 1000),
		genTokenBundle(),
	))

	properties.TestingRun(t)
}

// TestPropertyFullFailureIsEvidence is property 6: any SelectionFull
// returned must carry sizeMaximum < sizeRequired.
func TestPropertyFullFailureIsEvidence(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("SelectionFull always reports maximum below required", prop.ForAll(
		func(inputCount int) bool {
			params := scenarioParams()
			params.MaximumSizeOfSelection = 6

			inputs := make([]InputEntry, inputCount)
			for i := range inputs {
				inputs[i] = InputEntry{ID: id(byte(i + 1)), Bundle: token.CoinOnly(50)}
			}

			_, err := Create(params, 0, inputs)
			selErr, ok := err.(*Error)
			if !ok {
				return true // success: nothing to check here
			}
			if selErr.Kind != KindSelectionFull {
				return true
			}
			return selErr.SizeMaximum < selErr.SizeRequired
		},
		gen.IntRange(1, 15),
	))

	properties.TestingRun(t)
}

// TestPropertyCreationSoundness is property 1: any successful Create
// produces a selection holding every invariant, with the same inputs.
func TestPropertyCreationSoundness(t *testing.T) {
	properties := gopter.NewProperties(nil)
	params := toyParams()

	properties.Property("create soundness", prop.ForAll(
		func(coins []uint64) bool {
			if len(coins) == 0 {
				return true
			}
			inputs := make([]InputEntry, len(coins))
			for i, c := range coins {
				inputs[i] = InputEntry{ID: id(byte(i + 1)), Bundle: token.CoinOnly(token.Coin(c) + 1000)}
			}
			sel, err := Create(params, 0, inputs)
			if err != nil {
				return true // insufficient/full is a valid, checked outcome elsewhere
			}
			return CheckInvariant(params, sel).Holds
		},
		gen.SliceOfN(4, gen.UInt64Range(0, 2000)),
	))

	properties.TestingRun(t)
}
