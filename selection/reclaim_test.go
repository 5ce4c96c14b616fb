package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Juneo-io/juneo-wallet-core/token"
)

func TestReclaimAdaZeroTargetTriviallySucceeds(t *testing.T) {
	params := toyParams()
	outputs := []token.TokenBundle{token.Bundle(10, token.TokenMap{asset(1): 2})}

	result, ok := ReclaimAda(params, 0, outputs)
	require.True(t, ok)
	require.True(t, token.Sum(result.ReducedOutputs).Equal(token.Sum(outputs)))
	require.Zero(t, result.CostReduction)
	require.Zero(t, result.SizeReduction)
}

func TestReclaimAdaReducesTowardFloor(t *testing.T) {
	params := toyParams()
	outputs := []token.TokenBundle{
		token.Bundle(100, token.TokenMap{asset(1): 2}),
	}

	result, ok := ReclaimAda(params, 50, outputs)
	require.True(t, ok)
	require.True(t, result.ReducedOutputs[0].Tokens.Equal(outputs[0].Tokens))

	freed := sumCoin(outputs) - sumCoin(result.ReducedOutputs) + result.CostReduction
	require.GreaterOrEqual(t, uint64(freed), uint64(50))
	require.Equal(t, result.CostReduction == 0, result.SizeReduction == 0)
	require.LessOrEqual(t, len(result.ReducedOutputs), len(outputs))
}

func TestReclaimAdaFailsWhenInsufficientHeadroom(t *testing.T) {
	params := toyParams()
	outputs := []token.TokenBundle{
		token.Bundle(3, token.TokenMap{asset(1): 1}), // already at or near its floor
	}

	_, ok := ReclaimAda(params, 1_000_000, outputs)
	require.False(t, ok)
}

func TestReclaimAdaMergesOutputsWhenBeneficial(t *testing.T) {
	params := toyParams()
	floor := params.MinimumAdaQuantityForOutput(token.TokenMap{asset(1): 1})
	outputs := []token.TokenBundle{
		token.Bundle(floor, token.TokenMap{asset(1): 1}),
		token.Bundle(floor, token.TokenMap{asset(2): 1}),
	}

	const target = token.Coin(5) // floor-reduction alone frees nothing here; only merging can
	result, ok := ReclaimAda(params, target, outputs)
	require.True(t, ok)
	require.True(t, token.Sum(result.ReducedOutputs).Equal(token.Sum(outputs)))
	require.LessOrEqual(t, len(result.ReducedOutputs), len(outputs))
}
