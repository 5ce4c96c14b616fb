package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Juneo-io/juneo-wallet-core/token"
)

func TestCheckInvariantHoldsForFreshSelection(t *testing.T) {
	params := toyParams()
	sel, err := Create(params, 0, []InputEntry{
		{ID: id(1), Bundle: token.CoinOnly(200)},
	})
	require.NoError(t, err)
	require.Equal(t, Holds, CheckInvariant(params, sel))
}

func TestCheckInvariantCatchesBrokenCoinConservation(t *testing.T) {
	params := toyParams()
	sel, err := Create(params, 0, []InputEntry{
		{ID: id(1), Bundle: token.CoinOnly(200)},
	})
	require.NoError(t, err)

	sel.FeeExcess++ // corrupt the selection directly
	status := CheckInvariant(params, sel)
	require.False(t, status.Holds)
}

func TestCheckInvariantCatchesTokenImbalance(t *testing.T) {
	params := toyParams()
	sel, err := Create(params, 0, []InputEntry{
		{ID: id(1), Bundle: token.Bundle(200, token.TokenMap{asset(1): 5})},
	})
	require.NoError(t, err)

	sel.Outputs[0].Tokens = sel.Outputs[0].Tokens.Add(token.TokenMap{asset(1): 1})
	status := CheckInvariant(params, sel)
	require.False(t, status.Holds)
}
