package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoinCheckedAddDetectsOverflow(t *testing.T) {
	sum, ok := maxCoin.CheckedAdd(1)
	require.False(t, ok)
	require.Equal(t, maxCoin, sum)

	sum, ok = Coin(10).CheckedAdd(5)
	require.True(t, ok)
	require.Equal(t, Coin(15), sum)
}

func TestCoinAddSaturatesOnOverflow(t *testing.T) {
	require.Equal(t, maxCoin, maxCoin.Add(1))
	require.Equal(t, Coin(15), Coin(10).Add(5))
}

func TestTokenQuantityAddSaturatesOnOverflow(t *testing.T) {
	require.Equal(t, maxTokenQuantity, maxTokenQuantity.Add(1))
	require.Equal(t, TokenQuantity(15), TokenQuantity(10).Add(5))
}
