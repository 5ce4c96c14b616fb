package selection

import "github.com/Juneo-io/juneo-wallet-core/token"

// toyParams returns a SelectionParameters where cost and size are both
// simple linear functions of an output's byte footprint, so that
// "sizeReduction == 0 iff costReduction == 0" holds structurally: cost is
// always a constant multiple of size. feePerSizeUnit sets the cost of each
// size unit, so a wider coin value (see coinWidth) costs more, modelling a
// fee policy where bigger numbers need more bytes to encode.
func toyParams() Params {
	const (
		feePerSizeUnit = token.Coin(1)
		baseOutputSize = token.Size(4)
		perAssetSize   = token.Size(12)
		minAdaPerAsset = token.Coin(2)
		minAdaBase     = token.Coin(2)
	)

	sizeOfOutput := func(b token.TokenBundle) token.Size {
		return baseOutputSize + token.Size(b.AssetCount())*perAssetSize + coinWidth(b.Coin)
	}

	return Params{
		CostOfEmptySelection: 10,
		SizeOfEmptySelection: 5,
		CostOfInput:          1,
		SizeOfInput:          1,
		CostOfOutput: func(b token.TokenBundle) token.Coin {
			return token.Coin(sizeOfOutput(b)) * feePerSizeUnit
		},
		SizeOfOutput: sizeOfOutput,
		CostOfRewardWithdrawal: func(c token.Coin) token.Coin {
			if c == 0 {
				return 0
			}
			return 2
		},
		SizeOfRewardWithdrawal: func(c token.Coin) token.Size {
			if c == 0 {
				return 0
			}
			return 3
		},
		MaximumSizeOfOutput:    100,
		MaximumSizeOfSelection: 1000,
		MaximumTokenQuantity:   1_000_000,
		MinimumAdaQuantityForOutput: func(m token.TokenMap) token.Coin {
			return minAdaBase + token.Coin(len(m))*minAdaPerAsset
		},
	}
}

// coinWidth models the number of bytes needed to encode c as a variable-
// length integer, in buckets of 10: this is what makes output size (and
// hence cost) grow, in lockstep, with the magnitude of the coin field.
func coinWidth(c token.Coin) token.Size {
	width := token.Size(1)
	for c >= 10 {
		c /= 10
		width++
	}
	return width
}

func id(b byte) InputId {
	var out InputId
	out[0] = b
	return out
}

func asset(b byte) token.AssetId {
	var out token.AssetId
	out[0] = b
	return out
}
