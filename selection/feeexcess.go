package selection

import "github.com/Juneo-io/juneo-wallet-core/token"

// MinimizeFeeExcessForOutput assigns one-atom increments of excess to
// output's coin field for as long as doing so costs strictly less, in
// marginal output cost, than the excess remaining. It terminates the
// moment the next atom would cost more than is left, so either excess' is
// driven to zero or the final marginal cost is itself at least excess'.
//
// The conservation law this establishes:
//
//	(output'.Coin - output.Coin) + (costOfOutputCoin(output'.Coin) - costOfOutputCoin(output.Coin)) + excess' = excess
func MinimizeFeeExcessForOutput(params Params, excess token.Coin, output token.TokenBundle) (token.Coin, token.TokenBundle) {
	for excess > 0 {
		currentCost := params.costOfOutputCoin(output.Tokens, output.Coin)
		nextCost := params.costOfOutputCoin(output.Tokens, output.Coin+1)
		marginal := nextCost.Distance(currentCost)
		if marginal >= excess {
			break
		}
		output.Coin++
		excess -= 1 + marginal
	}
	return excess, output
}
