package token

// TokenBundle is the ada quantity and multi-asset token holding carried by a
// single input or output. The zero value is the empty bundle, the monoid
// identity for Add.
type TokenBundle struct {
	Coin   Coin
	Tokens TokenMap
}

// Bundle constructs a TokenBundle, defensively cloning tokens so the
// returned value does not alias the caller's map.
func Bundle(coin Coin, tokens TokenMap) TokenBundle {
	if tokens == nil {
		tokens = NewTokenMap()
	}
	return TokenBundle{Coin: coin, Tokens: tokens.Clone()}
}

// CoinOnly constructs a TokenBundle carrying only ada.
func CoinOnly(coin Coin) TokenBundle {
	return TokenBundle{Coin: coin, Tokens: NewTokenMap()}
}

// Add returns the componentwise sum of b and other: associative, with
// TokenBundle{} as identity.
func (b TokenBundle) Add(other TokenBundle) TokenBundle {
	return TokenBundle{
		Coin:   b.Coin.Add(other.Coin),
		Tokens: b.Tokens.Add(other.Tokens),
	}
}

// SafeSub returns b-other, or false if either the coin or any asset
// quantity in other exceeds b's holding (bounded subtraction).
func (b TokenBundle) SafeSub(other TokenBundle) (TokenBundle, bool) {
	coin, ok := b.Coin.SafeSub(other.Coin)
	if !ok {
		return TokenBundle{}, false
	}
	tokens, ok := b.Tokens.SafeSub(other.Tokens)
	if !ok {
		return TokenBundle{}, false
	}
	return TokenBundle{Coin: coin, Tokens: tokens}, true
}

// Equal reports whether b and other hold the same coin and the same
// assets.
func (b TokenBundle) Equal(other TokenBundle) bool {
	return b.Coin == other.Coin && b.Tokens.Equal(other.Tokens)
}

// WithCoin returns a copy of b with the coin field replaced, following the
// lens-style "record with updated field" idiom this package uses in place
// of the source's field lenses.
func (b TokenBundle) WithCoin(coin Coin) TokenBundle {
	return TokenBundle{Coin: coin, Tokens: b.Tokens}
}

// Sum folds Add over a non-empty slice of bundles.
func Sum(bundles []TokenBundle) TokenBundle {
	total := TokenBundle{Tokens: NewTokenMap()}
	for _, b := range bundles {
		total = total.Add(b)
	}
	return total
}

// AssetCount returns the number of distinct non-ada assets held.
func (b TokenBundle) AssetCount() int {
	return len(b.Tokens)
}

// ExceedsQuantityCap reports whether any single asset in b exceeds max.
func (b TokenBundle) ExceedsQuantityCap(max TokenQuantity) bool {
	biggest, ok := b.Tokens.MaxQuantity()
	return ok && biggest > max
}
