package token

import "github.com/mr-tron/base58"

// AssetId is an opaque identifier for a native asset: conceptually a policy
// id paired with an asset name, collapsed here to a fixed-size, comparable
// array so it can be used directly as a map key. Construction of the byte
// layout (policy || name hashing, etc.) belongs to the excluded ledger-codec
// layer; this package only needs the id to be ordered and comparable.
type AssetId [32]byte

// Compare returns -1, 0, or 1, giving AssetId a total order usable for
// deterministic iteration (selection tie-breaking never depends on map
// iteration order).
func (a AssetId) Compare(b AssetId) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (a AssetId) String() string {
	return base58.Encode(a[:])
}

// TokenQuantity is a non-negative quantity of a single native asset.
type TokenQuantity uint64

// maxTokenQuantity is the saturation ceiling CheckedAdd and Add fall back
// to on overflow.
const maxTokenQuantity TokenQuantity = ^TokenQuantity(0)

// CheckedAdd returns a+b and true, or (maxTokenQuantity, false) if the sum
// would wrap a uint64, mirroring Coin.CheckedAdd.
func (a TokenQuantity) CheckedAdd(b TokenQuantity) (TokenQuantity, bool) {
	sum := a + b
	if sum < a {
		return maxTokenQuantity, false
	}
	return sum, true
}

// Add returns a+b, saturating at maxTokenQuantity instead of wrapping on
// overflow. As with Coin.Add, this is a backstop that no caller checks.
func (a TokenQuantity) Add(b TokenQuantity) TokenQuantity {
	sum, ok := a.CheckedAdd(b)
	if !ok {
		return maxTokenQuantity
	}
	return sum
}

// SafeSub returns a-b, or false if the result would be negative.
func (a TokenQuantity) SafeSub(b TokenQuantity) (TokenQuantity, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}
