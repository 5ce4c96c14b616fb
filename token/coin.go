// Package token implements the value algebra shared by the selection
// engine: ada quantities, multi-asset token bundles, and the abstract size
// monoid used to bound transactions.
package token

import "fmt"

// Coin is a non-negative quantity of the ledger's native unit, in
// indivisible atoms.
type Coin uint64

// maxCoin is the saturation ceiling CheckedAdd and Add fall back to on
// overflow.
const maxCoin Coin = ^Coin(0)

// CheckedAdd returns a+b and true, or (maxCoin, false) if the sum would
// wrap a uint64 — the same overflow test used throughout the teacher
// stack's utils/math helpers (comparing the sum back against one operand).
func (a Coin) CheckedAdd(b Coin) (Coin, bool) {
	sum := a + b
	if sum < a {
		return maxCoin, false
	}
	return sum, true
}

// Add returns a+b, saturating at maxCoin instead of wrapping on overflow.
// Saturation is a backstop against a silently-wrong wrapped total; no
// caller in this module checks whether it happened.
func (a Coin) Add(b Coin) Coin {
	sum, ok := a.CheckedAdd(b)
	if !ok {
		return maxCoin
	}
	return sum
}

// SafeSub returns a-b, or false if the result would be negative.
func (a Coin) SafeSub(b Coin) (Coin, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// Distance returns |a-b|.
func (a Coin) Distance(b Coin) Coin {
	if a > b {
		return a - b
	}
	return b - a
}

func (a Coin) String() string {
	return fmt.Sprintf("%d", uint64(a))
}
