package token

import "sort"

// TokenMap is a finite mapping from AssetId to TokenQuantity. Keys with a
// zero quantity are never stored: every method here maintains that
// invariant, so len(m) is always the true count of distinct held assets.
type TokenMap map[AssetId]TokenQuantity

// NewTokenMap returns an empty map.
func NewTokenMap() TokenMap {
	return make(TokenMap)
}

// Clone returns a shallow copy (TokenQuantity is a value type, so this is a
// full copy).
func (m TokenMap) Clone() TokenMap {
	out := make(TokenMap, len(m))
	for id, qty := range m {
		out[id] = qty
	}
	return out
}

// Get returns the quantity held for id, or zero if absent.
func (m TokenMap) Get(id AssetId) TokenQuantity {
	return m[id]
}

// set stores qty under id, deleting the key instead if qty is zero so the
// zero-quantity-keys-absent invariant holds.
func (m TokenMap) set(id AssetId, qty TokenQuantity) {
	if qty == 0 {
		delete(m, id)
		return
	}
	m[id] = qty
}

// Add returns a new map holding the asset-wise sum of m and other. Neither
// input is mutated.
func (m TokenMap) Add(other TokenMap) TokenMap {
	out := m.Clone()
	for id, qty := range other {
		out.set(id, out.Get(id).Add(qty))
	}
	return out
}

// SafeSub returns a new map holding the asset-wise difference m-other, or
// false if any asset in other exceeds m's holding of it (bounded
// subtraction, per the TokenBundle algebra).
func (m TokenMap) SafeSub(other TokenMap) (TokenMap, bool) {
	out := m.Clone()
	for id, qty := range other {
		reduced, ok := out.Get(id).SafeSub(qty)
		if !ok {
			return nil, false
		}
		out.set(id, reduced)
	}
	return out, true
}

// Equal reports whether m and other hold exactly the same assets in exactly
// the same quantities.
func (m TokenMap) Equal(other TokenMap) bool {
	if len(m) != len(other) {
		return false
	}
	for id, qty := range m {
		if other.Get(id) != qty {
			return false
		}
	}
	return true
}

// IsZero reports whether m holds no assets at all.
func (m TokenMap) IsZero() bool {
	return len(m) == 0
}

// AssetIds returns the held asset ids in ascending AssetId order, giving
// callers (notably the selection engine's greedy passes) a deterministic
// iteration order independent of Go's randomized map iteration.
func (m TokenMap) AssetIds() []AssetId {
	ids := make([]AssetId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Compare(ids[j]) < 0
	})
	return ids
}

// MaxQuantity returns the largest single-asset quantity held, and whether
// the map holds any asset at all.
func (m TokenMap) MaxQuantity() (TokenQuantity, bool) {
	var max TokenQuantity
	found := false
	for _, qty := range m {
		if !found || qty > max {
			max = qty
			found = true
		}
	}
	return max, found
}
