package selection

import (
	"github.com/mr-tron/base58"

	"github.com/Juneo-io/juneo-wallet-core/token"
)

// InputId opaquely identifies a spendable wallet input (a UTxO reference).
// Its internal layout — transaction id plus output index, in the source
// ledger — is outside this package's concern; only comparability and a
// stable ordering matter here.
type InputId [32]byte

func (id InputId) String() string {
	return base58.Encode(id[:])
}

// InputEntry pairs an input's identity with the value it carries.
type InputEntry struct {
	ID     InputId
	Bundle token.TokenBundle
}

// Selection is the immutable result of packing a non-empty set of inputs
// into a non-empty set of outputs. Every exported constructor and mutator
// in this package returns a fresh Selection rather than mutating one in
// place.
type Selection struct {
	Inputs           []InputEntry
	Outputs          []token.TokenBundle
	FeeExcess        token.Coin
	RewardWithdrawal token.Coin
	Size             token.Size
}

// clone returns a deep-enough copy of s that mutating the returned value's
// slices cannot affect s.
func (s Selection) clone() Selection {
	inputs := make([]InputEntry, len(s.Inputs))
	copy(inputs, s.Inputs)
	outputs := make([]token.TokenBundle, len(s.Outputs))
	copy(outputs, s.Outputs)
	out := s
	out.Inputs = inputs
	out.Outputs = outputs
	return out
}

// TotalInputValue returns the sum of every input's bundle.
func (s Selection) TotalInputValue() token.TokenBundle {
	bundles := make([]token.TokenBundle, len(s.Inputs))
	for i, entry := range s.Inputs {
		bundles[i] = entry.Bundle
	}
	return token.Sum(bundles)
}

// TotalOutputValue returns the sum of every output.
func (s Selection) TotalOutputValue() token.TokenBundle {
	return token.Sum(s.Outputs)
}

// hasInput reports whether id already appears among s.Inputs.
func (s Selection) hasInput(id InputId) bool {
	for _, entry := range s.Inputs {
		if entry.ID == id {
			return true
		}
	}
	return false
}
