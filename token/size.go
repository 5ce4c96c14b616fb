package token

// Size is the abstract additive monoid the selection engine measures
// selections and outputs in. The specification allows this to be an
// arbitrary monoid with a distance operation; this implementation picks the
// concrete representation the reference prose calls out explicitly
// ("concretely a non-negative integer"), which keeps the engine's hot path
// free of interface dispatch. Tests that want a toy size function can still
// substitute one freely, since Size is just a number and SizeOfOutput/
// SizeOfInput are ordinary functions in SelectionParameters.
type Size uint64

// Add returns s+other.
func (s Size) Add(other Size) Size {
	return s + other
}

// Distance returns |s-other|.
func (s Size) Distance(other Size) Size {
	if s > other {
		return s - other
	}
	return other - s
}

// SumSizes folds Add over sizes, starting from the zero Size.
func SumSizes(sizes []Size) Size {
	var total Size
	for _, s := range sizes {
		total += s
	}
	return total
}
