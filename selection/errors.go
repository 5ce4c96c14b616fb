package selection

import (
	"fmt"

	"github.com/Juneo-io/juneo-wallet-core/token"
)

// ErrorKind distinguishes the two ways a selection attempt can fail.
// Neither is retried or logged by this package: both are reported to the
// caller as values, per the facade's error-handling design.
type ErrorKind int

const (
	// KindAdaInsufficient means the ada supplied by inputs and the reward
	// withdrawal is strictly less than what any feasible output
	// arrangement requires, after fees and per-output minimum ada. This is
	// informational: the caller decides whether to add more inputs.
	KindAdaInsufficient ErrorKind = iota
	// KindSelectionFull means the minimal feasible arrangement exceeds
	// MaximumSizeOfSelection. SizeMaximum and SizeRequired are populated so
	// the caller can surface a diagnosable error.
	KindSelectionFull
)

// Error is the failure value returned by every selection operation in this
// package.
type Error struct {
	Kind         ErrorKind
	SizeMaximum  token.Size
	SizeRequired token.Size
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAdaInsufficient:
		return "selection: ada insufficient"
	case KindSelectionFull:
		return fmt.Sprintf("selection: full (maximum size %d, required %d)", e.SizeMaximum, e.SizeRequired)
	default:
		return "selection: unknown error"
	}
}

func errAdaInsufficient() *Error {
	return &Error{Kind: KindAdaInsufficient}
}

func errSelectionFull(maximum, required token.Size) *Error {
	return &Error{Kind: KindSelectionFull, SizeMaximum: maximum, SizeRequired: required}
}
