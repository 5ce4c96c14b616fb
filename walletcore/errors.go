package walletcore

import (
	"github.com/cockroachdb/errors"
)

// Kind distinguishes the ways a facade call can fail. Every error this
// package returns is wrapped into a single Error envelope carrying one of
// these, per spec.md §7's "the facade wraps them into a single envelope
// type per entry point."
type Kind int

const (
	// KindAdaInsufficient mirrors selection.KindAdaInsufficient: reported,
	// never retried, informational only.
	KindAdaInsufficient Kind = iota
	// KindSelectionFull mirrors selection.KindSelectionFull.
	KindSelectionFull
	// KindInvariantViolation means checkInvariant found a bug in this
	// module, not a user error. It is the only Kind constructed with a
	// captured stack trace, via cockroachdb/errors.
	KindInvariantViolation
	// KindPersistence wraps a failure from the storage.Persistence
	// collaborator (disk I/O, codec errors, and the like).
	KindPersistence
)

// Error is the envelope every walletcore entry point returns on failure.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func wrap(kind Kind, cause error) *Error {
	if kind == KindInvariantViolation {
		cause = errors.WithStack(cause)
	}
	return &Error{Kind: kind, cause: cause}
}

func errorf(format string, args ...any) error {
	return errors.Newf(format, args...)
}
