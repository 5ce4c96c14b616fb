package submission

// Operation is a composite intent built from one or more primitives plus
// the consistency fix-up guaranteeing store invariants hold afterward. The
// specification calls this layer applyOperation; RollbackToOp is currently
// its only inhabitant.
type Operation interface {
	apply(Store) (Store, Slot)
}

// RollbackToOp rolls tip back to at most Target. It is exactly MoveTip
// today (the consistency fix-up MoveTip already performs — resurrecting
// InLedger/Expired entries and re-expiring InSubmission ones — is itself
// sufficient to restore every store invariant), but is kept as its own
// Operation so ApplyOperation has a named composite that reports the slot
// it rolled back to. The storage backends' RollbackTo and
// walletcore.Wallet.RollbackTo do not go through it; they apply MoveTip
// directly.
type RollbackToOp struct {
	Target Slot
}

func (o RollbackToOp) apply(s Store) (Store, Slot) {
	next := MoveTip{NewTip: o.Target}.Apply(s)
	return next, o.Target
}

// ApplyOperation runs op against s and returns the resulting store together
// with the slot op reports as its effective rollback point.
func ApplyOperation(s Store, op Operation) (Store, Slot) {
	return op.apply(s)
}

// RollbackTo is a convenience wrapper over ApplyOperation for the common
// case: MoveTip{slot} composed with its mandatory consistency fix-ups.
func RollbackTo(s Store, target Slot) (Store, Slot) {
	return ApplyOperation(s, RollbackToOp{Target: target})
}
