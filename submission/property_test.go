package submission

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// stepKind selects which primitive a fuzzed program step applies.
type stepKind uint64

const (
	stepAdd stepKind = iota
	stepLedger
	stepTip
	stepFinality
	stepForget
	stepKindCount
)

// stepFromSeed deterministically derives a primitive application from one
// pseudo-random uint64, reusing a small, fixed pool of transaction ids so
// that later steps have a chance of acting on earlier ones (addition,
// ledger-acceptance, rollback, and pruning all need to interact with the
// same id to be exercised).
func stepFromSeed(seed uint64) Primitive {
	kind := stepKind(seed % uint64(stepKindCount))
	slot := Slot((seed / uint64(stepKindCount)) % 200)
	txIdx := byte((seed / uint64(stepKindCount) / 200) % 4)
	T := tx(txIdx)

	switch kind {
	case stepAdd:
		return AddSubmission{Expiring: slot, Tx: T}
	case stepLedger:
		return MoveToLedger{Acceptance: slot, Tx: T}
	case stepTip:
		return MoveTip{NewTip: slot}
	case stepFinality:
		return MoveFinality{NewFinality: slot}
	default:
		return Forget{Tx: T}
	}
}

// TestPropertyInvariantPreservation is property 7: after any primitive
// application, starting from any reachable store, the store's invariants
// still hold.
func TestPropertyInvariantPreservation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every primitive preserves the store invariant", prop.ForAll(
		func(seeds []uint64) bool {
			s := NewStore()
			for _, seed := range seeds {
				s = ApplyPrimitive(s, stepFromSeed(seed))
				if !CheckInvariant(s).Holds {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(40, gen.UInt64Range(0, 1<<32)),
	))

	properties.TestingRun(t)
}

// TestPropertyStaleAddIsIdempotent is property 8: AddSubmission with
// expiring <= tip, or whose id is already tracked, never changes the store.
func TestPropertyStaleAddIsIdempotent(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("stale or duplicate AddSubmission is a no-op", prop.ForAll(
		func(tip uint64, staleDelta uint64) bool {
			s := NewStore()
			s = MoveTip{NewTip: Slot(tip)}.Apply(s)

			T := tx(1)
			expiring := Slot(tip) - Slot(staleDelta%(tip+1)) // <= tip
			before := s.Entries()
			after := AddSubmission{Expiring: expiring, Tx: T}.Apply(s)
			if len(after.Entries()) != len(before) {
				return false
			}
			for id, st := range before {
				if after.Entries()[id] != st {
					return false
				}
			}

			// now the duplicate-id branch: insert T for real, then try again
			// with a fresh, valid expiring slot.
			live := AddSubmission{Expiring: Slot(tip) + 1, Tx: T}.Apply(s)
			beforeDup := live.Entries()
			afterDup := AddSubmission{Expiring: Slot(tip) + 100, Tx: T}.Apply(live)
			if len(afterDup.Entries()) != len(beforeDup) {
				return false
			}
			status, _ := afterDup.Get(T.TxId())
			return status == beforeDup[T.TxId()]
		},
		gen.UInt64Range(1, 500),
		gen.UInt64Range(0, 500),
	))

	properties.TestingRun(t)
}

// TestPropertyRollbackReversibility is property 9: MoveTip{t1} then
// MoveTip{t0}, t0 < t1, restores an entry that crossed t0 back to
// InSubmission. Only the InLedger case is exercised here.
func TestPropertyRollbackReversibility(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("rolling tip back below an entry's crossing slot resurrects it", prop.ForAll(
		func(t0, gap uint64) bool {
			t1 := t0 + gap + 1 // t1 > t0

			T := tx(1)
			expiring := Slot(t1) + 10
			acceptance := Slot(t0) + 1 // t0 < acceptance <= t1 whenever gap >= 0

			s := NewStore()
			s = AddSubmission{Expiring: expiring, Tx: T}.Apply(s)
			s = MoveTip{NewTip: Slot(t0)}.Apply(s)
			s = MoveToLedger{Acceptance: acceptance, Tx: T}.Apply(s)
			status, ok := s.Get(T.TxId())
			if !ok {
				return true // acceptance window missed for this seed; nothing to check
			}
			if _, isLedger := status.(InLedger); !isLedger {
				return true
			}

			s = MoveTip{NewTip: Slot(t1)}.Apply(s)
			s = MoveTip{NewTip: Slot(t0)}.Apply(s)

			final, ok := s.Get(T.TxId())
			if !ok {
				return false
			}
			sub, isSub := final.(InSubmission)
			return isSub && sub.Expiring == expiring
		},
		gen.UInt64Range(0, 300),
		gen.UInt64Range(0, 300),
	))

	properties.TestingRun(t)
}

// TestPropertyFinalityMonotonicityAndPruning is property 10: after
// MoveFinality{f}, no InLedger/Expired entry at or below min(f, tip)
// remains, and finality only increases.
func TestPropertyFinalityMonotonicityAndPruning(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("MoveFinality prunes ledger/expired entries and never decreases finality", prop.ForAll(
		func(tip, newFinality uint64) bool {
			A, B := tx(1), tx(2)
			s := FromEntries(Slot(tip), 0, map[TxId]TxStatus{
				A.TxId(): InLedger{Expiring: Slot(tip) + 50, Acceptance: Slot(tip) / 2, Tx: A},
				B.TxId(): InSubmission{Expiring: Slot(tip) + 50, Tx: B},
			})

			before := s.Finality
			s = MoveFinality{NewFinality: Slot(newFinality)}.Apply(s)
			if s.Finality < before {
				return false
			}

			clamp := s.Finality
			var violated bool
			s.ascend(func(id TxId, status TxStatus) bool {
				switch st := status.(type) {
				case InLedger:
					if st.Acceptance <= clamp {
						violated = true
						return false
					}
				case Expired:
					if st.Expiring <= clamp {
						violated = true
						return false
					}
				}
				return true
			})
			if violated {
				return false
			}

			// InSubmission B must never be pruned by finality alone.
			_, ok := s.Get(B.TxId())
			return ok
		},
		gen.UInt64Range(0, 500),
		gen.UInt64Range(0, 500),
	))

	properties.TestingRun(t)
}
