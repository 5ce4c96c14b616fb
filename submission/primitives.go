package submission

// Primitive is a pure function from one Store snapshot to the next. Every
// primitive is total: there are no error returns, and an invalid-looking
// primitive (e.g. AddSubmission with an already-expired slot) is a silent
// no-op rather than a failure, encoding the policy "stale intent, drop it".
type Primitive interface {
	Apply(Store) Store
}

// ApplyPrimitive runs p against s and returns the resulting snapshot.
func ApplyPrimitive(s Store, p Primitive) Store {
	return p.Apply(s)
}

// AddSubmission inserts Tx as InSubmission{Expiring, Tx}, unless Expiring is
// already at or before tip, or Tx's id is already tracked (in any status) —
// both cases leave the store unchanged. Per the specification's resolved
// open question, a duplicate id is a no-op regardless of the existing
// entry's status, including Expired.
type AddSubmission struct {
	Expiring Slot
	Tx       Tx
}

func (p AddSubmission) Apply(s Store) Store {
	if p.Expiring <= s.Tip {
		return s
	}
	id := p.Tx.TxId()
	if _, exists := s.Get(id); exists {
		return s
	}
	next := s.clone()
	next.setStatus(id, InSubmission{Expiring: p.Expiring, Tx: p.Tx})
	return next
}

// MoveToLedger transitions an existing InSubmission entry for Tx's id to
// InLedger, gated on tip < Acceptance <= its Expiring. Any other current
// status (absent, InLedger, Expired), or an Acceptance outside that window,
// leaves the store unchanged.
type MoveToLedger struct {
	Acceptance Slot
	Tx         Tx
}

func (p MoveToLedger) Apply(s Store) Store {
	id := p.Tx.TxId()
	current, exists := s.Get(id)
	if !exists {
		return s
	}
	sub, ok := current.(InSubmission)
	if !ok {
		return s
	}
	if !(s.Tip < p.Acceptance && p.Acceptance <= sub.Expiring) {
		return s
	}
	next := s.clone()
	next.setStatus(id, InLedger{Expiring: sub.Expiring, Acceptance: p.Acceptance, Tx: sub.Tx})
	return next
}

// MoveTip sets tip unconditionally, clamps finality down to at most the new
// tip, and rewrites every status whose slot fields now disagree with the
// new tip: an InLedger entry whose acceptance now lies in the future of tip
// resurrects to InSubmission (rollback), an InSubmission entry whose expiry
// has now been reached becomes Expired, and an Expired entry whose expiry
// now lies in the future of tip un-expires back to InSubmission.
type MoveTip struct {
	NewTip Slot
}

func (p MoveTip) Apply(s Store) Store {
	next := s.clone()
	next.Tip = p.NewTip
	if next.Finality > next.Tip {
		next.Finality = next.Tip
	}

	type rewrite struct {
		id     TxId
		status TxStatus
	}
	var rewrites []rewrite
	next.ascend(func(id TxId, status TxStatus) bool {
		switch st := status.(type) {
		case InLedger:
			if st.Acceptance > p.NewTip {
				rewrites = append(rewrites, rewrite{id, InSubmission{Expiring: st.Expiring, Tx: st.Tx}})
			}
		case InSubmission:
			if st.Expiring <= p.NewTip {
				rewrites = append(rewrites, rewrite{id, Expired{Expiring: st.Expiring, Tx: st.Tx}})
			}
		case Expired:
			if st.Expiring > p.NewTip {
				rewrites = append(rewrites, rewrite{id, InSubmission{Expiring: st.Expiring, Tx: st.Tx}})
			}
		}
		return true
	})
	for _, r := range rewrites {
		next.setStatus(r.id, r.status)
	}
	return next
}

// MoveFinality clamps NewFinality to [finality, tip], then prunes every
// InLedger entry whose acceptance and every Expired entry whose expiry now
// falls at or below the clamped finality. InSubmission entries are never
// pruned by finality advancement.
type MoveFinality struct {
	NewFinality Slot
}

func (p MoveFinality) Apply(s Store) Store {
	newFinality := p.NewFinality
	if newFinality < s.Finality {
		newFinality = s.Finality
	}
	if newFinality > s.Tip {
		newFinality = s.Tip
	}

	next := s.clone()
	next.Finality = newFinality

	var toDelete []TxId
	next.ascend(func(id TxId, status TxStatus) bool {
		switch st := status.(type) {
		case InLedger:
			if st.Acceptance <= newFinality {
				toDelete = append(toDelete, id)
			}
		case Expired:
			if st.Expiring <= newFinality {
				toDelete = append(toDelete, id)
			}
		}
		return true
	})
	for _, id := range toDelete {
		next.deleteStatus(id)
	}
	return next
}

// Forget unconditionally deletes Tx's id, regardless of its current status.
type Forget struct {
	Tx Tx
}

func (p Forget) Apply(s Store) Store {
	next := s.clone()
	next.deleteStatus(p.Tx.TxId())
	return next
}
