package submission

import "github.com/google/btree"

// txEntry is the ordered-map element the backing B-tree stores, ordered by
// ID so the store iterates transactions deterministically.
type txEntry struct {
	ID     TxId
	Status TxStatus
}

func txEntryLess(a, b txEntry) bool {
	return a.ID.Compare(b.ID) < 0
}

// degree is the B-tree branching factor; the store is small (one per
// wallet, holding recently-submitted transactions) so this is not
// performance-sensitive.
const degree = 32

// Store is the per-wallet submission store: finality and tip slots plus the
// transactions map. Store is a value type backed by a copy-on-write
// B-tree (google/btree), so cloning a Store for a new snapshot is O(1) and
// concurrent readers of an old snapshot are unaffected by mutations to a
// new one, matching the "copy-on-write is acceptable" design note.
type Store struct {
	Finality     Slot
	Tip          Slot
	transactions *btree.BTreeG[txEntry]
}

// NewStore returns an empty store with tip = finality = the slot minimum.
func NewStore() Store {
	return Store{transactions: btree.NewG(degree, txEntryLess)}
}

// FromEntries rebuilds a Store from a flat snapshot, as read back from a
// storage.Persistence implementation's readSubmissions.
func FromEntries(tip, finality Slot, entries map[TxId]TxStatus) Store {
	s := NewStore()
	s.Tip = tip
	s.Finality = finality
	for id, status := range entries {
		s.transactions.ReplaceOrInsert(txEntry{ID: id, Status: status})
	}
	return s
}

// Entries flattens the store's transactions into a plain map, as
// storage.Persistence.writeSubmissions needs for a full-replacement write.
func (s Store) Entries() map[TxId]TxStatus {
	out := make(map[TxId]TxStatus, s.Len())
	s.transactions.Ascend(func(e txEntry) bool {
		out[e.ID] = e.Status
		return true
	})
	return out
}

// Len returns the number of transactions currently tracked.
func (s Store) Len() int {
	if s.transactions == nil {
		return 0
	}
	return s.transactions.Len()
}

// Get returns the status of id, if the store tracks it.
func (s Store) Get(id TxId) (TxStatus, bool) {
	if s.transactions == nil {
		return nil, false
	}
	e, ok := s.transactions.Get(txEntry{ID: id})
	if !ok {
		return nil, false
	}
	return e.Status, true
}

// clone returns a store sharing no mutable state with s: mutating the
// clone's tree never affects s's, and vice versa, courtesy of the
// underlying B-tree's copy-on-write semantics.
func (s Store) clone() Store {
	next := s
	next.transactions = s.transactions.Clone()
	return next
}

func (s Store) setStatus(id TxId, status TxStatus) {
	s.transactions.ReplaceOrInsert(txEntry{ID: id, Status: status})
}

func (s Store) deleteStatus(id TxId) {
	s.transactions.Delete(txEntry{ID: id})
}

// ascend iterates every entry in TxId order, stopping early if fn returns
// false.
func (s Store) ascend(fn func(TxId, TxStatus) bool) {
	if s.transactions == nil {
		return
	}
	s.transactions.Ascend(func(e txEntry) bool {
		return fn(e.ID, e.Status)
	})
}
