package storage

import (
	"sort"
	"sync"

	"github.com/Juneo-io/juneo-wallet-core/submission"
)

// MemStore is an in-process, map-backed Persistence implementation: the
// zero-dependency development backend and the backend every facade/unit
// test in this module runs against. A sync.RWMutex guards all state, and a
// separate mutex serializes Atomically bodies, so a body may call the
// store's own methods. There is no journal: Atomically does not undo writes
// that a failing body already made.
type MemStore struct {
	txMu        sync.Mutex
	mu          sync.RWMutex
	submissions map[WalletId]Submissions
	checkpoints map[WalletId][]Checkpoint
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		submissions: make(map[WalletId]Submissions),
		checkpoints: make(map[WalletId][]Checkpoint),
	}
}

func (m *MemStore) Atomically(body func() error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return body()
}

func (m *MemStore) ReadSubmissions(wallet WalletId) (Submissions, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot, ok := m.submissions[wallet]
	if !ok {
		return Submissions{Statuses: map[submission.TxId]submission.TxStatus{}}, nil
	}
	return snapshot, nil
}

func (m *MemStore) WriteSubmissions(wallet WalletId, snapshot Submissions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions[wallet] = snapshot
	return nil
}

func (m *MemStore) ReadCheckpoint(wallet WalletId, slot submission.Slot) (Checkpoint, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.checkpoints[wallet] {
		if c.Slot == slot {
			return c, true, nil
		}
	}
	return Checkpoint{}, false, nil
}

func (m *MemStore) PutCheckpoint(wallet WalletId, checkpoint Checkpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := m.checkpoints[wallet]
	for _, c := range existing {
		if c.Slot == checkpoint.Slot {
			return nil
		}
	}
	existing = append(existing, checkpoint)
	sort.Slice(existing, func(i, j int) bool { return existing[i].Slot < existing[j].Slot })
	m.checkpoints[wallet] = existing
	return nil
}

func (m *MemStore) ListCheckpoints(wallet WalletId) ([]Checkpoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Checkpoint, len(m.checkpoints[wallet]))
	copy(out, m.checkpoints[wallet])
	return out, nil
}

// RollbackTo resolves requested down to the latest checkpoint at or before
// it (falling back to requested itself when no earlier checkpoint exists,
// matching the specification's "possibly earlier than requested" slack),
// rewrites the wallet's submission store with submission.MoveTip{that
// slot}, persists the result, and returns the slot actually used.
func (m *MemStore) RollbackTo(wallet WalletId, requested submission.Slot) (submission.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	actual := requested
	haveCheckpoint := false
	for _, c := range m.checkpoints[wallet] {
		if c.Slot <= requested && (!haveCheckpoint || c.Slot > actual) {
			actual = c.Slot
			haveCheckpoint = true
		}
	}

	snapshot := m.submissions[wallet]
	if snapshot.Statuses == nil {
		snapshot.Statuses = map[submission.TxId]submission.TxStatus{}
	}
	store := snapshot.ToStore()
	store = submission.MoveTip{NewTip: actual}.Apply(store)
	m.submissions[wallet] = FromStore(store)
	return actual, nil
}
