// Package storage implements the persistence collaborator the walletcore
// facade consumes: the abstract operations interface plus two concrete
// backends, an in-memory reference store and a goleveldb-backed journaled
// store.
package storage

import "github.com/Juneo-io/juneo-wallet-core/submission"

// WalletId identifies one wallet's submission store and checkpoint history.
type WalletId string

// Submissions is the flat, wire-shaped snapshot of a submission.Store that
// readSubmissions/writeSubmissions exchange with the facade: the store's
// tip, finality, and the transactions map, without the B-tree machinery.
type Submissions struct {
	Tip      submission.Slot
	Finality submission.Slot
	Statuses map[submission.TxId]submission.TxStatus
}

// FromStore flattens a submission.Store into its wire-shaped snapshot.
func FromStore(s submission.Store) Submissions {
	return Submissions{Tip: s.Tip, Finality: s.Finality, Statuses: s.Entries()}
}

// ToStore rebuilds a submission.Store from a snapshot.
func (s Submissions) ToStore() submission.Store {
	return submission.FromEntries(s.Tip, s.Finality, s.Statuses)
}

// Checkpoint is a named point in a wallet's slot history a rollback target
// can later resolve against, persisted by putCheckpoint/listCheckpoints.
type Checkpoint struct {
	Slot submission.Slot
}

//go:generate mockgen -destination=mocks/persistence_mock.go -package=mocks github.com/Juneo-io/juneo-wallet-core/storage Persistence

// Persistence is the abstract operations interface spec.md §6 describes:
// atomically, readSubmissions, writeSubmissions, readCheckpoint,
// putCheckpoint, listCheckpoints, rollbackTo. Nothing about it is specific
// to one backend; MemStore and LevelStore both satisfy it.
type Persistence interface {
	// Atomically runs body with other Atomically calls on the same backend
	// excluded. Neither MemStore nor LevelStore undoes writes that body made
	// before returning an error: each write method commits on its own.
	Atomically(body func() error) error

	ReadSubmissions(wallet WalletId) (Submissions, error)
	// WriteSubmissions is a full replacement of wallet's submissions.
	WriteSubmissions(wallet WalletId, snapshot Submissions) error

	ReadCheckpoint(wallet WalletId, slot submission.Slot) (Checkpoint, bool, error)
	PutCheckpoint(wallet WalletId, checkpoint Checkpoint) error
	ListCheckpoints(wallet WalletId) ([]Checkpoint, error)

	// RollbackTo must return the slot it actually rolled back to (which may
	// be earlier than requested, e.g. if no exact checkpoint exists) and
	// must itself drive the wallet's store with submission.MoveTip{that
	// slot} before returning.
	RollbackTo(wallet WalletId, requested submission.Slot) (submission.Slot, error)
}
