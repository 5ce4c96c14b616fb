// Package walletcore is the facade spec.md §2 calls out: it owns, per
// wallet, the current submission.Store snapshot and exposes the selection
// engine's operations, wiring both to a storage.Persistence collaborator,
// structured logging, and Prometheus metrics the way the teacher stack
// wires its own VM-level facades.
package walletcore

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/Juneo-io/juneo-wallet-core/metrics"
	"github.com/Juneo-io/juneo-wallet-core/selection"
	"github.com/Juneo-io/juneo-wallet-core/storage"
	"github.com/Juneo-io/juneo-wallet-core/submission"
	"github.com/Juneo-io/juneo-wallet-core/token"
)

// Wallet owns one submission.Store snapshot per wallet ID behind a
// per-wallet lock, realizing spec.md §5's "the submission store per wallet
// is owned by a single lock held by the facade." Snapshot reads never take
// that lock: they read an atomic.Pointer a writer last published, so
// concurrent readers and writers never block each other.
type Wallet struct {
	persistence storage.Persistence
	logger      *zap.Logger
	metrics     *metrics.Collectors

	mu        sync.Mutex // guards the mutexes map itself, not any wallet's store
	mutexes   map[storage.WalletId]*sync.Mutex
	snapshots map[storage.WalletId]*atomic.Pointer[submission.Store]
}

// New constructs a Wallet facade. logger and collectors may be nil: a nil
// logger means "log nothing", a nil *metrics.Collectors means "observe
// nothing" (every Collectors method is a nil-safe no-op).
func New(persistence storage.Persistence, logger *zap.Logger, collectors *metrics.Collectors) *Wallet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wallet{
		persistence: persistence,
		logger:      logger,
		metrics:     collectors,
		mutexes:     make(map[storage.WalletId]*sync.Mutex),
		snapshots:   make(map[storage.WalletId]*atomic.Pointer[submission.Store]),
	}
}

// WalletIds returns the set of wallet ids this facade has touched so far
// (loaded from persistence or mutated), for diagnostics.
func (w *Wallet) WalletIds() []storage.WalletId {
	w.mu.Lock()
	defer w.mu.Unlock()
	return maps.Keys(w.mutexes)
}

func (w *Wallet) lockFor(id storage.WalletId) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, ok := w.mutexes[id]
	if !ok {
		m = &sync.Mutex{}
		w.mutexes[id] = m
		w.snapshots[id] = new(atomic.Pointer[submission.Store])
	}
	return m
}

// Snapshot returns the most recently published store for id without
// blocking on the per-wallet lock. If id has never been touched, it is
// loaded from persistence (and cached) on first access.
func (w *Wallet) Snapshot(id storage.WalletId) (submission.Store, error) {
	w.lockFor(id) // ensures the pointer slot exists
	w.mu.Lock()
	ptr := w.snapshots[id]
	w.mu.Unlock()

	if cur := ptr.Load(); cur != nil {
		return *cur, nil
	}

	snapshot, err := w.persistence.ReadSubmissions(id)
	if err != nil {
		return submission.Store{}, wrap(KindPersistence, err)
	}
	store := snapshot.ToStore()
	ptr.CompareAndSwap(nil, &store)
	return *ptr.Load(), nil
}

func (w *Wallet) publish(id storage.WalletId, store submission.Store) error {
	if err := w.persistence.WriteSubmissions(id, storage.FromStore(store)); err != nil {
		return wrap(KindPersistence, err)
	}
	w.mu.Lock()
	ptr := w.snapshots[id]
	w.mu.Unlock()
	ptr.Store(&store)
	return nil
}

// ApplyPrimitive applies p to id's store under the wallet's lock, persists
// the resulting snapshot via Persistence.Atomically, logs the transition,
// and records a metric for the primitive kind.
func (w *Wallet) ApplyPrimitive(id storage.WalletId, p submission.Primitive) error {
	mu := w.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	before, err := w.Snapshot(id)
	if err != nil {
		return err
	}

	var after submission.Store
	txErr := w.persistence.Atomically(func() error {
		after = submission.ApplyPrimitive(before, p)
		return w.publish(id, after)
	})
	if txErr != nil {
		return txErr
	}

	w.metrics.ObservePrimitive(primitiveLabel(p))
	w.observeTransitions(p, before, after)
	w.logger.Debug("applied submission primitive",
		zap.String("wallet", string(id)),
		zap.String("primitive", primitiveLabel(p)),
		zap.Uint64("tip", uint64(after.Tip)),
		zap.Uint64("finality", uint64(after.Finality)),
	)

	if status := submission.CheckInvariant(after); !status.Holds {
		w.logger.DPanic("submission store invariant violated",
			zap.String("wallet", string(id)),
			zap.String("violation", status.Violation),
		)
		return wrap(KindInvariantViolation, errorf("submission store: %s", status.Violation))
	}
	return nil
}

// ApplyOperation runs a composite submission.Operation the same way
// ApplyPrimitive runs a single primitive.
func (w *Wallet) ApplyOperation(id storage.WalletId, op submission.Operation) (submission.Slot, error) {
	mu := w.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	before, err := w.Snapshot(id)
	if err != nil {
		return 0, err
	}

	var after submission.Store
	var effective submission.Slot
	txErr := w.persistence.Atomically(func() error {
		after, effective = submission.ApplyOperation(before, op)
		return w.publish(id, after)
	})
	if txErr != nil {
		return 0, txErr
	}

	w.logger.Debug("applied submission operation",
		zap.String("wallet", string(id)),
		zap.Uint64("effective_slot", uint64(effective)),
	)
	if status := submission.CheckInvariant(after); !status.Holds {
		w.logger.DPanic("submission store invariant violated after composite operation",
			zap.String("wallet", string(id)),
			zap.String("violation", status.Violation),
		)
		return effective, wrap(KindInvariantViolation, errorf("submission store: %s", status.Violation))
	}
	return effective, nil
}

// RollbackTo composes the facade's RollbackTo intent: it delegates the
// actual-slot resolution to the persistence collaborator (which owns
// checkpoints), per spec.md §6's rollbackTo contract, then reconciles the
// in-memory snapshot to match.
func (w *Wallet) RollbackTo(id storage.WalletId, requested submission.Slot) (submission.Slot, error) {
	mu := w.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	actual, err := w.persistence.RollbackTo(id, requested)
	if err != nil {
		return 0, wrap(KindPersistence, err)
	}

	snapshot, err := w.persistence.ReadSubmissions(id)
	if err != nil {
		return 0, wrap(KindPersistence, err)
	}
	store := snapshot.ToStore()

	w.mu.Lock()
	ptr := w.snapshots[id]
	w.mu.Unlock()
	ptr.Store(&store)

	w.logger.Debug("rolled back wallet",
		zap.String("wallet", string(id)),
		zap.Uint64("requested", uint64(requested)),
		zap.Uint64("actual", uint64(actual)),
	)
	return actual, nil
}

// observeTransitions diffs before and after to record the pruning and
// resurrection metrics spec.md §6 calls for: primitive application itself
// stays silent about which entries it touched, so the facade recovers that
// by comparing snapshots rather than threading counts through the pure
// submission package.
func (w *Wallet) observeTransitions(p submission.Primitive, before, after submission.Store) {
	beforeEntries := before.Entries()
	afterEntries := after.Entries()

	pruneReason := ""
	switch p.(type) {
	case submission.Forget:
		pruneReason = metrics.PruneReasonForget
	case submission.MoveFinality:
		pruneReason = metrics.PruneReasonFinality
	}
	if pruneReason != "" {
		pruned := 0
		for id := range beforeEntries {
			if _, ok := afterEntries[id]; !ok {
				pruned++
			}
		}
		w.metrics.ObservePruned(pruneReason, pruned)
	}

	if _, ok := p.(submission.MoveTip); !ok {
		return
	}
	fromLedger, fromExpired := 0, 0
	for id, afterStatus := range afterEntries {
		if _, isSub := afterStatus.(submission.InSubmission); !isSub {
			continue
		}
		switch beforeEntries[id].(type) {
		case submission.InLedger:
			fromLedger++
		case submission.Expired:
			fromExpired++
		}
	}
	w.metrics.ObserveResurrected(metrics.ResurrectedFromLedger, fromLedger)
	w.metrics.ObserveResurrected(metrics.ResurrectedFromExpired, fromExpired)
}

func primitiveLabel(p submission.Primitive) string {
	switch p.(type) {
	case submission.AddSubmission:
		return metrics.PrimitiveAdd
	case submission.MoveToLedger:
		return metrics.PrimitiveMoveToLedger
	case submission.MoveTip:
		return metrics.PrimitiveMoveTip
	case submission.MoveFinality:
		return metrics.PrimitiveMoveFinality
	case submission.Forget:
		return metrics.PrimitiveForget
	default:
		return "unknown"
	}
}

// Create, AddInputToExistingOutput, and AddInputToNewOutputWithoutReclaimingAda
// delegate straight to the selection package: the engine is pure and holds
// no wallet-specific state, so the facade's only job is translating its
// errors into the envelope type and recording an outcome metric.
func (w *Wallet) Create(params selection.Params, rewardWithdrawal token.Coin, inputs []selection.InputEntry) (selection.Selection, error) {
	sel, err := selection.Create(params, rewardWithdrawal, inputs)
	return w.observeSelection(sel, err)
}

func (w *Wallet) AddInputToExistingOutput(params selection.Params, s selection.Selection, entry selection.InputEntry) (selection.Selection, error) {
	sel, err := selection.AddInputToExistingOutput(params, s, entry)
	return w.observeSelection(sel, err)
}

func (w *Wallet) AddInputToNewOutputWithoutReclaimingAda(params selection.Params, s selection.Selection, entry selection.InputEntry) (selection.Selection, error) {
	sel, err := selection.AddInputToNewOutputWithoutReclaimingAda(params, s, entry)
	return w.observeSelection(sel, err)
}

func (w *Wallet) observeSelection(sel selection.Selection, err error) (selection.Selection, error) {
	if err == nil {
		w.metrics.ObserveSelectionOutcome(metrics.OutcomeOK)
		w.metrics.ObserveFeeExcess(uint64(sel.FeeExcess))
		w.metrics.ObserveOutputsCreated(len(sel.Outputs))
		return sel, nil
	}

	selErr, ok := err.(*selection.Error)
	if !ok {
		return sel, wrap(KindPersistence, err)
	}
	switch selErr.Kind {
	case selection.KindAdaInsufficient:
		w.metrics.ObserveSelectionOutcome(metrics.OutcomeAdaInsufficient)
		return sel, wrap(KindAdaInsufficient, selErr)
	case selection.KindSelectionFull:
		w.metrics.ObserveSelectionOutcome(metrics.OutcomeFull)
		return sel, wrap(KindSelectionFull, selErr)
	default:
		return sel, wrap(KindPersistence, selErr)
	}
}
