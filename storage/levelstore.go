package storage

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/Juneo-io/juneo-wallet-core/submission"
)

// storedTx is the persisted stand-in for submission.Tx: this package has no
// business reconstructing a real transaction body (that codec is the
// excluded ledger layer's job, per the specification's non-goals), so only
// the id round-trips through the database. Any caller that needs the full
// transaction back keeps its own index from TxId to the real Tx value.
type storedTx struct {
	ID submission.TxId
}

func (t storedTx) TxId() submission.TxId { return t.ID }

// statusKind tags which TxStatus case a gob-encoded record holds, since gob
// cannot decode into an interface without knowing the concrete type ahead
// of time.
type statusKind uint8

const (
	kindInSubmission statusKind = iota
	kindInLedger
	kindExpired
)

type statusRecord struct {
	Kind       statusKind
	Expiring   submission.Slot
	Acceptance submission.Slot
	TxId       submission.TxId
}

func encodeStatus(status submission.TxStatus) statusRecord {
	switch st := status.(type) {
	case submission.InSubmission:
		return statusRecord{Kind: kindInSubmission, Expiring: st.Expiring, TxId: st.Tx.TxId()}
	case submission.InLedger:
		return statusRecord{Kind: kindInLedger, Expiring: st.Expiring, Acceptance: st.Acceptance, TxId: st.Tx.TxId()}
	case submission.Expired:
		return statusRecord{Kind: kindExpired, Expiring: st.Expiring, TxId: st.Tx.TxId()}
	default:
		panic(fmt.Sprintf("storage: unknown TxStatus case %T", status))
	}
}

func decodeStatus(r statusRecord) submission.TxStatus {
	t := storedTx{ID: r.TxId}
	switch r.Kind {
	case kindInSubmission:
		return submission.InSubmission{Expiring: r.Expiring, Tx: t}
	case kindInLedger:
		return submission.InLedger{Expiring: r.Expiring, Acceptance: r.Acceptance, Tx: t}
	case kindExpired:
		return submission.Expired{Expiring: r.Expiring, Tx: t}
	default:
		panic(fmt.Sprintf("storage: unknown statusKind %d", r.Kind))
	}
}

// LevelStore is the journaled, embedded-KV-backed Persistence
// implementation, using the same leveldb engine the teacher stack embeds
// for its own node databases. A wallet's submissions are written as one
// leveldb.Batch per WriteSubmissions call, so a crash between batch writes
// never leaves half a wallet's transactions updated: the batch either lands
// in leveldb's own write-ahead log entirely, or not at all.
type LevelStore struct {
	db *leveldb.DB
	mu sync.Mutex
}

// OpenLevelStore opens (creating if absent) a goleveldb database at path.
func OpenLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelStore{db: db}, nil
}

func (l *LevelStore) Close() error {
	return l.db.Close()
}

func submissionsPrefix(wallet WalletId) []byte {
	return []byte(fmt.Sprintf("sub/%s/", wallet))
}

func metaKey(wallet WalletId) []byte {
	return []byte(fmt.Sprintf("meta/%s", wallet))
}

func checkpointPrefix(wallet WalletId) []byte {
	return []byte(fmt.Sprintf("chk/%s/", wallet))
}

func checkpointKey(wallet WalletId, slot submission.Slot) []byte {
	key := checkpointPrefix(wallet)
	slotBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(slotBytes, uint64(slot))
	return append(key, slotBytes...)
}

type meta struct {
	Tip      submission.Slot
	Finality submission.Slot
}

// Atomically serializes callers with a plain mutex: every method below
// already commits through a single leveldb.Batch/Write call, so the mutex
// only needs to prevent two bodies from racing on the same keys, not to
// provide the durability guarantee itself (goleveldb's write-ahead log
// does that).
func (l *LevelStore) Atomically(body func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return body()
}

func (l *LevelStore) ReadSubmissions(wallet WalletId) (Submissions, error) {
	statuses := make(map[submission.TxId]submission.TxStatus)
	iter := l.db.NewIterator(util.BytesPrefix(submissionsPrefix(wallet)), nil)
	defer iter.Release()
	for iter.Next() {
		var rec statusRecord
		if err := gob.NewDecoder(bytes.NewReader(iter.Value())).Decode(&rec); err != nil {
			return Submissions{}, err
		}
		statuses[rec.TxId] = decodeStatus(rec)
	}
	if err := iter.Error(); err != nil {
		return Submissions{}, err
	}

	m, err := l.readMeta(wallet)
	if err != nil {
		return Submissions{}, err
	}
	return Submissions{Tip: m.Tip, Finality: m.Finality, Statuses: statuses}, nil
}

func (l *LevelStore) readMeta(wallet WalletId) (meta, error) {
	raw, err := l.db.Get(metaKey(wallet), nil)
	if err == leveldb.ErrNotFound {
		return meta{}, nil
	}
	if err != nil {
		return meta{}, err
	}
	var m meta
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&m); err != nil {
		return meta{}, err
	}
	return m, nil
}

// WriteSubmissions replaces wallet's entire submission set: every existing
// key under its prefix is deleted and every entry in snapshot is written,
// all inside one batch, so a reader never observes a mix of old and new
// entries.
func (l *LevelStore) WriteSubmissions(wallet WalletId, snapshot Submissions) error {
	batch := new(leveldb.Batch)

	iter := l.db.NewIterator(util.BytesPrefix(submissionsPrefix(wallet)), nil)
	for iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		batch.Delete(key)
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}

	prefix := submissionsPrefix(wallet)
	for id, status := range snapshot.Statuses {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(encodeStatus(status)); err != nil {
			return err
		}
		batch.Put(append(append([]byte{}, prefix...), id[:]...), buf.Bytes())
	}

	var metaBuf bytes.Buffer
	if err := gob.NewEncoder(&metaBuf).Encode(meta{Tip: snapshot.Tip, Finality: snapshot.Finality}); err != nil {
		return err
	}
	batch.Put(metaKey(wallet), metaBuf.Bytes())

	return l.db.Write(batch, nil)
}

func (l *LevelStore) ReadCheckpoint(wallet WalletId, slot submission.Slot) (Checkpoint, bool, error) {
	_, err := l.db.Get(checkpointKey(wallet, slot), nil)
	if err == leveldb.ErrNotFound {
		return Checkpoint{}, false, nil
	}
	if err != nil {
		return Checkpoint{}, false, err
	}
	return Checkpoint{Slot: slot}, true, nil
}

func (l *LevelStore) PutCheckpoint(wallet WalletId, checkpoint Checkpoint) error {
	return l.db.Put(checkpointKey(wallet, checkpoint.Slot), []byte{1}, nil)
}

func (l *LevelStore) ListCheckpoints(wallet WalletId) ([]Checkpoint, error) {
	var out []Checkpoint
	iter := l.db.NewIterator(util.BytesPrefix(checkpointPrefix(wallet)), nil)
	defer iter.Release()
	prefixLen := len(checkpointPrefix(wallet))
	for iter.Next() {
		key := iter.Key()
		slotBytes := key[prefixLen:]
		slot := submission.Slot(binary.BigEndian.Uint64(slotBytes))
		out = append(out, Checkpoint{Slot: slot})
	}
	return out, iter.Error()
}

func (l *LevelStore) RollbackTo(wallet WalletId, requested submission.Slot) (submission.Slot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	checkpoints, err := l.ListCheckpoints(wallet)
	if err != nil {
		return 0, err
	}
	actual := requested
	have := false
	for _, c := range checkpoints {
		if c.Slot <= requested && (!have || c.Slot > actual) {
			actual = c.Slot
			have = true
		}
	}

	snapshot, err := l.ReadSubmissions(wallet)
	if err != nil {
		return 0, err
	}
	store := submission.MoveTip{NewTip: actual}.Apply(snapshot.ToStore())
	if err := l.WriteSubmissions(wallet, FromStore(store)); err != nil {
		return 0, err
	}
	return actual, nil
}
