// Package submission implements the slot-indexed state machine tracking
// every locally-submitted transaction a wallet is watching, as it moves
// between InSubmission, InLedger, and Expired under advancing tip and
// finality slots.
package submission

import "github.com/mr-tron/base58"

// Slot is a totally-ordered discrete time coordinate. The zero value is the
// slot type's minimum, the initial tip and finality of a fresh Store.
type Slot uint64

// TxId is an opaque identifier for a locally-submitted transaction,
// following the same fixed-size-array idiom as token.AssetId.
type TxId [32]byte

// Compare returns -1, 0, or 1, giving TxId the total order the store's
// underlying ordered map is keyed by.
func (id TxId) Compare(other TxId) int {
	for i := range id {
		if id[i] != other[i] {
			if id[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (id TxId) String() string {
	return base58.Encode(id[:])
}

// Tx is the capability a submitted transaction must offer the store: its
// own identity. The store never inspects a Tx beyond this; construction of
// the transaction body belongs to the excluded ledger-codec layer.
type Tx interface {
	TxId() TxId
}

// TxStatus is the tagged union of a locally-known transaction's visible
// states. The three cases are kept as distinct types, each with its own
// slot fields, rather than collapsed into one struct with nullable fields:
// that would lose the state machine's legibility and let invalid
// combinations of fields type-check.
type TxStatus interface {
	txStatus()
}

// InSubmission is a transaction the wallet has broadcast but not yet seen
// accepted on-chain. Expiring is the slot at which, absent acceptance, the
// wallet gives up on it.
type InSubmission struct {
	Expiring Slot
	Tx       Tx
}

func (InSubmission) txStatus() {}

// InLedger is a transaction the wallet has observed accepted at Acceptance,
// still carrying the Expiring slot it was originally submitted with (kept
// around so a rollback past Acceptance can resurrect it as InSubmission
// without losing its expiry).
type InLedger struct {
	Expiring   Slot
	Acceptance Slot
	Tx         Tx
}

func (InLedger) txStatus() {}

// Expired is a transaction whose Expiring slot has been reached without
// acceptance. A rollback that moves tip back before Expiring resurrects it
// as InSubmission.
type Expired struct {
	Expiring Slot
	Tx       Tx
}

func (Expired) txStatus() {}
