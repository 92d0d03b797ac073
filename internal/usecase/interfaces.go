package usecase

import (
	"iter"

	"github.com/iho/txreplay/internal/domain"
)

// AccountLedger is the per-client account state the engine mutates.
type AccountLedger interface {
	// GetOrCreate returns the account for id, creating it on first reference.
	GetOrCreate(id domain.ClientID) *domain.Account
	// Accounts iterates over every account ever touched, in arbitrary order.
	Accounts() iter.Seq[*domain.Account]
}

// TransactionStore holds committed transactions for referential lookups.
type TransactionStore interface {
	// Lookup returns the transaction for id or domain.ErrReferredTxNotFound.
	Lookup(id domain.TxID) (domain.Transaction, error)
	// Upsert inserts or overwrites the entry for tx's id.
	Upsert(tx domain.Transaction)
}

// RecordSource produces operation records one at a time. Read returns io.EOF
// when the source is exhausted; any other error marks a single bad record and
// the stream remains usable.
type RecordSource interface {
	Read() (domain.Record, error)
}

// SnapshotWriter renders the final account state.
type SnapshotWriter interface {
	WriteAccounts(accounts iter.Seq[*domain.Account]) error
}
