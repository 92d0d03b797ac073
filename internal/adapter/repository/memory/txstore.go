package memory

import (
	"github.com/iho/txreplay/internal/domain"
)

// TransactionStore maps transaction ids to committed transactions.
type TransactionStore struct {
	txs map[domain.TxID]domain.Transaction
}

// NewTransactionStore creates an empty store.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{
		txs: make(map[domain.TxID]domain.Transaction),
	}
}

// Lookup returns the transaction stored under id.
func (s *TransactionStore) Lookup(id domain.TxID) (domain.Transaction, error) {
	tx, ok := s.txs[id]
	if !ok {
		return domain.Transaction{}, domain.ErrReferredTxNotFound
	}
	return tx, nil
}

// Upsert inserts tx, overwriting any previous entry for its id. Used both to
// record newly committed deposits and withdrawals and to persist an advanced
// dispute-lifecycle state.
func (s *TransactionStore) Upsert(tx domain.Transaction) {
	s.txs[tx.ID] = tx
}
