// Package memory provides the in-memory stores backing a single replay run.
// Nothing here survives the process: durability is out of scope for the engine.
package memory

import (
	"iter"

	"github.com/iho/txreplay/internal/domain"
)

// AccountLedger maps client ids to their accounts, creating accounts lazily on
// first reference.
type AccountLedger struct {
	accounts map[domain.ClientID]*domain.Account
}

// NewAccountLedger creates an empty ledger.
func NewAccountLedger() *AccountLedger {
	return &AccountLedger{
		accounts: make(map[domain.ClientID]*domain.Account),
	}
}

// GetOrCreate returns the account for id, creating a zero-balance unlocked
// account if the client has never been seen.
func (l *AccountLedger) GetOrCreate(id domain.ClientID) *domain.Account {
	acc, ok := l.accounts[id]
	if !ok {
		acc = domain.NewAccount(id)
		l.accounts[id] = acc
	}
	return acc
}

// Accounts iterates over all accounts in arbitrary order. The sequence is
// restartable; each ranging yields the ledger state as of that moment.
func (l *AccountLedger) Accounts() iter.Seq[*domain.Account] {
	return func(yield func(*domain.Account) bool) {
		for _, acc := range l.accounts {
			if !yield(acc) {
				return
			}
		}
	}
}

// Len returns the number of accounts ever touched.
func (l *AccountLedger) Len() int {
	return len(l.accounts)
}
