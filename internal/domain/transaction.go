package domain

import (
	"github.com/shopspring/decimal"
)

// TxID identifies a committed transaction.
type TxID uint32

// TxState tracks where a committed transaction is in its dispute lifecycle.
type TxState int

const (
	StateCommitted TxState = iota
	StateDisputed
	StateResolved
	StateChargedBack
)

// String implements fmt.Stringer.
func (s TxState) String() string {
	switch s {
	case StateCommitted:
		return "committed"
	case StateDisputed:
		return "disputed"
	case StateResolved:
		return "resolved"
	case StateChargedBack:
		return "charged_back"
	default:
		return "unknown"
	}
}

// Transaction is the durable record of a committed deposit or withdrawal,
// used as the referent for later dispute, resolve and chargeback records.
// Amount and Client never change after creation; only State advances.
// The record is invariant to whether it was a deposit or a withdrawal:
// only the amount magnitude and the owning client matter.
type Transaction struct {
	ID     TxID
	Amount decimal.Decimal
	Client ClientID
	State  TxState
}

// NewTransaction creates a transaction in the Committed state.
func NewTransaction(id TxID, amount decimal.Decimal, client ClientID) Transaction {
	return Transaction{
		ID:     id,
		Amount: amount,
		Client: client,
		State:  StateCommitted,
	}
}

// The transition methods below take value receivers and return an advanced
// copy, leaving the stored value untouched. The caller can compute the next
// state speculatively and only persist it once the paired account mutation
// has succeeded, so no rollback path is needed.

// Disputed advances the transaction to Disputed.
func (t Transaction) Disputed() (Transaction, error) {
	if t.State != StateCommitted {
		return Transaction{}, ErrCannotBeDisputed
	}
	t.State = StateDisputed
	return t, nil
}

// Resolved advances the transaction to Resolved, a terminal state.
func (t Transaction) Resolved() (Transaction, error) {
	if t.State != StateDisputed {
		return Transaction{}, ErrNotUnderDispute
	}
	t.State = StateResolved
	return t, nil
}

// ChargedBack advances the transaction to ChargedBack, a terminal state.
func (t Transaction) ChargedBack() (Transaction, error) {
	if t.State != StateDisputed {
		return Transaction{}, ErrNotUnderDispute
	}
	t.State = StateChargedBack
	return t, nil
}
