package domain

import (
	"github.com/shopspring/decimal"
)

// ClientID identifies an account holder.
type ClientID uint16

// Account holds the balance state for a single client. Available funds are
// spendable, held funds are frozen pending dispute resolution, and Total is
// kept equal to Available + Held by every operation.
type Account struct {
	ID        ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount creates an unlocked account with zero balances.
func NewAccount(id ClientID) *Account {
	return &Account{
		ID:        id,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Deposit credits amount to the available balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	return a.lockable(func() error {
		a.Available = a.Available.Add(amount)
		a.Total = a.Total.Add(amount)
		return nil
	})
}

// Withdraw debits amount from the available balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	return a.lockable(func() error {
		if a.Available.LessThan(amount) {
			return ErrInsufficientFunds
		}
		a.Available = a.Available.Sub(amount)
		a.Total = a.Total.Sub(amount)
		return nil
	})
}

// Dispute moves amount from available to held. Available may legitimately go
// negative when the disputed funds were already partially withdrawn.
func (a *Account) Dispute(amount decimal.Decimal) error {
	return a.lockable(func() error {
		a.Available = a.Available.Sub(amount)
		a.Held = a.Held.Add(amount)
		return nil
	})
}

// Resolve releases disputed funds back to the available balance.
func (a *Account) Resolve(amount decimal.Decimal) error {
	return a.lockable(func() error {
		// held never goes below zero here: it is only ever funded by a dispute
		a.Held = a.Held.Sub(amount)
		a.Available = a.Available.Add(amount)
		return nil
	})
}

// ChargeBack withdraws disputed funds and locks the account.
func (a *Account) ChargeBack(amount decimal.Decimal) error {
	return a.lockable(func() error {
		a.Held = a.Held.Sub(amount)
		a.Total = a.Total.Sub(amount)
		a.Locked = true
		return nil
	})
}

// lockable gates a balance mutation on the lock flag. Keeping the check in one
// place means any future operation inherits it.
func (a *Account) lockable(op func() error) error {
	if a.Locked {
		return ErrClientLocked
	}
	return op()
}
