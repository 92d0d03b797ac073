package domain

import "errors"

var (
	// Account errors
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrClientLocked      = errors.New("client account is locked")

	// Referential errors
	ErrClientIDNotMatched = errors.New("client id does not match referred transaction")
	ErrReferredTxNotFound = errors.New("referred transaction not found")

	// Dispute lifecycle errors
	ErrCannotBeDisputed = errors.New("referred transaction is already under dispute, resolved or charged back")
	ErrNotUnderDispute  = errors.New("referred transaction is not under dispute")
)
