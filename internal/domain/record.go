package domain

import (
	"github.com/shopspring/decimal"
)

// RecordKind discriminates the five input operation types.
type RecordKind int

const (
	KindDeposit RecordKind = iota
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

// String implements fmt.Stringer.
func (k RecordKind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Record is a single input operation to replay. Amount is only meaningful for
// deposits and withdrawals; dispute, resolve and chargeback recover the amount
// from the referred transaction.
type Record struct {
	Kind   RecordKind
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
}
