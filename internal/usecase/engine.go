package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/txreplay/internal/domain"
)

// Engine applies operation records to the ledger and the transaction store.
// It is the only component that touches both; records are applied strictly in
// the order given, and a failed record leaves all state untouched.
type Engine struct {
	ledger AccountLedger
	store  TransactionStore
}

// NewEngine creates a new Engine.
func NewEngine(ledger AccountLedger, store TransactionStore) *Engine {
	return &Engine{
		ledger: ledger,
		store:  store,
	}
}

// Process applies a single record. Errors are per-record: the caller may log
// them and continue with the next record.
func (e *Engine) Process(rec domain.Record) error {
	acc := e.ledger.GetOrCreate(rec.Client)

	switch rec.Kind {
	case domain.KindDeposit:
		if err := acc.Deposit(rec.Amount); err != nil {
			return err
		}
		e.store.Upsert(domain.NewTransaction(rec.Tx, rec.Amount, rec.Client))
		return nil

	case domain.KindWithdrawal:
		if err := acc.Withdraw(rec.Amount); err != nil {
			return err
		}
		e.store.Upsert(domain.NewTransaction(rec.Tx, rec.Amount, rec.Client))
		return nil

	default:
		return e.processReferential(rec, acc)
	}
}

// processReferential handles dispute, resolve and chargeback. The next
// lifecycle state is computed on a copy of the stored transaction and only
// persisted after the account mutation succeeds, so a downstream failure
// never leaves the store holding a half-applied state.
func (e *Engine) processReferential(rec domain.Record, acc *domain.Account) error {
	referred, err := e.store.Lookup(rec.Tx)
	if err != nil {
		return err
	}

	if referred.Client != rec.Client {
		return domain.ErrClientIDNotMatched
	}

	var (
		next  domain.Transaction
		apply func(amount decimal.Decimal) error
	)

	switch rec.Kind {
	case domain.KindDispute:
		next, err = referred.Disputed()
		apply = acc.Dispute
	case domain.KindResolve:
		next, err = referred.Resolved()
		apply = acc.Resolve
	case domain.KindChargeback:
		next, err = referred.ChargedBack()
		apply = acc.ChargeBack
	default:
		return fmt.Errorf("unsupported record kind %s", rec.Kind)
	}
	if err != nil {
		return err
	}

	if err := apply(referred.Amount); err != nil {
		return err
	}

	e.store.Upsert(next)
	return nil
}
