package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/txreplay/internal/domain"
	"github.com/iho/txreplay/internal/infrastructure/metrics"
)

// ReplayUseCase drives a full replay run: it pulls records from the source,
// feeds them to the engine one at a time, and writes the final account
// snapshot. Per-record failures are logged and counted, never fatal.
type ReplayUseCase struct {
	engine  *Engine
	ledger  AccountLedger
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewReplayUseCase creates a new ReplayUseCase.
func NewReplayUseCase(engine *Engine, ledger AccountLedger, log zerolog.Logger, m *metrics.Metrics) *ReplayUseCase {
	return &ReplayUseCase{
		engine:  engine,
		ledger:  ledger,
		log:     log,
		metrics: m,
	}
}

// Run replays every record from src and writes the snapshot to out. It
// returns an error only when the run is cut short (context cancellation) or
// the snapshot cannot be written; bad rows and rejected records are reported
// and skipped.
func (r *ReplayUseCase) Run(ctx context.Context, src RecordSource, out SnapshotWriter) error {
	var applied, rejected, badRows int

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			badRows++
			r.metrics.ParseFailures.Inc()
			r.log.Warn().Err(err).Msg("failed to parse record")
			continue
		}

		if err := r.engine.Process(rec); err != nil {
			rejected++
			r.metrics.RecordsRejected.WithLabelValues(errorType(err)).Inc()
			r.log.Warn().
				Err(err).
				Stringer("type", rec.Kind).
				Uint16("client", uint16(rec.Client)).
				Uint32("tx", uint32(rec.Tx)).
				Msg("failed to process record")
			continue
		}

		applied++
		r.metrics.RecordsApplied.WithLabelValues(rec.Kind.String()).Inc()
	}

	accounts := 0
	for range r.ledger.Accounts() {
		accounts++
	}
	r.metrics.AccountsWritten.Set(float64(accounts))

	if err := out.WriteAccounts(r.ledger.Accounts()); err != nil {
		return err
	}

	r.log.Info().
		Int("applied", applied).
		Int("rejected", rejected).
		Int("bad_rows", badRows).
		Int("accounts", accounts).
		Msg("replay finished")

	return nil
}

// errorType maps engine errors to stable metric label values.
func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrClientLocked):
		return "client_locked"
	case errors.Is(err, domain.ErrClientIDNotMatched):
		return "client_id_not_matched"
	case errors.Is(err, domain.ErrReferredTxNotFound):
		return "referred_tx_not_found"
	case errors.Is(err, domain.ErrCannotBeDisputed):
		return "cannot_be_disputed"
	case errors.Is(err, domain.ErrNotUnderDispute):
		return "not_under_dispute"
	default:
		return "internal"
	}
}
