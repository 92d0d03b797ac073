package usecase_test

import (
	"context"
	"errors"
	"io"
	"iter"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/iho/txreplay/internal/adapter/repository/memory"
	"github.com/iho/txreplay/internal/domain"
	"github.com/iho/txreplay/internal/infrastructure/metrics"
	"github.com/iho/txreplay/internal/usecase"
)

type stubSource struct {
	records []domain.Record
	errs    []error
	pos     int
}

func (s *stubSource) Read() (domain.Record, error) {
	if s.pos >= len(s.records) {
		return domain.Record{}, io.EOF
	}
	rec, err := s.records[s.pos], s.errs[s.pos]
	s.pos++
	return rec, err
}

type captureWriter struct {
	accounts []*domain.Account
	err      error
}

func (w *captureWriter) WriteAccounts(accounts iter.Seq[*domain.Account]) error {
	if w.err != nil {
		return w.err
	}
	for acc := range accounts {
		w.accounts = append(w.accounts, acc)
	}
	return nil
}

func newReplayFixture() (*usecase.ReplayUseCase, *memory.AccountLedger, *metrics.Metrics) {
	ledger := memory.NewAccountLedger()
	store := memory.NewTransactionStore()
	engine := usecase.NewEngine(ledger, store)
	m := metrics.New()
	replay := usecase.NewReplayUseCase(engine, ledger, zerolog.Nop(), m)
	return replay, ledger, m
}

func TestReplay_AppliesRecordsAndWritesSnapshot(t *testing.T) {
	replay, _, m := newReplayFixture()

	src := &stubSource{
		records: []domain.Record{
			{Kind: domain.KindDeposit, Client: 1, Tx: 1, Amount: dec("100")},
			{Kind: domain.KindDeposit, Client: 2, Tx: 2, Amount: dec("50")},
			{Kind: domain.KindWithdrawal, Client: 1, Tx: 3, Amount: dec("30")},
		},
		errs: []error{nil, nil, nil},
	}
	out := &captureWriter{}

	require.NoError(t, replay.Run(context.Background(), src, out))

	require.Len(t, out.accounts, 2)
	require.Equal(t, float64(2), testutil.ToFloat64(m.RecordsApplied.WithLabelValues("deposit")))
	require.Equal(t, float64(1), testutil.ToFloat64(m.RecordsApplied.WithLabelValues("withdrawal")))
	require.Equal(t, float64(2), testutil.ToFloat64(m.AccountsWritten))
}

func TestReplay_SkipsBadRowsAndRejectedRecords(t *testing.T) {
	replay, ledger, m := newReplayFixture()

	src := &stubSource{
		records: []domain.Record{
			{Kind: domain.KindDeposit, Client: 1, Tx: 1, Amount: dec("100")},
			{},
			{Kind: domain.KindWithdrawal, Client: 1, Tx: 2, Amount: dec("500")},
			{Kind: domain.KindDeposit, Client: 1, Tx: 3, Amount: dec("1")},
		},
		errs: []error{nil, errors.New("bad row"), nil, nil},
	}
	out := &captureWriter{}

	require.NoError(t, replay.Run(context.Background(), src, out))

	acc := ledger.GetOrCreate(1)
	require.True(t, acc.Available.Equal(dec("101")), "got %s", acc.Available)

	require.Equal(t, float64(1), testutil.ToFloat64(m.ParseFailures))
	require.Equal(t, float64(1), testutil.ToFloat64(m.RecordsRejected.WithLabelValues("insufficient_funds")))
}

func TestReplay_ContextCancelled(t *testing.T) {
	replay, _, _ := newReplayFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := replay.Run(ctx, &stubSource{}, &captureWriter{})

	require.ErrorIs(t, err, context.Canceled)
}

func TestReplay_WriterError(t *testing.T) {
	replay, _, _ := newReplayFixture()

	wantErr := errors.New("broken pipe")
	err := replay.Run(context.Background(), &stubSource{}, &captureWriter{err: wantErr})

	require.ErrorIs(t, err, wantErr)
}
