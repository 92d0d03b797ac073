package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	csvAdapter "github.com/iho/txreplay/internal/adapter/csv"
	httpAdapter "github.com/iho/txreplay/internal/adapter/http"
	"github.com/iho/txreplay/internal/adapter/repository/memory"
	"github.com/iho/txreplay/internal/infrastructure/config"
	"github.com/iho/txreplay/internal/infrastructure/logger"
	"github.com/iho/txreplay/internal/infrastructure/metrics"
	"github.com/iho/txreplay/internal/usecase"
)

var debugAddr string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txreplay <input.csv>",
		Short: "Replay a transaction log against per-client accounts",
		Long: `Replays a CSV log of deposits, withdrawals, disputes, resolves and
chargebacks in order and prints the final account snapshot to stdout.
Bad rows and rejected records are reported on stderr and skipped.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&debugAddr, "debug-addr", "",
		"Serve /health and /metrics on this address while the replay runs")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().
		Str("run_id", ulid.Make().String()).
		Logger()

	m := metrics.New()

	addr := cfg.DebugAddr
	if debugAddr != "" {
		addr = debugAddr
	}
	if addr != "" {
		srv := &http.Server{Addr: addr, Handler: httpAdapter.NewRouter(m.Registry)}
		defer srv.Close()
		go func() {
			log.Info().Str("addr", addr).Msg("debug endpoint listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warn().Err(err).Msg("debug endpoint failed")
			}
		}()
	}

	// the only fatal failure: everything past this point is reported and
	// leaves the exit code untouched
	input, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer input.Close()

	ledger := memory.NewAccountLedger()
	store := memory.NewTransactionStore()
	engine := usecase.NewEngine(ledger, store)
	replay := usecase.NewReplayUseCase(engine, ledger, log, m)

	reader := csvAdapter.NewReader(input)
	writer := csvAdapter.NewWriter(cmd.OutOrStdout())

	log.Info().Str("file", args[0]).Msg("starting replay")

	if err := replay.Run(cmd.Context(), reader, writer); err != nil {
		log.Error().Err(err).Msg("replay did not complete cleanly")
	}

	return nil
}
