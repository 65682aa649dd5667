// Command stockwatch runs one inventory monitoring pass: it polls the
// specification and ledger spreadsheets, diffs against the locally
// persisted baselines, and posts an alert to the configured chat webhook
// when anything changed.
//
// It is built to run from a scheduler. Only a configuration error exits
// nonzero; handled runtime failures are logged and the process exits 0
// so a flaky fetch does not mark the whole schedule red.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	_ "time/tzdata" // the Lagos calendar must work in scratch images

	"github.com/spf13/cobra"

	"github.com/kadunafoods/stockwatch-go/internal/alert"
	"github.com/kadunafoods/stockwatch-go/internal/config"
	"github.com/kadunafoods/stockwatch-go/internal/connectors/sheets"
	"github.com/kadunafoods/stockwatch-go/internal/monitor"
	"github.com/kadunafoods/stockwatch-go/internal/observability"
	"github.com/kadunafoods/stockwatch-go/internal/state"
	"github.com/kadunafoods/stockwatch-go/internal/testutil"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "stockwatch",
		Short:         "Spreadsheet inventory monitor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(runCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Execute one monitoring pass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				// The one fatal class: bad configuration aborts before
				// any fetch and fails the invocation.
				return err
			}
			runOnce(cmd.Context(), cfg)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stockwatch version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "stockwatch", version)
		},
	}
}

// runOnce performs the pass. Every failure past configuration is logged
// and swallowed so the scheduler sees a clean exit.
func runOnce(ctx context.Context, cfg config.Config) {
	observability.InitLogger(cfg.LogLevel)

	if cfg.EnableOTel {
		shutdown, err := observability.InitTracer(ctx, "stockwatch")
		if err != nil {
			slog.Warn("tracing disabled", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					slog.Warn("tracer shutdown failed", "error", err)
				}
			}()
		}
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		slog.Warn("metrics disabled", "error", err)
		metrics = nil
	}

	store, err := state.New(cfg.DataDir)
	if err != nil {
		slog.Error("state store unavailable", "error", err)
		return
	}

	runner := &monitor.Runner{
		Store:   store,
		Metrics: metrics,
	}

	switch cfg.Mode {
	case config.ModeStub:
		src := &testutil.StubSpecSource{FixturesDir: cfg.FixturesDir}
		runner.Spec = src
		runner.Ledgers = &testutil.StubLedgerSource{FixturesDir: cfg.FixturesDir}
		if cfg.WebhookURL != "" {
			runner.Alert = alert.New(cfg.WebhookURL)
		} else {
			runner.Alert = testutil.LogAlerter{}
		}
		slog.Info("running in stub mode", "fixtures", cfg.FixturesDir)
	default:
		client, err := sheets.New(ctx, sheets.Options{
			CredentialsFile: cfg.CredentialsFile,
			SpecSheetID:     cfg.SpecSheetID,
			LedgerSheetID:   cfg.LedgerSheetID,
			StockRange:      cfg.StockRange,
			PartsRange:      cfg.PartsRange,
			LedgerRange:     cfg.LedgerRange,
		})
		if err != nil {
			slog.Error("sheets client unavailable", "error", err)
			return
		}
		runner.Spec = client
		runner.Ledgers = client
		runner.Alert = alert.New(cfg.WebhookURL)
	}

	if err := runner.Run(ctx); err != nil {
		var fe *monitor.FetchError
		if errors.As(err, &fe) {
			slog.Error("run aborted on fetch failure", "source", fe.Source, "error", fe.Err)
			return
		}
		slog.Error("run failed", "error", err)
	}
}
