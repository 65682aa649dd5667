// Package monitor orchestrates a single inventory monitoring pass: fetch
// current snapshots, load baselines, run the comparators, send the alert
// when something changed, and persist fresh state for the next run.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kadunafoods/stockwatch-go/internal/diff"
	"github.com/kadunafoods/stockwatch-go/internal/domain"
	"github.com/kadunafoods/stockwatch-go/internal/observability"
	"github.com/kadunafoods/stockwatch-go/internal/reconcile"
	"github.com/kadunafoods/stockwatch-go/internal/report"
	"github.com/kadunafoods/stockwatch-go/internal/state"
)

// SpecSource fetches the two specification-sheet snapshots.
type SpecSource interface {
	StockSnapshot(ctx context.Context) (domain.Sheet, error)
	PartsSnapshot(ctx context.Context) (domain.Sheet, error)
}

// LedgerSource fetches the reconciliation ledger.
type LedgerSource interface {
	Ledger(ctx context.Context) (reconcile.Ledger, error)
}

// StateStore persists the four run-to-run baselines.
type StateStore interface {
	LoadSheet(key string) *domain.Sheet
	SaveSheet(key string, sheet domain.Sheet) error
	LoadCount(key string) *int64
	SaveCount(key string, v *int64) error
	LoadWeight(key string) *float64
	SaveWeight(key string, v *float64) error
}

// Alerter delivers the rendered alert message.
type Alerter interface {
	Send(ctx context.Context, text string) error
}

// FetchError wraps a collaborator failure that aborts the run. The
// process still exits cleanly so the scheduler is not disrupted.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("monitor: fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Runner wires the collaborators for one monitoring pass.
type Runner struct {
	Spec    SpecSource
	Ledgers LedgerSource
	Store   StateStore
	Alert   Alerter

	// Metrics is optional; a nil value disables instrument recording.
	Metrics *observability.Metrics

	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run executes one full monitoring pass. Only a specification-sheet
// fetch failure aborts the pass (as *FetchError); every other anomaly
// degrades, and all four baselines are overwritten before returning.
func (r *Runner) Run(ctx context.Context) error {
	r.Metrics.RecordRun(ctx)

	stock, err := r.Spec.StockSnapshot(ctx)
	if err != nil {
		r.Metrics.RecordFetchFailure(ctx, "stock")
		return &FetchError{Source: "stock", Err: err}
	}
	parts, err := r.Spec.PartsSnapshot(ctx)
	if err != nil {
		r.Metrics.RecordFetchFailure(ctx, "parts")
		return &FetchError{Source: "parts", Err: err}
	}

	// The ledger is a cross-check, not a primary source: a failed fetch
	// degrades both balances to "unavailable" instead of aborting.
	ledger, err := r.Ledgers.Ledger(ctx)
	if err != nil {
		r.Metrics.RecordFetchFailure(ctx, "ledger")
		slog.Warn("monitor: ledger fetch failed, reconciliation unavailable", "error", err)
		ledger = reconcile.Ledger{}
	}

	month := reconcile.CurrentMonth(r.now())
	chickenBalance := ledger.Balance(reconcile.ChickenBalanceCol, month)
	gizzardBalance := ledger.Balance(reconcile.GizzardBalanceCol, month)

	prevStock := r.Store.LoadSheet(state.StockKey)
	prevParts := r.Store.LoadSheet(state.PartsKey)
	prevChickenDiff := r.Store.LoadCount(state.ChickenDiffKey)
	prevGizzardDiff := r.Store.LoadWeight(state.GizzardDiffKey)

	current := reconcile.Differences(stock, chickenBalance, gizzardBalance)

	stockChanges, resetStock := diff.Positional(prevStock, stock)
	if resetStock {
		if err := r.Store.SaveSheet(state.StockKey, stock); err != nil {
			slog.Warn("monitor: reset stock baseline failed", "error", err)
		}
	}
	partsChanges := diff.Named(prevParts, parts)
	chickenChanges := diff.CompareCount(diff.WholeChickenDiffLabel, prevChickenDiff, current.WholeChickenDiff)
	gizzardChanges := diff.CompareWeight(diff.GizzardDiffLabel, prevGizzardDiff, current.GizzardDiff)

	r.Metrics.RecordChanges(ctx, "stock", len(stockChanges))
	r.Metrics.RecordChanges(ctx, "parts", len(partsChanges))
	r.Metrics.RecordChanges(ctx, "chicken_diff", len(chickenChanges))
	r.Metrics.RecordChanges(ctx, "gizzard_diff", len(gizzardChanges))

	rep := report.Report{
		StockChanges:   stockChanges,
		PartsChanges:   partsChanges,
		BalanceChanges: append(chickenChanges, gizzardChanges...),
		Stock:          stock,
		Parts:          parts,
		ChickenBalance: chickenBalance,
		GizzardBalance: gizzardBalance,
		Now:            r.now(),
	}

	if rep.HasChanges() {
		slog.Info("monitor: changes detected, sending alert",
			"stock", len(stockChanges), "parts", len(partsChanges),
			"balance", len(rep.BalanceChanges))
		if err := r.Alert.Send(ctx, report.Render(rep)); err != nil {
			// A failed send never blocks state persistence; the change
			// is simply not re-reported next run.
			slog.Warn("monitor: alert send failed", "error", err)
			r.Metrics.RecordAlert(ctx, false)
		} else {
			r.Metrics.RecordAlert(ctx, true)
		}
	} else {
		slog.Info("monitor: no changes detected")
	}

	// All four baselines are overwritten every run regardless of what
	// the comparators found or whether the alert went out.
	if err := r.Store.SaveSheet(state.StockKey, stock); err != nil {
		slog.Warn("monitor: save stock baseline failed", "error", err)
	}
	if err := r.Store.SaveSheet(state.PartsKey, parts); err != nil {
		slog.Warn("monitor: save parts baseline failed", "error", err)
	}
	if err := r.Store.SaveCount(state.ChickenDiffKey, current.WholeChickenDiff); err != nil {
		slog.Warn("monitor: save chicken diff baseline failed", "error", err)
	}
	if err := r.Store.SaveWeight(state.GizzardDiffKey, current.GizzardDiff); err != nil {
		slog.Warn("monitor: save gizzard diff baseline failed", "error", err)
	}

	return nil
}
