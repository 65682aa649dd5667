// Package testutil provides stub collaborators backed by JSON fixtures,
// used by stub mode and by tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
	"github.com/kadunafoods/stockwatch-go/internal/reconcile"
)

// StubSpecSource satisfies monitor.SpecSource from fixture files
// stock.json and parts.json, each holding a JSON array of rows.
type StubSpecSource struct {
	FixturesDir string
}

func (s *StubSpecSource) load(name string) (domain.Sheet, error) {
	data, err := os.ReadFile(filepath.Join(s.FixturesDir, name))
	if err != nil {
		return domain.Sheet{}, err
	}
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return domain.Sheet{}, err
	}
	sheet := domain.Sheet{Rows: rows}
	if !sheet.Valid() {
		return domain.Sheet{}, fmt.Errorf("fixture %s has %d rows, need at least 2", name, len(rows))
	}
	return sheet, nil
}

func (s *StubSpecSource) StockSnapshot(_ context.Context) (domain.Sheet, error) {
	return s.load("stock.json")
}

func (s *StubSpecSource) PartsSnapshot(_ context.Context) (domain.Sheet, error) {
	return s.load("parts.json")
}

// StubLedgerSource satisfies monitor.LedgerSource from summary.json.
type StubLedgerSource struct {
	FixturesDir string
}

func (s *StubLedgerSource) Ledger(_ context.Context) (reconcile.Ledger, error) {
	data, err := os.ReadFile(filepath.Join(s.FixturesDir, "summary.json"))
	if err != nil {
		return reconcile.Ledger{}, err
	}
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return reconcile.Ledger{}, err
	}
	return reconcile.Ledger{Rows: rows}, nil
}

// RecordingAlerter satisfies monitor.Alerter and records every message
// it is asked to send. A non-nil Err makes every send fail.
type RecordingAlerter struct {
	Messages []string
	Err      error
}

func (a *RecordingAlerter) Send(_ context.Context, text string) error {
	if a.Err != nil {
		return a.Err
	}
	a.Messages = append(a.Messages, text)
	return nil
}

// LogAlerter satisfies monitor.Alerter by printing the message to
// stdout. Stub mode uses it when no webhook is configured.
type LogAlerter struct{}

func (LogAlerter) Send(_ context.Context, text string) error {
	fmt.Println(text)
	return nil
}

// FixturesDir returns the absolute path to the tests/fixtures directory.
// It walks up from this source file to the repo root.
func FixturesDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "tests", "fixtures")
}
