// Package state persists the monitor's run-to-run baselines as JSON blobs
// on the local filesystem. Four independently keyed blobs exist: two full
// sheet snapshots and two derived scalar differences.
//
// The store never surfaces load problems to the caller: an absent,
// unreadable, or malformed blob all degrade to "no baseline", so a bad
// historical state can never block the current run.
package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

// Blob keys, one file per key under the store directory.
const (
	StockKey       = "previous_stock_state"
	PartsKey       = "previous_parts_state"
	ChickenDiffKey = "previous_whole_chicken_diff_state"
	GizzardDiffKey = "previous_gizzard_diff_state"
)

// Store reads and writes baseline blobs under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory as needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("state: create dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes under.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// LoadSheet returns the persisted sheet baseline for key, or nil when no
// usable baseline exists. A blob that exists but has fewer than two rows
// is discarded rather than trusted.
func (s *Store) LoadSheet(key string) *domain.Sheet {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("state: unreadable sheet baseline, treating as absent", "key", key, "error", err)
		}
		return nil
	}
	var sheet domain.Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		slog.Warn("state: malformed sheet baseline, treating as absent", "key", key, "error", err)
		return nil
	}
	if !sheet.Valid() {
		slog.Warn("state: sheet baseline has too few rows, treating as absent", "key", key, "rows", len(sheet.Rows))
		return nil
	}
	return &sheet
}

// SaveSheet persists sheet as the new baseline for key. A snapshot with
// fewer than two rows is silently skipped so the prior baseline survives
// for the next run.
func (s *Store) SaveSheet(key string, sheet domain.Sheet) error {
	if !sheet.Valid() {
		slog.Warn("state: invalid sheet snapshot, skipping save", "key", key, "rows", len(sheet.Rows))
		return nil
	}
	return s.write(key, sheet)
}

// LoadCount returns the persisted integer scalar for key, or nil when no
// usable baseline exists. A persisted null is a valid "difference was
// unavailable" baseline and also loads as nil.
func (s *Store) LoadCount(key string) *int64 {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("state: unreadable scalar baseline, treating as absent", "key", key, "error", err)
		}
		return nil
	}
	var v *int64
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("state: malformed scalar baseline, treating as absent", "key", key, "error", err)
		return nil
	}
	return v
}

// SaveCount persists v (possibly nil) as the scalar baseline for key.
func (s *Store) SaveCount(key string, v *int64) error {
	return s.write(key, v)
}

// LoadWeight returns the persisted float scalar for key, or nil when no
// usable baseline exists.
func (s *Store) LoadWeight(key string) *float64 {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("state: unreadable scalar baseline, treating as absent", "key", key, "error", err)
		}
		return nil
	}
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("state: malformed scalar baseline, treating as absent", "key", key, "error", err)
		return nil
	}
	if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
		slog.Warn("state: non-finite scalar baseline, treating as absent", "key", key)
		return nil
	}
	return v
}

// SaveWeight persists v (possibly nil) as the scalar baseline for key.
// Non-finite values are silently skipped.
func (s *Store) SaveWeight(key string, v *float64) error {
	if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
		slog.Warn("state: non-finite scalar, skipping save", "key", key)
		return nil
	}
	return s.write(key, v)
}

func (s *Store) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("state: marshal %s: %w", key, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("state: create dir %s: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("state: write %s: %w", key, err)
	}
	return nil
}
