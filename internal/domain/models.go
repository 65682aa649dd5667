// Package domain holds the core data types shared across the monitor:
// tabular sheet snapshots, detected changes, and reconciliation results.
package domain

// Sheet is a tabular snapshot as read from a spreadsheet range. Row 0 is
// the header row, row 1 is the single balance row of current values.
type Sheet struct {
	Rows [][]string `json:"rows"`
}

// Valid reports whether the snapshot has at least a header row and one
// value row. Anything smaller is not a usable baseline.
func (s Sheet) Valid() bool {
	return len(s.Rows) >= 2
}

// Headers returns the header row, or nil for an empty sheet.
func (s Sheet) Headers() []string {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// Values returns the balance row, or nil when the sheet has no value row.
func (s Sheet) Values() []string {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1]
}

// Change is one detected difference: the column (or metric) label, the
// previously persisted value, and the freshly fetched value.
type Change struct {
	Label string `json:"label"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// ReconciliationResult holds the derived balance differences between the
// specification sheet and the inventory ledger. Either field is nil when
// its inputs were unavailable this run.
type ReconciliationResult struct {
	// WholeChickenDiff is the pieces total minus the ledger unit-count
	// balance, truncated toward zero.
	WholeChickenDiff *int64 `json:"whole_chicken_diff"`
	// GizzardDiff is the current gizzard weight minus the ledger weight
	// balance, in kg.
	GizzardDiff *float64 `json:"gizzard_diff"`
}
