// Package diff implements the change detection between a persisted
// baseline and a freshly fetched snapshot. Two tabular comparison modes
// exist: positional (stock balance, aligned by column index) and named
// (parts balance, aligned by the current header row with padding and
// truncation tolerance). Scalar comparators cover the two derived
// reconciliation differences.
package diff

import (
	"log/slog"
	"strings"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

// equalCell compares two cells after trimming surrounding whitespace.
// The comparison is on string form: "5" and "5.0" differ, "5 " and "5"
// do not.
func equalCell(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// Positional compares the balance rows of two sheets column by column.
//
// When the previous row, current row, and current header row are not all
// the same length the sheet layout has drifted; comparing positions would
// be meaningless, so no changes are reported and resetBaseline is true to
// tell the caller to persist the current snapshot immediately as the new
// baseline.
//
// A nil previous sheet is the first-run case: no changes, no reset.
func Positional(prev *domain.Sheet, curr domain.Sheet) (changes []domain.Change, resetBaseline bool) {
	if prev == nil {
		return nil, false
	}

	prevRow := prev.Values()
	currRow := curr.Values()
	headers := curr.Headers()

	if len(prevRow) != len(currRow) || len(headers) != len(currRow) {
		slog.Warn("diff: stock layout drift, resetting baseline",
			"previous", len(prevRow), "current", len(currRow), "headers", len(headers))
		return nil, true
	}

	for i := range prevRow {
		if !equalCell(prevRow[i], currRow[i]) {
			changes = append(changes, domain.Change{
				Label: headers[i],
				Old:   prevRow[i],
				New:   currRow[i],
			})
		}
	}
	return changes, false
}
