package diff

import (
	"log/slog"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

// trimLabelColumn drops the leading label cell ("Parts Type" on the
// header row, "Balance" on the value row) when present.
func trimLabelColumn(row []string) []string {
	if len(row) > 1 {
		return row[1:]
	}
	return nil
}

// Named compares two parts sheets aligned by the current header row,
// excluding the first (label) column of every row.
//
// Length drift is tolerated rather than treated as a reset:
//   - header row longer or shorter than the current value row: both are
//     truncated to the shorter length, sacrificing columns beyond the
//     mismatch point;
//   - previous value row shorter than the header list: padded with empty
//     strings, so newly appearing columns read as changed from empty;
//   - previous value row longer: truncated.
//
// A nil previous sheet is the first-run case and yields no changes.
func Named(prev *domain.Sheet, curr domain.Sheet) []domain.Change {
	if prev == nil {
		return nil
	}

	headers := trimLabelColumn(curr.Headers())
	currVals := trimLabelColumn(curr.Values())
	prevVals := trimLabelColumn(prev.Values())

	if len(headers) != len(currVals) {
		slog.Warn("diff: parts header/value length mismatch, truncating",
			"headers", len(headers), "values", len(currVals))
		n := min(len(headers), len(currVals))
		headers = headers[:n]
		currVals = currVals[:n]
		if len(prevVals) > n {
			prevVals = prevVals[:n]
		}
	}

	if len(prevVals) < len(currVals) {
		padded := make([]string, len(currVals))
		copy(padded, prevVals)
		prevVals = padded
	} else if len(prevVals) > len(currVals) {
		prevVals = prevVals[:len(currVals)]
	}

	var changes []domain.Change
	for i := range headers {
		if !equalCell(prevVals[i], currVals[i]) {
			changes = append(changes, domain.Change{
				Label: headers[i],
				Old:   prevVals[i],
				New:   currVals[i],
			})
		}
	}
	return changes
}
