// Package reconcile cross-checks the specification sheet's derived totals
// against the independent inventory ledger and produces the two balance
// differences tracked between runs.
package reconcile

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

// Ledger column names.
const (
	YearMonthColumn   = "year_month"
	ChickenBalanceCol = "whole_chicken_quantity_stock_balance"
	GizzardBalanceCol = "gizzard_weight_stock_balance"
)

// pieces-total exclusion set: the label column, the weight metric, and
// the sheet's own running total.
var excludedFromTotal = map[string]struct{}{
	"specification": {},
	"gizzard":       {},
	"total":         {},
}

// monitorZone is the calendar the business operates on; the "current
// month" for period selection is computed in this zone.
const monitorZone = "Africa/Lagos"

// Ledger is the wide reconciliation table, addressed by column name.
// Row 0 names the columns; each following row is one month's record.
type Ledger struct {
	Rows [][]string `json:"rows"`
}

// columnIndex returns the position of name in the header row.
func (l Ledger) columnIndex(name string) (int, bool) {
	if len(l.Rows) == 0 {
		return 0, false
	}
	for i, h := range l.Rows[0] {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Balance returns the named balance column's value for the given
// year-month, or nil when the ledger is unusable, the required columns
// are missing, or the value does not parse.
//
// Period selection: the row whose year_month equals month wins; with no
// exact match the row with the lexicographically greatest year_month is
// used instead, which is the most recent record for zero-padded YYYY-MM.
func (l Ledger) Balance(column, month string) *float64 {
	if len(l.Rows) < 2 {
		slog.Warn("reconcile: ledger has too few rows", "rows", len(l.Rows))
		return nil
	}
	balanceIdx, ok := l.columnIndex(column)
	if !ok {
		slog.Warn("reconcile: ledger missing column", "column", column)
		return nil
	}
	monthIdx, ok := l.columnIndex(YearMonthColumn)
	if !ok {
		slog.Warn("reconcile: ledger missing column", "column", YearMonthColumn)
		return nil
	}

	rows := l.Rows[1:]
	var picked []string
	for _, row := range rows {
		if len(row) > monthIdx && row[monthIdx] == month {
			picked = row
			break
		}
	}
	if picked == nil {
		best := ""
		for _, row := range rows {
			if len(row) <= monthIdx {
				continue
			}
			if picked == nil || row[monthIdx] > best {
				best = row[monthIdx]
				picked = row
			}
		}
		if picked == nil {
			return nil
		}
		slog.Warn("reconcile: no ledger row for current month, using most recent",
			"month", month, "fallback", best)
	}

	if len(picked) <= balanceIdx {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(picked[balanceIdx]), 64)
	if err != nil {
		slog.Warn("reconcile: ledger balance not numeric", "column", column, "value", picked[balanceIdx])
		return nil
	}
	return &v
}

// CurrentMonth formats now as YYYY-MM in the monitor's time zone. When
// the zone database is unavailable the UTC month is used.
func CurrentMonth(now time.Time) string {
	return now.In(Location()).Format("2006-01")
}

// TotalPieces sums every countable column of the stock sheet whose
// header is not in the exclusion set. Only values matching the count
// grammar (digits plus thousands separators) contribute; decimals and
// anything non-numeric are skipped. Returns nil for a sheet without a
// value row.
func TotalPieces(stock domain.Sheet) *int64 {
	if !stock.Valid() {
		return nil
	}
	headers := stock.Headers()
	values := stock.Values()

	var total int64
	for i, h := range headers {
		if _, skip := excludedFromTotal[strings.ToLower(h)]; skip {
			continue
		}
		if i >= len(values) {
			continue
		}
		if n, ok := domain.ParseCount(values[i]); ok {
			total += n
		}
	}
	return &total
}

// GizzardWeight returns the stock sheet's current gizzard weight, or 0
// when the column is absent or not numeric.
func GizzardWeight(stock domain.Sheet) float64 {
	headers := stock.Headers()
	values := stock.Values()
	for i, h := range headers {
		if strings.EqualFold(h, "gizzard") {
			if i >= len(values) {
				return 0
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 64)
			if err != nil {
				return 0
			}
			return v
		}
	}
	return 0
}

// Differences derives both balance differences from the current stock
// sheet and the ledger balances. Each difference is nil when either of
// its operands is unavailable; the gizzard difference additionally
// requires a strictly positive current weight.
func Differences(stock domain.Sheet, chickenBalance, gizzardBalance *float64) domain.ReconciliationResult {
	var res domain.ReconciliationResult

	if total := TotalPieces(stock); total != nil && chickenBalance != nil {
		d := int64(float64(*total) - *chickenBalance)
		res.WholeChickenDiff = &d
	}

	if weight := GizzardWeight(stock); weight > 0 && gizzardBalance != nil {
		d := weight - *gizzardBalance
		res.GizzardDiff = &d
	}

	return res
}
