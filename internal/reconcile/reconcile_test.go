package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func stockSheet() domain.Sheet {
	return domain.Sheet{Rows: [][]string{
		{"Specification", "Breast", "Wing", "Gizzard", "TOTAL"},
		{"Balance", "1,200", "50", "40.5", "1,250"},
	}}
}

func TestTotalPieces(t *testing.T) {
	t.Parallel()

	// Label, gizzard, and total columns are excluded; "1,200" + "50".
	total := TotalPieces(stockSheet())
	require.NotNil(t, total)
	assert.Equal(t, int64(1250), *total)
}

func TestTotalPieces_SkipsNonCountValues(t *testing.T) {
	t.Parallel()
	sheet := domain.Sheet{Rows: [][]string{
		{"Breast", "Wing", "Neck"},
		{"10", "12.5", "n/a"},
	}}
	total := TotalPieces(sheet)
	require.NotNil(t, total)
	assert.Equal(t, int64(10), *total)
}

func TestTotalPieces_InvalidSheet(t *testing.T) {
	t.Parallel()
	assert.Nil(t, TotalPieces(domain.Sheet{Rows: [][]string{{"Breast"}}}))
}

func TestGizzardWeight(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 40.5, GizzardWeight(stockSheet()))

	noColumn := domain.Sheet{Rows: [][]string{{"Breast"}, {"10"}}}
	assert.Equal(t, 0.0, GizzardWeight(noColumn))

	notNumeric := domain.Sheet{Rows: [][]string{{"Gizzard"}, {"n/a"}}}
	assert.Equal(t, 0.0, GizzardWeight(notNumeric))
}

func TestDifferences(t *testing.T) {
	t.Parallel()

	res := Differences(stockSheet(), floatPtr(1280), floatPtr(40.0))
	require.NotNil(t, res.WholeChickenDiff)
	assert.Equal(t, int64(-30), *res.WholeChickenDiff)
	require.NotNil(t, res.GizzardDiff)
	assert.InDelta(t, 0.5, *res.GizzardDiff, 1e-9)
}

func TestDifferences_UnavailableOperands(t *testing.T) {
	t.Parallel()

	res := Differences(stockSheet(), nil, nil)
	assert.Nil(t, res.WholeChickenDiff)
	assert.Nil(t, res.GizzardDiff)

	// Zero current gizzard weight suppresses the weight difference even
	// with a ledger balance available.
	noGizzard := domain.Sheet{Rows: [][]string{{"Breast"}, {"10"}}}
	res = Differences(noGizzard, floatPtr(10), floatPtr(40))
	require.NotNil(t, res.WholeChickenDiff)
	assert.Equal(t, int64(0), *res.WholeChickenDiff)
	assert.Nil(t, res.GizzardDiff)
}

func ledgerTable() Ledger {
	return Ledger{Rows: [][]string{
		{"year_month", "whole_chicken_quantity_stock_balance", "gizzard_weight_stock_balance"},
		{"2024-11", "900", "35.5"},
		{"2025-01", "1280", "40.25"},
		{"2024-12", "1100", "38.0"},
	}}
}

func TestBalance_ExactMonthMatch(t *testing.T) {
	t.Parallel()
	got := ledgerTable().Balance(ChickenBalanceCol, "2024-12")
	require.NotNil(t, got)
	assert.Equal(t, 1100.0, *got)
}

func TestBalance_FallbackToMostRecent(t *testing.T) {
	t.Parallel()
	// No row for 2025-02: the lexicographically greatest year_month wins.
	got := ledgerTable().Balance(ChickenBalanceCol, "2025-02")
	require.NotNil(t, got)
	assert.Equal(t, 1280.0, *got)

	gizzard := ledgerTable().Balance(GizzardBalanceCol, "2025-02")
	require.NotNil(t, gizzard)
	assert.Equal(t, 40.25, *gizzard)
}

func TestBalance_MissingColumn(t *testing.T) {
	t.Parallel()
	l := Ledger{Rows: [][]string{
		{"year_month", "something_else"},
		{"2025-01", "10"},
	}}
	assert.Nil(t, l.Balance(ChickenBalanceCol, "2025-01"))
}

func TestBalance_MissingYearMonthColumn(t *testing.T) {
	t.Parallel()
	l := Ledger{Rows: [][]string{
		{"whole_chicken_quantity_stock_balance"},
		{"10"},
	}}
	assert.Nil(t, l.Balance(ChickenBalanceCol, "2025-01"))
}

func TestBalance_EmptyOrHeaderOnly(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Ledger{}.Balance(ChickenBalanceCol, "2025-01"))
	headerOnly := Ledger{Rows: [][]string{{"year_month", ChickenBalanceCol}}}
	assert.Nil(t, headerOnly.Balance(ChickenBalanceCol, "2025-01"))
}

func TestBalance_NonNumericValue(t *testing.T) {
	t.Parallel()
	l := Ledger{Rows: [][]string{
		{"year_month", ChickenBalanceCol},
		{"2025-01", "pending"},
	}}
	assert.Nil(t, l.Balance(ChickenBalanceCol, "2025-01"))
}

func TestBalance_ShortRowSkipped(t *testing.T) {
	t.Parallel()
	l := Ledger{Rows: [][]string{
		{"year_month", ChickenBalanceCol},
		{"2025-01"},
	}}
	assert.Nil(t, l.Balance(ChickenBalanceCol, "2025-01"))
}

func TestCurrentMonth(t *testing.T) {
	t.Parallel()
	// 23:30 UTC on Jan 31 is already February in Lagos (UTC+1).
	now := time.Date(2025, 1, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-02", CurrentMonth(now))
}
