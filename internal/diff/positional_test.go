package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

func sheet(rows ...[]string) domain.Sheet {
	return domain.Sheet{Rows: rows}
}

func TestPositional_IdenticalYieldsNoChanges(t *testing.T) {
	t.Parallel()
	s := sheet([]string{"Breast", "Wing"}, []string{"10", "5"})
	changes, reset := Positional(&s, s)
	assert.Empty(t, changes)
	assert.False(t, reset)
}

func TestPositional_SingleCellChange(t *testing.T) {
	t.Parallel()
	prev := sheet([]string{"Breast", "Wing"}, []string{"10", "5"})
	curr := sheet([]string{"Breast", "Wing"}, []string{"10", "6"})

	changes, reset := Positional(&prev, curr)
	assert.False(t, reset)
	assert.Equal(t, []domain.Change{{Label: "Wing", Old: "5", New: "6"}}, changes)
}

func TestPositional_TrimsWhitespaceBeforeComparing(t *testing.T) {
	t.Parallel()
	prev := sheet([]string{"Breast"}, []string{"5 "})
	curr := sheet([]string{"Breast"}, []string{"5"})

	changes, reset := Positional(&prev, curr)
	assert.Empty(t, changes)
	assert.False(t, reset)
}

func TestPositional_StringFormMatters(t *testing.T) {
	t.Parallel()
	prev := sheet([]string{"Gizzard"}, []string{"5"})
	curr := sheet([]string{"Gizzard"}, []string{"5.0"})

	changes, _ := Positional(&prev, curr)
	assert.Len(t, changes, 1)
}

func TestPositional_LengthMismatchResetsBaseline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		prev domain.Sheet
		curr domain.Sheet
	}{
		{
			name: "previous row shorter",
			prev: sheet([]string{"A", "B"}, []string{"1"}),
			curr: sheet([]string{"A", "B"}, []string{"1", "2"}),
		},
		{
			name: "current row shorter",
			prev: sheet([]string{"A", "B"}, []string{"1", "2"}),
			curr: sheet([]string{"A", "B"}, []string{"1"}),
		},
		{
			name: "header drift",
			prev: sheet([]string{"A", "B"}, []string{"1", "2"}),
			curr: sheet([]string{"A", "B", "C"}, []string{"1", "2"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			changes, reset := Positional(&tt.prev, tt.curr)
			assert.Empty(t, changes)
			assert.True(t, reset)
		})
	}
}

func TestPositional_NoBaseline(t *testing.T) {
	t.Parallel()
	curr := sheet([]string{"A"}, []string{"1"})
	changes, reset := Positional(nil, curr)
	assert.Empty(t, changes)
	assert.False(t, reset)
}
