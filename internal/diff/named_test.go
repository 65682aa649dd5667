package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

func TestNamed_IdenticalYieldsNoChanges(t *testing.T) {
	t.Parallel()
	s := sheet([]string{"Parts Type", "Neck", "Feet"}, []string{"Balance", "12.5", "7"})
	assert.Empty(t, Named(&s, s))
}

func TestNamed_LabelColumnExcluded(t *testing.T) {
	t.Parallel()
	prev := sheet([]string{"Parts Type", "Neck"}, []string{"Balance", "12.5"})
	curr := sheet([]string{"Parts Analysis", "Neck"}, []string{"Stock", "12.5"})

	// Only the label column differs, and it is outside the comparison.
	assert.Empty(t, Named(&prev, curr))
}

func TestNamed_SingleChange(t *testing.T) {
	t.Parallel()
	prev := sheet([]string{"Parts Type", "Neck", "Feet"}, []string{"Balance", "12.5", "7"})
	curr := sheet([]string{"Parts Type", "Neck", "Feet"}, []string{"Balance", "12.5", "8"})

	assert.Equal(t, []domain.Change{{Label: "Feet", Old: "7", New: "8"}}, Named(&prev, curr))
}

func TestNamed_ShorterPreviousPadsWithEmpty(t *testing.T) {
	t.Parallel()
	prev := sheet([]string{"Parts Type", "Neck"}, []string{"Balance", "12.5"})
	curr := sheet([]string{"Parts Type", "Neck", "Feet", "Head"}, []string{"Balance", "12.5", "7", "3"})

	changes := Named(&prev, curr)
	assert.Equal(t, []domain.Change{
		{Label: "Feet", Old: "", New: "7"},
		{Label: "Head", Old: "", New: "3"},
	}, changes)
}

func TestNamed_LongerPreviousTruncated(t *testing.T) {
	t.Parallel()
	prev := sheet([]string{"Parts Type", "Neck", "Feet"}, []string{"Balance", "12.5", "7"})
	curr := sheet([]string{"Parts Type", "Neck"}, []string{"Balance", "12.5"})

	assert.Empty(t, Named(&prev, curr))
}

func TestNamed_HeaderValueMismatchTruncatesToShorter(t *testing.T) {
	t.Parallel()
	// Header names three parts but the value row carries only two; the
	// third column is sacrificed.
	prev := sheet([]string{"Parts Type", "Neck", "Feet", "Head"}, []string{"Balance", "12.5", "7", "9"})
	curr := sheet([]string{"Parts Type", "Neck", "Feet", "Head"}, []string{"Balance", "13", "7"})

	assert.Equal(t, []domain.Change{{Label: "Neck", Old: "12.5", New: "13"}}, Named(&prev, curr))
}

func TestNamed_NoBaseline(t *testing.T) {
	t.Parallel()
	curr := sheet([]string{"Parts Type", "Neck"}, []string{"Balance", "12.5"})
	assert.Empty(t, Named(nil, curr))
}
