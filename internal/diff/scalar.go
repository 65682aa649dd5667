package diff

import (
	"math"
	"strconv"

	"github.com/kadunafoods/stockwatch-go/internal/domain"
)

// Labels for the two derived reconciliation scalars.
const (
	WholeChickenDiffLabel = "Whole Chicken Balance Difference"
	GizzardDiffLabel      = "Gizzard Balance Difference"
)

// GizzardTolerance is the minimum absolute movement of the gizzard
// difference that counts as a change.
const GizzardTolerance = 0.01

// CompareCount compares the previously persisted integer scalar against
// the current one under exact equality. A nil previous value is the
// first-run seeding case and never yields a change; a nil current value
// yields no change either.
func CompareCount(label string, prev, curr *int64) []domain.Change {
	if prev == nil || curr == nil || *prev == *curr {
		return nil
	}
	return []domain.Change{{
		Label: label,
		Old:   strconv.FormatInt(*prev, 10),
		New:   strconv.FormatInt(*curr, 10),
	}}
}

// CompareWeight compares the previously persisted float scalar against
// the current one, reporting a change only when the movement is at least
// GizzardTolerance.
func CompareWeight(label string, prev, curr *float64) []domain.Change {
	if prev == nil || curr == nil {
		return nil
	}
	if math.Abs(*prev-*curr) < GizzardTolerance {
		return nil
	}
	return []domain.Change{{
		Label: label,
		Old:   strconv.FormatFloat(*prev, 'f', -1, 64),
		New:   strconv.FormatFloat(*curr, 'f', -1, 64),
	}}
}
