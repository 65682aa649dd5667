package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetShape(t *testing.T) {
	t.Parallel()

	empty := Sheet{}
	assert.False(t, empty.Valid())
	assert.Nil(t, empty.Headers())
	assert.Nil(t, empty.Values())

	headerOnly := Sheet{Rows: [][]string{{"A", "B"}}}
	assert.False(t, headerOnly.Valid())
	assert.Equal(t, []string{"A", "B"}, headerOnly.Headers())
	assert.Nil(t, headerOnly.Values())

	full := Sheet{Rows: [][]string{{"A", "B"}, {"1", "2"}}}
	assert.True(t, full.Valid())
	assert.Equal(t, []string{"A", "B"}, full.Headers())
	assert.Equal(t, []string{"1", "2"}, full.Values())
}
