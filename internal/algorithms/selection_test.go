package algorithms

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortlab/internal/trace"
)

func TestSelectionScenario(t *testing.T) {
	tr := Selection(trace.FromValues(rand.New(rand.NewSource(1)), 3, 1, 2))

	require.Equal(t, trace.KindCompare, tr[1].Kind)
	assert.Equal(t, []int{0, 1}, tr[1].Comparing)
	require.Equal(t, trace.KindObserve, tr[2].Kind)
	assert.Equal(t, []int{1}, tr[2].Comparing)
	assert.Equal(t, "New minimum found: 1", tr[2].Description)
	assert.Equal(t, 2, tr.Count(trace.KindSorted))
	assert.Equal(t, 3, tr.Count(trace.KindCompare))
}
