package algorithms

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortlab/internal/trace"
)

func TestQuickSingleElement(t *testing.T) {
	tr := Quick(trace.FromValues(rand.New(rand.NewSource(1)), 5))

	require.Len(t, tr, 2)
	assert.Zero(t, tr.Count(trace.KindPivot))
	assert.Zero(t, tr.Count(trace.KindCompare))
	assert.Equal(t, []int{0}, tr[1].Sorted)
}

func TestQuickPartition(t *testing.T) {
	// Pivot 3: 1 stays, 5 stays, 2 swaps with 5, then the pivot moves to index 2.
	tr := Quick(trace.FromValues(rand.New(rand.NewSource(1)), 1, 5, 2, 3))

	require.Equal(t, trace.KindPivot, tr[1].Kind)
	assert.Equal(t, 3, tr[1].Pivot)
	assert.Equal(t, "Pivot selected: 3", tr[1].Description)

	var moved trace.Step
	found := false
	for _, s := range tr {
		if s.Kind == trace.KindSwapAfter && s.Description == "Pivot moved." {
			moved, found = s, true
			break
		}
	}
	require.True(t, found)
	assert.Equal(t, 2, moved.Pivot)
	assert.Equal(t, []int{1, 2, 3, 5}, moved.Values())
	assert.Equal(t, 3, moved.Array[moved.Pivot].Value)
}

func TestQuickPivotOnEveryPartitionStep(t *testing.T) {
	tr := Quick(trace.NewArray(rand.New(rand.NewSource(4)), 25, 10, 100))

	for i, s := range tr[1 : len(tr)-1] {
		assert.True(t, s.HasPivot(), "step %d %q has no pivot", i+1, s.Description)
	}
	assert.False(t, tr[0].HasPivot())
	assert.False(t, tr.Last().HasPivot())
}

func TestQuickComparesAgainstPivot(t *testing.T) {
	tr := Quick(trace.NewArray(rand.New(rand.NewSource(6)), 20, 10, 100))
	for _, s := range tr {
		if s.Kind == trace.KindCompare {
			assert.Equal(t, s.Pivot, s.Comparing[1])
		}
	}
}
