package algorithms

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortlab/internal/trace"
)

func TestHeapBuildsMaxHeap(t *testing.T) {
	tr := Heap(trace.NewArray(rand.New(rand.NewSource(12)), 31, 10, 100))

	idx := -1
	for i, s := range tr {
		if s.Kind == trace.KindHeapBuilt {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx)
	built := tr[idx]
	assert.Empty(t, built.Sorted)

	vals := built.Values()
	for i := range vals {
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(vals) {
				assert.GreaterOrEqual(t, vals[i], vals[c], "parent %d child %d", i, c)
			}
		}
	}
}

func TestHeapMarksExtractedSlotImmediately(t *testing.T) {
	tr := Heap(trace.FromValues(rand.New(rand.NewSource(1)), 4, 1, 3, 2))

	var extractions []trace.Step
	for i, s := range tr {
		if s.Kind == trace.KindSwapBefore && s.Swapping[0] == 0 && len(s.Description) > 6 && s.Description[:6] == "Moving" {
			extractions = append(extractions, tr[i+1])
		}
	}
	require.Len(t, extractions, 3)
	for n, s := range extractions {
		end := 3 - n
		assert.True(t, s.IsSorted(end), "index %d not sorted after extraction", end)
		assert.False(t, s.IsSorted(0))
	}
}
