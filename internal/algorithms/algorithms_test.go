package algorithms

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortlab/internal/trace"
)

// monotoneSorted lists the algorithms whose sorted set only ever grows.
var monotoneSorted = map[Name]bool{
	NameBubble:    true,
	NameSelection: true,
	NameInsertion: true,
	NameHeap:      true,
}

func inputs(t *testing.T) map[string][]trace.Item {
	t.Helper()
	rng := rand.New(rand.NewSource(2024))
	cases := map[string][]trace.Item{
		"empty":      {},
		"single":     trace.FromValues(rng, 5),
		"pair":       trace.FromValues(rng, 2, 1),
		"sorted":     trace.FromValues(rng, 10, 20, 30, 40, 50),
		"reversed":   trace.FromValues(rng, 90, 70, 50, 30, 10),
		"all equal":  trace.FromValues(rng, 42, 42, 42, 42),
		"duplicates": trace.FromValues(rng, 30, 10, 30, 20, 10, 30),
	}
	for _, n := range []int{5, 17, 40} {
		cases[fmt.Sprintf("random%d", n)] = trace.NewArray(rng, n, 10, 100)
	}
	// A narrow value range forces many duplicates.
	cases["narrow"] = trace.NewArray(rng, 33, 10, 13)
	return cases
}

func TestAllAlgorithmsProduceValidTraces(t *testing.T) {
	for _, name := range Names() {
		for label, items := range inputs(t) {
			t.Run(string(name)+"/"+label, func(t *testing.T) {
				tr, err := Generate(name, items)
				require.NoError(t, err)
				require.NoError(t, tr.Validate())

				first, last := tr[0], tr.Last()
				assert.Equal(t, trace.KindInitial, first.Kind)
				assert.Equal(t, trace.KindComplete, last.Kind)
				assert.Len(t, last.Sorted, len(items))
				assert.True(t, sort.IntsAreSorted(last.Values()))
				assert.Equal(t, 1, tr.Count(trace.KindComplete))
			})
		}
	}
}

func TestValueMultisetPreservedEveryStep(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	items := trace.NewArray(rng, 25, 10, 20)
	want := sortedValues(items)

	for _, name := range Names() {
		tr, err := Generate(name, items)
		require.NoError(t, err)
		for i, s := range tr {
			require.Equal(t, want, sortedValues(s.Array), "%s step %d", name, i)
		}
	}
}

func TestInputNotMutated(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	items := trace.NewArray(rng, 30, 10, 100)
	before := trace.Clone(items)

	for _, name := range Names() {
		_, err := Generate(name, items)
		require.NoError(t, err)
		require.Equal(t, before, items, "%s mutated its input", name)
	}
}

func TestDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	items := trace.NewArray(rng, 20, 10, 100)

	for _, name := range Names() {
		a, err := Generate(name, items)
		require.NoError(t, err)
		b, err := Generate(name, items)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: traces differ (-first +second):\n%s", name, diff)
		}
	}
}

func TestSortedSetMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for _, n := range []int{2, 7, 19, 40} {
		items := trace.NewArray(rng, n, 10, 30)
		for name := range monotoneSorted {
			tr, err := Generate(name, items)
			require.NoError(t, err)

			prev := map[int]bool{}
			for i, s := range tr {
				cur := map[int]bool{}
				for _, idx := range s.Sorted {
					cur[idx] = true
				}
				for idx := range prev {
					require.True(t, cur[idx], "%s n=%d: index %d unmarked at step %d", name, n, idx, i)
				}
				prev = cur
			}
		}
	}
}

func TestDeferredSortedSet(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	items := trace.NewArray(rng, 12, 10, 100)

	for _, name := range []Name{NameQuick, NameMerge} {
		tr, err := Generate(name, items)
		require.NoError(t, err)
		for _, s := range tr[:len(tr)-1] {
			assert.Empty(t, s.Sorted, "%s marked sorted before completion: %q", name, s.Description)
		}
	}
}

func TestComparisonStepsHighlightTwoIndices(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	items := trace.NewArray(rng, 15, 10, 100)

	for _, name := range Names() {
		tr, err := Generate(name, items)
		require.NoError(t, err)
		for i, s := range tr {
			switch s.Kind {
			case trace.KindCompare:
				assert.Len(t, s.Comparing, 2, "%s step %d", name, i)
			case trace.KindObserve:
				assert.Len(t, s.Comparing, 1, "%s step %d", name, i)
			case trace.KindSwapBefore, trace.KindSwapAfter:
				assert.Len(t, s.Swapping, 2, "%s step %d", name, i)
			case trace.KindWrite:
				assert.Len(t, s.Swapping, 1, "%s step %d", name, i)
			}
		}
	}
}

func TestSwapBracketsPair(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	items := trace.NewArray(rng, 20, 10, 100)

	for _, name := range []Name{NameBubble, NameQuick, NameSelection, NameInsertion, NameHeap} {
		tr, err := Generate(name, items)
		require.NoError(t, err)
		for i, s := range tr {
			if s.Kind != trace.KindSwapBefore {
				continue
			}
			next := tr[i+1]
			require.Equal(t, trace.KindSwapAfter, next.Kind, "%s step %d", name, i)
			a, b := s.Swapping[0], s.Swapping[1]
			assert.Equal(t, s.Array[a].ID, next.Array[b].ID)
			assert.Equal(t, s.Array[b].ID, next.Array[a].ID)
		}
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in   string
		want Name
	}{
		{"bubble", NameBubble},
		{"Bubble Sort", NameBubble},
		{"  QUICKSORT ", NameQuick},
		{"partition-exchange", NameQuick},
		{"selection", NameSelection},
		{"Insertion Sort", NameInsertion},
		{"mergesort", NameMerge},
		{"binary-heap sort", NameHeap},
	}
	for _, tt := range tests {
		got, err := ParseName(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseName("bogo")
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestGenerateUnknown(t *testing.T) {
	_, err := Generate(Name("shell"), nil)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestRegistryCoverage(t *testing.T) {
	names := Names()
	require.Len(t, names, 6)
	for _, name := range names {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
		info, ok := Describe(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, info.Code)
		assert.NotEmpty(t, info.Complexity)
	}
	assert.Equal(t, NameQuick, Next(NameBubble))
	assert.Equal(t, NameBubble, Next(NameHeap))
	assert.Equal(t, "Heap Sort", DisplayName(NameHeap))
}

func sortedValues(items []trace.Item) []int {
	vals := make([]int, len(items))
	for i, it := range items {
		vals[i] = it.Value
	}
	sort.Ints(vals)
	return vals
}
