package algorithms

import "github.com/san-kum/sortlab/internal/trace"

// Quick records partition-exchange sort with the rightmost element as pivot.
// Partition boundaries are not marked sorted; only the terminal step does.
func Quick(initial []trace.Item) trace.Trace {
	arr := trace.Clone(initial)
	b := trace.NewBuilder(len(arr) * 8)
	b.Begin(arr)
	quickRange(b, arr, 0, len(arr)-1)
	return b.Finish(arr, "Quick Sort Complete!")
}

func quickRange(b *trace.Builder, arr []trace.Item, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(b, arr, lo, hi)
	quickRange(b, arr, lo, p-1)
	quickRange(b, arr, p+1, hi)
}

func partition(b *trace.Builder, arr []trace.Item, lo, hi int) int {
	pivot := arr[hi]
	b.AddWithPivot(trace.KindPivot, arr, nil, nil, hi, "Pivot selected: %d", pivot.Value)

	i := lo - 1
	for j := lo; j < hi; j++ {
		b.AddWithPivot(trace.KindCompare, arr, trace.Idx(j, hi), nil, hi,
			"Comparing %d with pivot %d", arr[j].Value, pivot.Value)

		if arr[j].Value < pivot.Value {
			i++
			if i != j {
				b.AddWithPivot(trace.KindSwapBefore, arr, trace.Idx(j, hi), trace.Idx(i, j), hi,
					"Swapping %d and %d", arr[i].Value, arr[j].Value)
				arr[i], arr[j] = arr[j], arr[i]
				b.AddWithPivot(trace.KindSwapAfter, arr, nil, trace.Idx(i, j), hi, "Swapped.")
			}
		}
	}

	p := i + 1
	if p != hi {
		b.AddWithPivot(trace.KindSwapBefore, arr, nil, trace.Idx(p, hi), hi,
			"Moving pivot %d to index %d", pivot.Value, p)
		arr[p], arr[hi] = arr[hi], arr[p]
		b.AddWithPivot(trace.KindSwapAfter, arr, nil, trace.Idx(p, hi), p, "Pivot moved.")
	}
	return p
}
