package algorithms

import "github.com/san-kum/sortlab/internal/trace"

// Bubble records exchange sort. A pass without swaps ends the run early.
func Bubble(initial []trace.Item) trace.Trace {
	arr := trace.Clone(initial)
	n := len(arr)
	b := trace.NewBuilder(n * n)
	b.Begin(arr)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			b.Add(trace.KindCompare, arr, trace.Idx(j, j+1), nil,
				"Comparing index %d (%d) and %d (%d)", j, arr[j].Value, j+1, arr[j+1].Value)

			if arr[j].Value > arr[j+1].Value {
				b.Add(trace.KindSwapBefore, arr, trace.Idx(j, j+1), trace.Idx(j, j+1),
					"Swapping %d and %d", arr[j].Value, arr[j+1].Value)
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
				b.Add(trace.KindSwapAfter, arr, nil, trace.Idx(j, j+1), "Swapped.")
			}
		}

		last := n - 1 - i
		b.MarkSorted(last)
		if !swapped {
			b.Add(trace.KindSorted, arr, nil, nil,
				"Element at index %d is now sorted. No swaps in this pass, array is sorted early!", last)
			break
		}
		b.Add(trace.KindSorted, arr, nil, nil, "Element at index %d is now sorted.", last)
	}

	return b.Finish(arr, "Sorting Complete!")
}
