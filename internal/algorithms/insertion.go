package algorithms

import "github.com/san-kum/sortlab/internal/trace"

// Insertion records insertion sort as a chain of adjacent swaps. The final
// failing comparison of each inner loop is recorded too.
func Insertion(initial []trace.Item) trace.Trace {
	arr := trace.Clone(initial)
	n := len(arr)
	b := trace.NewBuilder(n * n)
	b.Begin(arr)

	for i := 1; i < n; i++ {
		b.SetSortedPrefix(i)
		b.Add(trace.KindObserve, arr, trace.Idx(i), nil, "Selected element %d to insert", arr[i].Value)

		j := i
		for j > 0 {
			if arr[j].Value >= arr[j-1].Value {
				b.Add(trace.KindCompare, arr, trace.Idx(j, j-1), nil,
					"Comparing %d < %d: no, stop here", arr[j].Value, arr[j-1].Value)
				break
			}
			b.Add(trace.KindCompare, arr, trace.Idx(j, j-1), nil,
				"Comparing %d < %d", arr[j].Value, arr[j-1].Value)
			b.Add(trace.KindSwapBefore, arr, trace.Idx(j, j-1), trace.Idx(j, j-1),
				"Swapping %d and %d", arr[j].Value, arr[j-1].Value)
			arr[j], arr[j-1] = arr[j-1], arr[j]
			b.Add(trace.KindSwapAfter, arr, nil, trace.Idx(j, j-1), "Swapped.")
			j--
		}

		b.SetSortedPrefix(i + 1)
		b.Add(trace.KindSorted, arr, nil, nil, "Element inserted at position %d", j)
	}

	return b.Finish(arr, "Insertion Sort Complete!")
}
