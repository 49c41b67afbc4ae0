package algorithms

import "github.com/san-kum/sortlab/internal/trace"

func Selection(initial []trace.Item) trace.Trace {
	arr := trace.Clone(initial)
	n := len(arr)
	b := trace.NewBuilder(n * n)
	b.Begin(arr)

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			b.Add(trace.KindCompare, arr, trace.Idx(minIdx, j), nil,
				"Comparing current minimum (%d) with %d", arr[minIdx].Value, arr[j].Value)
			if arr[j].Value < arr[minIdx].Value {
				minIdx = j
				b.Add(trace.KindObserve, arr, trace.Idx(minIdx), nil,
					"New minimum found: %d", arr[minIdx].Value)
			}
		}

		if minIdx != i {
			b.Add(trace.KindSwapBefore, arr, trace.Idx(i, minIdx), trace.Idx(i, minIdx),
				"Swapping %d and minimum %d", arr[i].Value, arr[minIdx].Value)
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
			b.Add(trace.KindSwapAfter, arr, nil, trace.Idx(i, minIdx), "Swapped.")
		}

		b.MarkSorted(i)
		b.Add(trace.KindSorted, arr, nil, nil, "Element at index %d is sorted.", i)
	}

	return b.Finish(arr, "Selection Sort Complete!")
}
