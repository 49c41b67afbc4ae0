package algorithms

import "github.com/san-kum/sortlab/internal/trace"

// Heap records binary-heap sort: bottom-up max-heap construction, then
// repeated extraction of the root into the sorted suffix.
func Heap(initial []trace.Item) trace.Trace {
	arr := trace.Clone(initial)
	n := len(arr)
	b := trace.NewBuilder(n * 16)
	b.Begin(arr)

	h := &heapSorter{b: b, arr: arr}
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(n, i)
	}
	if n > 1 {
		b.Add(trace.KindHeapBuilt, arr, nil, nil, "Max Heap built. Starting extraction.")
	}

	for end := n - 1; end > 0; end-- {
		b.Add(trace.KindSwapBefore, arr, trace.Idx(0, end), trace.Idx(0, end),
			"Moving root %d to end", arr[0].Value)
		arr[0], arr[end] = arr[end], arr[0]
		b.MarkSorted(end)
		b.Add(trace.KindSwapAfter, arr, nil, trace.Idx(0, end), "Element %d is sorted.", arr[end].Value)
		h.siftDown(end, 0)
	}

	return b.Finish(arr, "Heap Sort Complete!")
}

type heapSorter struct {
	b   *trace.Builder
	arr []trace.Item
}

// siftDown restores the max-heap property for the subtree at i within the
// first size elements.
func (h *heapSorter) siftDown(size, i int) {
	arr := h.arr
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < size {
			h.b.Add(trace.KindCompare, arr, trace.Idx(largest, left), nil,
				"Comparing root %d with left child %d", arr[largest].Value, arr[left].Value)
			if arr[left].Value > arr[largest].Value {
				largest = left
			}
		}
		if right < size {
			h.b.Add(trace.KindCompare, arr, trace.Idx(largest, right), nil,
				"Comparing current largest %d with right child %d", arr[largest].Value, arr[right].Value)
			if arr[right].Value > arr[largest].Value {
				largest = right
			}
		}
		if largest == i {
			return
		}

		h.b.Add(trace.KindSwapBefore, arr, trace.Idx(i, largest), trace.Idx(i, largest),
			"Swapping %d and %d", arr[i].Value, arr[largest].Value)
		arr[i], arr[largest] = arr[largest], arr[i]
		h.b.Add(trace.KindSwapAfter, arr, nil, trace.Idx(i, largest), "Swapped.")
		i = largest
	}
}
