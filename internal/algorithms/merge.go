package algorithms

import "github.com/san-kum/sortlab/internal/trace"

// Merge records top-down merge sort. Nothing is marked sorted before the
// terminal step because merged runs are not in their final positions yet.
func Merge(initial []trace.Item) trace.Trace {
	arr := trace.Clone(initial)
	b := trace.NewBuilder(len(arr) * 8)
	b.Begin(arr)
	mergeRange(b, arr, 0, len(arr)-1)
	return b.Finish(arr, "Merge Sort Complete!")
}

func mergeRange(b *trace.Builder, arr []trace.Item, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeRange(b, arr, left, mid)
	mergeRange(b, arr, mid+1, right)
	merge(b, arr, left, mid, right)
}

// window lays the unconsumed buffer items out from k onwards so the
// snapshot shows each item of [left, right] exactly once.
type window struct {
	arr  []trace.Item
	l, r []trace.Item
}

func (w window) view(k, i, j int) []trace.Item {
	v := trace.Clone(w.arr)
	k += copy(v[k:], w.l[i:])
	copy(v[k:], w.r[j:])
	return v
}

func merge(b *trace.Builder, arr []trace.Item, left, mid, right int) {
	w := window{
		arr: arr,
		l:   trace.Clone(arr[left : mid+1]),
		r:   trace.Clone(arr[mid+1 : right+1]),
	}
	n1, n2 := len(w.l), len(w.r)
	i, j, k := 0, 0, left

	for i < n1 && j < n2 {
		b.Add(trace.KindCompare, w.view(k, i, j), trace.Idx(k, k+n1-i), nil,
			"Comparing %d and %d", w.l[i].Value, w.r[j].Value)

		if w.l[i].Value <= w.r[j].Value {
			arr[k] = w.l[i]
			i++
			b.Add(trace.KindWrite, w.view(k+1, i, j), nil, trace.Idx(k),
				"Taking %d from left subarray", arr[k].Value)
		} else {
			arr[k] = w.r[j]
			j++
			b.Add(trace.KindWrite, w.view(k+1, i, j), nil, trace.Idx(k),
				"Taking %d from right subarray", arr[k].Value)
		}
		k++
	}

	for i < n1 {
		arr[k] = w.l[i]
		i++
		b.Add(trace.KindWrite, w.view(k+1, i, j), nil, trace.Idx(k),
			"Taking remaining %d from left subarray", arr[k].Value)
		k++
	}

	for j < n2 {
		arr[k] = w.r[j]
		j++
		b.Add(trace.KindWrite, w.view(k+1, i, j), nil, trace.Idx(k),
			"Taking remaining %d from right subarray", arr[k].Value)
		k++
	}
}
