package algorithms

// Info is the reference card shown next to a running algorithm.
type Info struct {
	DisplayName string
	Description string
	Complexity  string
	Code        string
}

var infos = map[Name]Info{
	NameBubble: {
		DisplayName: "Bubble Sort",
		Description: "Bubble Sort repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order. It is simple but performs poorly (O(n²)) on large inputs.",
		Complexity:  "O(n²)",
		Code: `func bubbleSort(a []int) {
	n := len(a)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}`,
	},
	NameQuick: {
		DisplayName: "Quick Sort",
		Description: "Quick Sort is a divide-and-conquer algorithm. It selects a pivot and partitions the other elements into those smaller and those not smaller than the pivot, then sorts both sides recursively.",
		Complexity:  "O(n log n)",
		Code: `func quickSort(a []int, lo, hi int) {
	if lo < hi {
		p := partition(a, lo, hi)
		quickSort(a, lo, p-1)
		quickSort(a, p+1, hi)
	}
}

func partition(a []int, lo, hi int) int {
	pivot := a[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[hi] = a[hi], a[i+1]
	return i + 1
}`,
	},
	NameSelection: {
		DisplayName: "Selection Sort",
		Description: "Selection Sort splits the list into a sorted prefix and an unsorted remainder, repeatedly selecting the smallest remaining element and moving it to the end of the prefix.",
		Complexity:  "O(n²)",
		Code: `func selectionSort(a []int) {
	n := len(a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
		}
	}
}`,
	},
	NameInsertion: {
		DisplayName: "Insertion Sort",
		Description: "Insertion Sort builds the sorted array one item at a time, shifting each new element left until it sits after a smaller or equal neighbor.",
		Complexity:  "O(n²)",
		Code: `func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}`,
	},
	NameMerge: {
		DisplayName: "Merge Sort",
		Description: "Merge Sort is a stable divide-and-conquer algorithm: it halves the range until single elements remain, then merges adjacent sorted runs back together.",
		Complexity:  "O(n log n)",
		Code: `func mergeSort(a []int, l, r int) {
	if l >= r {
		return
	}
	m := l + (r-l)/2
	mergeSort(a, l, m)
	mergeSort(a, m+1, r)
	merge(a, l, m, r)
}

func merge(a []int, l, m, r int) {
	left := append([]int(nil), a[l:m+1]...)
	right := append([]int(nil), a[m+1:r+1]...)
	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		k++
	}
	k += copy(a[k:], left[i:])
	copy(a[k:], right[j:])
}`,
	},
	NameHeap: {
		DisplayName: "Heap Sort",
		Description: "Heap Sort arranges the array as a binary max-heap, then repeatedly moves the root to the end of the unsorted region and restores the heap on what remains.",
		Complexity:  "O(n log n)",
		Code: `func heapSort(a []int) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, n, i)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, end, 0)
	}
}

func siftDown(a []int, n, i int) {
	for {
		largest, l, r := i, 2*i+1, 2*i+2
		if l < n && a[l] > a[largest] {
			largest = l
		}
		if r < n && a[r] > a[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		i = largest
	}
}`,
	},
}

// Describe returns the reference card for name.
func Describe(name Name) (Info, bool) {
	info, ok := infos[name]
	return info, ok
}

// DisplayName falls back to the canonical name for unknown algorithms.
func DisplayName(name Name) string {
	if info, ok := infos[name]; ok {
		return info.DisplayName
	}
	return string(name)
}
