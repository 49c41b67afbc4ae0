package metrics

import "github.com/san-kum/sortlab/internal/trace"

// Disorder is the number of inversions in the most recently observed array.
// It is zero for a sorted array and falls as a run makes progress.
type Disorder struct {
	inversions int
	buf        []int
}

func NewDisorder() *Disorder { return &Disorder{} }

func (d *Disorder) Name() string { return "disorder" }

func (d *Disorder) Observe(s trace.Step) {
	d.buf = d.buf[:0]
	for _, it := range s.Array {
		d.buf = append(d.buf, it.Value)
	}
	d.inversions = countInversions(d.buf, make([]int, len(d.buf)))
}

func (d *Disorder) Value() float64 { return float64(d.inversions) }

func (d *Disorder) Reset() { d.inversions = 0 }

// countInversions merge-sorts a in place using tmp and counts pairs i<j with
// a[i] > a[j].
func countInversions(a, tmp []int) int {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	n := countInversions(a[:mid], tmp[:mid]) + countInversions(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			n += mid - i
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp)
	return n
}
