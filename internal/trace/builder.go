package trace

import (
	"fmt"
	"slices"
)

// Builder accumulates steps in chronological order. Instrumentors keep one
// builder for the whole run and pass it by pointer through recursion, so
// nested calls append in the order they execute.
//
// The builder owns the sorted set; every appended step receives a snapshot of
// it along with deep copies of the array and highlight indices.
type Builder struct {
	steps  Trace
	sorted []int
}

func NewBuilder(capacity int) *Builder {
	return &Builder{steps: make(Trace, 0, capacity)}
}

// Begin appends the initial step.
func (b *Builder) Begin(arr []Item) {
	b.steps = append(b.steps, Step{
		Kind:        KindInitial,
		Array:       cloneItems(arr),
		Comparing:   []int{},
		Swapping:    []int{},
		Sorted:      []int{},
		Pivot:       NoPivot,
		Description: "Initial State",
	})
}

// Add appends a step without a pivot.
func (b *Builder) Add(kind Kind, arr []Item, comparing, swapping []int, format string, args ...any) {
	b.AddWithPivot(kind, arr, comparing, swapping, NoPivot, format, args...)
}

// AddWithPivot appends a step that carries an active pivot index.
func (b *Builder) AddWithPivot(kind Kind, arr []Item, comparing, swapping []int, pivot int, format string, args ...any) {
	desc := format
	if len(args) > 0 {
		desc = fmt.Sprintf(format, args...)
	}
	b.steps = append(b.steps, Step{
		Kind:        kind,
		Array:       cloneItems(arr),
		Comparing:   cloneInts(comparing),
		Swapping:    cloneInts(swapping),
		Sorted:      cloneInts(b.sorted),
		Pivot:       pivot,
		Description: desc,
	})
}

// MarkSorted adds indices to the sorted set. Marks are permanent.
func (b *Builder) MarkSorted(idx ...int) {
	for _, i := range idx {
		if !slices.Contains(b.sorted, i) {
			b.sorted = append(b.sorted, i)
		}
	}
	slices.Sort(b.sorted)
}

// SetSortedPrefix marks [0, n) sorted.
func (b *Builder) SetSortedPrefix(n int) {
	for i := 0; i < n; i++ {
		b.MarkSorted(i)
	}
}

// Len is the number of steps appended so far.
func (b *Builder) Len() int { return len(b.steps) }

// Finish appends the terminal step with every index sorted and returns the
// trace. The builder must not be used afterwards.
func (b *Builder) Finish(arr []Item, description string) Trace {
	all := make([]int, len(arr))
	for i := range all {
		all[i] = i
	}
	b.steps = append(b.steps, Step{
		Kind:        KindComplete,
		Array:       cloneItems(arr),
		Comparing:   []int{},
		Swapping:    []int{},
		Sorted:      all,
		Pivot:       NoPivot,
		Description: description,
	})
	out := b.steps
	b.steps, b.sorted = nil, nil
	return out
}

// Idx is shorthand for an index set literal.
func Idx(i ...int) []int { return i }
