package trace

import (
	"fmt"

	"github.com/google/uuid"
)

// NoPivot marks a step without an active pivot.
const NoPivot = -1

// Item is a sortable value with an identity that survives every move.
type Item struct {
	ID    uuid.UUID `json:"id"`
	Value int       `json:"value"`
}

func (it Item) String() string { return fmt.Sprintf("%d", it.Value) }

// Kind names the event a step depicts.
type Kind int

const (
	KindInitial Kind = iota
	KindCompare
	KindObserve
	KindSwapBefore
	KindSwapAfter
	KindWrite
	KindPivot
	KindSorted
	KindHeapBuilt
	KindComplete
)

var kindNames = [...]string{
	KindInitial:    "initial",
	KindCompare:    "compare",
	KindObserve:    "observe",
	KindSwapBefore: "swap-before",
	KindSwapAfter:  "swap-after",
	KindWrite:      "write",
	KindPivot:      "pivot",
	KindSorted:     "sorted",
	KindHeapBuilt:  "heap-built",
	KindComplete:   "complete",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Step is an immutable snapshot of the array plus what is happening to it.
type Step struct {
	Kind        Kind
	Array       []Item
	Comparing   []int
	Swapping    []int
	Sorted      []int
	Pivot       int
	Description string
}

func (s Step) HasPivot() bool { return s.Pivot != NoPivot }

// Values returns the step's values in array order.
func (s Step) Values() []int {
	vals := make([]int, len(s.Array))
	for i, it := range s.Array {
		vals[i] = it.Value
	}
	return vals
}

// IsSorted reports whether index i is marked sorted in this step.
func (s Step) IsSorted(i int) bool { return contains(s.Sorted, i) }

func (s Step) IsComparing(i int) bool { return contains(s.Comparing, i) }

func (s Step) IsSwapping(i int) bool { return contains(s.Swapping, i) }

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	c := s
	c.Array = cloneItems(s.Array)
	c.Comparing = cloneInts(s.Comparing)
	c.Swapping = cloneInts(s.Swapping)
	c.Sorted = cloneInts(s.Sorted)
	return c
}

// Trace is the complete ordered execution record of one sorting run.
type Trace []Step

func (t Trace) Len() int { return len(t) }

// At returns a copy of the step at index. Writing to the copy leaves the
// trace untouched.
func (t Trace) At(index int) (Step, error) {
	if index < 0 || index >= len(t) {
		return Step{}, fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, index, len(t)-1)
	}
	return t[index].Clone(), nil
}

// Last returns the terminal step. It panics on an empty trace, which no
// instrumentor produces.
func (t Trace) Last() Step { return t[len(t)-1] }

// LastIndex is len-1, or -1 for an empty trace.
func (t Trace) LastIndex() int { return len(t) - 1 }

// Count returns how many steps have the given kind.
func (t Trace) Count(k Kind) int {
	n := 0
	for _, s := range t {
		if s.Kind == k {
			n++
		}
	}
	return n
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func cloneItems(items []Item) []Item {
	c := make([]Item, len(items))
	copy(c, items)
	return c
}

func cloneInts(xs []int) []int {
	if len(xs) == 0 {
		return []int{}
	}
	c := make([]int, len(xs))
	copy(c, xs)
	return c
}

// Clone returns an independent copy of items.
func Clone(items []Item) []Item { return cloneItems(items) }
