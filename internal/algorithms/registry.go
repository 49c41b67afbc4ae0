package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/sortlab/internal/trace"
)

// ErrUnknownAlgorithm indicates a name no instrumentor is registered under.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Instrumentor runs a sorting algorithm over its own copy of initial and
// returns the full execution trace. It never mutates initial.
type Instrumentor func(initial []trace.Item) trace.Trace

type Name string

const (
	NameBubble    Name = "bubble"
	NameQuick     Name = "quick"
	NameSelection Name = "selection"
	NameInsertion Name = "insertion"
	NameMerge     Name = "merge"
	NameHeap      Name = "heap"
)

var order = []Name{NameBubble, NameQuick, NameSelection, NameInsertion, NameMerge, NameHeap}

var registry = map[Name]Instrumentor{
	NameBubble:    Bubble,
	NameQuick:     Quick,
	NameSelection: Selection,
	NameInsertion: Insertion,
	NameMerge:     Merge,
	NameHeap:      Heap,
}

var aliases = map[string]Name{
	"bubble sort":             NameBubble,
	"exchange":                NameBubble,
	"exchange sort":           NameBubble,
	"quick sort":              NameQuick,
	"quicksort":               NameQuick,
	"partition-exchange":      NameQuick,
	"partition-exchange sort": NameQuick,
	"selection sort":          NameSelection,
	"insertion sort":          NameInsertion,
	"merge sort":              NameMerge,
	"mergesort":               NameMerge,
	"heap sort":               NameHeap,
	"heapsort":                NameHeap,
	"binary-heap sort":        NameHeap,
}

// Names lists the registered algorithms in menu order.
func Names() []Name {
	out := make([]Name, len(order))
	copy(out, order)
	return out
}

// ParseName resolves canonical names, display names and common aliases,
// ignoring case and surrounding space.
func ParseName(s string) (Name, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if _, ok := registry[Name(key)]; ok {
		return Name(key), nil
	}
	if n, ok := aliases[key]; ok {
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func Lookup(name Name) (Instrumentor, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Generate produces the trace of name over initial.
func Generate(name Name, initial []trace.Item) (trace.Trace, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return fn(initial), nil
}

// Next returns the algorithm after name in menu order, wrapping around.
func Next(name Name) Name {
	for i, n := range order {
		if n == name {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}
