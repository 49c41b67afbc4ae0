package metrics

import "github.com/san-kum/sortlab/internal/trace"

// Counter counts steps of one kind.
type Counter struct {
	name string
	kind trace.Kind
	n    int
}

func NewComparisons() *Counter { return &Counter{name: "comparisons", kind: trace.KindCompare} }

// NewSwaps counts completed exchanges.
func NewSwaps() *Counter { return &Counter{name: "swaps", kind: trace.KindSwapAfter} }

// NewWrites counts merge placements.
func NewWrites() *Counter { return &Counter{name: "writes", kind: trace.KindWrite} }

func NewObservations() *Counter { return &Counter{name: "observations", kind: trace.KindObserve} }

func NewPivotSelections() *Counter { return &Counter{name: "pivots", kind: trace.KindPivot} }

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(s trace.Step) {
	if s.Kind == c.kind {
		c.n++
	}
}

func (c *Counter) Value() float64 { return float64(c.n) }

func (c *Counter) Reset() { c.n = 0 }

type Steps struct {
	n int
}

func NewSteps() *Steps { return &Steps{} }

func (s *Steps) Name() string { return "steps" }

func (s *Steps) Observe(trace.Step) { s.n++ }

func (s *Steps) Value() float64 { return float64(s.n) }

func (s *Steps) Reset() { s.n = 0 }
