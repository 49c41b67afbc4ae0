package viz

import "github.com/san-kum/sortlab/internal/trace"

// Highlight is how a single bar is painted.
type Highlight int

const (
	HighlightDefault Highlight = iota
	HighlightSorted
	HighlightComparing
	HighlightSwapping
	HighlightPivot
)

func (h Highlight) String() string {
	switch h {
	case HighlightSorted:
		return "sorted"
	case HighlightComparing:
		return "comparing"
	case HighlightSwapping:
		return "swapping"
	case HighlightPivot:
		return "pivot"
	}
	return "default"
}

// HighlightOf resolves index i of s. When an index is in several sets the
// winner is pivot, then swapping, then comparing, then sorted.
func HighlightOf(s trace.Step, i int) Highlight {
	switch {
	case s.HasPivot() && s.Pivot == i:
		return HighlightPivot
	case s.IsSwapping(i):
		return HighlightSwapping
	case s.IsComparing(i):
		return HighlightComparing
	case s.IsSorted(i):
		return HighlightSorted
	}
	return HighlightDefault
}

// Highlights resolves every index of s.
func Highlights(s trace.Step) []Highlight {
	out := make([]Highlight, len(s.Array))
	for i := range out {
		out[i] = HighlightOf(s, i)
	}
	return out
}
