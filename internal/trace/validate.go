package trace

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate checks the structural invariants every instrumentor guarantees.
func (t Trace) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty trace", ErrInvalidTrace)
	}

	first := t[0]
	if first.Kind != KindInitial {
		return invalid(0, "first step is %s, want initial", first.Kind)
	}
	if len(first.Comparing)+len(first.Swapping)+len(first.Sorted) != 0 || first.HasPivot() {
		return invalid(0, "initial step carries highlights")
	}

	n := len(first.Array)
	ids := make(map[uuid.UUID]int, n)
	values := make(map[int]int, n)
	for _, it := range first.Array {
		ids[it.ID]++
		values[it.Value]++
	}

	for i, s := range t {
		if len(s.Array) != n {
			return invalid(i, "array length %d, want %d", len(s.Array), n)
		}
		if err := samePermutation(s.Array, ids, values); err != "" {
			return invalid(i, "%s", err)
		}
		for _, set := range [][]int{s.Comparing, s.Swapping, s.Sorted} {
			for _, idx := range set {
				if idx < 0 || idx >= n {
					return invalid(i, "highlight index %d out of range", idx)
				}
			}
		}
		if s.HasPivot() && (s.Pivot < 0 || s.Pivot >= n) {
			return invalid(i, "pivot %d out of range", s.Pivot)
		}
	}

	last := t[len(t)-1]
	if last.Kind != KindComplete {
		return invalid(len(t)-1, "last step is %s, want complete", last.Kind)
	}
	if len(last.Sorted) != n {
		return invalid(len(t)-1, "terminal step marks %d of %d indices sorted", len(last.Sorted), n)
	}
	for i := 1; i < n; i++ {
		if last.Array[i-1].Value > last.Array[i].Value {
			return invalid(len(t)-1, "result not sorted at index %d", i)
		}
	}
	return nil
}

func samePermutation(arr []Item, ids map[uuid.UUID]int, values map[int]int) string {
	seenIDs := make(map[uuid.UUID]int, len(arr))
	seenVals := make(map[int]int, len(arr))
	for _, it := range arr {
		seenIDs[it.ID]++
		seenVals[it.Value]++
	}
	for id, c := range ids {
		if seenIDs[id] != c {
			return fmt.Sprintf("item %s appears %d times, want %d", id, seenIDs[id], c)
		}
	}
	for v, c := range values {
		if seenVals[v] != c {
			return fmt.Sprintf("value %d appears %d times, want %d", v, seenVals[v], c)
		}
	}
	if len(seenIDs) != len(ids) {
		return "unknown item introduced"
	}
	return ""
}

func invalid(index int, format string, args ...any) error {
	return &StepError{Index: index, Reason: fmt.Sprintf(format, args...), Wrapped: ErrInvalidTrace}
}
