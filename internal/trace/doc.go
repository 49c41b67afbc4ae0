// Package trace provides the data model shared by every sorting instrumentor.
//
// A sorting run is recorded as a [Trace]: an ordered, fully materialized
// sequence of [Step] snapshots. Each step owns an independent copy of the
// array it depicts, so later mutation of an instrumentor's working buffer can
// never rewrite history.
//
//   - [Item]: a sortable value with a stable identity
//   - [Step]: one snapshot plus the highlighted indices and narration
//   - [Builder]: the append-only accumulator instrumentors write through
//   - [NewArray]: random initial arrays with reproducible identities
//
// # Invariants
//
// trace[0] is the initial state with no highlights. trace[last] marks every
// index sorted and holds a permutation of trace[0] that is non-decreasing by
// value. Every step in between is a permutation of the same items.
// [Trace.Validate] checks all of these.
package trace
