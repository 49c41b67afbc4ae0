// Package algorithms provides the instrumented sorting algorithms.
//
// Each instrumentor sorts a private copy of its input and records a
// [trace.Trace] of every comparison, exchange, write, pivot selection and
// completion event:
//
//   - [Bubble]: exchange sort with early exit
//   - [Quick]: partition-exchange sort, rightmost pivot
//   - [Selection], [Insertion]
//   - [Merge]: top-down merge sort, visualized in place
//   - [Heap]: binary-heap sort
//
// Bubble, Selection, Insertion and Heap grow the sorted set as final
// positions are established. Quick and Merge leave it empty until the
// terminal step.
//
// # Example
//
//	items := trace.NewArray(rng, 20, trace.DefaultMin, trace.DefaultMax)
//	tr, err := algorithms.Generate(algorithms.NameHeap, items)
package algorithms
