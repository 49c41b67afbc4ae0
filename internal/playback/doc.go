// Package playback moves a cursor through a precomputed sorting trace.
//
// A Controller owns one trace at a time and exposes play/pause, single
// stepping, seeking, and the algorithm, size and speed settings. Timer ticks
// come from a Scheduler so the TUI can drive them through its own event loop
// and tests can fire them by hand.
package playback
