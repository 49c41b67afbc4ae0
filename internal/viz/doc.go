// Package viz is the terminal front end for sortlab.
//
// It renders the step under the playback cursor as colored bars (plus a
// tree for heap sort) and maps keys onto playback commands:
//
//	space    play / pause
//	h l      step back / forward
//	[ ]      seek 10 steps back / forward
//	g G      first / last step
//	r        new random array
//	+ -      array size
//	< >      slower / faster
//	tab      next algorithm
//	t        cycle color themes
//	i        algorithm info panel
//	q        quit
//
// Playback ticks arrive as bubbletea messages; see teaScheduler.
package viz
