package metrics

import "github.com/san-kum/sortlab/internal/trace"

// Metric accumulates a single number over the steps of a trace.
type Metric interface {
	Name() string
	Observe(s trace.Step)
	Value() float64
	Reset()
}

// Default returns fresh instances of the standard metric set.
func Default() []Metric {
	return []Metric{
		NewSteps(),
		NewComparisons(),
		NewSwaps(),
		NewWrites(),
		NewObservations(),
		NewPivotSelections(),
	}
}

// Collect resets each metric, feeds it every step of tr and returns the
// values keyed by name.
func Collect(tr trace.Trace, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	for _, m := range ms {
		m.Reset()
	}
	for _, s := range tr {
		for _, m := range ms {
			m.Observe(s)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Series returns m's value after each step, m reset first.
func Series(tr trace.Trace, m Metric) []float64 {
	m.Reset()
	out := make([]float64, len(tr))
	for i, s := range tr {
		m.Observe(s)
		out[i] = m.Value()
	}
	return out
}

// ByName returns a fresh metric from the default set or the disorder metric.
func ByName(name string) (Metric, bool) {
	for _, m := range append(Default(), NewDisorder()) {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}
