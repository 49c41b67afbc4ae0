package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/trace"
)

var ErrInvalidSize = errors.New("experiment: array size must not be negative")

// Config describes one run. The seed is used as given; callers wanting a
// fresh array pick a time-based seed themselves.
type Config struct {
	Algorithm algorithms.Name
	Size      int
	Min       int
	Max       int
	Seed      int64
}

type Result struct {
	ID        uuid.UUID
	Algorithm algorithms.Name
	Seed      int64
	Initial   []trace.Item
	Trace     trace.Trace
	Metrics   map[string]float64
	Elapsed   time.Duration
}

type Experiment struct {
	cfg        Config
	randSource *rand.Rand
	metrics    []metrics.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// AddMetric replaces the default metric set with the ones added.
func (e *Experiment) AddMetric(m metrics.Metric) {
	e.metrics = append(e.metrics, m)
}

// Run draws the array from the seed and traces the configured algorithm
// over it.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.cfg.Size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, e.cfg.Size)
	}
	if _, ok := algorithms.Lookup(e.cfg.Algorithm); !ok {
		return nil, fmt.Errorf("%w: %q", algorithms.ErrUnknownAlgorithm, e.cfg.Algorithm)
	}
	initial := trace.NewArray(e.randSource, e.cfg.Size, e.cfg.Min, e.cfg.Max)

	res, err := RunOn(ctx, e.cfg.Algorithm, initial, e.metrics...)
	if err != nil {
		return nil, err
	}
	res.Seed = e.cfg.Seed
	return res, nil
}

// RunOn traces name over initial, checks the trace and measures it. With no
// metrics given the default set is used.
func RunOn(ctx context.Context, name algorithms.Name, initial []trace.Item, ms ...metrics.Metric) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	tr, err := algorithms.Generate(name, initial)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	if err := tr.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Result{
		ID:        uuid.New(),
		Algorithm: name,
		Initial:   trace.Clone(initial),
		Trace:     tr,
		Metrics:   metrics.Collect(tr, ms...),
		Elapsed:   elapsed,
	}, nil
}
