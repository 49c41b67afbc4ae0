package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/storage"
	"github.com/san-kum/sortlab/internal/trace"
)

var ErrEmptyScenario = errors.New("automation: scenario has no runs")

// Scenario is a scripted list of runs.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// SaveDir, when set, receives a full artifact directory per run.
	SaveDir string `yaml:"save_dir"`
	Runs    []Run  `yaml:"runs"`
}

// Run is a single entry of a scenario. Zero Min and Max use the default
// value range; Export names a JSON file for the run's trace.
type Run struct {
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Seed      int64  `yaml:"seed"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	Export    string `yaml:"export"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyScenario)
	}

	return &scenario, nil
}

// RunScenario executes every run in order. It stops at the first failure and
// returns the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, logger *slog.Logger) ([]*experiment.Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("scenario", scenario.Name)

	var store *storage.Store
	if scenario.SaveDir != "" {
		store = storage.New(scenario.SaveDir)
		if err := store.Init(); err != nil {
			return nil, err
		}
	}

	results := make([]*experiment.Result, 0, len(scenario.Runs))
	for i, run := range scenario.Runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		name, err := algorithms.ParseName(run.Algorithm)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		lo, hi := run.Min, run.Max
		if lo == 0 && hi == 0 {
			lo, hi = trace.DefaultMin, trace.DefaultMax
		}

		logger.Info("running", "run", fmt.Sprintf("%d/%d", i+1, len(scenario.Runs)), "algorithm", name, "size", run.Size, "seed", run.Seed)
		res, err := experiment.New(experiment.Config{
			Algorithm: name,
			Size:      run.Size,
			Min:       lo,
			Max:       hi,
			Seed:      run.Seed,
		}).Run(ctx)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		results = append(results, res)
		logger.Debug("run complete", "steps", res.Trace.Len(), "comparisons", res.Metrics["comparisons"], "elapsed", res.Elapsed)

		if run.Export != "" {
			if err := exportRun(run.Export, res); err != nil {
				return results, fmt.Errorf("run %d export: %w", i+1, err)
			}
			logger.Info("exported", "path", run.Export)
		}
		if store != nil {
			runID, err := store.Save(res)
			if err != nil {
				return results, fmt.Errorf("run %d save: %w", i+1, err)
			}
			logger.Info("saved", "run_id", runID)
		}
	}

	return results, nil
}

func exportRun(path string, res *experiment.Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	meta := export.Meta{
		ID:        res.ID,
		Algorithm: string(res.Algorithm),
		Seed:      res.Seed,
		Size:      len(res.Initial),
		CreatedAt: time.Now(),
		Metrics:   res.Metrics,
	}
	if err := export.WriteJSON(f, meta, res.Trace); err != nil {
		return err
	}
	return f.Close()
}

// SizeSweep traces one algorithm over a range of array sizes.
type SizeSweep struct {
	Algorithm algorithms.Name
	MinSize   int
	MaxSize   int
	Step      int
	Seed      int64
}

type SweepResult struct {
	Size    int
	Metrics map[string]float64
}

// RunSweep runs the sweep from MinSize to MaxSize inclusive. Each size uses
// the same seed so growth reflects the size, not luck.
func RunSweep(ctx context.Context, sweep *SizeSweep, logger *slog.Logger) ([]SweepResult, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	step := sweep.Step
	if step <= 0 {
		step = 1
	}
	if sweep.MinSize < 0 || sweep.MaxSize < sweep.MinSize {
		return nil, fmt.Errorf("%w: sizes [%d, %d]", experiment.ErrInvalidSize, sweep.MinSize, sweep.MaxSize)
	}

	results := make([]SweepResult, 0, (sweep.MaxSize-sweep.MinSize)/step+1)
	for size := sweep.MinSize; size <= sweep.MaxSize; size += step {
		res, err := experiment.New(experiment.Config{
			Algorithm: sweep.Algorithm,
			Size:      size,
			Min:       trace.DefaultMin,
			Max:       trace.DefaultMax,
			Seed:      sweep.Seed,
		}).Run(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, SweepResult{Size: size, Metrics: res.Metrics})
		logger.Debug("sweep", "algorithm", sweep.Algorithm, "size", size, "comparisons", res.Metrics["comparisons"])
	}

	return results, nil
}

// TrialConfig repeats one algorithm over freshly drawn arrays.
type TrialConfig struct {
	Algorithm algorithms.Name
	Size      int
	NumTrials int
	// Seed 0 draws a time-based seed.
	Seed int64
}

type TrialStats struct {
	Metric string
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// RunTrials runs NumTrials experiments concurrently, seeds drawn from Seed
// up front, and summarizes every metric.
func RunTrials(ctx context.Context, cfg *TrialConfig, logger *slog.Logger) ([]TrialStats, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n := max(cfg.NumTrials, 0)
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	results := make([]*experiment.Result, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = experiment.New(experiment.Config{
				Algorithm: cfg.Algorithm,
				Size:      cfg.Size,
				Min:       trace.DefaultMin,
				Max:       trace.DefaultMax,
				Seed:      seeds[idx],
			}).Run(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	logger.Info("trials", "algorithm", cfg.Algorithm, "size", cfg.Size, "done", n)

	samples := make(map[string][]float64)
	var order []string
	for _, res := range results {
		for _, name := range sortedKeys(res.Metrics) {
			if _, ok := samples[name]; !ok {
				order = append(order, name)
			}
			samples[name] = append(samples[name], res.Metrics[name])
		}
	}

	stats := make([]TrialStats, 0, len(order))
	for _, name := range order {
		stats = append(stats, summarize(name, samples[name]))
	}
	return stats, nil
}

func summarize(name string, xs []float64) TrialStats {
	s := TrialStats{Metric: name, Min: xs[0], Max: xs[0]}
	sum := 0.0
	for _, x := range xs {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
		sum += x
	}
	s.Mean = sum / float64(len(xs))
	for _, x := range xs {
		s.StdDev += (x - s.Mean) * (x - s.Mean)
	}
	s.StdDev = math.Sqrt(s.StdDev / float64(len(xs)))
	return s
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
