package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/storage"
)

const scenarioYAML = `name: warmup
description: two quick runs
runs:
  - algorithm: bubble
    size: 6
    seed: 1
  - algorithm: Merge Sort
    size: 8
    seed: 2
    min: 1
    max: 9
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "warmup", sc.Name)
	require.Len(t, sc.Runs, 2)
	assert.Equal(t, Run{Algorithm: "Merge Sort", Size: 8, Seed: 2, Min: 1, Max: 9}, sc.Runs[1])
}

func TestLoadScenarioErrors(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, "name: nothing\n"))
	assert.ErrorIs(t, err, ErrEmptyScenario)

	_, err = LoadScenario(writeScenario(t, "runs: {"))
	assert.Error(t, err)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	require.NoError(t, err)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	results, err := RunScenario(context.Background(), sc, logger)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, algorithms.NameBubble, results[0].Algorithm)
	assert.Equal(t, algorithms.NameMerge, results[1].Algorithm)
	assert.Len(t, results[0].Initial, 6)
	for _, it := range results[1].Initial {
		assert.LessOrEqual(t, it.Value, 9)
	}
	assert.Contains(t, logs.String(), "scenario=warmup")
	assert.Contains(t, logs.String(), "run=2/2")
}

func TestRunScenarioExportAndSave(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out", "heap.json")
	sc := &Scenario{
		Name:    "artifacts",
		SaveDir: filepath.Join(dir, "runs"),
		Runs:    []Run{{Algorithm: "heap", Size: 5, Seed: 3, Export: out}},
	}

	results, err := RunScenario(context.Background(), sc, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var doc struct {
		Algorithm string `json:"algorithm"`
		Steps     int    `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "heap", doc.Algorithm)
	assert.Equal(t, results[0].Trace.Len(), doc.Steps)

	runs, err := storage.New(sc.SaveDir).List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRunScenarioStopsOnError(t *testing.T) {
	sc := &Scenario{Runs: []Run{
		{Algorithm: "insertion", Size: 4, Seed: 1},
		{Algorithm: "bogo", Size: 4},
		{Algorithm: "quick", Size: 4},
	}}

	results, err := RunScenario(context.Background(), sc, nil)
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "run 2")
	assert.Len(t, results, 1)
}

func TestRunScenarioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RunScenario(ctx, &Scenario{Runs: []Run{{Algorithm: "bubble", Size: 3}}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestRunSweep(t *testing.T) {
	results, err := RunSweep(context.Background(), &SizeSweep{
		Algorithm: algorithms.NameSelection,
		MinSize:   2,
		MaxSize:   10,
		Step:      4,
		Seed:      1,
	}, nil)
	require.NoError(t, err)

	require.Len(t, results, 3)
	for i, size := range []int{2, 6, 10} {
		assert.Equal(t, size, results[i].Size)
		// selection sort always does n(n-1)/2 comparisons
		assert.Equal(t, float64(size*(size-1)/2), results[i].Metrics["comparisons"])
	}
}

func TestRunSweepInvalid(t *testing.T) {
	_, err := RunSweep(context.Background(), &SizeSweep{Algorithm: algorithms.NameBubble, MinSize: 5, MaxSize: 2}, nil)
	assert.Error(t, err)
}

func TestRunTrials(t *testing.T) {
	stats, err := RunTrials(context.Background(), &TrialConfig{
		Algorithm: algorithms.NameSelection,
		Size:      8,
		NumTrials: 5,
		Seed:      11,
	}, nil)
	require.NoError(t, err)

	byName := make(map[string]TrialStats)
	for _, s := range stats {
		byName[s.Metric] = s
	}
	cmp := byName["comparisons"]
	assert.Equal(t, 28.0, cmp.Min)
	assert.Equal(t, 28.0, cmp.Max)
	assert.Equal(t, 28.0, cmp.Mean)
	assert.Zero(t, cmp.StdDev)

	steps := byName["steps"]
	assert.LessOrEqual(t, steps.Min, steps.Mean)
	assert.LessOrEqual(t, steps.Mean, steps.Max)
}

func TestRunTrialsDeterministic(t *testing.T) {
	cfg := &TrialConfig{Algorithm: algorithms.NameQuick, Size: 20, NumTrials: 8, Seed: 3}

	a, err := RunTrials(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := RunTrials(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunTrials(ctx, cfg, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	s := summarize("x", []float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 5.0, s.Mean)
	assert.Equal(t, 2.0, s.StdDev)
}
