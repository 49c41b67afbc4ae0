package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/playback"
	"github.com/san-kum/sortlab/internal/storage"
	"github.com/san-kum/sortlab/internal/trace"
	"github.com/san-kum/sortlab/internal/viz"
)

var showBars bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "generate a trace and print its narration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print the summary only")
	cmd.Flags().StringVar(&saveDir, "save", "", "save run artifacts under this directory")
	return cmd
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play a trace back in the terminal without the TUI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playTrace,
	}
	cmd.Flags().BoolVar(&showBars, "bars", false, "draw the array as bars on every step")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [algorithm]",
		Short: "describe an algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showInfo,
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "trace several algorithms on the same array",
		RunE:  compareAlgorithms,
	}
}

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot cumulative operation counts over the trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotTrace,
	}
}

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	cmd.Flags().StringVar(&dataDir, "dir", "./runs", "directory runs were saved to")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tALGORITHM\tSIZE\tINTERVAL\tVALUES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%d-%d\n", name, p.Algorithm, p.Size, p.Interval(), p.Min, p.Max)
			}
			return w.Flush()
		},
	}
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sortlab.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd, nil)
			if err != nil {
				return err
			}
			// a seed only belongs in the file when it was asked for
			if !cmd.Flags().Changed("seed") {
				cfg.Seed = 0
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func runExperiment(ctx context.Context, cfg *config.Config) (*experiment.Result, error) {
	return experiment.New(experiment.Config{
		Algorithm: cfg.AlgorithmName(),
		Size:      cfg.Size,
		Min:       cfg.Min,
		Max:       cfg.Max,
		Seed:      cfg.Seed,
	}).Run(ctx)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := runExperiment(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	logger.Debug("trace generated", "algorithm", res.Algorithm, "steps", res.Trace.Len(), "elapsed", res.Elapsed)

	out := cmd.OutOrStdout()
	if !quiet {
		for i, s := range res.Trace {
			fmt.Fprintf(out, "%4d  %-11s  %v  %s\n", i, s.Kind, s.Values(), s.Description)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "algorithm: %s\n", algorithms.DisplayName(res.Algorithm))
	fmt.Fprintf(out, "seed: %d\n", res.Seed)
	fmt.Fprintf(out, "steps: %d\n", res.Trace.Len())
	fmt.Fprintf(out, "completed in %v\n", res.Elapsed)
	printMetrics(out, res.Metrics)

	if saveDir != "" {
		st := storage.New(saveDir).WithTheme(viz.GetTheme(cfg.Theme))
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run id: %s\n", runID)
	}
	return nil
}

func printMetrics(w io.Writer, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "\nmetrics:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %.0f\n", name, m[name])
	}
}

func playTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	th := viz.GetTheme(cfg.Theme)
	done := make(chan struct{})
	var (
		mu   sync.Mutex
		once sync.Once
		last = -1
		ctl  *playback.Controller
	)

	ctl = playback.New(
		playback.WithScheduler(playback.TickerScheduler{}),
		playback.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		playback.WithLogger(logger),
		playback.WithAlgorithm(cfg.AlgorithmName()),
		playback.WithArraySize(cfg.Size),
		playback.WithInterval(cfg.Interval()),
		playback.WithValueRange(cfg.Min, cfg.Max),
		playback.WithOnChange(func(st playback.Status) {
			mu.Lock()
			defer mu.Unlock()
			if st.Index != last {
				last = st.Index
				if s, ok := ctl.Current(); ok {
					printStep(out, st, s, th)
				}
			}
			if st.State == playback.Paused && st.AtEnd() {
				once.Do(func() { close(done) })
			}
		}),
	)
	defer ctl.Close()

	ctl.Reset()
	ctl.PlayPause()

	select {
	case <-done:
		return nil
	case <-cmd.Context().Done():
		ctl.Pause()
		fmt.Fprintf(out, "stopped at step %d\n", ctl.Status().Index)
		return nil
	}
}

func printStep(w io.Writer, st playback.Status, s trace.Step, th viz.Theme) {
	if showBars {
		fmt.Fprintln(w, viz.RenderBars(s, 8, 3*st.Size, th))
	}
	fmt.Fprintf(w, "[%3d/%d] %v  %s\n", st.Index, st.Len-1, s.Values(), s.Description)
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM\tCOMPLEXITY")
	for _, name := range algorithms.Names() {
		info, _ := algorithms.Describe(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, info.DisplayName, info.Complexity)
	}
	return w.Flush()
}

func showInfo(cmd *cobra.Command, args []string) error {
	name, err := algorithmArg(args)
	if err != nil {
		return err
	}
	info, _ := algorithms.Describe(name)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n\n", info.DisplayName, info.Complexity)
	fmt.Fprintf(out, "%s\n\n", info.Description)
	fmt.Fprintln(out, info.Code)
	return nil
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	var names []algorithms.Name
	for _, arg := range args {
		name, err := algorithms.ParseName(arg)
		if err != nil {
			return err
		}
		names = append(names, name)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	initial := trace.NewArray(rng, cfg.Size, cfg.Min, cfg.Max)

	results, err := experiment.Compare(cmd.Context(), initial, names)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "array: %v (seed %d)\n\n", trace.Step{Array: initial}.Values(), cfg.Seed)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES\tPIVOTS\tTIME\t")
	for _, res := range results {
		m := res.Metrics
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%v\t\n",
			algorithms.DisplayName(res.Algorithm),
			m["steps"], m["comparisons"], m["swaps"], m["writes"], m["pivots"],
			res.Elapsed.Round(time.Microsecond),
		)
	}
	return w.Flush()
}

func plotTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := runExperiment(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "algorithm: %s\n", algorithms.DisplayName(res.Algorithm))
	fmt.Fprintf(out, "steps: %d\n\n", res.Trace.Len())

	comparisons := metrics.Series(res.Trace, metrics.NewComparisons())
	swaps := metrics.Series(res.Trace, metrics.NewSwaps())
	fmt.Fprintln(out, asciigraph.PlotMany([][]float64{comparisons, swaps},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.SeriesLegends("comparisons", "swaps"),
		asciigraph.Caption("cumulative operations"),
	))
	fmt.Fprintln(out)

	disorder := metrics.Series(res.Trace, metrics.NewDisorder())
	fmt.Fprintln(out, asciigraph.Plot(disorder,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("inversions left"),
	))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSIZE\tSTEPS\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Steps,
			run.Seed,
		)
	}
	return w.Flush()
}
