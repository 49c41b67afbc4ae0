package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/automation"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/viz"
)

func newExportJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-json [algorithm]",
		Short: "export a trace as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newExportCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-csv [algorithm]",
		Short: "export a trace as CSV, one row per step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newExportSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-svg [algorithm]",
		Short: "render one step, or a metric over the trace, as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&stepIndex, "step", -1, "step to render (default last)")
	cmd.Flags().StringVar(&metricName, "metric", "", "plot this metric instead of a step")
	cmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	cmd.Flags().IntVar(&svgHeight, "height", 400, "image height")
	return cmd
}

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every entry of a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [algorithm]",
		Short: "trace one algorithm over a range of array sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	cmd.Flags().IntVar(&sweepFrom, "from", 5, "smallest size")
	cmd.Flags().IntVar(&sweepTo, "to", 100, "largest size")
	cmd.Flags().IntVar(&sweepStep, "step", 5, "size increment")
	cmd.Flags().StringVar(&sweepMetric, "metric", "comparisons", "metric to plot")
	return cmd
}

func newTrialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trials [algorithm]",
		Short: "repeat one algorithm over random arrays and summarize",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrials,
	}
	cmd.Flags().IntVar(&numTrials, "trials", 50, "number of trials")
	return cmd
}

// output returns --out opened for writing, or the command's stdout.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	res, err := runExperiment(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	meta := export.Meta{
		ID:        res.ID,
		Algorithm: string(res.Algorithm),
		Seed:      res.Seed,
		Size:      len(res.Initial),
		CreatedAt: time.Now(),
		Metrics:   res.Metrics,
	}
	if err := export.WriteJSON(w, meta, res.Trace); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	res, err := runExperiment(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, res.Trace); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	res, err := runExperiment(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	th := viz.GetTheme(cfg.Theme)

	var svg string
	if metricName != "" {
		m, ok := metrics.ByName(metricName)
		if !ok {
			return fmt.Errorf("unknown metric: %s", metricName)
		}
		svg = export.SeriesSVG(metrics.Series(res.Trace, m), svgWidth, svgHeight, string(th.Primary))
	} else {
		index := stepIndex
		if index < 0 {
			index = res.Trace.LastIndex()
		}
		step, err := res.Trace.At(index)
		if err != nil {
			return err
		}
		svg = export.StepSVG(step, svgWidth, svgHeight, th)
	}

	w, closeFn, err := output(cmd)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, svg); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Fprintf(out, "%s\n", sc.Description)
	}
	fmt.Fprintln(out)

	results, err := automation.RunScenario(cmd.Context(), sc, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tALGORITHM\tSIZE\tSEED\tSTEPS\tCOMPARISONS\tSWAPS")
	for i, res := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%.0f\t%.0f\n",
			i+1,
			res.Algorithm,
			len(res.Initial),
			res.Seed,
			res.Trace.Len(),
			res.Metrics["comparisons"],
			res.Metrics["swaps"],
		)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if !isDefaultMetric(sweepMetric) {
		return fmt.Errorf("unknown metric: %s", sweepMetric)
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.SizeSweep{
		Algorithm: cfg.AlgorithmName(),
		MinSize:   sweepFrom,
		MaxSize:   sweepTo,
		Step:      sweepStep,
		Seed:      cfg.Seed,
	}, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tSWAPS\tWRITES\t")
	series := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%.0f\t%.0f\t%.0f\t%.0f\t\n", r.Size, r.Metrics["steps"], r.Metrics["comparisons"], r.Metrics["swaps"], r.Metrics["writes"])
		series[i] = r.Metrics[sweepMetric]
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(series) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s by size (%s)", sweepMetric, algorithms.DisplayName(cfg.AlgorithmName()))),
		))
	}
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	if numTrials < 1 {
		return fmt.Errorf("--trials must be at least 1, got %d", numTrials)
	}

	stats, err := automation.RunTrials(cmd.Context(), &automation.TrialConfig{
		Algorithm: cfg.AlgorithmName(),
		Size:      cfg.Size,
		NumTrials: numTrials,
		Seed:      cfg.Seed,
	}, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, size %d, %d trials\n\n", algorithms.DisplayName(cfg.AlgorithmName()), cfg.Size, numTrials)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "METRIC\tMIN\tMEAN\tMAX\tSTDDEV\t")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.0f\t%.2f\t\n", s.Metric, s.Min, s.Mean, s.Max, s.StdDev)
	}
	return w.Flush()
}

func isDefaultMetric(name string) bool {
	for _, m := range metrics.Default() {
		if m.Name() == name {
			return true
		}
	}
	return false
}
