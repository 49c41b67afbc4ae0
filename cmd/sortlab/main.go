package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/viz"
)

var (
	// Config file and preset
	configFile string
	preset     string
	// Logging
	logLevel string
	logFile  string
	// Run settings, overriding config values when set
	algorithm  string
	size       int
	intervalMS int
	minValue   int
	maxValue   int
	seed       int64
	theme      string
	// Command specific
	skipMenu    bool
	quiet       bool
	saveDir     string
	dataDir     string
	outFile     string
	stepIndex   int
	metricName  string
	svgWidth    int
	svgHeight   int
	sweepFrom   int
	sweepTo     int
	sweepStep   int
	sweepMetric string
	numTrials   int

	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
	closeLog = func() {}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Registering the flags resets every
// flag variable to its default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sortlab",
		Short:        "sorting algorithm trace lab",
		Long:         "Generate step-by-step traces of sorting algorithms and play them back.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// the TUI owns the terminal, so it only logs to --log-file
			fallback := cmd.ErrOrStderr()
			if cmd == cmd.Root() {
				fallback = io.Discard
			}
			return setupLogging(fallback)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) { closeLog() },
		RunE:              runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "YAML config file")
	pf.StringVarP(&preset, "preset", "p", "", "preset name (see 'sortlab presets')")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.StringVarP(&algorithm, "algorithm", "a", "", "algorithm (see 'sortlab list')")
	pf.IntVarP(&size, "size", "n", 0, "array size")
	pf.IntVar(&intervalMS, "interval", 0, "playback interval in milliseconds")
	pf.IntVar(&minValue, "min", 0, "smallest generated value")
	pf.IntVar(&maxValue, "max", 0, "largest generated value")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&theme, "theme", "", "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	rootCmd.Flags().BoolVar(&skipMenu, "no-menu", false, "start on the playback screen")

	rootCmd.AddCommand(
		newRunCmd(),
		newPlayCmd(),
		newListCmd(),
		newInfoCmd(),
		newCompareCmd(),
		newPlotCmd(),
		newExportJSONCmd(),
		newExportCSVCmd(),
		newExportSVGCmd(),
		newScenarioCmd(),
		newSweepCmd(),
		newTrialsCmd(),
		newRunsCmd(),
		newPresetsCmd(),
		newInitConfigCmd(),
	)
	return rootCmd
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	return viz.RunInteractive(cfg, viz.Options{
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(cfg.Seed)),
		SkipMenu: skipMenu,
	})
}

// resolveConfig layers defaults, preset, config file and finally any flag the
// user set. An algorithm argument wins over the --algorithm flag. The result
// is normalized and carries a concrete seed.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	// config file overrides preset
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("interval") {
		cfg.IntervalMS = intervalMS
	}
	if flags.Changed("min") {
		cfg.Min = minValue
	}
	if flags.Changed("max") {
		cfg.Max = maxValue
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, note := range cfg.Normalize() {
		logger.Warn("config adjusted", "note", note)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// setupLogging builds the logger from --log-level and --log-file and installs
// it as the slog default. Without a log file it writes to fallback.
func setupLogging(fallback io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}

	w := fallback
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w, closeLog = f, func() { f.Close() }
	}

	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func algorithmArg(args []string) (algorithms.Name, error) {
	if len(args) == 0 {
		return config.DefaultAlgorithm, nil
	}
	return algorithms.ParseName(args[0])
}
