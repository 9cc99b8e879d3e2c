package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gosuda.org/perfplot/perfplot"
	"gosuda.org/perfplot/perfplot/stats"
)

var rootCmd = &cobra.Command{
	Use:   "perfplot-demo",
	Short: "Time a sample workload over a range of input sizes and chart the result in the browser",
	RunE:  runDemo,
}

var (
	flagSizes     []int
	flagWorkload  string
	flagSeed      int64
	flagExtended  bool
	flagWindow    int
	flagThreshold float64
	flagListen    string
	flagTitle     string
	flagXLabel    string
	flagYLabel    string
	flagDebug     bool
)

func init() {
	defaults := perfplot.DefaultLabels()

	flags := rootCmd.PersistentFlags()
	flags.IntSliceVar(&flagSizes, "sizes", defaultSizes(), "input sizes passed to the workload, in order")
	flags.StringVar(&flagWorkload, "workload", "sort", "workload to time (sort, sum, sleep)")
	flags.Int64Var(&flagSeed, "seed", 1, "random seed passed to the workload as a named argument")
	flags.BoolVar(&flagExtended, "extended", false, "remove outliers and smooth with default settings")
	flags.IntVar(&flagWindow, "window", 0, "moving-average window; setting it enables smoothing")
	flags.Float64Var(&flagThreshold, "threshold", 0, "outlier z-score threshold; setting it enables outlier removal")
	flags.StringVar(&flagListen, "listen", "127.0.0.1:0", "address the chart viewer listens on")
	flags.StringVar(&flagTitle, "title", defaults.Title, "chart title")
	flags.StringVar(&flagXLabel, "xlabel", defaults.X, "x-axis label")
	flags.StringVar(&flagYLabel, "ylabel", defaults.Y, "y-axis label")
	flags.BoolVar(&flagDebug, "debug", false, "log every timed call")
}

func defaultSizes() []int {
	sizes := make([]int, 0, 20)
	for n := 10_000; n <= 200_000; n += 10_000 {
		sizes = append(sizes, n)
	}
	return sizes
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("execute root command")
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	fn, err := lookupWorkload(flagWorkload)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []perfplot.Option{
		perfplot.WithViewer(&perfplot.BrowserViewer{Addr: flagListen}),
		perfplot.WithNamed("seed", flagSeed),
		perfplot.WithLabels(perfplot.Labels{X: flagXLabel, Y: flagYLabel, Title: flagTitle}),
	}
	if flagExtended {
		opts = append(opts, perfplot.WithExtended())
	}
	if cmd.Flags().Changed("window") {
		opts = append(opts, perfplot.WithSmoothing(flagWindow))
	}
	if cmd.Flags().Changed("threshold") {
		opts = append(opts, perfplot.WithOutlierThreshold(flagThreshold))
	}

	log.Info().
		Str("workload", flagWorkload).
		Ints("sizes", flagSizes).
		Bool("extended", flagExtended).
		Msg("[demo] timing workload, press Ctrl+C to close the chart")

	series, err := perfplot.Plot(ctx, fn, flagSizes, opts...)
	if err != nil {
		return err
	}

	log.Info().
		Int("measured", len(series.Raw)).
		Int("plotted", len(series.Values)).
		Int("outliers_removed", series.Removed).
		Bool("smoothing_skipped", series.SmoothingSkipped).
		Float64("mean_seconds", stats.Mean(series.Raw)).
		Msg("[demo] done")
	return nil
}
