package perfplot

import (
	"errors"
	"maps"
	"slices"
	"time"

	"gosuda.org/perfplot/perfplot/stats"
)

var (
	ErrInvalidWindow    = stats.ErrInvalidWindow
	ErrInvalidThreshold = stats.ErrInvalidThreshold
	ErrNoViewer         = errors.New("perfplot: no viewer configured")
)

// Func is a function under measurement. It receives one input value together
// with the extra arguments configured for the run.
type Func[T, R any] func(input T, args Args) (R, error)

// Args carries the extra arguments passed unchanged to every call.
type Args struct {
	Positional []any          // after the input value, in order
	Named      map[string]any // keyword arguments
}

// Arg returns the i-th extra positional argument, or nil if absent.
func (a Args) Arg(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Lookup returns the named argument and whether it was set.
func (a Args) Lookup(name string) (any, bool) {
	v, ok := a.Named[name]
	return v, ok
}

// Labels are the display strings of a chart.
type Labels struct {
	X     string
	Y     string
	Title string
}

func DefaultLabels() Labels {
	return Labels{
		X:     "Input",
		Y:     "Time (seconds)",
		Title: "Function Performance",
	}
}

// Timings is the raw result of a measurement run, index-aligned with the inputs.
type Timings struct {
	Durations []time.Duration
}

func (t *Timings) Len() int {
	return len(t.Durations)
}

// Seconds returns the durations as float64 seconds.
func (t *Timings) Seconds() []float64 {
	out := make([]float64, len(t.Durations))
	for i, d := range t.Durations {
		out[i] = d.Seconds()
	}
	return out
}

// Series is a post-processed duration sequence ready for plotting.
type Series struct {
	Raw    []float64 // seconds, as measured; never shares storage with Values or the input
	Values []float64 // y-values to plot

	// Removed is the number of samples dropped as outliers.
	Removed int
	// SmoothingSkipped reports that smoothing was requested but the filtered
	// sequence was shorter than the window, so Values is unsmoothed.
	SmoothingSkipped bool
}

// Options configures post-processing and rendering for Plot.
type Options struct {
	Args   Args
	Labels Labels
	Viewer Viewer

	// SmoothingWindow is the moving-average window. Ignored unless Smoothing is set.
	SmoothingWindow int
	Smoothing       bool
	// OutlierThreshold is the z-score cutoff. Ignored unless RemoveOutliers is set.
	OutlierThreshold float64
	RemoveOutliers   bool
}

type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		Labels:           DefaultLabels(),
		SmoothingWindow:  stats.DefaultWindow,
		OutlierThreshold: stats.DefaultOutlierThreshold,
	}
}

func (o *Options) validate() error {
	if o.Smoothing && o.SmoothingWindow <= 0 {
		return ErrInvalidWindow
	}
	if o.RemoveOutliers && !(o.OutlierThreshold > 0) {
		return ErrInvalidThreshold
	}
	return nil
}

// WithArgs sets the extra arguments. The caller's slice and map are copied,
// so later options never write into them.
func WithArgs(args Args) Option {
	return func(o *Options) {
		o.Args = Args{
			Positional: slices.Clone(args.Positional),
			Named:      maps.Clone(args.Named),
		}
	}
}

// WithPositional appends extra positional arguments.
func WithPositional(values ...any) Option {
	return func(o *Options) {
		o.Args.Positional = append(o.Args.Positional, values...)
	}
}

// WithNamed sets a single named argument.
func WithNamed(name string, value any) Option {
	return func(o *Options) {
		if o.Args.Named == nil {
			o.Args.Named = make(map[string]any)
		}
		o.Args.Named[name] = value
	}
}

// WithLabels overrides the chart labels. Empty fields keep their defaults.
func WithLabels(labels Labels) Option {
	return func(o *Options) {
		if labels.X != "" {
			o.Labels.X = labels.X
		}
		if labels.Y != "" {
			o.Labels.Y = labels.Y
		}
		if labels.Title != "" {
			o.Labels.Title = labels.Title
		}
	}
}

// WithSmoothing enables moving-average smoothing with the given window.
func WithSmoothing(window int) Option {
	return func(o *Options) {
		o.Smoothing = true
		o.SmoothingWindow = window
	}
}

// WithOutlierThreshold enables z-score outlier removal.
func WithOutlierThreshold(z float64) Option {
	return func(o *Options) {
		o.RemoveOutliers = true
		o.OutlierThreshold = z
	}
}

// WithExtended turns on outlier removal and smoothing with their defaults
// (threshold 2.0, window 5).
func WithExtended() Option {
	return func(o *Options) {
		o.RemoveOutliers = true
		o.OutlierThreshold = stats.DefaultOutlierThreshold
		o.Smoothing = true
		o.SmoothingWindow = stats.DefaultWindow
	}
}

func WithViewer(v Viewer) Option {
	return func(o *Options) {
		o.Viewer = v
	}
}
