package perfplot

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Plot times fn over inputs, post-processes the durations as configured and
// shows the result as a line chart on the configured viewer.
//
// Without options it plots the raw durations. WithOutlierThreshold,
// WithSmoothing or WithExtended add the post-processing stages. The returned
// Series is what was drawn.
func Plot[T, R any](ctx context.Context, fn Func[T, R], inputs []T, opts ...Option) (*Series, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Viewer == nil {
		return nil, ErrNoViewer
	}

	timings, err := Measure(ctx, fn, inputs, o.Args)
	if err != nil {
		return nil, err
	}

	series, err := Process(timings.Seconds(), *o)
	if err != nil {
		return nil, err
	}
	if series.SmoothingSkipped {
		log.Debug().
			Int("samples", len(series.Values)).
			Int("window", o.SmoothingWindow).
			Msg("[perfplot] too few samples to smooth, plotting filtered data")
	}

	fig := NewFigure(o.Labels)
	if err := fig.Draw(series.Values); err != nil {
		return nil, err
	}
	fig.Annotate(summarize(series, o))

	if err := o.Viewer.Show(ctx, fig); err != nil {
		return nil, err
	}
	return series, nil
}

func summarize(s *Series, o *Options) string {
	var b strings.Builder
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Samples measured | %d |\n", len(s.Raw))
	fmt.Fprintf(&b, "| Points plotted | %d |\n", len(s.Values))
	if o.RemoveOutliers {
		fmt.Fprintf(&b, "| Outliers removed (abs(z) >= %g) | %d |\n", o.OutlierThreshold, s.Removed)
	} else {
		b.WriteString("| Outlier removal | off |\n")
	}
	switch {
	case !o.Smoothing:
		b.WriteString("| Smoothing | off |\n")
	case s.SmoothingSkipped:
		fmt.Fprintf(&b, "| Smoothing | skipped (fewer than %d samples) |\n", o.SmoothingWindow)
	default:
		fmt.Fprintf(&b, "| Smoothing | moving average, window %d |\n", o.SmoothingWindow)
	}
	return b.String()
}
