package perfplot

import (
	"slices"

	"gosuda.org/perfplot/perfplot/stats"
)

// Process applies the configured post-processing to a duration sequence in
// seconds: outlier removal first, then moving-average smoothing.
//
// Smoothing is skipped, and Series.SmoothingSkipped set, when fewer samples
// than the window survive outlier removal.
func Process(seconds []float64, opts Options) (*Series, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	series := &Series{
		Raw:    slices.Clone(seconds),
		Values: slices.Clone(seconds),
	}

	if opts.RemoveOutliers {
		kept, err := stats.RemoveOutliers(series.Values, opts.OutlierThreshold)
		if err != nil {
			return nil, err
		}
		series.Removed = len(series.Values) - len(kept)
		series.Values = kept
	}

	if opts.Smoothing {
		if len(series.Values) < opts.SmoothingWindow {
			series.SmoothingSkipped = true
			return series, nil
		}
		smoothed, err := stats.MovingAverage(series.Values, opts.SmoothingWindow)
		if err != nil {
			return nil, err
		}
		series.Values = smoothed
	}

	return series, nil
}
