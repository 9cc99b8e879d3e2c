package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrUndefinedStatistic = errors.New("stats: sample standard deviation needs at least 2 samples")
	ErrInvalidThreshold   = errors.New("stats: z-score threshold must be positive")
	ErrInvalidWindow      = errors.New("stats: window size must be positive")
	ErrWindowTooLarge     = errors.New("stats: window size exceeds sample count")
)

// DefaultOutlierThreshold is the z-score cutoff used when none is configured.
const DefaultOutlierThreshold = 2.0

// DefaultWindow is the moving-average window used when none is configured.
const DefaultWindow = 5

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// MeanStdDev returns the mean and the sample (N-1) standard deviation of xs.
func MeanStdDev(xs []float64) (mean, stddev float64, err error) {
	if len(xs) < 2 {
		return 0, 0, ErrUndefinedStatistic
	}
	mean, stddev = stat.MeanStdDev(xs, nil)
	return mean, stddev, nil
}

// RemoveOutliers returns the samples whose z-score magnitude is strictly
// below threshold. Order is preserved and the input is not modified.
func RemoveOutliers(xs []float64, threshold float64) ([]float64, error) {
	if !(threshold > 0) {
		return nil, ErrInvalidThreshold
	}
	mean, stddev, err := MeanStdDev(xs)
	if err != nil {
		return nil, err
	}

	// Identical samples all have a z-score of 0.
	if stddev == 0 {
		return append([]float64(nil), xs...), nil
	}

	kept := make([]float64, 0, len(xs))
	for _, x := range xs {
		z := (x - mean) / stddev
		if math.Abs(z) < threshold {
			kept = append(kept, x)
		}
	}
	return kept, nil
}

// MovingAverage returns the mean of every run of window consecutive samples.
// The result has len(xs)-window+1 elements.
func MovingAverage(xs []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	if len(xs) < window {
		return nil, ErrWindowTooLarge
	}

	w, err := NewWindow(window)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(xs)-window+1)
	for _, x := range xs {
		w.Add(x)
		if w.Full() {
			out = append(out, w.Average())
		}
	}
	return out, nil
}
