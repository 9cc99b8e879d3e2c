package perfplot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gosuda.org/perfplot/perfplot/stats"
)

func TestProcess(t *testing.T) {
	tests := []struct {
		name        string
		in          []float64
		opts        []Option
		want        []float64
		wantRemoved int
		wantSkipped bool
	}{
		{
			name: "raw passthrough",
			in:   []float64{3, 1, 2},
			want: []float64{3, 1, 2},
		},
		{
			name:        "outliers only",
			in:          []float64{1, 1, 1, 1, 1, 100},
			opts:        []Option{WithOutlierThreshold(2)},
			want:        []float64{1, 1, 1, 1, 1},
			wantRemoved: 1,
		},
		{
			name: "smoothing only",
			in:   []float64{1, 2, 3, 4, 5},
			opts: []Option{WithSmoothing(3)},
			want: []float64{2, 3, 4},
		},
		{
			name:        "extended with exact window fit",
			in:          []float64{1, 1, 1, 1, 1, 100},
			opts:        []Option{WithExtended()},
			want:        []float64{1},
			wantRemoved: 1,
		},
		{
			name:        "window larger than filtered length",
			in:          []float64{2, 4, 6},
			opts:        []Option{WithOutlierThreshold(2), WithSmoothing(4)},
			want:        []float64{2, 4, 6},
			wantSkipped: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(o)
			}
			series, err := Process(tt.in, *o)
			require.NoError(t, err)
			require.Equal(t, tt.want, series.Values)
			require.Equal(t, tt.in, series.Raw)
			require.Equal(t, tt.wantRemoved, series.Removed)
			require.Equal(t, tt.wantSkipped, series.SmoothingSkipped)
		})
	}
}

func TestProcessExtendedSmoothsAfterFiltering(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6, 7, 500}
	o := defaultOptions()
	WithExtended()(o)

	series, err := Process(in, *o)
	require.NoError(t, err)
	require.Equal(t, 1, series.Removed)
	require.False(t, series.SmoothingSkipped)
	require.Equal(t, []float64{3, 4, 5}, series.Values)
}

func TestProcessErrors(t *testing.T) {
	o := defaultOptions()
	WithSmoothing(0)(o)
	_, err := Process([]float64{1, 2, 3}, *o)
	require.ErrorIs(t, err, ErrInvalidWindow)

	o = defaultOptions()
	WithOutlierThreshold(-1)(o)
	_, err = Process([]float64{1, 2, 3}, *o)
	require.ErrorIs(t, err, ErrInvalidThreshold)

	o = defaultOptions()
	WithOutlierThreshold(2)(o)
	_, err = Process([]float64{1}, *o)
	require.ErrorIs(t, err, stats.ErrUndefinedStatistic)
}

func TestProcessDoesNotAliasInput(t *testing.T) {
	in := []float64{1, 2, 3}
	series, err := Process(in, *defaultOptions())
	require.NoError(t, err)

	series.Values[0] = 42
	require.Equal(t, 1.0, in[0])
	require.Equal(t, 1.0, series.Raw[0])

	series.Raw[1] = 42
	require.Equal(t, 2.0, in[1])
	require.Equal(t, 2.0, series.Values[1])
}
