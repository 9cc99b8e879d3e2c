package perfplot

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestMeasureLengthAndOrder(t *testing.T) {
	inputs := []int{5, 1, 4, 2, 3}

	var seen []int
	var fn Func[int, struct{}] = func(n int, _ Args) (struct{}, error) {
		seen = append(seen, n)
		return struct{}{}, nil
	}

	timings, err := Measure(context.Background(), fn, inputs, Args{})
	require.NoError(t, err)
	require.Equal(t, len(inputs), timings.Len())
	require.Equal(t, inputs, seen)
	for i, s := range timings.Seconds() {
		require.GreaterOrEqual(t, s, 0.0, "duration %d", i)
	}
}

func TestMeasureEmptyInputs(t *testing.T) {
	var fn Func[string, int] = func(string, Args) (int, error) {
		t.Fatal("fn must not be called")
		return 0, nil
	}
	timings, err := Measure(context.Background(), fn, nil, Args{})
	require.NoError(t, err)
	require.Equal(t, 0, timings.Len())
	require.Empty(t, timings.Seconds())
}

func TestMeasurePassesArgs(t *testing.T) {
	args := Args{
		Positional: []any{"a", 2},
		Named:      map[string]any{"scale": 1.5},
	}

	var fn Func[int, int] = func(n int, got Args) (int, error) {
		require.Equal(t, "a", got.Arg(0))
		require.Equal(t, 2, got.Arg(1))
		require.Nil(t, got.Arg(2))
		v, ok := got.Lookup("scale")
		require.True(t, ok)
		require.Equal(t, 1.5, v)
		_, ok = got.Lookup("missing")
		require.False(t, ok)
		return n, nil
	}

	_, err := Measure(context.Background(), fn, []int{1, 2}, args)
	require.NoError(t, err)
}

func TestMeasureStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	var fn Func[int, int] = func(n int, _ Args) (int, error) {
		calls++
		if n == 3 {
			return 0, boom
		}
		return n, nil
	}

	timings, err := Measure(context.Background(), fn, []int{1, 2, 3, 4, 5}, Args{})
	require.ErrorIs(t, err, boom)
	require.Same(t, boom, err)
	require.Nil(t, timings)
	require.Equal(t, 3, calls)
}

func TestMeasureRecordsElapsed(t *testing.T) {
	var fn Func[time.Duration, struct{}] = func(d time.Duration, _ Args) (struct{}, error) {
		time.Sleep(d)
		return struct{}{}, nil
	}

	timings, err := Measure(context.Background(), fn, []time.Duration{0, 20 * time.Millisecond}, Args{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, timings.Durations[1], 20*time.Millisecond)
}

func TestMeasureQuietAtDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	var fn Func[int, int] = func(n int, _ Args) (int, error) { return n, nil }
	_, err := Measure(context.Background(), fn, []int{1, 2, 3}, Args{})
	require.NoError(t, err)
	require.Empty(t, buf.String())

	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prevLevel)

	_, err = Measure(context.Background(), fn, []int{1}, Args{})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "[perfplot] timed call")
}

func TestMeasureHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	var fn Func[int, int] = func(n int, _ Args) (int, error) {
		calls++
		if n == 2 {
			cancel()
		}
		return n, nil
	}

	timings, err := Measure(ctx, fn, []int{1, 2, 3}, Args{})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, timings)
	require.Equal(t, 2, calls)
}
