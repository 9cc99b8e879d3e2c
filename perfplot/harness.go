package perfplot

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Measure calls fn once per input, in order, and records the wall-clock time
// of each call. Calls never overlap.
//
// The first error returned by fn aborts the run and is returned as is; no
// partial timings are returned. ctx is checked before every call. Each call
// is logged at trace level.
func Measure[T, R any](ctx context.Context, fn Func[T, R], inputs []T, args Args) (*Timings, error) {
	timings := &Timings{
		Durations: make([]time.Duration, 0, len(inputs)),
	}

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		_, err := fn(input, args)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}

		timings.Durations = append(timings.Durations, elapsed)
		log.Trace().
			Int("index", i).
			Dur("elapsed", elapsed).
			Msg("[perfplot] timed call")
	}

	return timings, nil
}
