package main

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gosuda.org/perfplot/perfplot"
)

// workloads maps a --workload name to a function timed per input size.
var workloads = map[string]perfplot.Func[int, int]{
	"sort":  sortWorkload,
	"sum":   sumWorkload,
	"sleep": sleepWorkload,
}

func workloadNames() []string {
	names := make([]string, 0, len(workloads))
	for name := range workloads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupWorkload(name string) (perfplot.Func[int, int], error) {
	fn, ok := workloads[name]
	if !ok {
		return nil, fmt.Errorf("unknown workload %q (available: %v)", name, workloadNames())
	}
	return fn, nil
}

func seedFrom(args perfplot.Args) int64 {
	if v, ok := args.Lookup("seed"); ok {
		if seed, ok := v.(int64); ok {
			return seed
		}
	}
	return 1
}

// sortWorkload sorts n pseudo-random ints.
func sortWorkload(n int, args perfplot.Args) (int, error) {
	rng := rand.New(rand.NewSource(seedFrom(args)))
	xs := make([]int, n)
	for i := range xs {
		xs[i] = rng.Int()
	}
	sort.Ints(xs)
	return len(xs), nil
}

// sumWorkload sums n pseudo-random floats.
func sumWorkload(n int, args perfplot.Args) (int, error) {
	rng := rand.New(rand.NewSource(seedFrom(args)))
	var s float64
	for i := 0; i < n; i++ {
		s += rng.Float64()
	}
	if s < 0 {
		return 0, fmt.Errorf("negative sum %v", s)
	}
	return n, nil
}

// sleepWorkload sleeps n microseconds.
func sleepWorkload(n int, _ perfplot.Args) (int, error) {
	time.Sleep(time.Duration(n) * time.Microsecond)
	return n, nil
}
