package harness

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/lanrat/binsort"
)

// Measure times the engine, the linear insertion sort baseline and slices.Sort
// on one random input per size, with values in [1, maxValue]. Each sort runs on
// its own copy of the input. now is the clock, time.Now when nil.
func Measure(rng *rand.Rand, sizes []int, maxValue int, now func() time.Time) []BenchmarkSample {
	if now == nil {
		now = time.Now
	}
	samples := make([]BenchmarkSample, 0, len(sizes))
	for _, size := range sizes {
		data := randomInts(rng, size, maxValue)
		samples = append(samples, BenchmarkSample{
			Size:     size,
			Engine:   timed(now, data, binsort.Sort[[]int]),
			Baseline: timed(now, data, binsort.InsertionSort[[]int]),
			Oracle:   timed(now, data, slices.Sort[[]int]),
		})
	}
	return samples
}

// timed runs sortFunc over a fresh copy of data and returns the elapsed time
func timed(now func() time.Time, data []int, sortFunc func([]int)) time.Duration {
	input := slices.Clone(data)
	start := now()
	sortFunc(input)
	return now().Sub(start)
}
