package harness

import (
	"log/slog"
	"time"

	"github.com/lanrat/binsort"
)

// Config holds configuration settings for a harness run
type Config struct {
	Seed              uint64 // seed for the random inputs, 0 picks one from the clock
	RandomSize        int    // size of the random correctness case
	PartialRun        int    // length of the sorted run and of the random tail of the partially sorted case
	MaxValue          int    // random correctness values are drawn from [1, MaxValue]
	BenchmarkSizes    []int  // one benchmark sample per size
	BenchmarkMaxValue int    // random benchmark values are drawn from [1, BenchmarkMaxValue]
	ProbeCount        int    // number of random stability probes
	ProbeValues       int    // number of distinct values among random stability probes
	SkipBenchmarks    bool   // do not run the performance suite

	// ExtraCases run after the default battery.
	ExtraCases []Case

	// Logger receives progress records. Nil discards them.
	Logger *slog.Logger

	// Now is the clock used to time benchmarks, time.Now when nil.
	Now func() time.Time
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		RandomSize:        50,
		PartialRun:        25,
		MaxValue:          100,
		BenchmarkSizes:    []int{100, 500, 1000},
		BenchmarkMaxValue: 1000,
		ProbeCount:        200,
		ProbeValues:       10,
	}
}

// Validate reports the first field holding a value no run can use.
// Zero values are valid and replaced by defaults.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.RandomSize < 0 {
		return binsort.NewConfigError("RandomSize", c.RandomSize, "must not be negative")
	}
	if c.PartialRun < 0 {
		return binsort.NewConfigError("PartialRun", c.PartialRun, "must not be negative")
	}
	if c.MaxValue < 0 {
		return binsort.NewConfigError("MaxValue", c.MaxValue, "must not be negative")
	}
	if c.BenchmarkMaxValue < 0 {
		return binsort.NewConfigError("BenchmarkMaxValue", c.BenchmarkMaxValue, "must not be negative")
	}
	for _, size := range c.BenchmarkSizes {
		if size < 0 {
			return binsort.NewConfigError("BenchmarkSizes", c.BenchmarkSizes, "sizes must not be negative")
		}
	}
	if c.ProbeCount < 0 {
		return binsort.NewConfigError("ProbeCount", c.ProbeCount, "must not be negative")
	}
	if c.ProbeValues < 0 {
		return binsort.NewConfigError("ProbeValues", c.ProbeValues, "must not be negative")
	}
	return nil
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.RandomSize <= 0 {
		c.RandomSize = d.RandomSize
	}
	if c.PartialRun <= 0 {
		c.PartialRun = d.PartialRun
	}
	if c.MaxValue <= 0 {
		c.MaxValue = d.MaxValue
	}
	if len(c.BenchmarkSizes) == 0 {
		c.BenchmarkSizes = d.BenchmarkSizes
	}
	if c.BenchmarkMaxValue <= 0 {
		c.BenchmarkMaxValue = d.BenchmarkMaxValue
	}
	if c.ProbeCount <= 0 {
		c.ProbeCount = d.ProbeCount
	}
	if c.ProbeValues <= 0 {
		c.ProbeValues = d.ProbeValues
	}
	// skipping Seed, Logger and Now, they are resolved by New
	return c
}
