package harness

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Harness runs the correctness, stability and performance suites.
// A Harness is not safe for concurrent use.
type Harness struct {
	config Config
	seed   uint64
	rng    *rand.Rand
	logger *slog.Logger
}

// New validates config and returns a Harness. A nil config uses the defaults.
// The config is copied, later changes to it have no effect.
func New(config *Config) (*Harness, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	var c Config
	if config != nil {
		c = *config
		c.BenchmarkSizes = slices.Clone(config.BenchmarkSizes)
		c.ExtraCases = slices.Clone(config.ExtraCases)
	}
	c = *mergeConfig(&c)

	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Now == nil {
		c.Now = time.Now
	}

	return &Harness{
		config: c,
		seed:   seed,
		logger: logger,
	}, nil
}

// Seed returns the seed random inputs are generated from.
func (h *Harness) Seed() uint64 {
	return h.seed
}

// Run executes every suite and returns the report.
// Each call starts from the same seed and so generates the same inputs.
// Failed checks are recorded in the report, Run never stops early.
func (h *Harness) Run() *Report {
	h.rng = rand.New(rand.NewPCG(h.seed, h.seed^0x9e3779b97f4a7c15))
	report := newReport(uuid.NewString(), h.seed)
	logger := h.logger.With("run_id", report.RunID)
	logger.Info("harness run started", "seed", h.seed)

	cases := DefaultCases(h.rng, &h.config)
	cases = append(cases, h.config.ExtraCases...)
	for _, c := range cases {
		res := c.Run()
		report.add(res)
		h.logResult(logger, res)
	}

	stability := []StabilityResult{
		CheckStability("stability (default probes)", DefaultProbes(), nil),
		CheckStability("stability (random probes)", RandomProbes(h.rng, h.config.ProbeCount, h.config.ProbeValues), nil),
	}
	for _, s := range stability {
		report.Stability = append(report.Stability, s)
		res := s.toTestResult()
		report.add(res)
		h.logResult(logger, res)
	}

	if !h.config.SkipBenchmarks {
		report.Benchmarks = Measure(h.rng, h.config.BenchmarkSizes, h.config.BenchmarkMaxValue, h.config.Now)
		for _, b := range report.Benchmarks {
			logger.Debug("benchmark sample",
				"size", b.Size,
				"engine", b.Engine,
				"baseline", b.Baseline,
				"oracle", b.Oracle,
				"speedup", b.Speedup())
		}
	}

	logger.Info("harness run finished",
		"total", report.TotalCases,
		"passed", report.Passed,
		"failed", report.Failed,
		"success", report.Success)
	return report
}

func (h *Harness) logResult(logger *slog.Logger, res TestResult) {
	if res.Pass {
		logger.Debug("case passed", "suite", res.Suite, "name", res.Name)
		return
	}
	logger.Warn("case failed", "suite", res.Suite, "name", res.Name, "diff", res.Diff)
}
