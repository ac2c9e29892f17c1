package harness

import (
	"cmp"
	"encoding/json"
	"fmt"
	"time"
)

// Suite names used in TestResult.Suite.
const (
	SuiteCorrectness = "correctness"
	SuiteStability   = "stability"
)

// Case is a named check the harness can run.
// TestCase implements it for every ordered element type.
type Case interface {
	CaseName() string
	Run() TestResult
}

// TestResult is the outcome of a single check.
// It is not modified after it has been added to a Report.
type TestResult struct {
	Name  string `json:"name"`
	Suite string `json:"suite"`
	Pass  bool   `json:"pass"`

	// Input is a copy of the input the check started from.
	Input any `json:"input"`

	// Output is what the engine produced.
	Output any `json:"output"`

	// Expected is only set when the check failed.
	Expected any `json:"expected,omitempty"`

	// Diff explains a failure. Empty when Pass is true.
	Diff string `json:"diff,omitempty"`
}

// StabilityProbe is an element ordered only by Value. OriginalIndex records
// the position the probe was created at so that the order of equal values can
// be checked after sorting.
type StabilityProbe struct {
	Value         int `json:"value"`
	OriginalIndex int `json:"originalIndex"`
}

// Less orders probes by Value alone.
func (p StabilityProbe) Less(other StabilityProbe) bool {
	return p.Value < other.Value
}

// CompareProbes orders probes by Value alone, for use with binsort.SortFunc.
func CompareProbes(a, b StabilityProbe) int {
	return cmp.Compare(a.Value, b.Value)
}

func (p StabilityProbe) String() string {
	return fmt.Sprintf("(%d,%d)", p.Value, p.OriginalIndex)
}

// StabilityResult holds the details of a stability check.
type StabilityResult struct {
	Name       string           `json:"name"`
	Pass       bool             `json:"pass"`
	Input      []StabilityProbe `json:"input"`
	Output     []StabilityProbe `json:"output"`
	Violations []string         `json:"violations,omitempty"`
}

// BenchmarkSample holds the time taken by each sort on the same random input.
type BenchmarkSample struct {
	Size     int
	Engine   time.Duration
	Baseline time.Duration
	Oracle   time.Duration
}

// Speedup returns how many times faster the engine was than the baseline.
// It returns 0 when the engine time is zero.
func (b BenchmarkSample) Speedup() float64 {
	if b.Engine <= 0 {
		return 0
	}
	return float64(b.Baseline) / float64(b.Engine)
}

// MarshalJSON reports durations in fractional milliseconds.
func (b BenchmarkSample) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Size           int     `json:"size"`
		EngineTimeMs   float64 `json:"engineTimeMs"`
		BaselineTimeMs float64 `json:"baselineTimeMs"`
		OracleTimeMs   float64 `json:"oracleTimeMs"`
		Speedup        float64 `json:"speedup"`
	}{
		Size:           b.Size,
		EngineTimeMs:   millis(b.Engine),
		BaselineTimeMs: millis(b.Baseline),
		OracleTimeMs:   millis(b.Oracle),
		Speedup:        b.Speedup(),
	})
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Report is the result of a harness run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string `json:"runId"`

	// Seed is the seed the random inputs were generated from.
	// Running again with the same seed reproduces the same inputs.
	Seed uint64 `json:"seed"`

	TotalCases int `json:"totalCases"`
	Passed     int `json:"passed"`
	Failed     int `json:"failed"`

	// PassRate is the percentage of passed cases, 0 when no case ran.
	PassRate float64 `json:"passRate"`

	// Success is true when every correctness and stability check passed.
	Success bool `json:"success"`

	Results    []TestResult      `json:"results"`
	Stability  []StabilityResult `json:"stability"`
	Benchmarks []BenchmarkSample `json:"benchmarks"`
}

// newReport creates an empty report.
func newReport(runID string, seed uint64) *Report {
	return &Report{
		RunID:      runID,
		Seed:       seed,
		Success:    true,
		Results:    []TestResult{},
		Stability:  []StabilityResult{},
		Benchmarks: []BenchmarkSample{},
	}
}

// add records a result and updates the tally.
func (r *Report) add(res TestResult) {
	r.Results = append(r.Results, res)
	r.TotalCases++
	if res.Pass {
		r.Passed++
	} else {
		r.Failed++
	}
	if r.TotalCases > 0 {
		r.PassRate = float64(r.Passed) / float64(r.TotalCases) * 100
	}
	r.Success = r.Failed == 0
}

// Failures returns the failed results in the order they ran.
func (r *Report) Failures() []TestResult {
	var failed []TestResult
	for _, res := range r.Results {
		if !res.Pass {
			failed = append(failed, res)
		}
	}
	return failed
}
