package harness

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lanrat/binsort"
)

// DefaultProbes returns the classic stability input
// [(3,1) (1,2) (3,3) (2,4) (1,5)] whose stable order is
// [(1,2) (1,5) (2,4) (3,1) (3,3)].
func DefaultProbes() []StabilityProbe {
	return []StabilityProbe{
		{Value: 3, OriginalIndex: 1},
		{Value: 1, OriginalIndex: 2},
		{Value: 3, OriginalIndex: 3},
		{Value: 2, OriginalIndex: 4},
		{Value: 1, OriginalIndex: 5},
	}
}

// RandomProbes returns n probes with values drawn from [0, distinct), so that
// most values repeat. OriginalIndex is the position of the probe.
func RandomProbes(rng *rand.Rand, n, distinct int) []StabilityProbe {
	probes := make([]StabilityProbe, n)
	for i := range probes {
		probes[i] = StabilityProbe{Value: rng.IntN(distinct), OriginalIndex: i}
	}
	return probes
}

// CheckStability sorts a copy of probes with sortFunc, binsort.SortLessers when
// nil, and checks every adjacent pair of the output: values must not decrease
// and probes with equal values must keep ascending OriginalIndex order.
// OriginalIndex values are expected to be distinct and increasing in probes.
func CheckStability(name string, probes []StabilityProbe, sortFunc func([]StabilityProbe)) StabilityResult {
	if sortFunc == nil {
		sortFunc = binsort.SortLessers[[]StabilityProbe]
	}

	output := slices.Clone(probes)
	sortFunc(output)

	res := StabilityResult{
		Name:   name,
		Input:  slices.Clone(probes),
		Output: output,
	}
	if len(output) != len(probes) {
		res.Violations = append(res.Violations, fmt.Sprintf("output has %d probes, input had %d", len(output), len(probes)))
	}
	for i := 0; i+1 < len(output); i++ {
		a, b := output[i], output[i+1]
		switch {
		case b.Less(a):
			res.Violations = append(res.Violations, fmt.Sprintf("%s before %s at index %d: out of order", a, b, i))
		case a.Value == b.Value && a.OriginalIndex > b.OriginalIndex:
			res.Violations = append(res.Violations, fmt.Sprintf("%s before %s at index %d: equal values swapped", a, b, i))
		}
	}
	res.Pass = len(res.Violations) == 0
	return res
}

// toTestResult summarizes a stability check for the report tally
func (s StabilityResult) toTestResult() TestResult {
	res := TestResult{
		Name:   s.Name,
		Suite:  SuiteStability,
		Pass:   s.Pass,
		Input:  s.Input,
		Output: s.Output,
	}
	if !s.Pass {
		expected := slices.Clone(s.Input)
		slices.SortStableFunc(expected, CompareProbes)
		res.Expected = expected
		res.Diff = fmt.Sprintf("%d stability violations, first: %s", len(s.Violations), s.Violations[0])
	}
	return res
}
