package harness

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	gocmp "github.com/google/go-cmp/cmp"

	"github.com/lanrat/binsort"
	"github.com/lanrat/binsort/diff"
)

// TestCase is a named input for the correctness suite.
type TestCase[E cmp.Ordered] struct {
	Name  string
	Input []E

	// Expected is the output the engine must produce.
	// When nil the output of slices.Sort on a copy of Input is used.
	Expected []E

	// Sort is the sort under test, binsort.Sort when nil.
	Sort func([]E)
}

// CaseName returns the name of the case.
func (tc TestCase[E]) CaseName() string {
	return tc.Name
}

// Run runs the case, see RunCase.
func (tc TestCase[E]) Run() TestResult {
	return RunCase(tc)
}

// RunCase sorts a copy of tc.Input and compares it element by element with the
// expected output. The input of tc is never modified.
func RunCase[E cmp.Ordered](tc TestCase[E]) TestResult {
	sortFunc := tc.Sort
	if sortFunc == nil {
		sortFunc = binsort.Sort[[]E]
	}

	original := slices.Clone(tc.Input)
	output := slices.Clone(tc.Input)
	sortFunc(output)

	expected := tc.Expected
	if expected == nil {
		expected = slices.Clone(tc.Input)
		slices.Sort(expected)
	}

	res := TestResult{
		Name:   tc.Name,
		Suite:  SuiteCorrectness,
		Pass:   slices.EqualFunc(output, expected, equal[E]),
		Input:  original,
		Output: output,
	}
	if !res.Pass {
		res.Expected = slices.Clone(expected)
		res.Diff = explain(expected, output)
	}
	return res
}

// equal reports whether a and b hold the same value, NaN equals NaN
func equal[E cmp.Ordered](a, b E) bool {
	return cmp.Compare(a, b) == 0
}

// explain describes how output differs from expected
func explain[E cmp.Ordered](expected, output []E) string {
	idx := diff.Mismatch(expected, output, cmp.Compare[E])

	// the multiset comparison needs both sides sorted
	sortedOutput := slices.Clone(output)
	slices.Sort(sortedOutput)
	sortedExpected := slices.Clone(expected)
	slices.Sort(sortedExpected)
	counts, _ := diff.Ordered(sortedExpected, sortedOutput, diff.Discard[E])

	detail := "same elements, wrong order"
	if !counts.SameElements() {
		detail = fmt.Sprintf("%d missing, %d unexpected", counts.ExtraA, counts.ExtraB)
	}
	return fmt.Sprintf("first mismatch at index %d (%s)\n%s", idx, detail, gocmp.Diff(expected, output))
}

// DefaultCases returns the standard correctness battery.
// The random inputs are drawn from rng using the sizes in c.
func DefaultCases(rng *rand.Rand, c *Config) []Case {
	c = mergeConfig(c)

	random := randomInts(rng, c.RandomSize, c.MaxValue)

	partial := make([]int, 0, 2*c.PartialRun)
	for i := 1; i <= c.PartialRun; i++ {
		partial = append(partial, i)
	}
	partial = append(partial, randomInts(rng, c.PartialRun, c.MaxValue)...)

	return []Case{
		TestCase[int]{Name: "basic", Input: []int{64, 34, 25, 12, 22, 11, 90}, Expected: []int{11, 12, 22, 25, 34, 64, 90}},
		TestCase[int]{Name: "small array", Input: []int{5, 2, 4, 6, 1, 3}},
		TestCase[int]{Name: "empty", Input: []int{}, Expected: []int{}},
		TestCase[int]{Name: "single element", Input: []int{42}, Expected: []int{42}},
		TestCase[int]{Name: "two elements ascending", Input: []int{1, 2}, Expected: []int{1, 2}},
		TestCase[int]{Name: "two elements descending", Input: []int{2, 1}, Expected: []int{1, 2}},
		TestCase[int]{Name: "already sorted", Input: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		TestCase[int]{Name: "reverse sorted", Input: []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		TestCase[int]{Name: "all equal", Input: []int{5, 5, 5, 5, 5}, Expected: []int{5, 5, 5, 5, 5}},
		TestCase[int]{Name: "mixed duplicates", Input: []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}},
		TestCase[int]{Name: "negative numbers", Input: []int{-5, -1, -10, 0, 3, -2}},
		TestCase[float64]{Name: "floating point", Input: []float64{3.14, 2.71, 1.41, 0.57, 2.23}, Expected: []float64{0.57, 1.41, 2.23, 2.71, 3.14}},
		TestCase[int]{Name: "large numbers", Input: []int{1000000, 999999, 1000001, 500000}},
		TestCase[int]{Name: fmt.Sprintf("random (%d)", c.RandomSize), Input: random},
		TestCase[int]{Name: "partially sorted", Input: partial},
	}
}

// randomInts returns n values in [1, maxValue]
func randomInts(rng *rand.Rand, n, maxValue int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(maxValue) + 1
	}
	return out
}
