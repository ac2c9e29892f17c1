// Package harness verifies the binsort engine.
//
// A run is made of three suites:
//
//   - correctness: a fixed battery of inputs (empty, single, two elements,
//     sorted, reverse, all equal, duplicates, negative, fractional and large
//     numbers, a random and a partially sorted input) plus any extra cases,
//     each compared element by element with the output of slices.Sort.
//   - stability: StabilityProbe values that only order by Value are sorted and
//     every run of equal values must keep ascending OriginalIndex order.
//   - performance: random inputs of increasing size are timed under the
//     engine, the linear insertion sort baseline and slices.Sort.
//
// Every case works on its own copy of its input. Failures are recorded in the
// Report and never abort the run, and benchmark numbers never affect the
// verdict.
//
// # Usage
//
//	h, err := harness.New(&harness.Config{Seed: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := h.Run()
//	if !report.Success {
//	    for _, r := range report.Failures() {
//	        log.Println(r.Name, r.Diff)
//	    }
//	}
//
// Extra cases can be loaded from YAML:
//
//	cases:
//	  - name: pi digits
//	    input: [3, 1, 4, 1, 5, 9, 2, 6]
//	  - name: with expectation
//	    input: [2.5, -1]
//	    expected: [-1, 2.5]
package harness
