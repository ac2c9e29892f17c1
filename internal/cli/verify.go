package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lanrat/binsort/harness"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Seed      uint64 // 0 picks a seed from the clock
	Sizes     []int  // benchmark input sizes
	NoBench   bool   // skip the performance suite
	CasesFile string // YAML file with extra correctness cases
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Run the verification harness",
		Long: `Run the correctness, stability and performance suites against the
binary insertion sort and print a report.

Exit codes:
  0 - All checks passed
  1 - One or more checks failed
  2 - Command error (invalid flags, unreadable case file, etc.)

Examples:
  binsort verify
  binsort verify --seed 42 --no-bench
  binsort verify --sizes 100,1000,5000
  binsort verify --cases extra.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for random inputs (0 picks one)")
	cmd.Flags().IntSliceVar(&opts.Sizes, "sizes", nil, "benchmark input sizes (default 100,500,1000)")
	cmd.Flags().BoolVar(&opts.NoBench, "no-bench", false, "skip the performance suite")
	cmd.Flags().StringVar(&opts.CasesFile, "cases", "", "YAML file with extra correctness cases")

	return cmd
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	config := &harness.Config{
		Seed:           opts.Seed,
		BenchmarkSizes: opts.Sizes,
		SkipBenchmarks: opts.NoBench,
		Logger:         opts.Logger,
	}
	if opts.CasesFile != "" {
		cases, err := harness.LoadCases(opts.CasesFile)
		if err != nil {
			return f.Fail(CodeCaseFile, "failed to load cases", err)
		}
		f.VerboseLog("loaded %d cases from %s", len(cases), opts.CasesFile)
		config.ExtraCases = cases
	}

	h, err := harness.New(config)
	if err != nil {
		return f.Fail(CodeInvalidConfig, "invalid harness configuration", err)
	}
	report := h.Run()

	if f.IsJSON() {
		status := "ok"
		if !report.Success {
			status = "failed"
		}
		if err := f.JSON(status, report); err != nil {
			return err
		}
	} else {
		renderReport(cmd.OutOrStdout(), report, opts.Verbose)
	}

	if !report.Success {
		return NewExitError(ExitFailure, fmt.Sprintf("verification failed: %d of %d checks failed", report.Failed, report.TotalCases))
	}
	return nil
}

// renderReport writes a human readable report. The run id and timings of the
// suites other than performance are left out so that a fixed seed gives a
// fixed report.
func renderReport(w io.Writer, report *harness.Report, verbose bool) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "seed: %d\n", report.Seed)
	suite := ""
	for _, res := range report.Results {
		if res.Suite != suite {
			suite = res.Suite
			p.Fprintf(w, "%s:\n", suite)
		}
		mark := "PASS"
		if !res.Pass {
			mark = "FAIL"
		}
		p.Fprintf(w, "  %s  %s\n", mark, res.Name)
		if res.Pass {
			continue
		}
		diff := strings.TrimRight(res.Diff, "\n")
		if !verbose {
			diff, _, _ = strings.Cut(diff, "\n")
		}
		for _, line := range strings.Split(diff, "\n") {
			p.Fprintf(w, "        %s\n", line)
		}
	}

	if len(report.Benchmarks) > 0 {
		p.Fprintf(w, "performance:\n")
		for _, b := range report.Benchmarks {
			p.Fprintf(w, "  n=%d  engine %v  baseline %v  oracle %v  speedup %.2fx\n",
				b.Size, b.Engine, b.Baseline, b.Oracle, b.Speedup())
		}
	}

	p.Fprintf(w, "total: %d  passed: %d  failed: %d  pass rate: %.1f%%\n",
		report.TotalCases, report.Passed, report.Failed, report.PassRate)
	if report.Success {
		p.Fprintf(w, "all checks passed\n")
	} else {
		p.Fprintf(w, "%d checks failed\n", report.Failed)
	}
}
