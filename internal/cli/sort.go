package cli

import (
	"github.com/spf13/cobra"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	Uniq bool // drop duplicate values
}

// SortResult is the JSON payload of the sort command.
type SortResult struct {
	Input  any `json:"input"`
	Sorted any `json:"sorted"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort <number>...",
		Short: "Sort numbers with binary insertion sort",
		Long: `Sort the numbers given as arguments and print them in ascending order.

Negative numbers must follow "--" so they are not read as flags.

Examples:
  binsort sort 5 2 4 6 1 3
  binsort sort --uniq 3 1 3 2
  binsort sort -- -5 3.5 -1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Uniq, "uniq", false, "drop duplicate values")

	return cmd
}

func runSort(opts *SortOptions, cmd *cobra.Command, args []string) error {
	f := opts.formatter(cmd)

	input, err := parseTokens(args)
	if err != nil {
		return f.Fail(CodeInvalidInput, "invalid input", err)
	}
	sorted := input.Sorted()
	if opts.Uniq {
		sorted = sorted.Uniq()
	}
	opts.Logger.Debug("sorted numbers", "count", input.Len(), "uniq", opts.Uniq)

	if f.IsJSON() {
		return f.Success(SortResult{Input: input.Values(), Sorted: sorted.Values()})
	}
	return f.Success(sorted)
}
