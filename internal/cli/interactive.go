package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// quitCommand ends an interactive session, compared case-insensitively.
const quitCommand = "quit"

// NewInteractiveCommand creates the interactive command.
func NewInteractiveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Sort lines of numbers read from standard input",
		Long: `Read lines of space separated numbers and print each line sorted.

Blank lines are skipped. Enter "quit", close the input or press Ctrl-C to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInteractive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), rootOpts.Logger)
		},
	}
	return cmd
}

// RunInteractive runs an interactive session until the quit command, the end
// of in, or the cancellation of ctx.
func RunInteractive(ctx context.Context, in io.Reader, out io.Writer, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// The reader is not waited for: a read blocked on a terminal cannot be
	// interrupted, and it ends with the process.
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprintf(out, "Enter numbers separated by spaces, or %q to exit.\n", quitCommand)
	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			logger.Debug("interactive session interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.EqualFold(line, quitCommand) {
				return nil
			}
			numbers, err := ParseNumbers(line)
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					logger.Debug("rejected input", "token", pe.Token)
				}
				fmt.Fprintf(out, "%v, enter numbers separated by spaces\n", err)
				continue
			}
			fmt.Fprintf(out, "original: %v\n", numbers)
			fmt.Fprintf(out, "sorted:   %v\n", numbers.Sorted())
		}
	}
}
