package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/quantified"
)

// SortResult holds the sorted expressions in their canonical form.
type SortResult struct {
	Exprs []string `json:"exprs"`
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort quantifier expressions",
		Long: `Sort quantifier expressions under the structural order.

Reads one expression per line from the given file, or from stdin when
no file is given. Blank lines are skipped. The first malformed line
aborts the run.

Examples:
  quantified sort exprs.txt
  printf 'all\nnone\nsome(b)\n' | quantified sort`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return WrapExitError(ExitCommandError, "opening input file", err)
				}
				defer f.Close()
				in = f
			}
			return runSort(rootOpts, in, cmd)
		},
	}

	return cmd
}

func runSort(opts *RootOptions, in io.Reader, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var vals []quantified.Quantified[string]
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		q, err := quantified.ParseString(line)
		if err != nil {
			formatter.Error(ErrCodeParse, fmt.Sprintf("line %d: %v", lineNo, err), nil)
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid expression on line %d", lineNo), err)
		}
		vals = append(vals, q)
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "reading input", err)
	}

	formatter.VerboseLog("sorting %d expressions", len(vals))
	slices.SortFunc(vals, quantified.Compare[string])

	result := SortResult{Exprs: make([]string, len(vals))}
	for i, q := range vals {
		result.Exprs[i] = q.String()
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	for _, expr := range result.Exprs {
		fmt.Fprintln(formatter.Writer, expr)
	}
	return nil
}
