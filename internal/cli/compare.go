package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/quantified"
)

// CompareResult holds the result of comparing two quantifier expressions.
type CompareResult struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Relation string `json:"relation"` // "<", "=", or ">"
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <expr> <expr>",
		Short: "Order two quantifier expressions",
		Long: `Compare two quantifier expressions under the structural order.

The variant is the primary key (none < some < excluding < all), the
payload the secondary key. The order is for sorting and deterministic
iteration; it does not express a subset relation.

Examples:
  quantified compare none all
  quantified compare 'some(a)' 'some(b)' --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runCompare(opts *RootOptions, left, right string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	lq, err := quantified.ParseString(left)
	if err != nil {
		formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid left expression", err)
	}
	rq, err := quantified.ParseString(right)
	if err != nil {
		formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid right expression", err)
	}

	relation := "="
	switch c := quantified.Compare(lq, rq); {
	case c < 0:
		relation = "<"
	case c > 0:
		relation = ">"
	}

	result := CompareResult{Left: lq.String(), Right: rq.String(), Relation: relation}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "%s %s %s\n", result.Left, result.Relation, result.Right)
	return nil
}
