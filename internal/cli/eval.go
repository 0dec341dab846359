package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/quantified"
)

// EvalResult holds the result of a single membership evaluation.
type EvalResult struct {
	Expr  string `json:"expr"`
	Value string `json:"value"`
	Match bool   `json:"match"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expr> <value>",
		Short: "Test a value against a quantifier expression",
		Long: `Test whether a value falls inside a quantifier expression.

Exit codes:
  0 - Value matches
  1 - Value does not match
  2 - Command error (malformed expression)

Examples:
  quantified eval 'excluding(staging)' production
  quantified eval 'some(5)' 5 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runEval(opts *RootOptions, expr, value string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	q, err := quantified.ParseString(expr)
	if err != nil {
		formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid expression", err)
	}

	// Candidate values go through the same NFC normalization as payloads,
	// so composed and decomposed spellings of one string compare equal.
	candidate := norm.NFC.String(value)
	match := quantified.Contains(q, candidate)

	result := EvalResult{Expr: q.String(), Value: candidate, Match: match}
	formatter.VerboseLog("evaluating %s against %q", result.Expr, result.Value)

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		if match {
			fmt.Fprintf(formatter.Writer, "match: %s admits %q\n", result.Expr, result.Value)
		} else {
			fmt.Fprintf(formatter.Writer, "no match: %s rejects %q\n", result.Expr, result.Value)
		}
	}

	if !match {
		return NewExitError(ExitFailure, "value does not match")
	}
	return nil
}
