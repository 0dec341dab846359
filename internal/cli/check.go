package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/quantified"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Rules string // path to the rules file
}

// RuleResult holds the result of checking a single rule.
type RuleResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Rules  []RuleResult `json:"rules"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Total  int          `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check --rules <file>",
		Short: "Check quantifier rules from a file",
		Long: `Check named quantifier rules loaded from a CUE or YAML file.

Each rule declares a quantifier expression plus accept and reject
probes. A rule passes when every accept probe falls inside the
quantifier and every reject probe falls outside.

Exit codes:
  0 - All rules passed
  1 - One or more rules failed
  2 - Command error (missing or malformed rules file)

Examples:
  quantified check --rules rules.cue
  quantified check --rules rules.yaml --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Rules, "rules", "", "path to rules file (.cue, .yaml, .yml)")
	cmd.MarkFlagRequired("rules")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	rs, err := LoadRules(opts.Rules)
	if err != nil {
		code := ErrCodeLoadFailed
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			code = loadErr.Code
		}
		formatter.Error(code, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading rules", err)
	}

	formatter.VerboseLog("loaded %d rules from %s", len(rs.Rules), opts.Rules)

	result := CheckResult{Total: len(rs.Rules)}
	for _, rule := range rs.Rules {
		result.Rules = append(result.Rules, checkRule(rule))
	}
	for _, rr := range result.Rules {
		if rr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		for _, rr := range result.Rules {
			if rr.Pass {
				fmt.Fprintf(formatter.Writer, "PASS %s\n", rr.Name)
				continue
			}
			fmt.Fprintf(formatter.Writer, "FAIL %s\n", rr.Name)
			for _, msg := range rr.Errors {
				fmt.Fprintf(formatter.Writer, "  %s\n", msg)
			}
		}
		fmt.Fprintf(formatter.Writer, "%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d rules failed", result.Failed, result.Total))
	}
	return nil
}

// checkRule evaluates one rule's probes against its quantifier.
func checkRule(rule Rule) RuleResult {
	rr := RuleResult{Name: rule.Name}

	q, err := quantified.ParseString(rule.Quantifier)
	if err != nil {
		rr.Errors = append(rr.Errors, fmt.Sprintf("invalid quantifier: %v", err))
		return rr
	}

	for _, probe := range rule.Accept {
		if !quantified.Contains(q, norm.NFC.String(probe)) {
			rr.Errors = append(rr.Errors, fmt.Sprintf("accept probe %q rejected by %s", probe, q))
		}
	}
	for _, probe := range rule.Reject {
		if quantified.Contains(q, norm.NFC.String(probe)) {
			rr.Errors = append(rr.Errors, fmt.Sprintf("reject probe %q admitted by %s", probe, q))
		}
	}

	rr.Pass = len(rr.Errors) == 0
	return rr
}
