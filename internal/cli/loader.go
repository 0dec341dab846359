package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Rule is one named quantifier with its membership probes. Accept probes
// must fall inside the quantifier, reject probes must fall outside.
type Rule struct {
	Name       string   `json:"name" yaml:"name"`
	Quantifier string   `json:"quantifier" yaml:"quantifier"`
	Accept     []string `json:"accept,omitempty" yaml:"accept,omitempty"`
	Reject     []string `json:"reject,omitempty" yaml:"reject,omitempty"`
}

// RuleSet is the decoded contents of a rules file.
type RuleSet struct {
	Rules []Rule
}

// LoadError represents an error that occurred during rules loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadRules loads a rules file. The format is chosen by extension:
// .cue files are compiled with CUE, .yaml/.yml files are decoded as
// YAML. Both declare a top-level "rules" list.
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("rules file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("reading rules file: %v", err)}
	}

	var rs *RuleSet
	switch ext := filepath.Ext(path); ext {
	case ".cue":
		rs, err = loadCUERules(path, data)
	case ".yaml", ".yml":
		rs, err = loadYAMLRules(data)
	default:
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("unsupported rules format %q: use .cue, .yaml, or .yml", ext)}
	}
	if err != nil {
		return nil, err
	}

	if len(rs.Rules) == 0 {
		return nil, &LoadError{Code: ErrCodeNoRules, Message: "no rules found in rules file"}
	}
	for i, rule := range rs.Rules {
		if rule.Name == "" {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("rule %d: missing name", i)}
		}
		if rule.Quantifier == "" {
			return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("rule %q: missing quantifier", rule.Name)}
		}
	}
	return rs, nil
}

// loadCUERules compiles a CUE rules file and decodes its rules list.
func loadCUERules(path string, data []byte) (*RuleSet, error) {
	ctx := cuecontext.New()

	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("compiling CUE rules: %v", err)}
	}

	rulesVal := value.LookupPath(cue.ParsePath("rules"))
	if !rulesVal.Exists() {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no top-level rules list in CUE file"}
	}

	rs := &RuleSet{}
	if err := rulesVal.Decode(&rs.Rules); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("decoding CUE rules: %v", err)}
	}
	return rs, nil
}

// loadYAMLRules decodes a YAML rules file.
func loadYAMLRules(data []byte) (*RuleSet, error) {
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("decoding YAML rules: %v", err)}
	}
	return &RuleSet{Rules: doc.Rules}, nil
}
