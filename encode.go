package quantified

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// String renders the value in its canonical textual form: none, all,
// some(<payload>) or excluding(<payload>), with the payload in %v form.
// The four variants are always distinguishable in the output.
func (q Quantified[T]) String() string {
	if !q.kind.HasPayload() {
		return q.kind.String()
	}
	return fmt.Sprintf("%s(%v)", q.kind, q.value)
}

// Format renders the value like String but with a caller-supplied payload
// renderer, for payload types whose %v form is unsuitable.
func (q Quantified[T]) Format(render func(T) string) string {
	if !q.kind.HasPayload() {
		return q.kind.String()
	}
	return fmt.Sprintf("%s(%s)", q.kind, render(q.value))
}

// ParseError reports a malformed quantifier expression. It wraps the
// payload parser's error when the expression shape itself was fine.
type ParseError struct {
	Input  string // the expression as given
	Reason string // what was wrong with its shape, if anything
	Err    error  // payload parser error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse is the inverse of String. It accepts none, all, some(<payload>)
// and excluding(<payload>), delegating the payload text between the
// outermost parentheses to parsePayload. Leading and trailing space
// around the expression is ignored; payload text is passed through
// verbatim.
func Parse[T any](s string, parsePayload func(string) (T, error)) (Quantified[T], error) {
	expr := strings.TrimSpace(s)

	name := expr
	payload := ""
	hasPayload := false
	if i := strings.IndexByte(expr, '('); i >= 0 {
		if !strings.HasSuffix(expr, ")") {
			return None[T](), &ParseError{Input: s, Reason: "missing closing parenthesis"}
		}
		name = expr[:i]
		payload = expr[i+1 : len(expr)-1]
		hasPayload = true
	}

	kind, err := KindFromString(name)
	if err != nil {
		return None[T](), &ParseError{Input: s, Reason: err.Error()}
	}

	switch {
	case kind.HasPayload() && !hasPayload:
		return None[T](), &ParseError{Input: s, Reason: fmt.Sprintf("%s requires a payload", kind)}
	case !kind.HasPayload() && hasPayload:
		return None[T](), &ParseError{Input: s, Reason: fmt.Sprintf("%s takes no payload", kind)}
	case !kind.HasPayload():
		return Quantified[T]{kind: kind}, nil
	}

	v, err := parsePayload(payload)
	if err != nil {
		return None[T](), &ParseError{Input: s, Err: err}
	}
	return Quantified[T]{kind: kind, value: v}, nil
}

// ParseString parses a quantifier over string payloads. Payloads are NFC
// normalized so that textual round-trips compare canonically regardless
// of the Unicode composition of the input.
func ParseString(s string) (Quantified[string], error) {
	return Parse(s, func(payload string) (string, error) {
		return norm.NFC.String(payload), nil
	})
}

// jsonEnvelope is the wire shape for both JSON and YAML: a kind name plus
// an optional payload. The payload is present exactly when the kind
// carries one.
type jsonEnvelope struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as {"kind": "...", "value": ...}, with
// the value field omitted for none and all.
func (q Quantified[T]) MarshalJSON() ([]byte, error) {
	env := jsonEnvelope{Kind: q.kind.String()}
	if q.kind.HasPayload() {
		raw, err := json.Marshal(q.value)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", q.kind, err)
		}
		env.Value = raw
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes the envelope produced by MarshalJSON. Unknown
// kinds, a payload on none/all, and a missing payload on some/excluding
// are all errors.
func (q *Quantified[T]) UnmarshalJSON(data []byte) error {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	kind, err := KindFromString(env.Kind)
	if err != nil {
		return err
	}
	if kind.HasPayload() != (env.Value != nil) {
		if kind.HasPayload() {
			return fmt.Errorf("%s requires a value field", kind)
		}
		return fmt.Errorf("%s takes no value field", kind)
	}

	out := Quantified[T]{kind: kind}
	if kind.HasPayload() {
		if err := json.Unmarshal(env.Value, &out.value); err != nil {
			return fmt.Errorf("unmarshal %s payload: %w", kind, err)
		}
	}
	*q = out
	return nil
}

// yamlEnvelope mirrors jsonEnvelope for YAML documents.
type yamlEnvelope[T any] struct {
	Kind  string `yaml:"kind"`
	Value T      `yaml:"value"`
}

// MarshalYAML encodes none and all as bare scalars and the
// payload-bearing kinds as a {kind, value} mapping.
func (q Quantified[T]) MarshalYAML() (any, error) {
	if !q.kind.HasPayload() {
		return q.kind.String(), nil
	}
	return yamlEnvelope[T]{Kind: q.kind.String(), Value: q.value}, nil
}

// UnmarshalYAML accepts either form produced by MarshalYAML: a bare
// none/all scalar or a {kind, value} mapping.
func (q *Quantified[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		kind, err := KindFromString(name)
		if err != nil {
			return err
		}
		if kind.HasPayload() {
			return fmt.Errorf("%s requires a value field", kind)
		}
		*q = Quantified[T]{kind: kind}
		return nil
	}

	var env struct {
		Kind  string    `yaml:"kind"`
		Value yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&env); err != nil {
		return err
	}

	kind, err := KindFromString(env.Kind)
	if err != nil {
		return err
	}
	if kind.HasPayload() && env.Value.IsZero() {
		return fmt.Errorf("%s requires a value field", kind)
	}
	if !kind.HasPayload() && !env.Value.IsZero() {
		return fmt.Errorf("%s takes no value field", kind)
	}

	out := Quantified[T]{kind: kind}
	if kind.HasPayload() {
		if err := env.Value.Decode(&out.value); err != nil {
			return fmt.Errorf("unmarshal %s payload: %w", kind, err)
		}
	}
	*q = out
	return nil
}
