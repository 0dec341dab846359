package quantified

import "fmt"

// Kind identifies which of the four quantification variants a value holds.
// The declaration order is load-bearing: it is the primary key of the
// structural order (None < Some < Excluding < All).
type Kind uint8

const (
	// KindNone matches nothing.
	KindNone Kind = iota
	// KindSome matches exactly the carried payload.
	KindSome
	// KindExcluding matches everything except the carried payload.
	KindExcluding
	// KindAll matches everything.
	KindAll
)

// kindNames maps kinds to their canonical textual names.
var kindNames = [...]string{
	KindNone:      "none",
	KindSome:      "some",
	KindExcluding: "excluding",
	KindAll:       "all",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the four defined kinds.
func (k Kind) Valid() bool {
	return k <= KindAll
}

// HasPayload reports whether the kind carries a payload value.
// Only KindSome and KindExcluding do.
func (k Kind) HasPayload() bool {
	return k == KindSome || k == KindExcluding
}

// KindFromString parses a canonical kind name as produced by Kind.String.
func KindFromString(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q: must be none, some, excluding, or all", s)
}

// Quantified is an immutable four-valued quantification over a payload
// type T. Exactly one kind is active; only KindSome and KindExcluding
// carry a payload. The zero value is None.
//
// Construct values with None, Some, Excluding, or All. There are no
// error conditions: every kind is valid for every T.
type Quantified[T any] struct {
	kind  Kind
	value T
}

// None returns the quantification that matches nothing.
func None[T any]() Quantified[T] {
	return Quantified[T]{kind: KindNone}
}

// Some returns the quantification that matches exactly v.
func Some[T any](v T) Quantified[T] {
	return Quantified[T]{kind: KindSome, value: v}
}

// Excluding returns the quantification that matches everything except v.
func Excluding[T any](v T) Quantified[T] {
	return Quantified[T]{kind: KindExcluding, value: v}
}

// All returns the quantification that matches everything.
func All[T any]() Quantified[T] {
	return Quantified[T]{kind: KindAll}
}

// Kind returns the active variant.
func (q Quantified[T]) Kind() Kind {
	return q.kind
}

// Value returns the payload and whether the active kind carries one.
// For None and All the payload is T's zero value and ok is false.
func (q Quantified[T]) Value() (v T, ok bool) {
	if !q.kind.HasPayload() {
		var zero T
		return zero, false
	}
	return q.value, true
}

// IsNone reports whether q matches nothing.
func (q Quantified[T]) IsNone() bool {
	return q.kind == KindNone
}

// IsAll reports whether q matches everything.
func (q Quantified[T]) IsAll() bool {
	return q.kind == KindAll
}
