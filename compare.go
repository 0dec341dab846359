package quantified

import "cmp"

// Equal reports whether a and b hold the same kind and, for the
// payload-bearing kinds, equal payloads under ==. There is no
// cross-variant equality: Some(x) is never equal to All, whatever x is.
func Equal[T comparable](a, b Quantified[T]) bool {
	if a.kind != b.kind {
		return false
	}
	if !a.kind.HasPayload() {
		return true
	}
	return a.value == b.value
}

// EqualFunc is Equal with a caller-supplied payload equality, for payload
// types that are not comparable or need domain-specific equality.
func EqualFunc[T any](a, b Quantified[T], eq func(T, T) bool) bool {
	if a.kind != b.kind {
		return false
	}
	if !a.kind.HasPayload() {
		return true
	}
	return eq(a.value, b.value)
}

// Compare orders a against b structurally and returns
//
//	-1 if a sorts before b
//	 0 if a equals b
//	+1 if a sorts after b
//
// The kind is the primary key (None < Some < Excluding < All); the
// payload, under cmp.Compare, is the secondary key within Some and
// Excluding. The order is total and exists for sorted containers and
// deterministic iteration only; it is not a subset relation.
func Compare[T cmp.Ordered](a, b Quantified[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied total payload comparator.
// The comparator is consulted only when both values hold the same
// payload-bearing kind.
func CompareFunc[T any](a, b Quantified[T], compare func(T, T) int) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if !a.kind.HasPayload() {
		return 0
	}
	return compare(a.value, b.value)
}

// PartialCompareFunc is CompareFunc for payload types whose order is
// partial. The comparator reports incomparability via ok=false, and the
// result propagates it rather than defaulting to equal or less-than.
// Comparisons decided by the kind alone are always comparable.
func PartialCompareFunc[T any](a, b Quantified[T], compare func(T, T) (int, bool)) (int, bool) {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c, true
	}
	if !a.kind.HasPayload() {
		return 0, true
	}
	return compare(a.value, b.value)
}
