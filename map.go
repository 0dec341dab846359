package quantified

// Map applies f to a Some or Excluding payload and returns a value of the
// same kind over U. None and All pass through unchanged.
//
//	Map(Some("hey"), len)      == Some(3)
//	Map(Excluding("x"), upper) == Excluding("X")
//	Map(All[string](), len)    == All[int]()
func Map[T, U any](q Quantified[T], f func(T) U) Quantified[U] {
	switch q.kind {
	case KindSome:
		return Some(f(q.value))
	case KindExcluding:
		return Excluding(f(q.value))
	case KindAll:
		return All[U]()
	default:
		return None[U]()
	}
}

// Clone returns a copy of q. For payloads with plain value semantics the
// copy is fully independent; payloads holding references (slices, maps,
// pointers) share their referents, so use CloneFunc for those.
func Clone[T any](q Quantified[T]) Quantified[T] {
	return q
}

// CloneFunc returns a copy of q whose payload, if any, is reproduced by
// copy. Use it when T carries references and the copy must not share
// mutable state with the original.
func CloneFunc[T any](q Quantified[T], copy func(T) T) Quantified[T] {
	return Map(q, copy)
}
