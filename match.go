package quantified

// Contains reports whether v falls inside the quantification:
// None admits nothing, Some(x) admits exactly x, Excluding(x) admits
// everything but x, All admits everything.
func Contains[T comparable](q Quantified[T], v T) bool {
	switch q.kind {
	case KindSome:
		return q.value == v
	case KindExcluding:
		return q.value != v
	case KindAll:
		return true
	default:
		return false
	}
}

// ContainsFunc is Contains with a caller-supplied payload equality.
func ContainsFunc[T any](q Quantified[T], v T, eq func(T, T) bool) bool {
	switch q.kind {
	case KindSome:
		return eq(q.value, v)
	case KindExcluding:
		return !eq(q.value, v)
	case KindAll:
		return true
	default:
		return false
	}
}
