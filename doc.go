// Package quantified models one generic slot of inclusion/exclusion.
//
// A Quantified[T] is a four-valued quantification over a payload type T:
//   - None          matches nothing
//   - Some(v)       matches exactly v
//   - Excluding(v)  matches everything except v
//   - All           matches everything
//
// Values are immutable once constructed and have plain value semantics:
// copying produces an independent instance, comparing and inspecting are
// pure, and no operation on a valid value ever panics. The package is
// safe for concurrent use without coordination.
//
// Equality is structural: same kind, and for the payload-bearing kinds
// equal payloads. Ordering is structural as well, with the kind as the
// primary key (None < Some < Excluding < All) and the payload as the
// secondary key; it exists so values can live in sorted containers and
// iterate deterministically, not to express any subset relation.
//
// Set-combination operations (union, intersection) are deliberately not
// provided: four variants cannot represent the result of combining two
// exclusions, so any such operation would have to guess.
package quantified
