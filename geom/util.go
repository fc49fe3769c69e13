package geom

import "gonum.org/v1/gonum/floats/scalar"

// Epsilon is the single tolerance used everywhere in this package. The split
// algorithm composes the side predicate with the intersection solver, and
// they must agree on what counts as "on the line"; per-call tolerances would
// let the two drift apart and misclassify edges that graze the line.
const Epsilon = 1e-4

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

func NearZero(x float64) bool {
	return scalar.EqualWithinAbs(x, 0, Epsilon)
}

// Often we want to treat a vertex slice as a circular buffer. This gives the
// modular index for length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
