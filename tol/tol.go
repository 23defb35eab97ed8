// Package tol provides the floating point comparisons used across the
// toolkit. Angles survive a chain of trig and normalization steps, so
// equality is always within a combined relative and absolute tolerance.
package tol

import "math"

// Default tolerances.
const (
	RelTol = 1e-6
	AbsTol = 1e-8
)

// IsCloseTo reports whether value is within the default tolerance of target.
// The comparison is asymmetric: target sets the reference magnitude.
func IsCloseTo(value, target float64) bool {
	return IsCloseToWithin(value, target, RelTol, AbsTol)
}

// IsCloseToWithin is IsCloseTo with explicit tolerances.
func IsCloseToWithin(value, target, relTol, absTol float64) bool {
	return math.Abs(value-target) <= absTol+relTol*math.Abs(target)
}

// AreClose reports whether a and b are within the default tolerance of each
// other. Symmetric: the relative part scales with the mean magnitude.
func AreClose(a, b float64) bool {
	return AreCloseWithin(a, b, RelTol, AbsTol)
}

// AreCloseWithin is AreClose with explicit tolerances.
func AreCloseWithin(a, b, relTol, absTol float64) bool {
	return math.Abs(a-b) <= absTol+relTol*0.5*(math.Abs(a)+math.Abs(b))
}
