package answer

import "math"

// samplePoints are the values of x at which NumericallyEquivalent compares
// two expressions.
var samplePoints = [...]float64{0, 1, -1, 2, -2, 3, 0.5, -0.5}

const (
	minValidPoints = 5
	tolerance      = 1e-9
)

// NumericallyEquivalent reports whether a and b agree at every sample point
// where both evaluate, provided at least five of the eight points evaluate.
//
// This is a sampling approximation of polynomial identity, not a proof. For
// the low-degree single-variable expressions graded here, agreement on five
// or more generic points is treated as equivalence.
func NumericallyEquivalent(a, b string) bool {
	valid := 0
	for _, x := range samplePoints {
		va, okA := Evaluate(a, x)
		vb, okB := Evaluate(b, x)
		if !okA || !okB {
			continue
		}
		valid++
		if math.Abs(va-vb) >= tolerance {
			return false
		}
	}
	return valid >= minValidPoints
}
