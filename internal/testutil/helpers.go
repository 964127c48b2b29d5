// Package testutil provides reusable helpers for spline evaluator tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance covers exact closed-form arithmetic.
	DefaultTolerance = 1e-12

	// FiniteDiffTolerance covers comparisons against finite-difference
	// approximations of analytic results.
	FiniteDiffTolerance = 1e-6

	// QuadratureTolerance covers comparisons against trapezoidal
	// cross-checks of the closed-form integral.
	QuadratureTolerance = 1e-5
)

// AssertStrictlyIncreasing verifies that a slice is strictly increasing.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()

	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%f <= s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}

	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()

	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}

		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}

	return true
}

// AssertRelativeError verifies that the relative error between actual and
// expected is within tolerance. Falls back to absolute comparison when the
// expected value is zero.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()

	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}

	relError := math.Abs(actual-expected) / math.Abs(expected)

	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// ConstantSegments packs one constant polynomial per interval: value[i]
// becomes the a coefficient of interval i, with b, c, d zero.
func ConstantSegments(values []float64) []float64 {
	coeffs := make([]float64, 4*len(values))
	for i, v := range values {
		coeffs[4*i] = v
	}

	return coeffs
}

// GlobalCubicSegments re-bases the single global cubic
// p(t) = p0 + p1*t + p2*t^2 + p3*t^3 into per-interval local-coordinate
// tuples. Every interval then reproduces p exactly, which gives property
// tests a smooth spline with a known closed form for value, derivatives
// and integral.
func GlobalCubicSegments(breakpoints []float64, p0, p1, p2, p3 float64) []float64 {
	coeffs := make([]float64, 4*(len(breakpoints)-1))
	for i := 0; i < len(breakpoints)-1; i++ {
		s := breakpoints[i]

		// Taylor shift of p to the interval's left edge.
		coeffs[4*i] = p0 + s*(p1+s*(p2+s*p3))
		coeffs[4*i+1] = p1 + s*(2*p2+s*(3*p3))
		coeffs[4*i+2] = p2 + 3*p3*s
		coeffs[4*i+3] = p3
	}

	return coeffs
}
