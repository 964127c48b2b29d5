// Package engine implements the numerical kernel for piecewise cubic
// polynomial evaluation: interval lookup, Horner evaluation, analytic
// differentiation and closed-form integration.
//
// The kernel trusts its inputs. Length checks and ownership live in the
// public package; everything here indexes directly into the flat
// breakpoint/coefficient layout.
package engine

import "github.com/tphakala/simd/f64"

// coeffsPerSegment is the (a, b, c, d) tuple size of each interval's local
// cubic a + b*x + c*x^2 + d*x^3.
const coeffsPerSegment = 4

// simdSumMinSegments is the prefix length where f64.Sum overtakes the
// scalar accumulation loop. Below this the call overhead dominates.
const simdSumMinSegments = 32

// Locate returns the index low of the interval [breakpoints[low],
// breakpoints[low+1]) containing t. The search is restricted to interval
// indices, so the last breakpoint acts as an exclusive upper sentinel that
// is never returned. Points outside the breakpoint range clamp to the first
// or last interval; callers extrapolate with that interval's polynomial.
//
// A query at an interior breakpoint lands in the interval it opens, never
// in the one it closes.
func Locate(breakpoints []float64, t float64) int {
	lo, hi := 0, len(breakpoints)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if breakpoints[mid] > t {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo
}

// tuple returns segment i's coefficients from the flat layout.
func tuple(coefficients []float64, i int) (a, b, c, d float64) {
	j := i * coeffsPerSegment

	return coefficients[j], coefficients[j+1], coefficients[j+2], coefficients[j+3]
}

// Value evaluates segment i's cubic at local coordinate x in Horner form.
func Value(coefficients []float64, i int, x float64) float64 {
	a, b, c, d := tuple(coefficients, i)

	return a + x*(b+x*(c+x*d))
}

// Derivatives evaluates segment i's cubic and its first two derivatives at
// local coordinate x. The local coordinate is an affine shift of the global
// one, so these are also the global derivatives.
func Derivatives(coefficients []float64, i int, x float64) (value, first, second float64) {
	a, b, c, d := tuple(coefficients, i)

	value = a + x*(b+x*(c+x*d))
	first = b + x*(2*c+x*(3*d))
	second = 2*c + 6*d*x

	return value, first, second
}

// SegmentIntegral returns the integral of segment i's cubic from local
// coordinate 0 to x, using the closed-form antiderivative
// a*x + b*x^2/2 + c*x^3/3 + d*x^4/4 in Horner form.
func SegmentIntegral(coefficients []float64, i int, x float64) float64 {
	a, b, c, d := tuple(coefficients, i)

	return x * (a + x*(b/2+x*(c/3+x*d/4)))
}

// SegmentIntegrals returns the full-width integral of every segment. The
// result depends only on the fit, so callers compute it once at
// construction and reuse it for every integral query.
func SegmentIntegrals(breakpoints, coefficients []float64) []float64 {
	segments := make([]float64, len(breakpoints)-1)
	for i := range segments {
		w := breakpoints[i+1] - breakpoints[i]
		segments[i] = SegmentIntegral(coefficients, i, w)
	}

	return segments
}

// Integral computes the definite integral of the piecewise cubic from
// breakpoints[0] to t: the sum of the full-width terms of every segment
// before t plus the partial term inside t's segment. segments must be the
// output of SegmentIntegrals for the same fit.
//
// Each segment's local coordinate restarts at zero, so the accumulated sum
// is continuous across segment boundaries without correction terms. For t
// below the first breakpoint the partial term is negative, giving the
// correctly signed integral.
func Integral(breakpoints, coefficients, segments []float64, t float64, useSIMD bool) float64 {
	low := Locate(breakpoints, t)

	var sum float64
	if useSIMD && low >= simdSumMinSegments {
		sum = f64.Sum(segments[:low])
	} else {
		for _, s := range segments[:low] {
			sum += s
		}
	}

	return sum + SegmentIntegral(coefficients, low, t-breakpoints[low])
}

// ValuesInto evaluates the spline at every point in ts into dst. dst must
// be at least as long as ts.
func ValuesInto(dst, breakpoints, coefficients, ts []float64) {
	for i, t := range ts {
		low := Locate(breakpoints, t)
		dst[i] = Value(coefficients, low, t-breakpoints[low])
	}
}
