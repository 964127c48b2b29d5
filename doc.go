// Package spline provides evaluation of piecewise cubic polynomials in pure Go.
//
// A fitted spline is described by an ordered sequence of breakpoints
// t[0] < t[1] < ... < t[N-1] partitioning the real line into N-1 intervals,
// and a flat sequence of 4*(N-1) coefficients holding one (a, b, c, d) tuple
// per interval. Tuple i defines the local cubic
//
//	p_i(x) = a + b*x + c*x^2 + d*x^3
//
// evaluated at the local coordinate x = t - t[i], so every interval's
// polynomial is expressed relative to its own left edge. This library is the
// evaluation side only: it consumes breakpoint/coefficient arrays produced by
// any fitting algorithm (natural spline, clamped spline, Akima, cubic
// Hermite, ...) that follows the same layout, and answers three queries:
//
//   - [Evaluator.ValueAt]: the interpolated value at a point
//   - [Evaluator.DerivativesAt]: the value with its first and second derivatives
//   - [Evaluator.IntegralAt]: the definite integral from the first breakpoint
//
// # Quick Start
//
// For repeated queries against one fitted spline:
//
//	ev, err := spline.NewEvaluator(breakpoints, coefficients)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := ev.ValueAt(2.5)
//	_, dy, d2y := ev.DerivativesAt(2.5)
//	area := ev.IntegralAt(2.5)
//
// For one-shot evaluation over a grid of points:
//
//	ys, err := spline.Evaluate(breakpoints, coefficients, ts)
//
// # Query Contract
//
// Interval lookup is a bisection over the breakpoints restricted to the
// interval indices, so point queries cost O(log N). The lookup is half-open:
// a query at an interior breakpoint t[i] lands in interval i, never in
// interval i-1. Queries outside [t[0], t[N-1]] are not errors; they
// extrapolate using the first or last interval's polynomial unmodified. The
// evaluator never validates breakpoint ordering at query time - strictly
// increasing breakpoints are a construction-time caller invariant.
//
// [Evaluator.IntegralAt] accumulates the closed-form antiderivative of every
// complete interval before the query point plus the partial term in the
// interval containing it, so it costs O(N) and is the exact calculus dual of
// the evaluation polynomial: no quadrature, no boundary correction terms.
//
// # Ownership
//
// By default the evaluator copies the breakpoint and coefficient slices at
// construction and is fully self-contained afterwards. For large coefficient
// sets shared across many evaluators, [Config.NoCopy] borrows the caller's
// slices instead; the caller must then keep them alive and unmodified for the
// evaluator's lifetime.
//
// # Thread Safety
//
// An [Evaluator] is immutable after a successful Init, so any number of
// goroutines may query it concurrently without synchronization. [Evaluator.Init]
// itself is not safe to call concurrently with queries.
//
// # Performance
//
// Point queries allocate nothing. The integral's prefix accumulation uses
// SIMD summation (via github.com/tphakala/simd) once enough intervals precede
// the query point; [Config.DisableSIMD] forces the pure scalar path.
package spline
