package spline

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-spline/internal/engine"
)

// Evaluate performs one-shot evaluation of a fitted spline at every point
// in ts. It constructs a temporary evaluator without copying the inputs, so
// breakpoints and coefficients must not be modified during the call.
//
// For repeated queries against the same fit, construct an [Evaluator] once
// instead.
func Evaluate(breakpoints, coefficients, ts []float64) ([]float64, error) {
	e, err := New(&Config{
		Breakpoints:  breakpoints,
		Coefficients: coefficients,
		NoCopy:       true,
	})
	if err != nil {
		return nil, err
	}

	return e.Values(ts), nil
}

// Values evaluates the spline at every point in ts into a new slice.
func (e *Evaluator) Values(ts []float64) []float64 {
	out, _ := e.ValuesInto(make([]float64, len(ts)), ts)

	return out
}

// ValuesInto evaluates the spline at every point in ts into dst and returns
// dst truncated to len(ts). Returns [ErrBufferTooSmall] if dst is shorter
// than ts.
func (e *Evaluator) ValuesInto(dst, ts []float64) ([]float64, error) {
	e.mustInit()

	if len(dst) < len(ts) {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrBufferTooSmall, len(dst), len(ts))
	}

	dst = dst[:len(ts)]
	engine.ValuesInto(dst, e.breakpoints, e.coefficients, ts)

	return dst, nil
}

// Integrals evaluates the definite integral from the first breakpoint at
// every point in ts.
func (e *Evaluator) Integrals(ts []float64) []float64 {
	e.mustInit()

	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = engine.Integral(e.breakpoints, e.coefficients, e.segments, t, !e.disableSIMD)
	}

	return out
}

// Sample evaluates the spline on a uniform grid of n points spanning
// [lo, hi] inclusive and returns the grid and the values. n must be at
// least 2 and hi must exceed lo.
func (e *Evaluator) Sample(lo, hi float64, n int) (xs, ys []float64, err error) {
	e.mustInit()

	if n < minBreakpoints {
		return nil, nil, fmt.Errorf("%w: need at least %d sample points, got %d", ErrInvalidArgument, minBreakpoints, n)
	}

	if hi <= lo {
		return nil, nil, fmt.Errorf("%w: sample range [%g, %g] is empty", ErrInvalidArgument, lo, hi)
	}

	xs = floats.Span(make([]float64, n), lo, hi)
	ys = e.Values(xs)

	return xs, ys, nil
}
