package spline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-spline/internal/engine"
)

// Interpolator is the minimal query surface shared by interpolation
// algorithm families. Implementations answer point queries against one
// fitted curve and report which additional queries they support.
type Interpolator interface {
	// ValueAt returns the interpolated value at t.
	// Points outside the domain are extrapolated, not rejected.
	ValueAt(t float64) float64

	// Domain returns the first and last breakpoint of the fit.
	Domain() (lo, hi float64)

	// Capabilities reports which optional queries this interpolator
	// family supports.
	Capabilities() Capabilities
}

// Differentiable is implemented by interpolators that can evaluate
// derivatives analytically.
type Differentiable interface {
	// DerivativesAt returns the value and the first and second derivatives
	// at t, all from a single interval lookup.
	DerivativesAt(t float64) (value, first, second float64)
}

// Integrable is implemented by interpolators that can integrate themselves
// in closed form.
type Integrable interface {
	// IntegralAt returns the definite integral from the first breakpoint
	// to t.
	IntegralAt(t float64) float64
}

// Capabilities describes the optional queries an interpolator family
// supports. The values are fixed per algorithm family, never computed from
// the fitted data.
type Capabilities struct {
	// Differentiation reports analytic derivative support.
	Differentiation bool

	// Integration reports closed-form definite integral support.
	Integration bool
}

// Common errors returned by the evaluator.
var (
	// ErrInvalidArgument indicates breakpoint or coefficient input that
	// violates the construction contract.
	ErrInvalidArgument = errors.New("invalid spline argument")

	// ErrNotInitialized is the panic value of query methods called before
	// a successful Init.
	ErrNotInitialized = errors.New("spline evaluator used before Init")

	// ErrBufferTooSmall indicates a destination buffer shorter than the
	// query slice.
	ErrBufferTooSmall = errors.New("destination buffer too small")
)

// A cubic evaluator always differentiates and integrates; these are
// properties of the algorithm family, not of the data.
var cubicCapabilities = Capabilities{Differentiation: true, Integration: true}

// Evaluator answers value, derivative and definite-integral queries against
// one fitted piecewise cubic polynomial. The zero value is unusable until
// Init succeeds; after that the evaluator is immutable and safe for
// concurrent queries.
//
// Evaluator implements [Interpolator], [Differentiable] and [Integrable].
type Evaluator struct {
	breakpoints  []float64
	coefficients []float64

	// Full-width integral of every interval, derived at Init so the
	// integral's prefix accumulation touches precomputed terms only.
	segments []float64

	noCopy      bool
	disableSIMD bool
}

// Init fits the evaluator to a new breakpoint/coefficient pair, replacing
// any previous state. breakpoints must hold at least 2 strictly increasing
// values and coefficients exactly 4 values per interval, laid out as
// consecutive (a, b, c, d) tuples in local coordinates.
//
// Init validates lengths only; breakpoint ordering is a caller invariant
// and is never checked. On error the evaluator keeps its previous state,
// so a failed re-Init leaves earlier queries intact. Inputs are copied
// unless the evaluator was built with [Config.NoCopy].
func (e *Evaluator) Init(breakpoints, coefficients []float64) error {
	if err := validateInputs(breakpoints, coefficients); err != nil {
		return err
	}

	if e.noCopy {
		e.breakpoints = breakpoints
		e.coefficients = coefficients
	} else {
		e.breakpoints = append([]float64(nil), breakpoints...)
		e.coefficients = append([]float64(nil), coefficients...)
	}

	e.segments = engine.SegmentIntegrals(e.breakpoints, e.coefficients)

	return nil
}

// ValueAt returns the spline value at t.
//
// Lookup is O(log N). Points below the first or above the last breakpoint
// are extrapolated with the first or last interval's polynomial.
func (e *Evaluator) ValueAt(t float64) float64 {
	e.mustInit()

	low := engine.Locate(e.breakpoints, t)

	return engine.Value(e.coefficients, low, t-e.breakpoints[low])
}

// DerivativesAt returns the spline value and its first and second
// derivatives at t, sharing a single interval lookup. The derivatives are
// analytic: the local coordinate is an affine shift of t, so d/dt = d/dx.
func (e *Evaluator) DerivativesAt(t float64) (value, first, second float64) {
	e.mustInit()

	low := engine.Locate(e.breakpoints, t)

	return engine.Derivatives(e.coefficients, low, t-e.breakpoints[low])
}

// IntegralAt returns the definite integral of the spline from the first
// breakpoint to t, accumulated from the closed-form antiderivative of each
// interval. Cost is O(N) in the number of intervals before t.
//
// For t below the first breakpoint the result is negative, consistent with
// the usual orientation of the integral.
func (e *Evaluator) IntegralAt(t float64) float64 {
	e.mustInit()

	return engine.Integral(e.breakpoints, e.coefficients, e.segments, t, !e.disableSIMD)
}

// Domain returns the first and last breakpoint. Queries outside this range
// extrapolate rather than fail.
func (e *Evaluator) Domain() (lo, hi float64) {
	e.mustInit()

	return e.breakpoints[0], e.breakpoints[len(e.breakpoints)-1]
}

// Capabilities reports the fixed capability set of the cubic family.
func (e *Evaluator) Capabilities() Capabilities {
	return cubicCapabilities
}

// Intervals returns the number of fitting intervals.
func (e *Evaluator) Intervals() int {
	e.mustInit()

	return len(e.breakpoints) - 1
}

func (e *Evaluator) mustInit() {
	if e.breakpoints == nil {
		panic(ErrNotInitialized)
	}
}

// validateInputs enforces the construction contract shared by Init and
// Config.Validate.
func validateInputs(breakpoints, coefficients []float64) error {
	n := len(breakpoints)

	if n == 0 {
		return fmt.Errorf("%w: breakpoints are nil or empty", ErrInvalidArgument)
	}

	// A single breakpoint defines zero intervals; the interval search has
	// no defined answer there, so it is rejected up front.
	if n < minBreakpoints {
		return fmt.Errorf("%w: need at least %d breakpoints, got %d", ErrInvalidArgument, minBreakpoints, n)
	}

	if want := coefficientsPerInterval * (n - 1); len(coefficients) != want {
		return fmt.Errorf("%w: got %d coefficients for %d intervals, want %d",
			ErrInvalidArgument, len(coefficients), n-1, want)
	}

	return nil
}

// Info describes an interpolator instance.
type Info struct {
	// Algorithm names the interpolation algorithm family.
	Algorithm string

	// Intervals is the number of fitting intervals.
	Intervals int

	// DomainLo and DomainHi are the first and last breakpoints.
	DomainLo, DomainHi float64

	// SIMDEnabled indicates whether the integral's SIMD fast path is
	// available on this instance.
	SIMDEnabled bool
}

// infoProvider is an optional interface for interpolators that can describe
// themselves in detail.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about the evaluator instance.
func (e *Evaluator) GetInfo() Info {
	e.mustInit()

	return Info{
		Algorithm:   "piecewise-cubic",
		Intervals:   len(e.breakpoints) - 1,
		DomainLo:    e.breakpoints[0],
		DomainHi:    e.breakpoints[len(e.breakpoints)-1],
		SIMDEnabled: !e.disableSIMD,
	}
}

// GetInfo returns information about an interpolator. Interpolators that
// implement the detailed info interface report actual values; others get a
// generic description derived from the public query surface.
func GetInfo(ip Interpolator) Info {
	if p, ok := ip.(infoProvider); ok {
		return p.GetInfo()
	}

	lo, hi := ip.Domain()

	return Info{
		Algorithm: "unknown",
		DomainLo:  lo,
		DomainHi:  hi,
	}
}
