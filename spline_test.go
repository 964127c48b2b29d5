package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-spline/internal/testutil"
)

// TestInitValidation verifies the construction contract: nil/empty
// breakpoints, a lone breakpoint, and coefficient count mismatches are all
// rejected with ErrInvalidArgument.
func TestInitValidation(t *testing.T) {
	tests := []struct {
		name         string
		breakpoints  []float64
		coefficients []float64
	}{
		{"nil_breakpoints", nil, []float64{1, 0, 0, 0}},
		{"empty_breakpoints", []float64{}, nil},
		{"single_breakpoint", []float64{1}, nil},
		{"nil_coefficients", []float64{0, 1}, nil},
		{"too_few_coefficients", []float64{0, 1, 2}, make([]float64, 7)},
		{"too_many_coefficients", []float64{0, 1, 2}, make([]float64, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Evaluator
			err := e.Init(tt.breakpoints, tt.coefficients)
			require.ErrorIs(t, err, ErrInvalidArgument)

			_, err = NewEvaluator(tt.breakpoints, tt.coefficients)
			require.ErrorIs(t, err, ErrInvalidArgument)

			cfg := Config{Breakpoints: tt.breakpoints, Coefficients: tt.coefficients}
			require.ErrorIs(t, cfg.Validate(), ErrInvalidArgument)
		})
	}
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestConcreteScenario pins the two-interval piecewise constant fit:
// breakpoints [0, 1, 2] with constants 1 and 2.
func TestConcreteScenario(t *testing.T) {
	e, err := NewEvaluator(
		[]float64{0, 1, 2},
		testutil.ConstantSegments([]float64{1, 2}),
	)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, e.ValueAt(0.5), testutil.DefaultTolerance)
	assert.InDelta(t, 2.0, e.ValueAt(1.5), testutil.DefaultTolerance)
	assert.InDelta(t, 3.0, e.IntegralAt(2.0), testutil.DefaultTolerance)

	value, first, second := e.DerivativesAt(0.5)
	assert.InDelta(t, 1.0, value, testutil.DefaultTolerance)
	assert.Zero(t, first)
	assert.Zero(t, second)
}

// TestExtrapolation verifies that out-of-range queries silently use the
// nearest interval's polynomial.
func TestExtrapolation(t *testing.T) {
	e, err := NewEvaluator(
		[]float64{0, 1, 2},
		testutil.ConstantSegments([]float64{1, 2}),
	)
	require.NoError(t, err)

	// Constant polynomials stay constant under extrapolation.
	assert.InDelta(t, 1.0, e.ValueAt(-1.0), testutil.DefaultTolerance)
	assert.InDelta(t, 2.0, e.ValueAt(3.0), testutil.DefaultTolerance)

	// A sloped last interval extrapolates along its slope.
	sloped, err := NewEvaluator([]float64{0, 1}, []float64{1, 2, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1+2*3.0, sloped.ValueAt(3.0), testutil.DefaultTolerance)
	assert.InDelta(t, 1+2*-1.0, sloped.ValueAt(-1.0), testutil.DefaultTolerance)
}

// TestBoundaryRouting verifies the half-open convention: an interior
// breakpoint belongs to the interval it opens. A deliberately discontinuous
// fit makes misrouting visible.
func TestBoundaryRouting(t *testing.T) {
	e, err := NewEvaluator(
		[]float64{0, 1, 2},
		testutil.ConstantSegments([]float64{1, 2}),
	)
	require.NoError(t, err)

	assert.Equal(t, 2.0, e.ValueAt(1.0), "t[1] must land in interval 1, not 0")
}

// TestInitIdempotent verifies that a second successful Init fully replaces
// the first fit.
func TestInitIdempotent(t *testing.T) {
	var e Evaluator

	require.NoError(t, e.Init([]float64{0, 1}, []float64{5, 0, 0, 0}))
	require.InDelta(t, 5.0, e.ValueAt(0.5), testutil.DefaultTolerance)

	require.NoError(t, e.Init([]float64{0, 2, 4}, testutil.ConstantSegments([]float64{7, 9})))

	assert.InDelta(t, 7.0, e.ValueAt(1), testutil.DefaultTolerance)
	assert.InDelta(t, 9.0, e.ValueAt(3), testutil.DefaultTolerance)
	assert.Equal(t, 2, e.Intervals())

	// The integral must come from the new fit only.
	assert.InDelta(t, 7*2+9*2, e.IntegralAt(4), testutil.DefaultTolerance)
}

// TestFailedReinitPreservesState verifies that a rejected Init does not
// disturb the evaluator's previous valid fit.
func TestFailedReinitPreservesState(t *testing.T) {
	var e Evaluator
	require.NoError(t, e.Init([]float64{0, 1, 2}, testutil.ConstantSegments([]float64{1, 2})))

	err := e.Init([]float64{0, 1, 2}, make([]float64, 7))
	require.ErrorIs(t, err, ErrInvalidArgument)

	assert.InDelta(t, 1.0, e.ValueAt(0.5), testutil.DefaultTolerance)
	assert.InDelta(t, 2.0, e.ValueAt(1.5), testutil.DefaultTolerance)
	assert.InDelta(t, 3.0, e.IntegralAt(2.0), testutil.DefaultTolerance)
}

// TestCopySemantics verifies that by default the evaluator is insulated
// from later mutation of the caller's slices.
func TestCopySemantics(t *testing.T) {
	breakpoints := []float64{0, 1}
	coefficients := []float64{3, 0, 0, 0}

	e, err := NewEvaluator(breakpoints, coefficients)
	require.NoError(t, err)

	coefficients[0] = 100
	breakpoints[1] = 50

	assert.InDelta(t, 3.0, e.ValueAt(0.5), testutil.DefaultTolerance)

	lo, hi := e.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

// TestNoCopySemantics verifies that NoCopy borrows the caller's slices.
func TestNoCopySemantics(t *testing.T) {
	coefficients := []float64{3, 0, 0, 0}
	e, err := New(&Config{
		Breakpoints:  []float64{0, 1},
		Coefficients: coefficients,
		NoCopy:       true,
	})
	require.NoError(t, err)

	coefficients[0] = 4
	assert.InDelta(t, 4.0, e.ValueAt(0.5), testutil.DefaultTolerance)
}

// TestUninitializedQueriesPanic verifies the explicit precondition check on
// the zero value.
func TestUninitializedQueriesPanic(t *testing.T) {
	var e Evaluator

	require.PanicsWithValue(t, ErrNotInitialized, func() { e.ValueAt(0) })
	require.PanicsWithValue(t, ErrNotInitialized, func() { e.DerivativesAt(0) })
	require.PanicsWithValue(t, ErrNotInitialized, func() { e.IntegralAt(0) })
	require.PanicsWithValue(t, ErrNotInitialized, func() { e.Domain() })
}

// TestCapabilities verifies the fixed capability descriptor of the cubic
// family.
func TestCapabilities(t *testing.T) {
	e, err := NewEvaluator([]float64{0, 1}, []float64{1, 0, 0, 0})
	require.NoError(t, err)

	caps := e.Capabilities()
	assert.True(t, caps.Differentiation)
	assert.True(t, caps.Integration)

	// The evaluator satisfies the full interface family.
	var (
		_ Interpolator   = e
		_ Differentiable = e
		_ Integrable     = e
	)
}

// TestGetInfo verifies the detailed and generic info paths.
func TestGetInfo(t *testing.T) {
	e, err := New(&Config{
		Breakpoints:  []float64{0, 1, 2, 3},
		Coefficients: testutil.ConstantSegments([]float64{1, 2, 3}),
		DisableSIMD:  true,
	})
	require.NoError(t, err)

	info := GetInfo(e)
	assert.Equal(t, "piecewise-cubic", info.Algorithm)
	assert.Equal(t, 3, info.Intervals)
	assert.Equal(t, 0.0, info.DomainLo)
	assert.Equal(t, 3.0, info.DomainHi)
	assert.False(t, info.SIMDEnabled)
}

// TestNaNCoefficientsPropagate verifies that non-finite coefficients flow
// through arithmetically instead of being rejected.
func TestNaNCoefficientsPropagate(t *testing.T) {
	e, err := NewEvaluator([]float64{0, 1}, []float64{math.NaN(), 0, 0, 0})
	require.NoError(t, err)

	assert.True(t, math.IsNaN(e.ValueAt(0.5)))
	assert.True(t, math.IsNaN(e.IntegralAt(0.5)))

	inf, err := NewEvaluator([]float64{0, 1}, []float64{0, math.Inf(1), 0, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf.ValueAt(0.5), 1))
}
