package spline

import "fmt"

// Config holds evaluator construction parameters.
type Config struct {
	// Breakpoints is the ordered abscissa sequence t[0] < ... < t[N-1].
	// Ordering is a caller invariant and is not validated.
	Breakpoints []float64

	// Coefficients is the flat coefficient sequence, one (a, b, c, d)
	// tuple per interval, exactly 4*(N-1) values.
	Coefficients []float64

	// NoCopy borrows the input slices instead of copying them. The caller
	// must keep both slices alive and unmodified for the evaluator's
	// lifetime. Intended for large coefficient sets shared across many
	// evaluators.
	NoCopy bool

	// DisableSIMD forces the pure Go scalar path for the integral's
	// prefix accumulation.
	DisableSIMD bool
}

// Validate checks if the configuration satisfies the construction contract.
func (c *Config) Validate() error {
	return validateInputs(c.Breakpoints, c.Coefficients)
}

// New creates an evaluator from the given configuration.
func New(config *Config) (*Evaluator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidArgument)
	}

	e := &Evaluator{
		noCopy:      config.NoCopy,
		disableSIMD: config.DisableSIMD,
	}
	if err := e.Init(config.Breakpoints, config.Coefficients); err != nil {
		return nil, err
	}

	return e, nil
}

// NewEvaluator creates an evaluator with default options: inputs copied,
// SIMD enabled.
func NewEvaluator(breakpoints, coefficients []float64) (*Evaluator, error) {
	return New(&Config{
		Breakpoints:  breakpoints,
		Coefficients: coefficients,
	})
}
