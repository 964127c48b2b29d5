package spline

// Coefficient layout constants
const (
	// coefficientsPerInterval is the (a, b, c, d) tuple size of the local
	// cubic a + b*x + c*x^2 + d*x^3.
	coefficientsPerInterval = 4

	// minBreakpoints is the smallest breakpoint count that defines an
	// interval. A lone breakpoint has no interval to evaluate on and is
	// rejected at construction.
	minBreakpoints = 2
)
