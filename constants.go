package curves

// Comparison constants
const (
	// comparisonStep is the sampling interval, in time units, used by the
	// generic ApproxEqual when it discretizes two curves for comparison.
	comparisonStep = 0.01

	// DefaultPrecision is the tolerance used when a comparison precision
	// of zero is supplied.
	DefaultPrecision = 1e-12

	// DefaultDerivativeOrder is the highest derivative order the generic
	// ApproxEqual checks when a negative order is supplied.
	DefaultDerivativeOrder = 5
)
