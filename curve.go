package curves

import "math"

// Curve is the contract every curve type implements: a differentiable
// function from a bounded time interval to points in an n-dimensional space.
//
// Curves are immutable once constructed. All methods are pure queries, so a
// single curve may be evaluated concurrently from multiple goroutines.
type Curve interface {
	// Eval evaluates the curve at time t and returns the corresponding
	// point. When safe checks are enabled and t is outside [TMin, TMax],
	// Eval returns ErrOutOfRange; otherwise the curve extrapolates.
	Eval(t float64) ([]float64, error)

	// Derivative evaluates the order-th derivative of the curve at time t.
	// Order 0 equals Eval. The time-range contract matches Eval.
	Derivative(t float64, order int) ([]float64, error)

	// Differentiate returns a new independent curve representing the
	// order-th derivative, defined over the same time range.
	Differentiate(order int) (Curve, error)

	// Dim returns the dimension of the space the curve maps into.
	Dim() int

	// TMin returns the lower bound of the curve's time range.
	TMin() float64

	// TMax returns the upper bound of the curve's time range.
	TMax() float64

	// Degree returns the polynomial degree of the curve.
	Degree() int
}

// TimeRange returns the [min, max] interval over which c is defined.
func TimeRange(c Curve) (min, max float64) {
	return c.TMin(), c.TMax()
}

// ApproxEqual reports whether two curves are approximately equal by
// discretizing both at a fixed step across their domain and comparing point
// values and derivatives up to maxOrder within prec.
//
// It returns false immediately if the curves differ in dimension or time
// range, and false if either curve fails to evaluate. Concrete types may
// offer a cheaper exact comparison (see [Polynomial.ApproxEqual]); this
// function is the fallback that works across different curve kinds.
//
// A prec of zero uses DefaultPrecision; a negative maxOrder uses
// DefaultDerivativeOrder.
func ApproxEqual(a, b Curve, prec float64, maxOrder int) bool {
	if prec == 0 {
		prec = DefaultPrecision
	}
	if maxOrder < 0 {
		maxOrder = DefaultDerivativeOrder
	}
	if a.Dim() != b.Dim() || a.TMin() != b.TMin() || a.TMax() != b.TMax() {
		return false
	}
	for order := 0; order <= maxOrder; order++ {
		for t := a.TMin(); t <= a.TMax(); t += comparisonStep {
			pa, err := a.Derivative(t, order)
			if err != nil {
				return false
			}
			pb, err := b.Derivative(t, order)
			if err != nil {
				return false
			}
			if !withinPrecision(pa, pb, prec) {
				return false
			}
		}
	}
	return true
}

// withinPrecision reports whether a and b agree element-wise within prec.
func withinPrecision(a, b []float64, prec float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > prec {
			return false
		}
	}
	return true
}
