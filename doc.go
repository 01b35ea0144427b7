// Package curves provides parametric curve representations for trajectory
// generation and trajectory optimization in pure Go.
//
// The package centers on two building blocks: polynomial splines of arbitrary
// dimension and degree, and an affine "linear variable" algebra that lets a
// curve waypoint stay symbolic (an unresolved affine function of an external
// decision vector) until an optimizer assigns it a value.
//
// # Features
//
//   - Polynomial curves of arbitrary spatial dimension and degree over a
//     bounded time interval, evaluated with Horner's method
//   - Boundary-value constructors that produce C0, C1, and C2 continuous
//     splines by solving small dense linear systems (gonum)
//   - Point derivatives of any order without materializing a derivative
//     curve, and structural derivative curves when one is needed
//   - A closed affine algebra over symbolic waypoints (addition, subtraction,
//     scalar scaling) with a sparse zero fast path
//   - Opt-in runtime validation ("safe checks") selected per instance at
//     construction, with unchecked evaluation as the fast default
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// Build a quintic segment that matches position, velocity, and acceleration
// at both endpoints, then sample it:
//
//	seg, err := curves.NewQuinticFit(
//	    []float64{0, 0, 0}, []float64{0, 0, 0}, []float64{0, 0, 0},
//	    []float64{1, 2, 3}, []float64{0, 0, 1}, []float64{0, 0, 0},
//	    0.0, 2.0,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pos, _ := seg.Eval(1.0)
//	vel, _ := seg.Derivative(1.0, 1)
//
// # Symbolic waypoints
//
// A [LinearVariable] represents a point p = B·x + c of a decision vector x
// that has not been resolved yet. Curve families built over such waypoints
// stay symbolic; once an optimizer produces x, [MaterializeWaypoints] turns
// the waypoints back into fixed numeric points:
//
//	p0 := curves.NewConstant([]float64{0, 0})
//	p1 := curves.NewLinearVariable(b, []float64{0, 0})
//	mid := curves.ScaleVar(0.5, curves.AddVars(p0, p1))
//
//	pts, err := curves.MaterializeWaypoints([]curves.LinearVariable{p0, mid, p1}, x)
//
// # Safe checks
//
// Range and dimension validation costs time on hot evaluation paths, so it is
// a per-instance construction choice rather than a global switch. Polynomials
// default to unchecked evaluation; pass [WithSafeChecks] to get range errors
// instead of silent extrapolation. Linear variables default to checked
// evaluation; pass [WithoutSafeChecks] to skip the dimension test.
package curves
