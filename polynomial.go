package curves

import (
	"fmt"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-curves/internal/boundary"
)

// Polynomial is a polynomial curve of arbitrary dimension and degree defined
// on the interval [TMin, TMax]. It follows the equation
//
//	x(t) = c0 + c1*(t - tmin) + ... + cN*(t - tmin)^N
//
// where N is the degree. Coefficients are stored as a dense matrix with one
// row per spatial dimension and column i holding the coefficient of
// (t - tmin)^i.
//
// A Polynomial is immutable after construction. The zero value is an empty
// curve: every evaluation on it returns ErrInvalidState.
type Polynomial struct {
	coeffs *mat.Dense // dim x (degree+1); nil for the empty curve
	tmin   float64
	tmax   float64
	opts   options
}

var _ Curve = (*Polynomial)(nil)

// NewPolynomial creates a curve from a coefficient matrix with one row per
// spatial dimension and column i holding the coefficient of (t - tmin)^i.
// The degree is the number of columns minus one. The matrix is copied.
func NewPolynomial(coeffs *mat.Dense, tmin, tmax float64, opts ...Option) (*Polynomial, error) {
	if coeffs == nil {
		return nil, fmt.Errorf("%w: coefficient matrix is nil", ErrInvalidArgument)
	}
	rows, cols := coeffs.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: coefficient matrix must not be empty", ErrInvalidArgument)
	}
	p := &Polynomial{
		coeffs: mat.DenseCopyOf(coeffs),
		tmin:   tmin,
		tmax:   tmax,
		opts:   applyOptions(defaultCurveOptions(), opts),
	}
	if err := p.safeCheck(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewPolynomialFromCoefficients creates a curve from an ordered collection of
// per-degree coefficient vectors: coefficients[i] is the dim-length
// coefficient of (t - tmin)^i.
func NewPolynomialFromCoefficients(coefficients [][]float64, tmin, tmax float64, opts ...Option) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("%w: no coefficients given", ErrInvalidArgument)
	}
	dim := len(coefficients[0])
	if dim == 0 {
		return nil, fmt.Errorf("%w: coefficients must not be empty", ErrInvalidArgument)
	}
	coeffs := mat.NewDense(dim, len(coefficients), nil)
	for i, c := range coefficients {
		if len(c) != dim {
			return nil, fmt.Errorf("%w: coefficient %d has dimension %d, want %d",
				ErrInvalidArgument, i, len(c), dim)
		}
		for d := 0; d < dim; d++ {
			coeffs.Set(d, i, c[d])
		}
	}
	return NewPolynomial(coeffs, tmin, tmax, opts...)
}

// NewLinearFit creates the degree-1 curve that connects init at tmin to end
// at tmax exactly (C0 boundary fit).
func NewLinearFit(init, end []float64, tmin, tmax float64, opts ...Option) (*Polynomial, error) {
	if err := sameDimension(init, "init", end, "end"); err != nil {
		return nil, err
	}
	slope := make([]float64, len(init))
	for d := range init {
		slope[d] = (end[d] - init[d]) / (tmax - tmin)
	}
	return NewPolynomialFromCoefficients([][]float64{init, slope}, tmin, tmax, opts...)
}

// NewCubicFit creates the degree-3 curve that connects init to end and
// matches the first derivatives dInit and dEnd at the endpoints (C1 boundary
// fit). The four coefficient columns per dimension come from inverting the
// fixed 4x4 boundary system once and solving each dimension independently.
func NewCubicFit(init, dInit, end, dEnd []float64, tmin, tmax float64, opts ...Option) (*Polynomial, error) {
	if err := sameDimension(init, "init", end, "end"); err != nil {
		return nil, err
	}
	if err := sameDimension(init, "init", dInit, "d_init"); err != nil {
		return nil, err
	}
	if err := sameDimension(init, "init", dEnd, "d_end"); err != nil {
		return nil, err
	}
	coeffs, err := boundary.Cubic(init, end, dInit, dEnd, tmax-tmin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return NewPolynomial(coeffs, tmin, tmax, opts...)
}

// NewQuinticFit creates the degree-5 curve that connects init to end and
// matches first and second derivatives at both endpoints (C2 boundary fit).
func NewQuinticFit(init, dInit, ddInit, end, dEnd, ddEnd []float64, tmin, tmax float64, opts ...Option) (*Polynomial, error) {
	if err := sameDimension(init, "init", end, "end"); err != nil {
		return nil, err
	}
	if err := sameDimension(init, "init", dInit, "d_init"); err != nil {
		return nil, err
	}
	if err := sameDimension(init, "init", dEnd, "d_end"); err != nil {
		return nil, err
	}
	if err := sameDimension(init, "init", ddInit, "dd_init"); err != nil {
		return nil, err
	}
	if err := sameDimension(init, "init", ddEnd, "dd_end"); err != nil {
		return nil, err
	}
	coeffs, err := boundary.Quintic(init, end, dInit, dEnd, ddInit, ddEnd, tmax-tmin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return NewPolynomial(coeffs, tmin, tmax, opts...)
}

// sameDimension fails with ErrInvalidArgument when two boundary points
// disagree in dimension.
func sameDimension(a []float64, aName string, b []float64, bName string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %s and %s points must have the same dimensions (%d != %d)",
			ErrInvalidArgument, aName, bName, len(a), len(b))
	}
	return nil
}

// safeCheck validates the interval and coefficient shape when safe checks
// are enabled.
func (p *Polynomial) safeCheck() error {
	if !p.opts.safe {
		return nil
	}
	if p.tmin > p.tmax {
		return fmt.Errorf("%w: tmin %v exceeds tmax %v", ErrInvalidArgument, p.tmin, p.tmax)
	}
	if _, cols := p.coeffs.Dims(); cols != p.Degree()+1 {
		return fmt.Errorf("%w: degree and coefficient count do not match", ErrInvalidArgument)
	}
	return nil
}

// evalCheck guards every evaluation: the curve must have coefficients, and
// in safe mode t must lie inside the time range.
func (p *Polynomial) evalCheck(t float64) error {
	if p.coeffs == nil {
		return fmt.Errorf("%w: zero-value curve was never assigned coefficients", ErrInvalidState)
	}
	if p.opts.safe && (t < p.tmin || t > p.tmax) {
		return fmt.Errorf("%w: t=%v outside [%v, %v]", ErrOutOfRange, t, p.tmin, p.tmax)
	}
	return nil
}

// Eval evaluates the curve at time t using Horner's method: starting from
// the highest-degree coefficient, repeatedly multiply by dt and add the next
// lower coefficient. O(degree) per dimension and numerically stable.
func (p *Polynomial) Eval(t float64) ([]float64, error) {
	if err := p.evalCheck(t); err != nil {
		return nil, err
	}
	dt := t - p.tmin
	dim, cols := p.coeffs.Dims()
	out := make([]float64, dim)
	for d := 0; d < dim; d++ {
		row := p.coeffs.RawRowView(d)
		h := row[cols-1]
		for i := cols - 2; i >= 0; i-- {
			h = dt*h + row[i]
		}
		out[d] = h
	}
	return out, nil
}

// Derivative evaluates the order-th derivative at time t directly, without
// materializing an intermediate derivative curve:
//
//	sum over i >= order of c_i * (t - tmin)^(i-order) * i*(i-1)*...*(i-order+1)
//
// The basis weights depend only on t and order, so they are computed once and
// applied to every dimension's coefficient row as a dot product.
func (p *Polynomial) Derivative(t float64, order int) ([]float64, error) {
	if err := p.evalCheck(t); err != nil {
		return nil, err
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: negative derivative order %d", ErrInvalidArgument, order)
	}
	dim, cols := p.coeffs.Dims()
	out := make([]float64, dim)
	if order >= cols {
		// Differentiating past the degree leaves the zero point.
		return out, nil
	}
	dt := t - p.tmin
	basis := make([]float64, cols-order)
	cdt := 1.0
	for i := order; i < cols; i++ {
		basis[i-order] = cdt * fallingFactorial(i, order)
		cdt *= dt
	}
	for d := 0; d < dim; d++ {
		row := p.coeffs.RawRowView(d)
		out[d] = f64.DotProductUnsafe(row[order:], basis)
	}
	return out, nil
}

// Differentiate returns the order-th structural derivative as a new
// independent curve over the same time range. Order 0 returns a copy.
// Differentiating past the curve's degree yields the zero constant curve,
// not an error.
func (p *Polynomial) Differentiate(order int) (Curve, error) {
	d, err := p.DifferentiatePolynomial(order)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// DifferentiatePolynomial is Differentiate with a concrete return type.
func (p *Polynomial) DifferentiatePolynomial(order int) (*Polynomial, error) {
	if p.coeffs == nil {
		return nil, fmt.Errorf("%w: zero-value curve was never assigned coefficients", ErrInvalidState)
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: negative derivative order %d", ErrInvalidArgument, order)
	}
	coeffs := mat.DenseCopyOf(p.coeffs)
	for k := 0; k < order; k++ {
		coeffs = derivCoeffs(coeffs)
	}
	return &Polynomial{coeffs: coeffs, tmin: p.tmin, tmax: p.tmax, opts: p.opts}, nil
}

// derivCoeffs builds the coefficient matrix of the first derivative by
// dropping the constant column and scaling column j by j+1. Once only the
// constant column is left, the derivative is the zero column.
func derivCoeffs(coeffs *mat.Dense) *mat.Dense {
	rows, cols := coeffs.Dims()
	if cols == 1 {
		return mat.NewDense(rows, 1, nil)
	}
	out := mat.NewDense(rows, cols-1, nil)
	for j := 0; j < cols-1; j++ {
		for d := 0; d < rows; d++ {
			out.Set(d, j, coeffs.At(d, j+1)*float64(j+1))
		}
	}
	return out
}

// fallingFactorial returns n * (n-1) * ... * (n-order+1).
func fallingFactorial(n, order int) float64 {
	res := 1.0
	for i := 0; i < order; i++ {
		res *= float64(n - i)
	}
	return res
}

// Dim returns the dimension of the space the curve maps into.
func (p *Polynomial) Dim() int {
	if p.coeffs == nil {
		return 0
	}
	rows, _ := p.coeffs.Dims()
	return rows
}

// TMin returns the lower bound of the time range.
func (p *Polynomial) TMin() float64 { return p.tmin }

// TMax returns the upper bound of the time range.
func (p *Polynomial) TMax() float64 { return p.tmax }

// Degree returns the degree of the curve: the number of coefficient columns
// minus one.
func (p *Polynomial) Degree() int {
	if p.coeffs == nil {
		return 0
	}
	_, cols := p.coeffs.Dims()
	return cols - 1
}

// Coefficients returns a copy of the dim x (degree+1) coefficient matrix, or
// nil for the empty curve.
func (p *Polynomial) Coefficients() *mat.Dense {
	if p.coeffs == nil {
		return nil
	}
	return mat.DenseCopyOf(p.coeffs)
}

// CoefficientAt returns the coefficient of (t - tmin)^degree as a point, or
// nil when degree exceeds the curve's degree. Asking past the degree is not
// an error.
func (p *Polynomial) CoefficientAt(degree int) []float64 {
	if p.coeffs == nil || degree < 0 || degree > p.Degree() {
		return nil
	}
	out := make([]float64, p.Dim())
	mat.Col(out, degree, p.coeffs)
	return out
}

// ApproxEqual reports whether two polynomial curves are approximately equal.
// Unlike the generic sampled comparison, the coefficients fully determine the
// function, so this checks time range, dimension, and degree exactly and the
// coefficient matrices element-wise within prec. A prec of zero uses
// DefaultPrecision.
func (p *Polynomial) ApproxEqual(other *Polynomial, prec float64) bool {
	if prec == 0 {
		prec = DefaultPrecision
	}
	if p.tmin != other.tmin || p.tmax != other.tmax {
		return false
	}
	if p.Dim() != other.Dim() || p.Degree() != other.Degree() {
		return false
	}
	if p.coeffs == nil || other.coeffs == nil {
		return p.coeffs == nil && other.coeffs == nil
	}
	return mat.EqualApprox(p.coeffs, other.coeffs, prec)
}
