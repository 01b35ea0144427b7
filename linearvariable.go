package curves

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearVariable is a point expressed as an affine function
//
//	p = B*x + c
//
// of an external decision vector x that has not been resolved yet. Curve
// families built over LinearVariable waypoints stay symbolic until an
// optimizer produces x; evaluating every waypoint then yields a fixed
// numeric curve (see MaterializeWaypoints).
//
// LinearVariable is a value type with a vector-space-like algebra: a zero
// element, addition, subtraction, and scalar scaling. The default zero
// element carries no storage at all and is short-circuited by a flag, which
// keeps sums over mostly-zero waypoint combinations cheap.
//
// The in-place methods (Add, Sub, Scale, Div) mutate the receiver and must
// not be called concurrently on the same value; the free functions (AddVars,
// SubVars, ScaleVar, DivVar) always return a new independent value.
type LinearVariable struct {
	b    *mat.Dense    // linear part; nil for the default zero element
	c    *mat.VecDense // constant part; nil for the default zero element
	zero bool
	opts options
}

// NewZeroVariable returns the default zero element. It carries size 0 and
// ignores any parameter vector on evaluation.
func NewZeroVariable() LinearVariable {
	return LinearVariable{zero: true, opts: defaultVariableOptions()}
}

// NewConstant returns a variable fixed to the point c: the linear part is a
// zero matrix sized len(c) x len(c), so evaluation still multiplies rather
// than short-circuiting, but the result never depends on x.
func NewConstant(c []float64, opts ...Option) LinearVariable {
	n := len(c)
	v := LinearVariable{opts: applyOptions(defaultVariableOptions(), opts)}
	if n > 0 {
		v.b = mat.NewDense(n, n, nil)
		v.c = mat.NewVecDense(n, append([]float64(nil), c...))
	}
	return v
}

// NewLinearVariable returns the general mixed form B*x + c. Both parts are
// copied.
func NewLinearVariable(b *mat.Dense, c []float64, opts ...Option) LinearVariable {
	v := LinearVariable{opts: applyOptions(defaultVariableOptions(), opts)}
	if b != nil {
		v.b = mat.DenseCopyOf(b)
	}
	if len(c) > 0 {
		v.c = mat.NewVecDense(len(c), append([]float64(nil), c...))
	}
	return v
}

// ZeroVariable returns a zero element explicitly sized to dim: the linear
// part is a dim x dim zero matrix and the constant part a dim-length zero
// vector. Unlike NewZeroVariable it reports Size() == dim, but the two
// compare equal under ApproxEqual since both have norm zero.
func ZeroVariable(dim int, opts ...Option) LinearVariable {
	v := LinearVariable{opts: applyOptions(defaultVariableOptions(), opts)}
	if dim > 0 {
		v.b = mat.NewDense(dim, dim, nil)
		v.c = mat.NewVecDense(dim, nil)
	}
	return v
}

// Eval resolves the variable against a concrete parameter vector x. The zero
// element returns its constant part directly, ignoring x. When safe checks
// are enabled and the column count of B does not match len(x), Eval returns
// ErrDimensionMismatch.
func (v LinearVariable) Eval(x []float64) ([]float64, error) {
	if v.zero {
		return v.C(), nil
	}
	if v.b == nil {
		return v.C(), nil
	}
	rows, cols := v.b.Dims()
	if v.opts.safe && cols != len(x) {
		return nil, fmt.Errorf("%w: variable expects a parameter vector of length %d, got %d",
			ErrDimensionMismatch, cols, len(x))
	}
	var bx mat.VecDense
	bx.MulVec(v.b, mat.NewVecDense(len(x), x))
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = bx.AtVec(i)
		if v.c != nil {
			out[i] += v.c.AtVec(i)
		}
	}
	return out, nil
}

// Add adds w to the receiver in place. Adding the zero element is a no-op;
// a zero receiver adopts w's linear part. Both operands must otherwise agree
// in size.
func (v *LinearVariable) Add(w LinearVariable) {
	if w.zero {
		return
	}
	if v.zero {
		v.b = copyDense(w.b)
		v.c = copyVec(w.c)
		v.zero = w.zero
		return
	}
	if w.b != nil {
		if v.b == nil {
			v.b = copyDense(w.b)
		} else {
			v.b.Add(v.b, w.b)
		}
	}
	if w.c != nil {
		if v.c == nil {
			v.c = copyVec(w.c)
		} else {
			v.c.AddVec(v.c, w.c)
		}
	}
}

// Sub subtracts w from the receiver in place, mirroring Add's zero
// short-circuit with negation of the adopted linear part.
func (v *LinearVariable) Sub(w LinearVariable) {
	if w.zero {
		return
	}
	if v.zero {
		v.b = copyDense(w.b)
		if v.b != nil {
			v.b.Scale(-1, v.b)
		}
		v.c = copyVec(w.c)
		if v.c != nil {
			v.c.ScaleVec(-1, v.c)
		}
		v.zero = w.zero
		return
	}
	if w.b != nil {
		if v.b == nil {
			v.b = copyDense(w.b)
			v.b.Scale(-1, v.b)
		} else {
			v.b.Sub(v.b, w.b)
		}
	}
	if w.c != nil {
		if v.c == nil {
			v.c = copyVec(w.c)
			v.c.ScaleVec(-1, v.c)
		} else {
			v.c.SubVec(v.c, w.c)
		}
	}
}

// Scale multiplies both the linear and constant parts by k in place.
func (v *LinearVariable) Scale(k float64) {
	if v.b != nil {
		v.b.Scale(k, v.b)
	}
	if v.c != nil {
		v.c.ScaleVec(k, v.c)
	}
}

// Div divides both parts by k in place.
func (v *LinearVariable) Div(k float64) {
	v.Scale(1 / k)
}

// Size returns 0 for the default zero element, otherwise the larger of the
// linear part's column count and the constant part's length.
func (v LinearVariable) Size() int {
	if v.zero {
		return 0
	}
	size := 0
	if v.b != nil {
		_, cols := v.b.Dims()
		size = cols
	}
	if v.c != nil && v.c.Len() > size {
		size = v.c.Len()
	}
	return size
}

// Norm returns 0 for the zero element, otherwise the sum of the Frobenius
// norm of B and the 2-norm of c. The component sum, not a joint norm of
// [B|c], is the definition equality tests depend on.
func (v LinearVariable) Norm() float64 {
	if v.zero {
		return 0
	}
	n := 0.0
	if v.b != nil {
		n += mat.Norm(v.b, 2)
	}
	if v.c != nil {
		n += mat.Norm(v.c, 2)
	}
	return n
}

// ApproxEqual reports whether the difference of the two variables has norm
// below prec. A prec of zero uses DefaultPrecision.
func (v LinearVariable) ApproxEqual(w LinearVariable, prec float64) bool {
	if prec == 0 {
		prec = DefaultPrecision
	}
	return SubVars(v, w).Norm() < prec
}

// IsZero reports whether the variable is the flagged zero element.
func (v LinearVariable) IsZero() bool { return v.zero }

// B returns a copy of the linear part, or nil for the zero element.
func (v LinearVariable) B() *mat.Dense {
	return copyDense(v.b)
}

// C returns a copy of the constant part. The zero element returns an empty
// point.
func (v LinearVariable) C() []float64 {
	if v.c == nil {
		return []float64{}
	}
	out := make([]float64, v.c.Len())
	copy(out, v.c.RawVector().Data)
	return out
}

// Clone returns an independent deep copy.
func (v LinearVariable) Clone() LinearVariable {
	return LinearVariable{
		b:    copyDense(v.b),
		c:    copyVec(v.c),
		zero: v.zero,
		opts: v.opts,
	}
}

// AddVars returns a + b as a new value.
func AddVars(a, b LinearVariable) LinearVariable {
	res := a.Clone()
	res.Add(b)
	return res
}

// SubVars returns a - b as a new value.
func SubVars(a, b LinearVariable) LinearVariable {
	res := a.Clone()
	res.Sub(b)
	return res
}

// ScaleVar returns k * v as a new value.
func ScaleVar(k float64, v LinearVariable) LinearVariable {
	res := v.Clone()
	res.Scale(k)
	return res
}

// DivVar returns v / k as a new value.
func DivVar(v LinearVariable, k float64) LinearVariable {
	res := v.Clone()
	res.Div(k)
	return res
}

// MaterializeWaypoints resolves an ordered sequence of symbolic waypoints
// against a concrete parameter vector, producing the fixed points an
// external curve builder needs to reconstruct a numeric curve of the same
// family over the original time range.
func MaterializeWaypoints(waypoints []LinearVariable, x []float64) ([][]float64, error) {
	out := make([][]float64, len(waypoints))
	for i, wp := range waypoints {
		pt, err := wp.Eval(x)
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: %w", i, err)
		}
		out[i] = pt
	}
	return out, nil
}

func copyDense(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	return mat.DenseCopyOf(m)
}

func copyVec(v *mat.VecDense) *mat.VecDense {
	if v == nil {
		return nil
	}
	out := mat.NewVecDense(v.Len(), nil)
	out.CopyVec(v)
	return out
}
