package curves

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// The State types decouple persistence from encoding: each entity can export
// the flat ordered fields an external serializer needs to reconstruct an
// identical instance, and be rebuilt from the same fields. The Version tag is
// carried through opaquely for the serializer's benefit; the core ignores it.

// PolynomialState holds the exported fields of a Polynomial.
type PolynomialState struct {
	// Version is an opaque tag owned by the external serializer.
	Version int

	Dim    int
	Degree int
	TMin   float64
	TMax   float64

	// Coefficients[i] is the dim-length coefficient of (t - tmin)^i.
	Coefficients [][]float64
}

// State exports the fields an external serializer needs to reconstruct the
// curve.
func (p *Polynomial) State() PolynomialState {
	s := PolynomialState{
		Dim:    p.Dim(),
		Degree: p.Degree(),
		TMin:   p.tmin,
		TMax:   p.tmax,
	}
	if p.coeffs == nil {
		return s
	}
	s.Coefficients = make([][]float64, p.Degree()+1)
	for i := range s.Coefficients {
		s.Coefficients[i] = p.CoefficientAt(i)
	}
	return s
}

// NewPolynomialFromState reconstructs a curve from exported fields. The
// field shape is validated regardless of safe checks, since a serializer may
// hand over arbitrary data.
func NewPolynomialFromState(s PolynomialState, opts ...Option) (*Polynomial, error) {
	if len(s.Coefficients) != s.Degree+1 {
		return nil, fmt.Errorf("%w: state has %d coefficients for degree %d",
			ErrInvalidArgument, len(s.Coefficients), s.Degree)
	}
	for i, c := range s.Coefficients {
		if len(c) != s.Dim {
			return nil, fmt.Errorf("%w: state coefficient %d has dimension %d, want %d",
				ErrInvalidArgument, i, len(c), s.Dim)
		}
	}
	return NewPolynomialFromCoefficients(s.Coefficients, s.TMin, s.TMax, opts...)
}

// LinearVariableState holds the exported fields of a LinearVariable.
type LinearVariableState struct {
	// Version is an opaque tag owned by the external serializer.
	Version int

	// Zero marks the flagged zero element; B and C are empty in that case.
	Zero bool

	Rows int
	Cols int

	// B is the linear part in row-major order, Rows x Cols.
	B []float64

	// C is the constant part.
	C []float64
}

// State exports the fields an external serializer needs to reconstruct the
// variable.
func (v LinearVariable) State() LinearVariableState {
	s := LinearVariableState{Zero: v.zero}
	if v.b != nil {
		s.Rows, s.Cols = v.b.Dims()
		s.B = make([]float64, s.Rows*s.Cols)
		for i := 0; i < s.Rows; i++ {
			copy(s.B[i*s.Cols:(i+1)*s.Cols], v.b.RawRowView(i))
		}
	}
	s.C = v.C()
	return s
}

// NewLinearVariableFromState reconstructs a variable from exported fields.
func NewLinearVariableFromState(s LinearVariableState, opts ...Option) (LinearVariable, error) {
	if s.Zero {
		return NewZeroVariable(), nil
	}
	if len(s.B) != s.Rows*s.Cols {
		return LinearVariable{}, fmt.Errorf("%w: state B has %d elements for a %dx%d matrix",
			ErrInvalidArgument, len(s.B), s.Rows, s.Cols)
	}
	var b *mat.Dense
	if s.Rows > 0 && s.Cols > 0 {
		b = mat.NewDense(s.Rows, s.Cols, append([]float64(nil), s.B...))
	}
	return NewLinearVariable(b, s.C, opts...), nil
}
