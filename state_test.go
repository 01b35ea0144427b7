package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPolynomialStateRoundTrip(t *testing.T) {
	orig, err := NewQuinticFit(
		[]float64{0, 1}, []float64{1, 0}, []float64{0, 0},
		[]float64{2, -1}, []float64{0, 1}, []float64{1, 0},
		0.5, 2.5,
	)
	require.NoError(t, err)

	s := orig.State()
	assert.Equal(t, 2, s.Dim)
	assert.Equal(t, 5, s.Degree)
	assert.Equal(t, 0.5, s.TMin)
	assert.Equal(t, 2.5, s.TMax)
	assert.Len(t, s.Coefficients, 6)

	restored, err := NewPolynomialFromState(s)
	require.NoError(t, err)
	assert.True(t, orig.ApproxEqual(restored, 0))
}

func TestPolynomialStateVersionIsOpaque(t *testing.T) {
	orig, err := NewLinearFit([]float64{0}, []float64{1}, 0, 1)
	require.NoError(t, err)

	s := orig.State()
	s.Version = 42

	restored, err := NewPolynomialFromState(s)
	require.NoError(t, err)
	assert.True(t, orig.ApproxEqual(restored, 0))
}

func TestPolynomialStateValidation(t *testing.T) {
	t.Run("coefficient count disagrees with degree", func(t *testing.T) {
		_, err := NewPolynomialFromState(PolynomialState{
			Dim:          1,
			Degree:       2,
			Coefficients: [][]float64{{1}, {2}},
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("coefficient dimension disagrees", func(t *testing.T) {
		_, err := NewPolynomialFromState(PolynomialState{
			Dim:          2,
			Degree:       1,
			Coefficients: [][]float64{{1, 2}, {3}},
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestLinearVariableStateRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    LinearVariable
	}{
		{"zero", NewZeroVariable()},
		{"sized zero", ZeroVariable(2)},
		{"constant", NewConstant([]float64{1, -2})},
		{"mixed", NewLinearVariable(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}), []float64{7, 8})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.v.State()
			restored, err := NewLinearVariableFromState(s)
			require.NoError(t, err)
			assert.Equal(t, tc.v.IsZero(), restored.IsZero())
			assert.Equal(t, tc.v.Size(), restored.Size())
			assert.True(t, tc.v.ApproxEqual(restored, 0))
		})
	}
}

func TestLinearVariableStateValidation(t *testing.T) {
	_, err := NewLinearVariableFromState(LinearVariableState{
		Rows: 2,
		Cols: 2,
		B:    []float64{1, 2, 3},
		C:    []float64{0, 0},
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
