package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-curves/internal/testutil"
)

// mixedVariable builds a small 2x2 mixed variable for reuse across tests.
func mixedVariable() LinearVariable {
	b := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	return NewLinearVariable(b, []float64{5, 6})
}

func TestZeroVariableProperties(t *testing.T) {
	zero := NewZeroVariable()
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Size())
	assert.Equal(t, 0.0, zero.Norm())

	t.Run("evaluation ignores parameter vector", func(t *testing.T) {
		got, err := zero.Eval([]float64{1, 2, 3})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("sized zero differs in size but compares equal", func(t *testing.T) {
		sized := ZeroVariable(3)
		assert.False(t, sized.IsZero())
		assert.Equal(t, 3, sized.Size())
		assert.Equal(t, 0.0, sized.Norm())
		assert.True(t, zero.ApproxEqual(sized, 0))
		assert.True(t, sized.ApproxEqual(zero, 0))
	})
}

func TestZeroIsAdditiveIdentity(t *testing.T) {
	x := mixedVariable()

	cases := []struct {
		name string
		zero LinearVariable
	}{
		{"default zero", NewZeroVariable()},
		{"sized zero", ZeroVariable(2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, AddVars(tc.zero, x).ApproxEqual(x, 0))
			assert.True(t, AddVars(x, tc.zero).ApproxEqual(x, 0))
		})
	}
}

func TestSubtractionYieldsZero(t *testing.T) {
	cases := []struct {
		name string
		v    LinearVariable
	}{
		{"mixed", mixedVariable()},
		{"constant", NewConstant([]float64{1, -2, 3})},
		{"zero", NewZeroVariable()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			diff := SubVars(tc.v, tc.v)
			assert.True(t, diff.ApproxEqual(NewZeroVariable(), 0))
		})
	}
}

func TestConstantEvaluation(t *testing.T) {
	c := NewConstant([]float64{7, -1})

	// The linear part is a zero matrix, so the result never depends on x.
	got, err := c.Eval([]float64{100, 200})
	require.NoError(t, err)
	testutil.AssertPointInDelta(t, []float64{7, -1}, got, testutil.DefaultTolerance)
}

func TestMixedEvaluation(t *testing.T) {
	v := mixedVariable()

	// B*x + c with B=[[1,2],[3,4]], c=[5,6], x=[1,1].
	got, err := v.Eval([]float64{1, 1})
	require.NoError(t, err)
	testutil.AssertPointInDelta(t, []float64{8, 13}, got, testutil.DefaultTolerance)
}

func TestEvalDimensionMismatch(t *testing.T) {
	t.Run("safe checks reject wrong length", func(t *testing.T) {
		v := mixedVariable()
		_, err := v.Eval([]float64{1, 2, 3})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("zero element never checks", func(t *testing.T) {
		_, err := NewZeroVariable().Eval([]float64{1, 2, 3})
		assert.NoError(t, err)
	})
}

func TestAdditionDistributesOverEvaluation(t *testing.T) {
	a := mixedVariable()
	b := NewLinearVariable(mat.NewDense(2, 2, []float64{0, -1, 1, 0}), []float64{-2, 2})
	x := []float64{0.5, -1.5}

	sum := AddVars(a, b)
	got, err := sum.Eval(x)
	require.NoError(t, err)

	ea, err := a.Eval(x)
	require.NoError(t, err)
	eb, err := b.Eval(x)
	require.NoError(t, err)
	want := []float64{ea[0] + eb[0], ea[1] + eb[1]}
	testutil.AssertPointInDelta(t, want, got, testutil.DefaultTolerance)
}

func TestScaleAndDiv(t *testing.T) {
	v := mixedVariable()
	x := []float64{1, 2}

	base, err := v.Eval(x)
	require.NoError(t, err)

	scaled, err := ScaleVar(3, v).Eval(x)
	require.NoError(t, err)
	testutil.AssertPointInDelta(t, []float64{3 * base[0], 3 * base[1]}, scaled, testutil.DefaultTolerance)

	halved, err := DivVar(v, 2).Eval(x)
	require.NoError(t, err)
	testutil.AssertPointInDelta(t, []float64{base[0] / 2, base[1] / 2}, halved, testutil.DefaultTolerance)
}

func TestFreeOperatorsDoNotAliasInputs(t *testing.T) {
	a := mixedVariable()
	b := NewConstant([]float64{1, 1})

	before, err := a.Eval([]float64{1, 1})
	require.NoError(t, err)

	_ = AddVars(a, b)
	_ = SubVars(a, b)
	_ = ScaleVar(10, a)

	after, err := a.Eval([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestZeroReceiverAdoptsOperand(t *testing.T) {
	w := mixedVariable()
	x := []float64{2, -1}

	t.Run("add", func(t *testing.T) {
		v := NewZeroVariable()
		v.Add(w)
		assert.False(t, v.IsZero())
		got, err := v.Eval(x)
		require.NoError(t, err)
		want, err := w.Eval(x)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("sub negates", func(t *testing.T) {
		v := NewZeroVariable()
		v.Sub(w)
		got, err := v.Eval(x)
		require.NoError(t, err)
		want, err := w.Eval(x)
		require.NoError(t, err)
		testutil.AssertPointInDelta(t, []float64{-want[0], -want[1]}, got, testutil.DefaultTolerance)
	})
}

func TestNorm(t *testing.T) {
	// Norm is the sum of the component norms: ||B||_F + ||c||_2.
	b := mat.NewDense(2, 2, []float64{3, 0, 0, 4}) // Frobenius norm 5
	v := NewLinearVariable(b, []float64{0, 12})    // vector norm 12
	assert.InDelta(t, 17.0, v.Norm(), testutil.DefaultTolerance)
}

func TestSize(t *testing.T) {
	cases := []struct {
		name string
		v    LinearVariable
		want int
	}{
		{"default zero", NewZeroVariable(), 0},
		{"sized zero", ZeroVariable(4), 4},
		{"constant", NewConstant([]float64{1, 2, 3}), 3},
		{"mixed", mixedVariable(), 2},
		{"wide linear part", NewLinearVariable(mat.NewDense(2, 5, nil), []float64{1, 2}), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Size())
		})
	}
}

func TestMaterializeWaypoints(t *testing.T) {
	p0 := NewConstant([]float64{0, 0})
	p2 := NewLinearVariable(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), []float64{0, 0})
	mid := ScaleVar(0.5, AddVars(p0, p2))

	x := []float64{4, 6}
	pts, err := MaterializeWaypoints([]LinearVariable{p0, mid, p2}, x)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	testutil.AssertPointInDelta(t, []float64{0, 0}, pts[0], testutil.DefaultTolerance)
	testutil.AssertPointInDelta(t, []float64{2, 3}, pts[1], testutil.DefaultTolerance)
	testutil.AssertPointInDelta(t, []float64{4, 6}, pts[2], testutil.DefaultTolerance)

	t.Run("propagates evaluation errors", func(t *testing.T) {
		_, err := MaterializeWaypoints([]LinearVariable{p2}, []float64{1})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})
}

func TestUncheckedVariableSkipsDimensionTest(t *testing.T) {
	b := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	checked := NewLinearVariable(b, []float64{0, 0})
	unchecked := NewLinearVariable(b, []float64{0, 0}, WithoutSafeChecks())

	_, err := checked.Eval([]float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	// Without safe checks the library's error path is bypassed entirely;
	// a mismatched vector reaches the matrix multiply and panics there.
	assert.Panics(t, func() {
		_, _ = unchecked.Eval([]float64{1, 2, 3})
	})

	got, err := unchecked.Eval([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)
}
