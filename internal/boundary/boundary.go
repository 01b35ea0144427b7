// Package boundary solves the small dense linear systems behind
// boundary-value polynomial fits.
//
// A degree-n fit over an interval of length T is determined by n+1 boundary
// values (positions and derivatives at both endpoints). The system matrix
// mapping polynomial coefficients to those boundary values depends only on T,
// so it is built and inverted once; each spatial dimension is then solved
// independently as a right-hand side against the shared inverse.
package boundary

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Cubic returns the dim x 4 coefficient matrix of the degree-3 polynomial
// matching position and first derivative at both endpoints of an interval of
// length T. Row d holds the coefficients of spatial dimension d, column i the
// coefficient of (t - tmin)^i.
//
// All boundary slices must have equal length; the caller validates that.
func Cubic(init, end, dInit, dEnd []float64, T float64) (*mat.Dense, error) {
	// Coefficients [c0 c1 c2 c3] satisfy, per dimension:
	// [1  0  0   0   ]   [c0]   [ init ]
	// [1  T  T^2 T^3 ] x [c1] = [ end  ]
	// [0  1  0   0   ]   [c2]   [dInit ]
	// [0  1  2T  3T^2]   [c3]   [dEnd  ]
	sys := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		1, T, T * T, T * T * T,
		0, 1, 0, 0,
		0, 1, 2 * T, 3 * T * T,
	})
	return solve(sys, [][]float64{init, end, dInit, dEnd})
}

// Quintic returns the dim x 6 coefficient matrix of the degree-5 polynomial
// matching position, first, and second derivative at both endpoints of an
// interval of length T. Layout matches Cubic.
func Quintic(init, end, dInit, dEnd, ddInit, ddEnd []float64, T float64) (*mat.Dense, error) {
	// Coefficients [c0 .. c5] satisfy, per dimension:
	// [1  0  0   0    0     0    ]   [c0]   [ init  ]
	// [1  T  T^2 T^3  T^4   T^5  ]   [c1]   [ end   ]
	// [0  1  0   0    0     0    ]   [c2]   [dInit  ]
	// [0  1  2T  3T^2 4T^3  5T^4 ] x [c3] = [dEnd   ]
	// [0  0  2   0    0     0    ]   [c4]   [ddInit ]
	// [0  0  2   6T   12T^2 20T^3]   [c5]   [ddEnd  ]
	t2 := T * T
	t3 := t2 * T
	t4 := t3 * T
	t5 := t4 * T
	sys := mat.NewDense(6, 6, []float64{
		1, 0, 0, 0, 0, 0,
		1, T, t2, t3, t4, t5,
		0, 1, 0, 0, 0, 0,
		0, 1, 2 * T, 3 * t2, 4 * t3, 5 * t4,
		0, 0, 2, 0, 0, 0,
		0, 0, 2, 6 * T, 12 * t2, 20 * t3,
	})
	return solve(sys, [][]float64{init, end, dInit, dEnd, ddInit, ddEnd})
}

// solve inverts the system matrix once and solves it against the boundary
// vectors, one spatial dimension at a time. conditions[i][d] is boundary
// value i of spatial dimension d.
func solve(sys *mat.Dense, conditions [][]float64) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(sys); err != nil {
		// Happens for a zero-length interval, which makes the position
		// rows of the system identical.
		return nil, fmt.Errorf("boundary system is singular: %w", err)
	}

	n := len(conditions)
	dim := len(conditions[0])
	coeffs := mat.NewDense(dim, n, nil)
	rhs := mat.NewVecDense(n, nil)
	var sol mat.VecDense
	for d := 0; d < dim; d++ {
		for i, cond := range conditions {
			rhs.SetVec(i, cond[d])
		}
		sol.MulVec(&inv, rhs)
		for i := 0; i < n; i++ {
			coeffs.Set(d, i, sol.AtVec(i))
		}
	}
	return coeffs, nil
}
