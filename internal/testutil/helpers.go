// Package testutil provides reusable assertion helpers for curve tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance suits closed-form results that should agree to
	// floating-point noise.
	DefaultTolerance = 1e-10

	// SolveTolerance suits values that passed through a matrix inversion.
	SolveTolerance = 1e-9
)

// AssertPointInDelta verifies that two points agree element-wise within
// tolerance, including in dimension.
func AssertPointInDelta(t *testing.T, want, got []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], tolerance,
			"point differs at element %d: want %v, got %v", i, want[i], got[i]) {
			return false
		}
	}
	return true
}

// AssertAllFinite verifies that no element of a point is NaN or Inf.
func AssertAllFinite(t *testing.T, pt []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range pt {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "pt[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "pt[%d] is Inf", i)
		}
	}
	return true
}
