package curves

import "errors"

// Common errors returned by the curve types.
var (
	// ErrInvalidArgument indicates mismatched or malformed construction
	// inputs, such as boundary points of different dimensions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange indicates an evaluation time outside the curve's
	// [TMin, TMax] interval. Only returned when safe checks are enabled.
	ErrOutOfRange = errors.New("time out of range")

	// ErrInvalidState indicates an operation on a curve that has no
	// coefficients, typically a zero-value Polynomial.
	ErrInvalidState = errors.New("curve has no coefficients")

	// ErrDimensionMismatch indicates a parameter vector whose length does
	// not match the linear part of an affine variable. Only returned when
	// safe checks are enabled.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
