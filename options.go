package curves

// options holds per-instance configuration captured at construction time.
// Safe checks are deliberately not a package-level toggle: curves with
// different safety settings may coexist, so each instance carries its own.
type options struct {
	// safe enables runtime validation: time-range checks on evaluation,
	// coefficient shape checks at construction, and parameter dimension
	// checks on affine evaluation. When disabled the same inputs produce
	// unchecked (and possibly meaningless) numeric output instead of an
	// error. This is an intentional performance trade-off.
	safe bool
}

// defaultCurveOptions returns the options applied to polynomial curves when
// no Option is given. Evaluation is unchecked by default.
func defaultCurveOptions() options {
	return options{safe: false}
}

// defaultVariableOptions returns the options applied to linear variables
// when no Option is given. Dimension checks are enabled by default.
func defaultVariableOptions() options {
	return options{safe: true}
}

// Option configures a curve or linear variable at construction.
type Option func(*options)

// WithSafeChecks enables runtime validation on the constructed instance:
// evaluation outside [TMin, TMax] returns ErrOutOfRange, construction with
// TMin > TMax returns ErrInvalidArgument, and affine evaluation against a
// wrong-length parameter vector returns ErrDimensionMismatch.
func WithSafeChecks() Option {
	return func(o *options) {
		o.safe = true
	}
}

// WithoutSafeChecks disables runtime validation on the constructed instance.
// Out-of-range evaluation extrapolates the polynomial instead of failing.
func WithoutSafeChecks() Option {
	return func(o *options) {
		o.safe = false
	}
}

// applyOptions resolves the effective options from a default and a caller's
// Option list.
func applyOptions(defaults options, opts []Option) options {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
