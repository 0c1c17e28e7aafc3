// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance below which a value is
	// treated as zero: pivot detection, elimination gating, and Equal all
	// use it unless overridden with WithEpsilon. It is a blunt policy — it
	// does not scale with matrix magnitude — which is exactly the fixed
	// reference behavior callers rely on.
	DefaultEpsilon = 1e-9
)

// Internal panic message (no magic strings).
const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Options carries the numeric policy consumed by RREF, Inverse and Equal.
// Zero value is never used directly; gatherOptions starts from defaults.
type Options struct {
	eps float64 // absolute zero-tolerance, ≥ 0, finite
}

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// the last writer wins.
type Option func(*Options)

// WithEpsilon overrides the absolute zero-tolerance.
// Panics on NaN, ±Inf or negative eps — misconfiguring the numeric policy
// is a programmer error, not a runtime condition.
//
// AI-Hints:
//   - eps = 0 disables tolerance entirely (exact zero tests); only safe on
//     integer-valued inputs.
func WithEpsilon(eps float64) Option {
	// Validate eagerly so the panic points at the call site, not at use time.
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the documented default policy.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions folds opts over the defaults in call order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
