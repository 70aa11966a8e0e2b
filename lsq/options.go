// SPDX-License-Identifier: MIT

// Package lsq: functional configuration for the numeric policy.
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
package lsq

import "math"

// DefaultEpsilon is the dependency-detection tolerance of the
// orthogonalizer: a residual with norm ≤ eps after projection is treated as
// linearly dependent on the rows accepted before it. It is per-call
// configuration (WithEpsilon), not a hidden process-wide constant.
const DefaultEpsilon = 1e-10

// panicEpsilonInvalid is the stable message for a nonsensical tolerance.
const panicEpsilonInvalid = "lsq: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the dependency-detection tolerance eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that writes eps into Options.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger eps declares dependency earlier (drops near-parallel rows);
//     smaller eps tolerates worse conditioning. 1e-10 suits float64 data.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps: DefaultEpsilon,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
