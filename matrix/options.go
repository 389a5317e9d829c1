// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric comparison and random
// generation. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//     Randomness is seeded from DefaultSeed unless WithSeed/WithRand says otherwise.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultSeed seeds the generator NewRandom uses when no WithSeed/WithRand
	// option is given, so unconfigured runs are reproducible.
	DefaultSeed int64 = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRandNil        = "matrix: WithRand(nil)"
)

// Option mutates internal options. Applying options is order-dependent with
// last-writer-wins semantics.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64    // >= 0; DefaultEpsilon
	rng *rand.Rand // nil ⇒ rand.New(rand.NewSource(seed))
	// seed is only consulted when rng is nil.
	seed int64
}

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
// Panics when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSeed makes NewRandom draw from a fresh generator seeded with seed.
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand provides an explicit generator. The caller keeps ownership; a
// *rand.Rand is not safe for concurrent use.
// Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// gatherOptions applies user options on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:  DefaultEpsilon,
		seed: DefaultSeed,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// source returns the configured generator or a freshly seeded one.
func (o Options) source() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}

	return rand.New(rand.NewSource(o.seed))
}
