// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place element-wise kernels (Fill, Randomize, Map, Apply) and read-only
//     traversals (Do, Fold, Sum).
//
// Determinism:
//   - Every loop runs in row-major order (i→j), so stateful callbacks observe
//     elements in a fixed sequence.
//   - Randomness comes only from a caller-owned *rand.Rand; there is no
//     package-level generator.
//
// Complexity:
//   - All kernels are O(r*c) time and O(1) extra space.

package matrix

import "math/rand"

// Fill assigns v to every element in row-major order.
func (m *Matrix[T]) Fill(v T) {
	for _, row := range m.data {
		for j := range row {
			row[j] = v
		}
	}
}

// Randomize assigns every element an independent draw
//
//	lower + f*(upper-lower),  f = rng.Float64() ∈ [0,1)
//
// converted to T. For upper > lower each element lies in [lower, upper);
// integer types are uniform over lower..upper-1. Pass 0 for lower to draw from
// [0, upper). The generator is owned by the caller: seed it for reproducible
// output and do not share it across goroutines. Not cryptographically secure.
//
// Errors: ErrNilRand when rng is nil (matrix unchanged).
func (m *Matrix[T]) Randomize(rng *rand.Rand, upper, lower T) error {
	if rng == nil {
		return matrixErrorf(opRandomize, ErrNilRand)
	}
	s := newSampler(lower, upper)
	for _, row := range m.data {
		for j := range row {
			row[j] = s.draw(rng)
		}
	}

	return nil
}

// sampler holds the per-call constants of one Randomize run.
type sampler[T Number] struct {
	lower, upper T
	span         float64 // float64(upper) - float64(lower)
	width        uint64  // exact upper-lower for integer T with upper > lower
	integer      bool
}

func newSampler[T Number](lower, upper T) sampler[T] {
	half := 0.5
	s := sampler[T]{
		lower:   lower,
		upper:   upper,
		span:    float64(upper) - float64(lower),
		integer: T(half) == 0,
	}
	if s.integer && upper > lower {
		// Two's complement: the difference is exact modulo 2^64 even when
		// it does not fit in T (e.g. int32 over [-2e9, 2e9)).
		s.width = uint64(upper) - uint64(lower)
	}

	return s
}

// draw produces one sample.
func (s sampler[T]) draw(rng *rand.Rand) T {
	f := rng.Float64()
	if s.span < 0 {
		return T(float64(s.lower) + f*s.span)
	}
	if s.integer {
		if s.width == 0 {
			return s.lower
		}
		// f < 1 keeps the product below 2^64; rounding may still hit width.
		off := uint64(f * float64(s.width))
		if off >= s.width {
			off = s.width - 1
		}
		// Wrapping addition lands back inside [lower, upper).
		return s.lower + T(off)
	}
	v := s.lower + T(f*s.span)
	if s.span > 0 && v >= s.upper {
		// float32 rounding may land on upper; keep the half-open contract.
		v = s.lower
	}

	return v
}

// NewRandom allocates a rows×cols matrix and randomizes it over [lower, upper).
// The generator comes from WithRand, or WithSeed, or DefaultSeed otherwise,
// so results are reproducible unless the caller supplies live entropy.
//
// Errors: ErrInvalidDimensions on negative or overflowing dimensions.
func NewRandom[T Number](rows, cols int, upper, lower T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewRandom, err)
	}
	if err = m.Randomize(gatherOptions(opts...).source(), upper, lower); err != nil {
		return nil, matrixErrorf(opNewRandom, err)
	}

	return m, nil
}

// Map replaces every element v with f(v), in place, row-major.
// Keep f free of hidden accumulation; use Fold to reduce.
func (m *Matrix[T]) Map(f func(v T) T) {
	for _, row := range m.data {
		for j, v := range row {
			row[j] = f(v)
		}
	}
}

// Apply replaces each element with f(i, j, v), in place, row-major.
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	for i, row := range m.data {
		for j, v := range row {
			row[j] = f(i, j, v)
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	for i, row := range m.data {
		for j, v := range row {
			if !f(i, j, v) {
				return
			}
		}
	}
}

// Fold reduces m in row-major order: acc = f(acc, v) for every element, and
// returns the final accumulator. m is not modified; a nil m yields acc.
func Fold[T Number, A any](m *Matrix[T], acc A, f func(acc A, v T) A) A {
	if m == nil {
		return acc
	}
	for _, row := range m.data {
		for _, v := range row {
			acc = f(acc, v)
		}
	}

	return acc
}

// Sum returns the sum of all elements, accumulated in T.
func Sum[T Number](m *Matrix[T]) T {
	var zero T

	return Fold(m, zero, func(acc, v T) T { return acc + v })
}
