// SPDX-License-Identifier: MIT

// Package matrix - arithmetic operators.
//
// Every operator reads its operands and returns a freshly allocated result;
// operands are never mutated and never share storage with the result.
//
// Shape policy:
//   - Add/Sub reject a mismatch in EITHER dimension.
//   - Mul requires a.Cols() == b.Rows().
//
// Error priority: nil operand -> dimension mismatch.
package matrix

// Scale returns alpha*m element-wise, same shape as m.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Scale(alpha T) *Matrix[T] {
	return m.mapped(func(v T) T { return v * alpha })
}

// ScaleFloat multiplies every element by a float64 factor. The product is
// computed in float64 and converted back to T, so integer matrices truncate
// toward zero (e.g. 3 * 0.5 == 1).
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) ScaleFloat(alpha float64) *Matrix[T] {
	return m.mapped(func(v T) T { return T(float64(v) * alpha) })
}

// ScaleInt multiplies every element by an int factor converted to T.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) ScaleInt(alpha int) *Matrix[T] {
	return m.Scale(T(alpha))
}

// mapped returns a copy of m with f applied to every element.
func (m *Matrix[T]) mapped(f func(T) T) *Matrix[T] {
	out := m.Clone()
	out.Map(f)

	return out
}

// Mul returns the matrix product m×b: out[i][j] = Σ_k m[i][k]*b[k][j],
// accumulated in a zero-initialized T. Naive triple loop, i→j→k.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when m.Cols() != b.Rows().
// Complexity: O(r*inner*c) time, O(r*c) memory.
func (m *Matrix[T]) Mul(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := &Matrix[T]{rows: m.rows, cols: b.cols, data: allocGrid[T](m.rows, b.cols)}
	var i, j, k int
	for i = 0; i < m.rows; i++ {
		a := m.data[i]
		for j = 0; j < b.cols; j++ {
			var sum T
			for k = 0; k < m.cols; k++ {
				sum += a[k] * b.data[k][j]
			}
			out.data[i][j] = sum
		}
	}

	return out, nil
}

// Add returns m+b element-wise.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when either dimension differs.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	return m.zip(opAdd, b, func(x, y T) T { return x + y })
}

// Sub returns m-b element-wise.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when either dimension differs.
// Complexity: O(r*c) time and memory.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	return m.zip(opSub, b, func(x, y T) T { return x - y })
}

// zip combines two same-shape matrices element-wise into a new one.
func (m *Matrix[T]) zip(tag string, b *Matrix[T], f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	out := &Matrix[T]{rows: m.rows, cols: m.cols, data: allocGrid[T](m.rows, m.cols)}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out.data[i][j] = f(m.data[i][j], b.data[i][j])
		}
	}

	return out, nil
}
