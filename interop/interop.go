// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
	"gonum.org/v1/gonum/mat"
)

// ErrEmpty is returned by ToDense for matrices with a zero dimension, which
// gonum cannot represent as a *mat.Dense.
var ErrEmpty = errors.New("interop: zero-sized matrix")

// interopErrorf wraps an underlying error with the given operation tag.
func interopErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ToDense copies m into a new gonum *mat.Dense, converting every element to
// float64. Integer values beyond 2^53 lose precision.
//
// Errors: matrix.ErrNilMatrix, ErrEmpty, matrix.ErrRagged.
// Complexity: O(r*c).
func ToDense[T matrix.Number](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, interopErrorf("ToDense", err)
	}
	r, c := m.Size()
	if r == 0 || c == 0 {
		return nil, interopErrorf("ToDense", ErrEmpty)
	}

	buf := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		row, _ := m.Row(i) // i < r
		if len(row) != c {
			return nil, interopErrorf("ToDense", matrix.ErrRagged)
		}
		for _, v := range row {
			buf = append(buf, float64(v))
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a new matrix.Matrix[T]. Values are
// converted with T(v), so integer targets truncate toward zero.
// A nil input yields an empty matrix.
// Complexity: O(r*c).
func FromGonum[T matrix.Number](a mat.Matrix) *matrix.Matrix[T] {
	if a == nil {
		return matrix.Empty[T]()
	}
	r, c := a.Dims()
	rows := make([][]T, r)
	for i := range rows {
		rows[i] = make([]T, c)
		for j := range rows[i] {
			rows[i][j] = T(a.At(i, j))
		}
	}

	return matrix.FromRows(rows)
}
