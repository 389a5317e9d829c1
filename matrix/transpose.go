// SPDX-License-Identifier: MIT

package matrix

// Transpose transposes m in place: a cols×rows grid is built with
// r[j][i] = m[i][j] and swapped in.
// Complexity: O(rows*cols) time and space.
func (m *Matrix[T]) Transpose() {
	grid := allocGrid[T](m.cols, m.rows)
	for i, row := range m.data {
		for j := 0; j < m.cols && j < len(row); j++ {
			grid[j][i] = row[j]
		}
	}
	m.rows, m.cols, m.data = m.cols, m.rows, grid
}

// Transposed returns the transpose of m as a new matrix; m is not modified.
// Complexity: O(rows*cols) time and space.
func (m *Matrix[T]) Transposed() *Matrix[T] {
	t := m.Clone()
	t.Transpose()

	return t
}
