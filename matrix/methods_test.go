package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestMul_Scenario checks {{1,2},{3,4}}×{{5,6},{7,8}}.
func TestMul_Scenario(t *testing.T) {
	a := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]int{{5, 6}, {7, 8}})
	p, err := a.Mul(b)
	require.NoError(t, err)
	requireRows(t, [][]int{{19, 22}, {43, 50}}, p)
}

// TestMul_RectangularShape checks result shape rows(a)×cols(b).
func TestMul_RectangularShape(t *testing.T) {
	a := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := matrix.FromRows([][]float64{{1}, {0}, {-1}})       // 3×1
	p, err := a.Mul(b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{-2}, {-2}}, p)
}

// TestMul_DotProductDefinition compares against the explicit sum.
func TestMul_DotProductDefinition(t *testing.T) {
	a := mustRandom(t, 4, 5, 1)
	b := mustRandom(t, 5, 3, 2)
	p, err := a.Mul(b)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			var want float64
			for k := 0; k < 5; k++ {
				x, _ := a.At(i, k)
				y, _ := b.At(k, j)
				want += x * y
			}
			got, err := p.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12)
		}
	}
}

// TestMul_DimensionMismatch checks 2×3 × 2×2 fails.
func TestMul_DimensionMismatch(t *testing.T) {
	a := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	b := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	_, err := a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "Mul")
}

// TestMul_EmptyInner yields a zero matrix when the inner dimension is 0.
func TestMul_EmptyInner(t *testing.T) {
	a := mustNew[int](t, 2, 0)
	b := mustNew[int](t, 0, 3)
	p, err := a.Mul(b)
	require.NoError(t, err)
	requireRows(t, [][]int{{0, 0, 0}, {0, 0, 0}}, p)
}

// TestMul_DoesNotMutateOperands checks value semantics.
func TestMul_DoesNotMutateOperands(t *testing.T) {
	a := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	p, err := a.Mul(a)
	require.NoError(t, err)
	require.NoError(t, p.Set(0, 0, -1))
	requireRows(t, [][]int{{1, 2}, {3, 4}}, a)
}

// TestAdd_Scenario checks {{1,2},{3,4}} + {{1,1},{1,1}}.
func TestAdd_Scenario(t *testing.T) {
	a := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b := matrix.FromRows([][]int{{1, 1}, {1, 1}})
	s, err := a.Add(b)
	require.NoError(t, err)
	requireRows(t, [][]int{{2, 3}, {4, 5}}, s)
	requireRows(t, [][]int{{1, 2}, {3, 4}}, a)
}

// TestAddSub_RoundTrip checks A + B - B ≈ A.
func TestAddSub_RoundTrip(t *testing.T) {
	a := mustRandom(t, 6, 4, 10)
	b := mustRandom(t, 6, 4, 20)
	s, err := a.Add(b)
	require.NoError(t, err)
	back, err := s.Sub(b)
	require.NoError(t, err)
	require.True(t, a.ApproxEqual(back, matrix.WithEpsilon(1e-12)))

	ai := matrix.FromRows([][]int{{1, -2}, {3, 0}})
	bi := matrix.FromRows([][]int{{7, 7}, {-9, 2}})
	si, err := ai.Add(bi)
	require.NoError(t, err)
	bk, err := si.Sub(bi)
	require.NoError(t, err)
	require.True(t, ai.Equal(bk))
}

// TestAddSub_EitherDimensionMismatch rejects a mismatch in only one dimension,
// which a rows-AND-cols check would have let through.
func TestAddSub_EitherDimensionMismatch(t *testing.T) {
	a := mustNew[int](t, 2, 3)
	rowsOnly := mustNew[int](t, 3, 3)
	colsOnly := mustNew[int](t, 2, 2)
	both := mustNew[int](t, 1, 1)

	for _, b := range []*matrix.Matrix[int]{rowsOnly, colsOnly, both} {
		_, err := a.Add(b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		_, err = a.Sub(b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	}
}

// TestSub subtracts element-wise.
func TestSub(t *testing.T) {
	a := matrix.FromRows([][]float64{{5, 5}, {5, 5}})
	b := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	d, err := a.Sub(b)
	require.NoError(t, err)
	requireRows(t, [][]float64{{4, 3}, {2, 1}}, d)
}

// TestNilOperands reports ErrNilMatrix before shape checks.
func TestNilOperands(t *testing.T) {
	a := matrix.FromRows([][]int{{1}})
	var n *matrix.Matrix[int]

	_, err := a.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = n.Mul(a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = n.Sub(a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale covers the T, float and int scalar products.
func TestScale(t *testing.T) {
	m := matrix.FromRows([][]int{{1, 2}, {3, 4}})

	requireRows(t, [][]int{{3, 6}, {9, 12}}, m.Scale(3))
	requireRows(t, [][]int{{-2, -4}, {-6, -8}}, m.ScaleInt(-2))
	// float factor on an int matrix truncates toward zero
	requireRows(t, [][]int{{0, 1}, {1, 2}}, m.ScaleFloat(0.5))
	requireRows(t, [][]int{{1, 2}, {3, 4}}, m)

	f := matrix.FromRows([][]float64{{1, -2}})
	requireRows(t, [][]float64{{0.5, -1}}, f.ScaleFloat(0.5))
}
