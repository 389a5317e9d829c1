// Package interop bridges lvmatrix and gonum.
//
// ToDense copies a matrix.Matrix into a gonum *mat.Dense (row-major, float64)
// so callers can reach gonum's factorizations and solvers; FromGonum copies any
// gonum mat.Matrix back, converting every element to the requested Number type.
//
// Conversions always copy; neither side aliases the other's storage.
package interop
