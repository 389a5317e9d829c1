// Package lvmatrix is a small, dependency-light home for a generic dense
// matrix container.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/  — Matrix[T]: construction, shape management, element-wise ops,
//	           transpose, arithmetic (Scale, Mul, Add, Sub) and a tab-separated dump
//	interop/ — copies to and from gonum's mat.Dense for factorizations and solvers
//
// Quick example:
//
//	a := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	p, err := a.Mul(b) // [[19 22] [43 50]]
//
//	go get github.com/katalvlaran/lvmatrix
package lvmatrix
