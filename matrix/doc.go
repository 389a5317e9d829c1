// Package matrix provides Matrix[T], a generic dense two-dimensional numeric
// container stored as a slice of rows.
//
// The matrix package provides:
//
//   - Construction: Empty (0×0), New (zero-filled by shape), FromRows /
//     FromRowsChecked (copied from literal rows), NewRandom.
//   - Shape management: Size, ResizeRaw (raw per-dimension resize, may corrupt
//     logical contents), Reshape (count-preserving) and ReshapeRemap
//     (row-major order preserving, pads or truncates).
//   - Element-wise work: Fill, Randomize (caller-owned *rand.Rand), Map, Apply,
//     Do, Fold, Sum.
//   - Transpose (in place) and Transposed (copy).
//   - Arithmetic returning new matrices: Scale, ScaleFloat, ScaleInt, Mul, Add, Sub.
//   - Diagnostics: String and WriteTo print tab-separated rows.
//
// Errors are package-level sentinels (ErrDimensionMismatch, ErrOutOfRange, ...)
// wrapped with the failing operation's name; match them with errors.Is.
//
// Matrices are not safe for concurrent mutation. Distinct matrices never share
// storage, so they may be used from different goroutines freely.
//
// See the examples in this package for usage patterns.
package matrix
