// Package matrix implements a small dense-matrix value type and its
// arithmetic.
//
// The matrix package provides:
//
//   - Dense: a row-major, fixed-shape container of float64 values with safe
//     accessors (At/Set return errors instead of panicking) and builder-style
//     reshaping (WithRows, WithCols, Resize, WithData) that never mutates the
//     receiver.
//   - Elementwise operators: Add, Sub, Scale, plus strict Equal/NotEqual and
//     tolerance-based EqualApprox.
//   - Mul: the general rectangular product (A.Cols must equal B.Rows).
//   - Transpose: the general rectangular transpose (r×c → c×r).
//   - Determinant: Gaussian elimination with partial pivoting by default; the
//     legacy cross-diagonal scheme is available as DiagonalDeterminant.
//   - Inverse: Newton–Schulz refinement seeded with Aᵀ/(‖A‖₁·‖A‖∞), bounded
//     by an iteration cap.
//
// Every operation returns a freshly allocated *Dense; operands are never
// mutated. Errors are package sentinels (ErrNonSquare, ErrSingular,
// ErrDimensionMismatch, ErrNoConvergence, ...) wrapped with the operation
// name, so callers match them with errors.Is.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{-1, 2, -2}, {2, -1, 5}, {3, -2, 4}})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) {
//		// handle
//	}
//
// Complexity: Add/Sub/Scale/Transpose are O(r·c); Mul is O(r·n·c);
// Determinant is O(n³); Inverse is O(k·n³) for k refinement steps.
package matrix
