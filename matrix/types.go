// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every kernel.
// This file intentionally contains ONLY the public Matrix interface and the
// small enums used by options. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept Matrix and always return a freshly allocated *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix shares no storage with the original.
	Clone() Matrix
}

// DeterminantMethod selects the algorithm behind Determinant and the
// determinant checks inside Inverse.
type DeterminantMethod int

const (
	// DetLU is Gaussian elimination with partial pivoting. Correct for every n.
	DetLU DeterminantMethod = iota

	// DetDiagonal is the legacy cross-diagonal scheme (sum of wrapping forward
	// diagonal products minus sum of wrapping backward ones). Exact only for
	// 3×3; always 0 for 1×1 and 2×2; wrong for n ≥ 4.
	DetDiagonal
)

// String returns a stable name for logs and test names.
func (dm DeterminantMethod) String() string {
	switch dm {
	case DetLU:
		return "lu"
	case DetDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// Convergence reports how an Inverse refinement ended.
type Convergence struct {
	Iterations int     // number of X ← X(2I − AX) updates performed
	Residual   float64 // final |det(A·X) − 1|
}
