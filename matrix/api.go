// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Convenience constructors (zeros, identity, "like" variants) and the
//     comparison entry points.
//   - Short aliases (Sum, Diff, Product, T, ScaleBy) that forward to the
//     kernels unchanged.
//
// Notes:
//   - Aliases add no validation of their own; the kernel they call does it.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns the rows×cols zero matrix with the default policy.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity. NewIdentity(0) is the empty matrix.
func NewIdentity(n int) (*Dense, error) {
	return newScaledIdentity(n, 1.0)
}

// newScaledIdentity returns alpha·I_n.
func newScaledIdentity(n int, alpha float64) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*(n+1)] = alpha
	}

	return id, nil
}

// CloneMatrix returns m.Clone(); for a *Dense the copy is again a *Dense.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a zero matrix shaped like m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity of m's order. m must be square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Aliases ----------

// Sum is Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is Scale.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// ---------- Comparison ----------

// Equal reports strict equality: same Rows, same Cols and every cell equal
// under ==. There is no tolerance; use EqualApprox for numeric checks.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Time: O(r*c). Space: O(1).
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	return ewEqual(a, b)
}

// NotEqual is the negation of Equal.
func NotEqual(a, b Matrix) bool { return !Equal(a, b) }

// EqualApprox checks |a[i,j] − b[i,j]| ≤ eps for identical shapes, where eps
// comes from WithEpsilon (DefaultEpsilon otherwise).
// Returns (false, nil) when any cell differs by more than eps.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// AI-Hints:
//   - EqualApprox(a, b, WithEpsilon(1e-3)) mirrors the acceptance checks used
//     for Inverse.
func EqualApprox(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	o := gatherOptions(opts...)

	return ewWithin(a, b, o.eps), nil
}
