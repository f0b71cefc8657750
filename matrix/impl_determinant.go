// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Determinant of a square matrix, two algorithms behind one facade:
//     DetLU (default) - Gaussian elimination with partial pivoting;
//     DetDiagonal     - the legacy cross-diagonal product scheme.
//
// Notes:
//   - DetDiagonal sums the products along the n forward diagonals (wrapping
//     modulo n) and subtracts the n backward ones. For n = 3 this is the rule
//     of Sarrus; for n = 1 and n = 2 both sums coincide and the result is
//     always 0; for n ≥ 4 the result is not the determinant. It is kept for
//     reproducing values computed with that scheme.
//   - Neither algorithm mutates its input; LU works on a private copy.

package matrix

import "math"

// ZeroPivot marks an all-zero pivot column during elimination.
const ZeroPivot = 0.0

// Determinant returns det(m) using the method selected by WithDeterminant
// (DetLU unless overridden). The 0×0 matrix has determinant 1 under DetLU.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - DetLU: Time O(n^3), Space O(n^2). DetDiagonal: Time O(n^2), Space O(1).
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	det, err := determinant(m, o.determinant)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// DiagonalDeterminant evaluates the legacy cross-diagonal scheme regardless
// of options. See the file header for where it is (and is not) a determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func DiagonalDeterminant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDiagDet, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opDiagDet, err)
	}

	return diagonalDet(d.data, d.r), nil
}

// determinant dispatches on method; m is already validated square.
func determinant(m Matrix, method DeterminantMethod) (float64, error) {
	d, err := denseOf(m)
	if err != nil {
		return 0, err
	}
	if method == DetDiagonal {
		return diagonalDet(d.data, d.r), nil
	}

	return luDet(d.data, d.r), nil
}

// luDet computes det of the n×n row-major buffer a by Gaussian elimination
// with partial pivoting on a copy. Each row swap flips the sign; an all-zero
// pivot column yields exactly 0.
func luDet(a []float64, n int) float64 {
	w := make([]float64, len(a))
	copy(w, a)

	sign := 1.0
	var (
		i, j, k, pivot int
		maxAbs, v, p   float64
		f              float64
	)
	for k = 0; k < n; k++ {
		// Pick the largest |w[i,k]| for i >= k (first one wins on ties).
		pivot = k
		maxAbs = math.Abs(w[k*n+k])
		for i = k + 1; i < n; i++ {
			v = math.Abs(w[i*n+k])
			if v > maxAbs {
				maxAbs, pivot = v, i
			}
		}
		if maxAbs == ZeroPivot {
			return 0
		}
		if pivot != k {
			for j = 0; j < n; j++ {
				w[k*n+j], w[pivot*n+j] = w[pivot*n+j], w[k*n+j]
			}
			sign = -sign
		}
		p = w[k*n+k]
		for i = k + 1; i < n; i++ {
			f = w[i*n+k] / p
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w[i*n+j] -= f * w[k*n+j]
			}
		}
	}

	det := sign
	for i = 0; i < n; i++ {
		det *= w[i*n+i]
	}

	return det
}

// diagonalDet evaluates Σ forward-diagonal products − Σ backward-diagonal
// products over the n×n row-major buffer a, with wrapping column indices.
// The accumulation order matches the historical implementation exactly.
func diagonalDet(a []float64, n int) float64 {
	var forward, backward float64
	var fwd, bwd float64
	var i, j, l int
	for i = 0; i < n; i++ {
		fwd, bwd = 1.0, 1.0
		l = 2*n - 1 - i
		for j = 0; j < n; j++ {
			bwd *= a[j*n+l%n]
			l--
			fwd *= a[j*n+(j+i)%n]
		}
		backward += bwd
		forward += fwd
	}

	return forward - backward
}
