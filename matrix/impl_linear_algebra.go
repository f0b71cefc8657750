// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Arithmetic kernels over any Matrix: Add, Sub, Scale, Mul, Transpose,
//     plus the induced norms that seed Inverse.
//
// Behavior highlights:
//   - Operands are resolved by denseOf: a *Dense is read in place, any other
//     implementation is copied once through At. Each kernel then runs one
//     flat row-major loop, so a *Dense and a foreign Matrix holding the same
//     values give bit-identical results.
//   - Operands are never mutated. Every result is a fresh *Dense carrying the
//     left operand's NaN/Inf policy.
//
// Notes:
//   - Determinant and Inverse live in impl_determinant.go / impl_inverse.go.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the norm of a matrix without cells.
const NormZero = 0.0

// ZeroSum seeds every dot-product accumulator in Mul.
const ZeroSum = 0.0

// Operation tags prefixed to every error a kernel returns.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opNorm1       = "Norm1"
	opNormInf     = "NormInf"
	opDeterminant = "Determinant"
	opDiagDet     = "DiagonalDeterminant"
	opInverse     = "Inverse"
	opEqualApprox = "EqualApprox"
)

// matrixErrorf prefixes err with an operation tag; errors.Is still reaches the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseOf returns m itself when it is *Dense, otherwise a *Dense copy read
// through At with the default policy. Callers must treat the result as read-only.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDense(rows, cols, DefaultValidateNaNInf)
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// zipWith applies f cell by cell to two operands of identical shape.
func zipWith(tag string, a, b Matrix, f func(x, y float64) float64) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := newDense(da.r, da.c, da.validateNaNInf)
	for idx, x := range da.data {
		res.data[idx] = f(x, db.data[idx])
	}

	return res, nil
}

// Add returns A + B cell by cell.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return zipWith(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns A − B cell by cell.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	return zipWith(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Scale returns alpha·m. Any shape is accepted, including empty ones.
//
// Errors:
//   - ErrNilMatrix.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newDense(d.r, d.c, d.validateNaNInf)
	for idx, v := range d.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Mul returns the product C = A·B of an r×n and an n×c matrix.
// Implementation:
//   - Stage 1: validate both operands and the inner dimension.
//   - Stage 2: for each cell (i, j) accumulate Σ_k A[i,k]·B[k,j] with k
//     ascending, starting from ZeroSum.
//
// Behavior highlights:
//   - n = 0 is legal and yields the r×c zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, db.c
	res := newDense(rows, cols, da.validateNaNInf)
	var sum float64
	for i := 0; i < rows; i++ {
		lhs := da.data[i*inner : (i+1)*inner]
		for j := 0; j < cols; j++ {
			sum = ZeroSum
			for k, x := range lhs {
				sum += x * db.data[k*cols+j]
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ: an r×c input becomes c×r with out[j,i] = m[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := d.r, d.c
	res := newDense(cols, rows, d.validateNaNInf)
	for i := 0; i < rows; i++ {
		for j, v := range d.data[i*cols : (i+1)*cols] {
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Norm1 returns the maximum absolute column sum max_j Σ_i |m[i,j]|.
// A matrix with no cells has norm 0.
//
// Errors:
//   - ErrNilMatrix.
func Norm1(m Matrix) (float64, error) {
	return inducedNorm(opNorm1, m, func(_, j int) int { return j })
}

// NormInf returns the maximum absolute row sum max_i Σ_j |m[i,j]|.
// A matrix with no cells has norm 0.
//
// Errors:
//   - ErrNilMatrix.
func NormInf(m Matrix) (float64, error) {
	return inducedNorm(opNormInf, m, func(i, _ int) int { return i })
}

// inducedNorm accumulates |m[i,j]| into the bucket chosen by key and returns
// the largest bucket.
func inducedNorm(tag string, m Matrix, key func(i, j int) int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(tag, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(tag, err)
	}

	sums := make([]float64, max(d.r, d.c))
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			sums[key(i, j)] += math.Abs(d.data[i*d.c+j])
		}
	}

	best := NormZero
	for _, s := range sums {
		best = math.Max(best, s)
	}

	return best, nil
}
