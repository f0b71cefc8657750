// SPDX-License-Identifier: MIT

// Package matops is a small dense-matrix toolkit for float64 data.
//
// What is inside?
//
//	matrix/    : the Dense row-major matrix, the Matrix interface and the
//	              kernels: Add, Sub, Scale, Mul, Transpose, Equal,
//	              Determinant (LU or the legacy cross-diagonal scheme) and
//	              Inverse by Newton–Schulz refinement
//	converters/: copies between matrix.Matrix and gonum's mat.Dense
//	examples/  : a runnable walkthrough of inversion and the gonum cross-check
//
// Conventions:
//
//   - Kernels never mutate operands; every result is a fresh *matrix.Dense.
//   - Failures are sentinel errors wrapped with the operation name, so
//     errors.Is(err, matrix.ErrSingular) works at any depth.
//   - Tunables are functional options (WithTolerance, WithMaxIterations,
//     WithDeterminant, ...), validated when constructed.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) { ... }
package matops
