// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix inverse by Newton–Schulz refinement:
//     X₀ = Aᵀ / (‖A‖₁·‖A‖∞),  X_{k+1} = X_k·(2I − A·X_k),
//     stopping once |det(A·X_k) − 1| < tolerance.
//
// Behavior highlights:
//   - The seed guarantees ‖I − A·X₀‖₂ < 1 for every non-singular A, so the
//     residual squares on each step (quadratic convergence).
//   - 2I is built once and reused by every step.
//   - The loop is bounded by maxIterations; a non-finite iterate stops it
//     early. Both surface as ErrNoConvergence.
//
// AI-Hints:
//   - Ill-conditioned inputs need about log₂(cond²) steps before the
//     quadratic phase starts; raise WithMaxIterations for those.
//   - WithSingularEpsilon rejects near-singular inputs up front.

package matrix

import (
	"fmt"
	"math"
)

// Inverse returns an approximation X of m⁻¹ with |det(m·X) − 1| < tolerance.
// The input is never mutated. The 0×0 matrix is its own inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular when |det(m)| <= singular epsilon (exactly 0 by default).
//   - ErrNoConvergence when the iteration cap is hit or the iterate becomes non-finite.
//
// Complexity:
//   - Time O(k·n^3) for k steps, Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	inv, _, err := InverseReport(m, opts...)
	if err != nil {
		return nil, err
	}

	return inv, nil
}

// InverseReport is Inverse plus the number of refinement steps taken and the
// final residual |det(A·X) − 1|. On ErrNoConvergence the report describes
// the last iterate.
func InverseReport(m Matrix, opts ...Option) (Matrix, Convergence, error) {
	var conv Convergence
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	a, err := denseOf(m)
	if err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}
	n := a.r
	if n == 0 {
		return newDense(0, 0, a.validateNaNInf), conv, nil
	}

	// Stage 1: singular guard.
	det, err := determinant(a, o.determinant)
	if err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) <= o.singularEps {
		return nil, conv, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	// Stage 2: seed X₀ = Aᵀ / (‖A‖₁·‖A‖∞).
	n1, err := Norm1(a)
	if err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}
	nInf, err := NormInf(a)
	if err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}
	at, err := asDense(Transpose(a))
	if err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}
	x, err := asDense(Scale(at, 1/(n1*nInf)))
	if err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}
	e2, err := newScaledIdentity(n, 2)
	if err != nil {
		return nil, conv, matrixErrorf(opInverse, err)
	}

	// Stage 3: refine.
	var ax, r *Dense
	for iter := 0; ; iter++ {
		if ax, err = asDense(Mul(a, x)); err != nil {
			return nil, conv, matrixErrorf(opInverse, err)
		}
		if det, err = determinant(ax, o.determinant); err != nil {
			return nil, conv, matrixErrorf(opInverse, err)
		}
		conv = Convergence{Iterations: iter, Residual: math.Abs(det - 1)}
		if conv.Residual < o.tolerance {
			return x, conv, nil
		}
		if isNonFinite(conv.Residual) || !allFinite(x.data) {
			return nil, conv, matrixErrorf(opInverse, fmt.Errorf("non-finite iterate after %d steps: %w", iter, ErrNoConvergence))
		}
		if iter == o.maxIterations {
			return nil, conv, matrixErrorf(opInverse, fmt.Errorf("residual %g after %d steps: %w", conv.Residual, iter, ErrNoConvergence))
		}
		if r, err = asDense(Sub(e2, ax)); err != nil {
			return nil, conv, matrixErrorf(opInverse, err)
		}
		if x, err = asDense(Mul(x, r)); err != nil {
			return nil, conv, matrixErrorf(opInverse, err)
		}
	}
}

// asDense unwraps a kernel result; every kernel in this package returns *Dense.
func asDense(m Matrix, err error) (*Dense, error) {
	if err != nil {
		return nil, err
	}

	return m.(*Dense), nil
}

// allFinite reports whether no element is NaN or ±Inf.
func allFinite(xs []float64) bool {
	for _, v := range xs {
		if isNonFinite(v) {
			return false
		}
	}

	return true
}
