// SPDX-License-Identifier: MIT
// Package: matrix
//
// Sentinel errors. Every failure a caller can trigger surfaces as one of
// these, prefixed by the operation that detected it ("Inverse: ...").
// Match with errors.Is; message text is not part of the API.
//
// When several problems exist at once, the first reported is, in order:
// nil operand, bad shape or index or NaN, dimension mismatch, non-square,
// singular, no convergence.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when nested row data does not match the declared
	// shape, or rows have different lengths (ragged input).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrEmptyData is returned when a shape must be derived from row data that
	// has no rows at all.
	ErrEmptyData = errors.New("matrix: empty data")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the inverse is requested for a matrix whose
	// determinant is zero (within the configured singular epsilon).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNoConvergence is returned when the Newton–Schulz refinement exceeds its
	// iteration cap, or its iterate stops being finite.
	ErrNoConvergence = errors.New("matrix: inverse iteration did not converge")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
