// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One home for the nil, shape and squareness checks every kernel starts with.
//   - Each validator returns a package sentinel prefixed with its own name, so
//     a kernel error reads "Mul: ValidateMulCompatible: matrix: dimension mismatch".
//
// Notes:
//   - Composite validators stop at the first failing step; nil is always
//     checked before shape.
//   - Nothing here allocates unless a check fails.

package matrix

import "fmt"

// validatorErrorf prefixes err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// firstFailure runs checks in order and tags the first error with name.
func firstFailure(name string, checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return validatorErrorf(name, err)
		}
	}

	return nil
}

// ValidateNotNil rejects a nil Matrix, including a nil *Dense stored in the
// interface.
func ValidateNotNil(m Matrix) error {
	if d, isDense := m.(*Dense); m == nil || (isDense && d == nil) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires equal row and column counts. Both operands must
// be non-nil.
func ValidateSameShape(a, b Matrix) error {
	switch {
	case a.Rows() != b.Rows():
		return validatorErrorf("ValidateSameShape", fmt.Errorf("rows %d vs %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch))
	case a.Cols() != b.Cols():
		return validatorErrorf("ValidateSameShape", fmt.Errorf("cols %d vs %d: %w", a.Cols(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare requires Rows == Cols. m must be non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() == m.Cols() {
		return nil
	}

	return validatorErrorf("ValidateSquare", fmt.Errorf("%d×%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
}

// ValidateBinarySameShape checks a, then b, for nil, then their shapes.
func ValidateBinarySameShape(a, b Matrix) error {
	return firstFailure("ValidateBinarySameShape",
		func() error { return ValidateNotNil(a) },
		func() error { return ValidateNotNil(b) },
		func() error { return ValidateSameShape(a, b) },
	)
}

// ValidateMulCompatible checks a, then b, for nil, then a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	return firstFailure("ValidateMulCompatible",
		func() error { return ValidateNotNil(a) },
		func() error { return ValidateNotNil(b) },
		func() error {
			if a.Cols() != b.Rows() {
				return fmt.Errorf("inner %d vs %d: %w", a.Cols(), b.Rows(), ErrDimensionMismatch)
			}
			return nil
		},
	)
}

// ValidateSquareNonNil checks m for nil, then for squareness.
func ValidateSquareNonNil(m Matrix) error {
	return firstFailure("ValidateSquareNonNil",
		func() error { return ValidateNotNil(m) },
		func() error { return ValidateSquare(m) },
	)
}

// ValidateRows checks nested row data before ingestion: exactly rows rows
// (any count when rows is -1), each exactly cols long, and, when finite is
// set, no NaN or ±Inf cell.
//
// Errors: ErrBadShape, ErrNaNInf.
// Complexity: O(r) for the shape scan, O(r*c) with finite set.
func ValidateRows(data [][]float64, rows, cols int, finite bool) error {
	if rows >= 0 && len(data) != rows {
		return validatorErrorf("ValidateRows", fmt.Errorf("want %d rows, got %d: %w", rows, len(data), ErrBadShape))
	}
	for i, row := range data {
		if len(row) != cols {
			return validatorErrorf("ValidateRows", fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), cols, ErrBadShape))
		}
		if !finite {
			continue
		}
		for j, v := range row {
			if isNonFinite(v) {
				return validatorErrorf("ValidateRows", fmt.Errorf("cell (%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
