// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matops/matrix"
)

var (
	// ErrEmptyMatrix is returned by ToGonum for a matrix with zero rows or
	// columns; gonum has no representation for empty dense matrices.
	ErrEmptyMatrix = errors.New("converters: empty matrix")

	// ErrNilInput is returned when a nil matrix is passed to a converter.
	ErrNilInput = errors.New("converters: nil input")
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - ErrNilInput for a nil m; ErrEmptyMatrix when Rows() or Cols() is 0.
//   - Any error returned by m.At (wrapped).
//
// Complexity: O(r*c).
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilInput)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("ToGonum(%d,%d): %w", rows, cols, ErrEmptyMatrix)
	}

	// Row-major on both sides, so a *matrix.Dense copies in one pass.
	if d, ok := m.(*matrix.Dense); ok {
		data := make([]float64, 0, rows*cols)
		for _, row := range d.Data() {
			data = append(data, row...)
		}

		return mat.NewDense(rows, cols, data), nil
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToGonum: %w", err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies g into a new *matrix.Dense. Options are forwarded to
// matrix.NewDense, so the numeric policy of the result is configurable.
//
// Errors:
//   - ErrNilInput for a nil g.
//   - matrix.ErrNaNInf when g holds a non-finite value under the default policy.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilInput)
	}
	rows, cols := g.Dims()
	out, err := matrix.NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return out, nil
}
