// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type accepted by FromSlices.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromSlices builds a matrix from nested rows of any numeric type, converting
// every cell to float64. Shape rules are those of FromRows.
//
// Errors:
//   - ErrEmptyData, ErrBadShape, ErrNaNInf (float inputs only).
func FromSlices[T Number](data [][]T, opts ...Option) (*Dense, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("FromSlices: %w", ErrEmptyData)
	}
	rows := make([][]float64, len(data))
	for i, row := range data {
		conv := make([]float64, len(row))
		for j, v := range row {
			conv[j] = float64(v)
		}
		rows[i] = conv
	}

	return FromRows(rows, opts...)
}
