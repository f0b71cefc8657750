// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense: the row-major value type. Cell (i, j) lives at data[i*cols+j].
//   - Constructors from a shape, from nested rows with an explicit shape, and
//     from nested rows with a derived shape.
//   - Bounds-checked At/Set that return errors, never panic.
//   - Reshaping is builder-style (WithRows/WithCols/Resize/WithData): each
//     call returns a new *Dense, so len(data) == rows*cols holds for every
//     value a caller can observe.
//
// Costs:
//   - NewDense, Clone, Data, Resize: O(r*c). At, Set, Rows, Cols: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Method tags used in error messages.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxResize = "Resize" // also WithRows/WithCols
	ctxNew    = "NewDenseFrom"
	ctxRows   = "FromRows"
)

// String() row delimiters.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf tags err with the method and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols matrix of float64 stored row by row in one slice.
// Either dimension may be zero. When validateNaNInf is set, Set and Apply
// refuse NaN and ±Inf.
//
// The zero value is a usable 0×0 matrix with validation disabled; prefer the
// constructors, which apply the default policy.
type Dense struct {
	r, c           int       // row and column counts (>= 0)
	data           []float64 // row-major cells, len == r*c
	validateNaNInf bool      // reject NaN/±Inf on write
}

// Dense satisfies Matrix and prints itself.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewEmpty returns a 0×0 matrix with empty storage and the default policy.
// Complexity: O(1).
func NewEmpty() *Dense {
	return &Dense{data: []float64{}, validateNaNInf: DefaultValidateNaNInf}
}

// NewDense returns the rows×cols zero matrix. Only the NaN/Inf policy
// option is consulted. 0×N and N×0 are legal and hold no cells.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.validateNaNInf), nil
}

// newDense is the internal allocator; callers have already validated the shape.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: validateNaNInf,
	}
}

// NewDenseFrom builds an r×c matrix from nested rows, copying every cell.
// Implementation:
//   - Stage 1: validate dimensions and that data is exactly rows × cols.
//   - Stage 2: under the finite policy, reject NaN/±Inf cells.
//   - Stage 3: flatten row by row into a fresh buffer.
//
// Behavior highlights:
//   - The caller's slices are never retained; later mutation of data has no effect.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape (row count or a row length differs), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data [][]float64, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	if err := ValidateRows(data, rows, cols, o.validateNaNInf); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}

	return flatten(data, rows, cols, o.validateNaNInf), nil
}

// FromRows builds a matrix whose shape is derived from data:
// rows = len(data), cols = len(data[0]).
//
// Errors:
//   - ErrEmptyData when data has no rows.
//   - ErrBadShape when rows are ragged; ErrNaNInf under the finite policy.
func FromRows(data [][]float64, opts ...Option) (*Dense, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrEmptyData)
	}
	o := gatherOptions(opts...)
	rows, cols := len(data), len(data[0])
	if err := ValidateRows(data, rows, cols, o.validateNaNInf); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}

	return flatten(data, rows, cols, o.validateNaNInf), nil
}

// flatten copies validated nested rows into a new Dense.
func flatten(data [][]float64, rows, cols int, validateNaNInf bool) *Dense {
	out := newDense(rows, cols, validateNaNInf)
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], data[i])
	}

	return out
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps (row, col) to its offset in data, or ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At reads cell (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v into cell (row, col). The cell is left unchanged on error.
//
// Errors:
//   - ErrOutOfRange, or ErrNaNInf when v is not finite under the finite policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy with the same policy.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed variant used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Data returns a full copy of the storage as nested rows.
// The result never aliases the matrix buffer.
// Complexity: O(r*c).
func (m *Dense) Data() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Resize returns a new rows×cols matrix holding the overlapping top-left
// block of m; cells outside the old shape are 0. The receiver is unchanged.
// Implementation:
//   - Stage 1: validate non-negative dimensions.
//   - Stage 2: allocate the zero-filled result with m's numeric policy.
//   - Stage 3: copy min(rows,r) rows of min(cols,c) cells each.
//
// Errors:
//   - ErrInvalidDimensions on negative input.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Resize(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxResize, rows, cols, ErrInvalidDimensions)
	}
	out := newDense(rows, cols, m.validateNaNInf)
	keepR, keepC := min(rows, m.r), min(cols, m.c)
	for i := 0; i < keepR; i++ {
		copy(out.data[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}

	return out, nil
}

// WithRows returns a copy of m with n rows: existing rows are kept (or
// truncated), new rows are zero-filled at the full Cols() width.
func (m *Dense) WithRows(n int) (*Dense, error) { return m.Resize(n, m.c) }

// WithCols returns a copy of m whose rows are padded with 0.0 or truncated
// to n columns.
func (m *Dense) WithCols(n int) (*Dense, error) { return m.Resize(m.r, n) }

// WithData returns a new matrix built from data (shape derived as in
// FromRows) that inherits m's numeric policy.
//
// Errors:
//   - ErrEmptyData, ErrBadShape, ErrNaNInf (see FromRows).
func (m *Dense) WithData(data [][]float64) (*Dense, error) {
	if m.validateNaNInf {
		return FromRows(data, WithValidateNaNInf())
	}

	return FromRows(data, WithNoValidateNaNInf())
}

// Do calls f for every cell in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply overwrites every cell with f(i, j, old) in row-major order.
// A non-finite result under the finite policy stops the walk; cells already
// visited keep their new values. Run it on a Clone for all-or-nothing updates.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value (policy ON).
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
