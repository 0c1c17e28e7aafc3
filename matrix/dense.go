// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// cellWidth is the field width used by String for each rendered element.
const cellWidth = 8

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order:
// the element at (i, j) lives at data[i*c+j]. The shape is immutable after
// construction; only element values change (via Set or the RREF engine).
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice (zeroed by the runtime)
	data := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense matrix from a nested row slice.
// Stage 1 (Validate): outer slice and first row must be non-empty.
// Stage 2 (Ingest): copy row by row, rejecting ragged input.
//
// Errors:
//   - ErrInvalidDimensions when values or values[0] is empty.
//   - ErrNonRectangular when any row's length differs from the first row's.
//
// Complexity: O(r*c).
func NewDenseFromRows(values [][]float64) (*Dense, error) {
	// Validate shape positivity before any allocation.
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(values), len(values[0])
	data := make([]float64, rows*cols)

	// Copy rows, validating rectangularity as we go.
	for i := 0; i < rows; i++ {
		if len(values[i]) != cols {
			return nil, ErrNonRectangular
		}
		copy(data[i*cols:(i+1)*cols], values[i])
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromFlat creates a Dense matrix from a flat row-major value slice.
// Stage 1 (Validate): shape must be positive and flat non-empty.
// Stage 2 (Ingest): the flat length must equal rows*cols exactly.
// The input slice is copied; the matrix never aliases caller memory.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1, cols < 1 or flat is empty.
//   - ErrNonRectangular when len(flat) != rows*cols.
//
// Complexity: O(r*c).
func NewDenseFromFlat(rows, cols int, flat []float64) (*Dense, error) {
	if rows < 1 || cols < 1 || len(flat) == 0 {
		return nil, ErrInvalidDimensions
	}
	if len(flat) != rows*cols {
		return nil, ErrNonRectangular
	}
	// Deep copy: no aliasing between distinct Dense values.
	data := make([]float64, len(flat))
	copy(data, flat)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index (negatives rejected with the same sentinel).
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices; nothing is written on failure.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer: one line per row, each element
// right-aligned in an 8-character field, the row bracketed by "[ ... ]".
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString("[ ") // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%*g ", cellWidth, m.data[i*m.c+j])
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
