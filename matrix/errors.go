// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms return these sentinels and tests check them via
// errors.Is. No algorithm panics on user-triggered error conditions; panics
// are reserved for programmer errors (invalid option construction).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the call
// site — callers still match via errors.Is.

var (
	// ErrInvalidDimensions is returned when a requested shape is non-positive
	// or a constructor receives empty input. Constructors must validate
	// before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular is returned when nested rows have unequal lengths or
	// a flat value slice does not contain exactly rows*cols elements.
	ErrNonRectangular = errors.New("matrix: matrix must be rectangular")

	// ErrOutOfRange indicates that an element index (row or column) is
	// outside valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRowOutOfRange indicates that a row-operation index is outside
	// [0, rows). Kept distinct from ErrOutOfRange so row primitives report
	// the violated bound precisely.
	ErrRowOutOfRange = errors.New("matrix: row index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or
	// Augment with different row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivideByZero is returned by scalar division when the divisor is zero.
	ErrDivideByZero = errors.New("matrix: division by zero scalar")

	// ErrNotSquare signals that a square matrix was required but the input
	// wasn't (Inverse precondition).
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when identity-augmented reduction fails to
	// produce the identity in the left block, i.e. the input has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
