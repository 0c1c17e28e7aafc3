// SPDX-License-Identifier: MIT
// Package matrix: the row-reduction engine.
// Three private row primitives operate in place on a *Dense, and RREF
// composes them into the canonical Reduced Row Echelon Form algorithm:
// one advancing "lead" column pointer, one target row at a time, full
// elimination above and below each pivot. The absolute tolerance from the
// numeric policy (DefaultEpsilon / WithEpsilon) governs pivot detection
// and elimination gating.

package matrix

import (
	"fmt"
	"math"
)

// swapRows exchanges the entire contents of rows r1 and r2 in place.
// Stage 1 (Validate): both indices in [0, rows).
// Stage 2 (Execute): element-wise swap across the row span.
// Errors: ErrRowOutOfRange. Complexity: O(c).
func (m *Dense) swapRows(r1, r2 int) error {
	if err := validateRowIndex("Dense.swapRows", r1, m.r); err != nil {
		return err
	}
	if err := validateRowIndex("Dense.swapRows", r2, m.r); err != nil {
		return err
	}

	base1, base2 := r1*m.c, r2*m.c
	for j := 0; j < m.c; j++ {
		m.data[base1+j], m.data[base2+j] = m.data[base2+j], m.data[base1+j]
	}

	return nil
}

// scaleRow multiplies every entry of row r by the scalar k in place.
// Errors: ErrRowOutOfRange. Complexity: O(c).
func (m *Dense) scaleRow(r int, k float64) error {
	if err := validateRowIndex("Dense.scaleRow", r, m.r); err != nil {
		return err
	}

	base := r * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] *= k
	}

	return nil
}

// addRowMultiple performs dst[j] += k * src[j] for every column j, in place.
// src == dst is legal (it scales the row by 1+k) but never used by RREF.
// Errors: ErrRowOutOfRange. Complexity: O(c).
func (m *Dense) addRowMultiple(src, dst int, k float64) error {
	if err := validateRowIndex("Dense.addRowMultiple", src, m.r); err != nil {
		return err
	}
	if err := validateRowIndex("Dense.addRowMultiple", dst, m.r); err != nil {
		return err
	}

	baseSrc, baseDst := src*m.c, dst*m.c
	for j := 0; j < m.c; j++ {
		m.data[baseDst+j] += k * m.data[baseSrc+j]
	}

	return nil
}

// RREF reduces m to Reduced Row Echelon Form in place.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); gather the numeric policy (eps).
//   - Stage 2: Advance a lead-column pointer across the matrix. For each
//     target row: scan downward in the lead column for the first entry with
//     |v| > eps; if none exists, advance lead and retry the same row (this
//     is how all-zero columns and rank-deficient systems are skipped
//     without wasting a row); otherwise swap the pivot row up, scale it by
//     1/pivot so the pivot becomes 1, and eliminate the lead column from
//     every other row whose entry exceeds eps. Terminate when the target
//     row reaches rows or lead reaches cols.
//
// Behavior highlights:
//   - Pure in-place mutation: shape never changes, no value is returned.
//   - Full reduction (not merely forward elimination): pivot columns end
//     up zero both above and below each pivot.
//   - Idempotent: reducing an already-reduced matrix is a no-op within eps.
//
// Inputs:
//   - m: matrix to reduce (mutated).
//   - opts: numeric policy overrides (WithEpsilon).
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil); At/Set failures on the generic
//     fallback path are wrapped with the RREF tag (unreachable for
//     well-behaved implementations).
//
// Complexity:
//   - Time O(rows² · cols), Space O(1) on the *Dense fast path
//     (O(cols) scratch on the generic fallback).
func RREF(m Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)

	// Fast-path: *Dense reduces through the row primitives on the flat slice.
	if d, ok := m.(*Dense); ok {
		rrefDense(d, o.eps)

		return nil
	}

	// Fallback: generic interface path via At/Set.
	return rrefGeneric(m, o.eps)
}

// rrefDense is the flat-slice reduction kernel.
// Row-primitive errors are impossible here: every index is produced by the
// loop bounds, so their returns are discarded.
func rrefDense(d *Dense, eps float64) {
	rows, cols := d.r, d.c
	lead := 0 // next candidate pivot column
	var i, j, row int
	var pivot, factor float64
	for row = 0; row < rows; row++ {
		// Remaining rows are already in correct form once columns run out.
		if lead >= cols {
			return
		}

		// Scan from the target row downward for the first usable pivot.
		i = row
		for i < rows && math.Abs(d.data[i*cols+lead]) <= eps {
			i++
		}
		if i == rows {
			// Entire column from row down is (within eps of) zero:
			// advance the lead column and retry the same target row.
			lead++
			row--
			continue
		}

		// Move the pivot row into position.
		_ = d.swapRows(i, row)

		// Normalize the pivot to exactly 1. The guard mirrors the pivot
		// scan and keeps the scale step self-contained.
		pivot = d.data[row*cols+lead]
		if math.Abs(pivot) > eps {
			_ = d.scaleRow(row, 1.0/pivot)
		}

		// Eliminate the lead column from every other row, above and below.
		for j = 0; j < rows; j++ {
			if j == row {
				continue
			}
			factor = d.data[j*cols+lead]
			if math.Abs(factor) > eps {
				_ = d.addRowMultiple(row, j, -factor)
			}
		}

		lead++
	}
}

// rrefGeneric mirrors rrefDense over the Matrix interface for foreign
// implementations. Same loop structure; reads/writes go through At/Set.
func rrefGeneric(m Matrix, eps float64) error {
	rows, cols := m.Rows(), m.Cols()
	lead := 0
	var i, j, k, row int
	var v, w, pivot, factor float64
	var err error
	for row = 0; row < rows; row++ {
		if lead >= cols {
			return nil
		}

		// Downward pivot scan in the lead column.
		i = row
		for i < rows {
			v, err = m.At(i, lead)
			if err != nil {
				return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", i, lead, err))
			}
			if math.Abs(v) > eps {
				break
			}
			i++
		}
		if i == rows {
			lead++
			row--
			continue
		}

		// Swap pivot row into position (column-wise through the interface).
		if i != row {
			for k = 0; k < cols; k++ {
				v, err = m.At(i, k)
				if err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				w, err = m.At(row, k)
				if err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", row, k, err))
				}
				if err = m.Set(i, k, w); err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("Set(%d,%d): %w", i, k, err))
				}
				if err = m.Set(row, k, v); err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("Set(%d,%d): %w", row, k, err))
				}
			}
		}

		// Scale the pivot row by 1/pivot.
		pivot, err = m.At(row, lead)
		if err != nil {
			return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", row, lead, err))
		}
		if math.Abs(pivot) > eps {
			inv := 1.0 / pivot // same reciprocal step as the fast path
			for k = 0; k < cols; k++ {
				v, err = m.At(row, k)
				if err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", row, k, err))
				}
				if err = m.Set(row, k, v*inv); err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("Set(%d,%d): %w", row, k, err))
				}
			}
		}

		// Eliminate the lead column from all other rows.
		for j = 0; j < rows; j++ {
			if j == row {
				continue
			}
			factor, err = m.At(j, lead)
			if err != nil {
				return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", j, lead, err))
			}
			if math.Abs(factor) <= eps {
				continue
			}
			for k = 0; k < cols; k++ {
				v, err = m.At(row, k)
				if err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", row, k, err))
				}
				w, err = m.At(j, k)
				if err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("At(%d,%d): %w", j, k, err))
				}
				if err = m.Set(j, k, w-factor*v); err != nil {
					return matrixErrorf(opRREF, fmt.Errorf("Set(%d,%d): %w", j, k, err))
				}
			}
		}

		lead++
	}

	return nil
}
