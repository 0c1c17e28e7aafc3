// SPDX-License-Identifier: MIT
// Package matrix: inversion via identity-augmented reduction.
// Inverse composes the RREF engine with an ephemeral n×2n augmented
// matrix [A | I]: reduce, verify the left block became the identity,
// split off the right block. No factorization machinery — the reduction
// engine is the single source of elimination semantics.

package matrix

import (
	"fmt"
	"math"
)

// Augment returns the horizontal concatenation [A | B] as a fresh Dense.
// Both inputs must be non-nil and share the same row count; operands are
// never mutated.
//
// Errors:
//   - ErrNilMatrix when either input is nil.
//   - ErrDimensionMismatch when row counts differ.
//
// Complexity: Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func Augment(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}

	rows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, aCols+bCols)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	// Fast-path: both *Dense → two row-block copies per row.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < rows; i++ {
				copy(res.data[i*(aCols+bCols):], da.data[i*aCols:(i+1)*aCols])
				copy(res.data[i*(aCols+bCols)+aCols:], db.data[i*bCols:(i+1)*bCols])
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop, left block then right block.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < aCols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opAugment, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opAugment, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
		for j = 0; j < bCols; j++ {
			v, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opAugment, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, aCols+j, v); err != nil {
				return nil, matrixErrorf(opAugment, fmt.Errorf("Set(%d,%d): %w", i, aCols+j, err))
			}
		}
	}

	return res, nil
}

// Inverse computes A⁻¹ for a square matrix via identity-augmented reduction.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); build the ephemeral augmented
//     matrix [A | I] of shape n×2n.
//   - Stage 2: Run RREF on the augmented matrix, then verify the left n×n
//     block reduced to the identity within eps — a rank-deficient input
//     leaves a non-identity left block and is reported as ErrSingular.
//     The right n×n block is the inverse.
//
// Behavior highlights:
//   - m is never mutated; all reduction happens on the augmented copy.
//   - The singularity check is explicit, not assumed from full rank.
//
// Inputs:
//   - m: square matrix (n×n).
//   - opts: numeric policy overrides (WithEpsilon), forwarded to RREF and
//     used by the identity verification.
//
// Returns:
//   - Matrix: fresh Dense(n×n) containing A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare (preconditions).
//   - ErrSingular (left block failed to reduce to the identity).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented matrix and result.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	// Build [A | I].
	n := m.Rows()
	identity, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, identity)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Reduce the augmented matrix with the same numeric policy.
	if err = RREF(aug, opts...); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Verify the left block is the identity within eps; otherwise A had no
	// inverse and the reduction stalled on a rank-deficient column.
	augD := aug.(*Dense) // Augment always returns *Dense
	width := 2 * n
	var i, j int
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(augD.data[i*width+j]-want) > o.eps {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
		}
	}

	// Split off the right block.
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], augD.data[i*width+n:(i+1)*width])
	}

	return inv, nil
}
