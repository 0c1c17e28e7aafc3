// SPDX-License-Identifier: MIT

// Package matrix provides dense, row-major float64 matrices with
// elementwise arithmetic, matrix multiplication, and an in-place
// row-reduction engine producing Reduced Row Echelon Form (RREF).
//
// The package centers on:
//
//   - Dense — a concrete row-major implementation of the Matrix
//     interface backed by a single flat slice.
//   - RREF — the canonical in-place reduction (full elimination above
//     and below each pivot) governed by an absolute pivot tolerance.
//   - Inverse — identity-augmented reduction for square matrices,
//     composed entirely from the RREF engine.
//
// All operations validate fail-fast and return package sentinels
// matchable with errors.Is; nothing is mutated before validation
// succeeds. Arithmetic kernels allocate fresh results and never touch
// their operands; only RREF and its private row primitives mutate in
// place, and only element values — never shape.
//
// Matrices are best for small-to-moderate numeric problems (linear
// systems, teaching, tooling) where clear semantics matter more than
// large-scale performance.
package matrix
