// SPDX-License-Identifier: MIT

// Package densemat is a small dense-matrix toolbox for real-valued
// linear algebra: construction, element access, arithmetic, reduction
// to Reduced Row Echelon Form and inversion via identity-augmented
// reduction.
//
// All functionality lives in the matrix subpackage; a command-line
// driver is provided under cmd/densemat.
//
//	matrix/       — Dense type, arithmetic kernels, RREF and Inverse
//	cmd/densemat/ — CLI: rref and inverse subcommands, YAML input
package densemat
