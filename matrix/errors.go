// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No kernel panics on user-triggered errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures surfacing through
// the leontief solver or the CLI are easy to grep. Kernels wrap with
// matrixErrorf("<Op>", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/dimension -> NaN/Inf -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose length differs from the system size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRagged indicates that a [][]float64 literal has rows of unequal length.
	ErrRagged = errors.New("matrix: ragged row data")

	// ErrSingular is returned when the pivot magnitude falls to or below the
	// configured pivot tolerance during LU factorization (singular or
	// numerically near-singular input).
	ErrSingular = errors.New("matrix: singular matrix")
)
